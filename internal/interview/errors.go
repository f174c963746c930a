package interview

import "errors"

// Sentinel errors for callers to branch on with errors.Is. Wrapped
// errors carry the detail; the sentinel carries the category.
var (
	// ErrValidation marks malformed or out-of-range input.
	ErrValidation = errors.New("invalid input")

	// ErrNotFound marks a missing session, question, or resume.
	ErrNotFound = errors.New("not found")

	// ErrForbidden marks a question referenced through the wrong session.
	ErrForbidden = errors.New("question does not belong to session")

	// ErrConflict marks an operation rejected by current state, such as
	// answering an already-answered question.
	ErrConflict = errors.New("conflicts with current state")

	// ErrGenerationFailed marks a provider failure during question
	// generation. Nothing is persisted when this is returned.
	ErrGenerationFailed = errors.New("question generation failed")

	// ErrDuplicateQuestion marks two consecutive generation attempts
	// that both collided with an already-asked question.
	ErrDuplicateQuestion = errors.New("generated question duplicates an earlier one")

	// ErrNoScorableQuestions marks a report request for a session with
	// no evaluated questions.
	ErrNoScorableQuestions = errors.New("no scorable questions in session")
)
