// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/mockmate/mockmate/ent/answer"
	"github.com/mockmate/mockmate/ent/evaluation"
	"github.com/mockmate/mockmate/ent/llmcall"
	"github.com/mockmate/mockmate/ent/question"
	"github.com/mockmate/mockmate/ent/report"
	"github.com/mockmate/mockmate/ent/resume"
	"github.com/mockmate/mockmate/ent/schema"
	"github.com/mockmate/mockmate/ent/session"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answerFields := schema.Answer{}.Fields()
	_ = answerFields
	// answerDescAnswerText is the schema descriptor for answer_text field.
	answerDescAnswerText := answerFields[1].Descriptor()
	// answer.AnswerTextValidator is a validator for the "answer_text" field. It is called by the builders before save.
	answer.AnswerTextValidator = answerDescAnswerText.Validators[0].(func(string) error)
	// answerDescSubmittedAt is the schema descriptor for submitted_at field.
	answerDescSubmittedAt := answerFields[2].Descriptor()
	// answer.DefaultSubmittedAt holds the default value on creation for the submitted_at field.
	answer.DefaultSubmittedAt = answerDescSubmittedAt.Default.(func() time.Time)
	// answerDescID is the schema descriptor for id field.
	answerDescID := answerFields[0].Descriptor()
	// answer.DefaultID holds the default value on creation for the id field.
	answer.DefaultID = answerDescID.Default.(func() uuid.UUID)
	evaluationFields := schema.Evaluation{}.Fields()
	_ = evaluationFields
	// evaluationDescScore is the schema descriptor for score field.
	evaluationDescScore := evaluationFields[1].Descriptor()
	// evaluation.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	evaluation.ScoreValidator = func() func(int) error {
		validators := evaluationDescScore.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(score int) error {
			for _, fn := range fns {
				if err := fn(score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// evaluationDescFeedback is the schema descriptor for feedback field.
	evaluationDescFeedback := evaluationFields[4].Descriptor()
	// evaluation.FeedbackValidator is a validator for the "feedback" field. It is called by the builders before save.
	evaluation.FeedbackValidator = evaluationDescFeedback.Validators[0].(func(string) error)
	// evaluationDescCreatedAt is the schema descriptor for created_at field.
	evaluationDescCreatedAt := evaluationFields[7].Descriptor()
	// evaluation.DefaultCreatedAt holds the default value on creation for the created_at field.
	evaluation.DefaultCreatedAt = evaluationDescCreatedAt.Default.(func() time.Time)
	// evaluationDescID is the schema descriptor for id field.
	evaluationDescID := evaluationFields[0].Descriptor()
	// evaluation.DefaultID holds the default value on creation for the id field.
	evaluation.DefaultID = evaluationDescID.Default.(func() uuid.UUID)
	llmcallFields := schema.LLMCall{}.Fields()
	_ = llmcallFields
	// llmcallDescProvider is the schema descriptor for provider field.
	llmcallDescProvider := llmcallFields[0].Descriptor()
	// llmcall.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	llmcall.ProviderValidator = llmcallDescProvider.Validators[0].(func(string) error)
	// llmcallDescModel is the schema descriptor for model field.
	llmcallDescModel := llmcallFields[1].Descriptor()
	// llmcall.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	llmcall.ModelValidator = llmcallDescModel.Validators[0].(func(string) error)
	// llmcallDescPurpose is the schema descriptor for purpose field.
	llmcallDescPurpose := llmcallFields[2].Descriptor()
	// llmcall.PurposeValidator is a validator for the "purpose" field. It is called by the builders before save.
	llmcall.PurposeValidator = llmcallDescPurpose.Validators[0].(func(string) error)
	// llmcallDescInputTokens is the schema descriptor for input_tokens field.
	llmcallDescInputTokens := llmcallFields[3].Descriptor()
	// llmcall.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmcall.DefaultInputTokens = llmcallDescInputTokens.Default.(int)
	// llmcallDescOutputTokens is the schema descriptor for output_tokens field.
	llmcallDescOutputTokens := llmcallFields[4].Descriptor()
	// llmcall.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmcall.DefaultOutputTokens = llmcallDescOutputTokens.Default.(int)
	// llmcallDescLatencyMs is the schema descriptor for latency_ms field.
	llmcallDescLatencyMs := llmcallFields[5].Descriptor()
	// llmcall.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmcall.DefaultLatencyMs = llmcallDescLatencyMs.Default.(int64)
	// llmcallDescSuccess is the schema descriptor for success field.
	llmcallDescSuccess := llmcallFields[6].Descriptor()
	// llmcall.DefaultSuccess holds the default value on creation for the success field.
	llmcall.DefaultSuccess = llmcallDescSuccess.Default.(bool)
	// llmcallDescCreatedAt is the schema descriptor for created_at field.
	llmcallDescCreatedAt := llmcallFields[10].Descriptor()
	// llmcall.DefaultCreatedAt holds the default value on creation for the created_at field.
	llmcall.DefaultCreatedAt = llmcallDescCreatedAt.Default.(func() time.Time)
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescQuestionText is the schema descriptor for question_text field.
	questionDescQuestionText := questionFields[2].Descriptor()
	// question.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	question.QuestionTextValidator = questionDescQuestionText.Validators[0].(func(string) error)
	// questionDescFingerprint is the schema descriptor for fingerprint field.
	questionDescFingerprint := questionFields[3].Descriptor()
	// question.FingerprintValidator is a validator for the "fingerprint" field. It is called by the builders before save.
	question.FingerprintValidator = questionDescFingerprint.Validators[0].(func(string) error)
	// questionDescTopic is the schema descriptor for topic field.
	questionDescTopic := questionFields[4].Descriptor()
	// question.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	question.TopicValidator = questionDescTopic.Validators[0].(func(string) error)
	// questionDescIsFollowUp is the schema descriptor for is_follow_up field.
	questionDescIsFollowUp := questionFields[9].Descriptor()
	// question.DefaultIsFollowUp holds the default value on creation for the is_follow_up field.
	question.DefaultIsFollowUp = questionDescIsFollowUp.Default.(bool)
	// questionDescCreatedAt is the schema descriptor for created_at field.
	questionDescCreatedAt := questionFields[10].Descriptor()
	// question.DefaultCreatedAt holds the default value on creation for the created_at field.
	question.DefaultCreatedAt = questionDescCreatedAt.Default.(func() time.Time)
	// questionDescID is the schema descriptor for id field.
	questionDescID := questionFields[0].Descriptor()
	// question.DefaultID holds the default value on creation for the id field.
	question.DefaultID = questionDescID.Default.(func() uuid.UUID)
	reportFields := schema.Report{}.Fields()
	_ = reportFields
	// reportDescCreatedAt is the schema descriptor for created_at field.
	reportDescCreatedAt := reportFields[6].Descriptor()
	// report.DefaultCreatedAt holds the default value on creation for the created_at field.
	report.DefaultCreatedAt = reportDescCreatedAt.Default.(func() time.Time)
	// reportDescID is the schema descriptor for id field.
	reportDescID := reportFields[0].Descriptor()
	// report.DefaultID holds the default value on creation for the id field.
	report.DefaultID = reportDescID.Default.(func() uuid.UUID)
	resumeFields := schema.Resume{}.Fields()
	_ = resumeFields
	// resumeDescCreatedAt is the schema descriptor for created_at field.
	resumeDescCreatedAt := resumeFields[3].Descriptor()
	// resume.DefaultCreatedAt holds the default value on creation for the created_at field.
	resume.DefaultCreatedAt = resumeDescCreatedAt.Default.(func() time.Time)
	// resumeDescID is the schema descriptor for id field.
	resumeDescID := resumeFields[0].Descriptor()
	// resume.DefaultID holds the default value on creation for the id field.
	resume.DefaultID = resumeDescID.Default.(func() uuid.UUID)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescNoRepeats is the schema descriptor for no_repeats field.
	sessionDescNoRepeats := sessionFields[8].Descriptor()
	// session.DefaultNoRepeats holds the default value on creation for the no_repeats field.
	session.DefaultNoRepeats = sessionDescNoRepeats.Default.(bool)
	// sessionDescFocusWeakAreas is the schema descriptor for focus_weak_areas field.
	sessionDescFocusWeakAreas := sessionFields[9].Descriptor()
	// session.DefaultFocusWeakAreas holds the default value on creation for the focus_weak_areas field.
	session.DefaultFocusWeakAreas = sessionDescFocusWeakAreas.Default.(bool)
	// sessionDescStartedAt is the schema descriptor for started_at field.
	sessionDescStartedAt := sessionFields[10].Descriptor()
	// session.DefaultStartedAt holds the default value on creation for the started_at field.
	session.DefaultStartedAt = sessionDescStartedAt.Default.(func() time.Time)
	// sessionDescID is the schema descriptor for id field.
	sessionDescID := sessionFields[0].Descriptor()
	// session.DefaultID holds the default value on creation for the id field.
	session.DefaultID = sessionDescID.Default.(func() uuid.UUID)
}
