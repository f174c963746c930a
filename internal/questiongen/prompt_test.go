package questiongen

import (
	"strings"
	"testing"

	"github.com/mockmate/mockmate/internal/resume"
)

func TestBuildUserMessage_RoleMode(t *testing.T) {
	msg := buildUserMessage(Input{
		Mode:           ModeRole,
		Role:           "Backend Engineer",
		Difficulty:     "medium",
		QuestionNumber: 1,
		TotalQuestions: 5,
	}, DefaultConfig())

	if !strings.Contains(msg, "TARGET ROLE: Backend Engineer") {
		t.Fatalf("missing role context:\n%s", msg)
	}
	if !strings.Contains(msg, "Question 1 of 5") {
		t.Fatalf("missing progress:\n%s", msg)
	}
	if !strings.Contains(msg, "REQUIRED DIFFICULTY: MEDIUM") {
		t.Fatalf("missing difficulty:\n%s", msg)
	}
	if !strings.Contains(msg, "None") {
		t.Fatalf("expected empty asked list to render as None:\n%s", msg)
	}
}

func TestBuildUserMessage_TopicsMode(t *testing.T) {
	msg := buildUserMessage(Input{
		Mode:           ModeTopics,
		Topics:         []string{"SQL", "Indexing"},
		Difficulty:     "hard",
		QuestionNumber: 2,
		TotalQuestions: 10,
	}, DefaultConfig())

	if !strings.Contains(msg, "INTERVIEW TOPICS: SQL, Indexing") {
		t.Fatalf("missing topics context:\n%s", msg)
	}
}

func TestBuildUserMessage_ResumeMode(t *testing.T) {
	name := "Ada"
	msg := buildUserMessage(Input{
		Mode:           ModeResume,
		Profile:        &resume.Profile{Name: &name, FocusTopics: []string{"distributed systems"}},
		Difficulty:     "easy",
		QuestionNumber: 1,
		TotalQuestions: 3,
	}, DefaultConfig())

	if !strings.Contains(msg, "CANDIDATE PROFILE") {
		t.Fatalf("missing profile header:\n%s", msg)
	}
	if !strings.Contains(msg, "distributed systems") {
		t.Fatalf("profile not serialized into prompt:\n%s", msg)
	}
}

func TestBuildUserMessage_WeaknessBlock(t *testing.T) {
	msg := buildUserMessage(Input{
		Mode:           ModeRole,
		Role:           "SRE",
		Difficulty:     "medium",
		WeakTopics:     []string{"Kubernetes", "Networking"},
		QuestionNumber: 4,
		TotalQuestions: 8,
	}, DefaultConfig())

	if !strings.Contains(msg, "WEAKNESS ADAPTATION") {
		t.Fatalf("missing weakness block:\n%s", msg)
	}
	if !strings.Contains(msg, "Kubernetes, Networking") {
		t.Fatalf("weak topics not listed:\n%s", msg)
	}
}

func TestBuildUserMessage_FollowUpBlock(t *testing.T) {
	msg := buildUserMessage(Input{
		Mode:               ModeRole,
		Role:               "Backend Engineer",
		Difficulty:         "medium",
		IsFollowUp:         true,
		ParentQuestionText: "How would you shard a users table?",
		ParentAnswerText:   "I would split by user id.",
		QuestionNumber:     2,
		TotalQuestions:     5,
	}, DefaultConfig())

	if !strings.Contains(msg, "FOLLOW-UP MODE") {
		t.Fatalf("missing follow-up block:\n%s", msg)
	}
	if !strings.Contains(msg, "How would you shard a users table?") {
		t.Fatalf("parent question not included:\n%s", msg)
	}
	if !strings.Contains(msg, "I would split by user id.") {
		t.Fatalf("parent answer not included:\n%s", msg)
	}
}

func TestBuildAskedList_CapsToMostRecent(t *testing.T) {
	asked := []string{"q1", "q2", "q3", "q4"}
	out := buildAskedList(asked, 2)
	if strings.Contains(out, "q1") || strings.Contains(out, "q2") {
		t.Fatalf("expected oldest entries dropped:\n%s", out)
	}
	if !strings.Contains(out, "q3") || !strings.Contains(out, "q4") {
		t.Fatalf("expected newest entries kept:\n%s", out)
	}
}
