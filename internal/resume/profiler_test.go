package resume

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mockmate/mockmate/internal/llm"
)

const sampleResume = `Ada Lovelace
Backend engineer, 6 years. Built a multi-tenant billing platform in Go and Postgres.
Led migration from a monolith to event-driven services on Kafka.`

func TestExtract_ParsesProfile(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"name": "Ada Lovelace",
			"targetRoles": ["Backend Engineer", "Platform Engineer"],
			"skills": {"technical": ["Go", "Postgres"], "tools": ["Kafka"], "soft": ["leadership"]},
			"projects": [{"name": "Billing platform", "techStack": ["Go", "Postgres"], "keyAchievements": ["multi-tenant"]}],
			"focusTopics": ["Postgres partitioning", "Kafka consumer groups"],
			"redFlags": [],
			"experienceLevel": "senior"
		}`),
	})
	p := New(mock, DefaultConfig())

	profile, raw, err := p.Extract(context.Background(), sampleResume)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.Name == nil || *profile.Name != "Ada Lovelace" {
		t.Fatalf("unexpected name %v", profile.Name)
	}
	if profile.ExperienceLevel != "senior" {
		t.Fatalf("unexpected level %q", profile.ExperienceLevel)
	}
	if len(profile.FocusTopics) != 2 {
		t.Fatalf("unexpected focus topics %v", profile.FocusTopics)
	}

	// The raw JSON is what gets persisted; it must round-trip.
	var check Profile
	if err := json.Unmarshal(raw, &check); err != nil {
		t.Fatalf("stored profile is not valid JSON: %v", err)
	}
}

func TestExtract_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider()
	p := New(mock, DefaultConfig())

	if _, _, err := p.Extract(context.Background(), sampleResume); err == nil {
		t.Fatal("expected error from provider")
	}
}

func TestValidate(t *testing.T) {
	if err := Validate("   \n  "); err == nil {
		t.Fatal("expected error for blank resume")
	}
	if err := Validate(sampleResume); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBuildUserMessage_Truncates(t *testing.T) {
	cfg := DefaultConfig()
	long := strings.Repeat("y", cfg.MaxResumeChars+100)
	msg := buildUserMessage(long, cfg)
	if strings.Count(msg, "y") != cfg.MaxResumeChars {
		t.Fatalf("expected resume truncated to %d chars", cfg.MaxResumeChars)
	}
}
