package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileIsZeroConfig(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DB.Path != "" || cfg.LLM.Provider != "" {
		t.Fatalf("expected zero config, got %+v", cfg)
	}
}

func TestLoad_ParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `db:
  path: /tmp/interviews.db
llm:
  provider: anthropic
  model: claude-sonnet-4-5
interview:
  default_difficulty: hard
  default_questions: 8
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DB.Path != "/tmp/interviews.db" {
		t.Fatalf("unexpected db path %q", cfg.DB.Path)
	}
	if cfg.LLM.Provider != "anthropic" {
		t.Fatalf("unexpected provider %q", cfg.LLM.Provider)
	}
	if cfg.Interview.DefaultQuestions != 8 {
		t.Fatalf("unexpected default questions %d", cfg.Interview.DefaultQuestions)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(":\n  - not yaml {"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestApply_EnvWinsOverFile(t *testing.T) {
	t.Setenv("MOCKMATE_DB", "/from/env.db")
	t.Setenv("MOCKMATE_LLM_PROVIDER", "")
	t.Setenv("MOCKMATE_OPENAI_MODEL", "")
	os.Unsetenv("MOCKMATE_LLM_PROVIDER")
	os.Unsetenv("MOCKMATE_OPENAI_MODEL")

	var cfg Config
	cfg.DB.Path = "/from/file.db"
	cfg.LLM.Provider = "openai"
	cfg.LLM.Model = "gpt-5"
	cfg.Apply()

	if got := os.Getenv("MOCKMATE_DB"); got != "/from/env.db" {
		t.Fatalf("env var overwritten: %q", got)
	}
	if got := os.Getenv("MOCKMATE_LLM_PROVIDER"); got != "openai" {
		t.Fatalf("file provider not applied: %q", got)
	}
	if got := os.Getenv("MOCKMATE_OPENAI_MODEL"); got != "gpt-5" {
		t.Fatalf("model not routed to provider env: %q", got)
	}
}
