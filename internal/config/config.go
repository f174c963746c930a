package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the optional on-disk configuration. Environment variables
// always win over file values; the file just sets defaults for people
// who dislike exporting variables.
type Config struct {
	DB struct {
		Path string `yaml:"path"`
	} `yaml:"db"`
	LLM struct {
		Provider string `yaml:"provider"`
		Model    string `yaml:"model"`
	} `yaml:"llm"`
	Interview struct {
		DefaultDifficulty string `yaml:"default_difficulty"`
		DefaultQuestions  int    `yaml:"default_questions"`
	} `yaml:"interview"`
}

// Load reads YAML config from path. A missing file is not an error;
// the zero Config is returned.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// DefaultPath resolves the config file location:
// 1. MOCKMATE_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/mockmate/config.yaml
// 3. ~/.config/mockmate/config.yaml
func DefaultPath() (string, error) {
	if p := os.Getenv("MOCKMATE_CONFIG"); p != "" {
		return p, nil
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "mockmate", "config.yaml"), nil
}

// Apply exports file values as environment variables unless already
// set, so the rest of the program reads one source of truth.
func (c Config) Apply() {
	setIfEmpty("MOCKMATE_DB", c.DB.Path)
	setIfEmpty("MOCKMATE_LLM_PROVIDER", c.LLM.Provider)

	provider := os.Getenv("MOCKMATE_LLM_PROVIDER")
	switch provider {
	case "anthropic":
		setIfEmpty("MOCKMATE_ANTHROPIC_MODEL", c.LLM.Model)
	case "openai":
		setIfEmpty("MOCKMATE_OPENAI_MODEL", c.LLM.Model)
	case "gemini":
		setIfEmpty("MOCKMATE_GEMINI_MODEL", c.LLM.Model)
	case "openrouter":
		setIfEmpty("MOCKMATE_OPENROUTER_MODEL", c.LLM.Model)
	}
}

func setIfEmpty(key, value string) {
	if value != "" && os.Getenv(key) == "" {
		os.Setenv(key, value)
	}
}
