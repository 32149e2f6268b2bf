package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "moderation.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoadModerationConfig(t *testing.T) {
	path := writeConfig(t, `
ban_words:
  - "palavrão"
  - "idiota"
fail_open: true
moderate_output: true
`)
	t.Setenv("MODERATION_CONFIG_PATH", path)

	cfg, err := LoadModerationConfig()
	if err != nil {
		t.Fatalf("LoadModerationConfig returned error: %v", err)
	}

	if len(cfg.BanWords) != 2 || cfg.BanWords[0] != "palavrão" {
		t.Errorf("Unexpected ban words %v", cfg.BanWords)
	}
	if !cfg.FailOpen {
		t.Error("Expected fail_open true")
	}
	if !cfg.ModerateOutput {
		t.Error("Expected moderate_output true")
	}
}

func TestLoadModerationConfig_Defaults(t *testing.T) {
	path := writeConfig(t, `ban_words: []`)
	t.Setenv("MODERATION_CONFIG_PATH", path)

	cfg, err := LoadModerationConfig()
	if err != nil {
		t.Fatalf("LoadModerationConfig returned error: %v", err)
	}

	// Omitted flags default to the safe side.
	if cfg.FailOpen {
		t.Error("Expected fail_open to default to false")
	}
	if cfg.ModerateOutput {
		t.Error("Expected moderate_output to default to false")
	}
}

func TestLoadModerationConfig_MissingFile(t *testing.T) {
	t.Setenv("MODERATION_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))

	if _, err := LoadModerationConfig(); err == nil {
		t.Fatal("Expected error for a missing config file")
	}
}

func TestLoadModerationConfig_MalformedFile(t *testing.T) {
	path := writeConfig(t, "ban_words: [unclosed")
	t.Setenv("MODERATION_CONFIG_PATH", path)

	if _, err := LoadModerationConfig(); err == nil {
		t.Fatal("Expected error for a malformed config file")
	}
}
