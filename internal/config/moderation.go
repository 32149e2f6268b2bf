package config

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// ModerationConfig is the deployer-editable moderation policy.
type ModerationConfig struct {
	// BanWords are blocked by the static validator before any oracle call.
	BanWords []string `yaml:"ban_words"`
	// FailOpen allows content through when the moderation oracle errors.
	// Default is fail closed: an oracle error aborts the request.
	FailOpen bool `yaml:"fail_open"`
	// ModerateOutput runs the gate on generated answers too.
	ModerateOutput bool `yaml:"moderate_output"`
}

func LoadModerationConfig() (*ModerationConfig, error) {
	path := os.Getenv("MODERATION_CONFIG_PATH")
	if path == "" {
		path = "configs/moderation.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read moderation config %s: %w", path, err)
	}

	var cfg ModerationConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse moderation config %s: %w", path, err)
	}

	return &cfg, nil
}
