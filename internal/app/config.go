package app

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Model shown in the status line until the session reports one.
	Model string `yaml:"model"`
	// ReasoningEffort qualifies the model label ("high" and "low" render,
	// anything else is omitted).
	ReasoningEffort string `yaml:"reasoning_effort"`
	// ContextWindow is the fallback window size (tokens) used when a usage
	// report does not carry a model-reported one. Zero means unknown.
	ContextWindow uint64 `yaml:"context_window"`
	// Devspace overrides the STATUSKIT_DEVSPACE environment probe.
	Devspace string `yaml:"devspace"`
	// ProbeIntervalSeconds is how often git and environment probes rerun.
	ProbeIntervalSeconds int `yaml:"probe_interval_seconds"`
	// ShowHostname toggles the hostname tag.
	ShowHostname bool `yaml:"show_hostname"`
}

func DefaultConfig() Config {
	return Config{
		ProbeIntervalSeconds: 5,
		ShowHostname:         true,
	}
}

func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.ProbeIntervalSeconds <= 0 {
		cfg.ProbeIntervalSeconds = 5
	}
	if cfg.ProbeIntervalSeconds > 300 {
		cfg.ProbeIntervalSeconds = 300
	}
	return cfg, nil
}

func SaveConfig(cfg Config, path string) error {
	if path == "" {
		return errors.New("no path provided for config")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func DefaultConfigPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "statuskit", "config.yml")
}
