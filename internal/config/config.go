package config

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v4"
)

const envConfigPath = "EIGHTHEALTH_CONFIG"

type ReminderConfig struct {
	Enabled     bool   `yaml:"enabled"`
	NotifyEmail string `yaml:"notify_email"`
	// Resend API key is read from EIGHTHEALTH_RESEND_API_KEY, never from the
	// config file.
	NudgeTime string `yaml:"nudge_time"`
}

type Config struct {
	DBPath     string         `yaml:"db_path"`
	ListenAddr string         `yaml:"listen_addr"`
	LogLevel   string         `yaml:"log_level"`
	LogFormat  string         `yaml:"log_format"`
	Reminder   ReminderConfig `yaml:"reminder"`
}

func defaults() *Config {
	return &Config{
		DBPath:     "eighthealth.db",
		ListenAddr: ":8080",
		LogLevel:   "info",
		LogFormat:  "text",
		Reminder: ReminderConfig{
			Enabled:   false,
			NudgeTime: "20:00",
		},
	}
}

// Load reads the yaml config named by EIGHTHEALTH_CONFIG (default
// "config.yaml"). A missing file yields the defaults; an unreadable or
// malformed file is an error.
func Load() (*Config, error) {
	path := os.Getenv(envConfigPath)
	if path == "" {
		path = "config.yaml"
	}

	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
