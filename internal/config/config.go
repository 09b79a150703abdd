// Package config loads the static bot configuration: lesson catalog, module
// test banks, FAQ entries, admin allowlist and asset shortcuts. Loaded once
// at startup and treated as immutable afterwards.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Lesson describes one lesson module: a display name, the folder holding its
// study assets, and the question bank file for its module test.
type Lesson struct {
	Name     string `yaml:"name"`
	Dir      string `yaml:"dir"`
	TestFile string `yaml:"test_file"`
}

// FAQEntry is a canned question/answer pair served from the FAQ menu.
type FAQEntry struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// Config is the full static configuration.
type Config struct {
	// Token is the Telegram bot token. Never read from the YAML file;
	// injected from the environment.
	Token string `yaml:"-"`

	// StorePath overrides the user-store file location when set.
	StorePath string `yaml:"store_path"`

	// Lessons is the ordered lesson catalog. Order defines unlock order:
	// lesson i is available once the user's lesson level reaches i.
	Lessons []Lesson `yaml:"lessons"`

	// AdminIDs is the static allowlist of admin user ids.
	AdminIDs []string `yaml:"admin_ids"`

	// FAQ entries shown in the questions menu.
	FAQ []FAQEntry `yaml:"faq"`

	// SchedulePhoto and HomeworkFile are optional static assets served by
	// the corresponding menu shortcuts.
	SchedulePhoto string `yaml:"schedule_photo"`
	HomeworkFile  string `yaml:"homework_file"`
}

// DefaultConfig returns a minimal working configuration.
func DefaultConfig() Config {
	return Config{
		FAQ: []FAQEntry{
			{Question: "Сколько будет 2+2?", Answer: "4, учи математику"},
			{Question: "Адрес школы", Answer: "12, 5th Avenue"},
		},
	}
}

// Load reads the YAML file at path on top of defaults and applies
// environment overrides.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyEnv()
	return cfg, nil
}

// FromEnv builds a configuration without a YAML file (defaults + env only).
func FromEnv() Config {
	cfg := DefaultConfig()
	cfg.applyEnv()
	return cfg
}

func (c *Config) applyEnv() {
	if t := os.Getenv("TUTORBOT_TOKEN"); t != "" {
		c.Token = t
	} else if t := os.Getenv("TELEGRAM_BOT_TOKEN"); t != "" {
		c.Token = t
	}
	if p := os.Getenv("TUTORBOT_DATA"); p != "" {
		c.StorePath = p
	}
}

// Validate checks the configuration is usable for running the bot.
func (c Config) Validate() error {
	if c.Token == "" {
		return fmt.Errorf("bot token is required (set TUTORBOT_TOKEN or TELEGRAM_BOT_TOKEN)")
	}
	for i, l := range c.Lessons {
		if l.Name == "" {
			return fmt.Errorf("lesson %d: name is required", i+1)
		}
		if l.Dir == "" {
			return fmt.Errorf("lesson %q: dir is required", l.Name)
		}
	}
	return nil
}

// IsAdmin reports whether userID is on the admin allowlist.
func (c Config) IsAdmin(userID string) bool {
	for _, id := range c.AdminIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// DefaultConfigPath resolves the config file path in priority order:
// 1. TUTORBOT_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/tutorbot/config.yaml
// 3. ~/.config/tutorbot/config.yaml
func DefaultConfigPath() (string, error) {
	if p := os.Getenv("TUTORBOT_CONFIG"); p != "" {
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

	return filepath.Join(configHome, "tutorbot", "config.yaml"), nil
}
