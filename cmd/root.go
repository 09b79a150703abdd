package cmd

import (
	"fmt"

	"github.com/abhisek/tutorbot/internal/config"
	"github.com/abhisek/tutorbot/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tutorbot",
	Short: "Conversational tutoring bot",
	Long: "Tutorbot — a Telegram tutoring bot that serves lesson material, " +
		"generates topic tests with an LLM, runs a math game and tracks progress.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBot(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides TUTORBOT_CONFIG env var)")
	rootCmd.PersistentFlags().String("data", "", "Path to user store file (overrides TUTORBOT_DATA env var)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(usersCmd)
	rootCmd.AddCommand(llmCmd)
}

// loadConfig reads the static configuration using --config (highest
// priority), then TUTORBOT_CONFIG, then the default XDG path. A missing
// default file falls back to env-only configuration.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	explicit := path != ""
	if !explicit {
		var err error
		path, err = config.DefaultConfigPath()
		if err != nil {
			return config.Config{}, err
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		if explicit {
			return config.Config{}, err
		}
		cfg = config.FromEnv()
	}

	if p, _ := cmd.Flags().GetString("data"); p != "" {
		cfg.StorePath = p
	}
	return cfg, nil
}

// resolveStorePath returns the user store path using --data (highest
// priority), then config/env, then the default XDG path.
func resolveStorePath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("data"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.StorePath != "" {
		return cfg.StorePath, store.EnsureDir(cfg.StorePath)
	}
	p, err := store.DefaultStorePath()
	if err != nil {
		return "", fmt.Errorf("resolve store path: %w", err)
	}
	return p, nil
}
