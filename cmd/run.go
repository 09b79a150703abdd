package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/abhisek/tutorbot/internal/app"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the bot",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBot(cmd)
	},
}

// runBot loads configuration and runs the dispatch loop until SIGINT or
// SIGTERM.
func runBot(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	storePath, err := resolveStorePath(cmd, cfg)
	if err != nil {
		return err
	}
	cfg.StorePath = storePath

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return app.Run(ctx, app.Options{Config: cfg})
}
