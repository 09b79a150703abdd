package cmd

import (
	"fmt"

	"github.com/abhisek/tutorbot/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all user profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return fmt.Errorf("refusing to wipe the user store without --yes")
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		path, err := resolveStorePath(cmd, cfg)
		if err != nil {
			return err
		}

		s, err := store.Open(path)
		if err != nil {
			return fmt.Errorf("open user store: %w", err)
		}
		if err := s.Reset(); err != nil {
			return fmt.Errorf("reset user store: %w", err)
		}

		fmt.Println("User store cleared:", path)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm the irreversible wipe")
}
