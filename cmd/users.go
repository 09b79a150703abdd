package cmd

import (
	"fmt"
	"sort"

	"github.com/abhisek/tutorbot/internal/store"
	"github.com/spf13/cobra"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List stored user profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
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
		users, err := s.Load()
		if err != nil {
			return fmt.Errorf("load user store: %w", err)
		}

		if len(users) == 0 {
			fmt.Println("No users registered.")
			return nil
		}

		ids := make([]string, 0, len(users))
		for id := range users {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		fmt.Printf("%-15s %-16s %-8s %-10s %s\n", "ID", "PHONE", "LESSON", "MATH", "TOPICS")
		for _, id := range ids {
			p := users[id]
			fmt.Printf("%-15s %-16s %-8d %d (%d/%d)    %d\n",
				id, p.Phone, p.LessonLevel, p.MathLevel, p.MathScore,
				store.MathLevelUpAt, len(p.LearningHistory))
		}
		return nil
	},
}
