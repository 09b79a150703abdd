package cmd

import (
	"fmt"

	"github.com/abhisek/tutorbot/internal/llm"
	"github.com/spf13/cobra"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Probe the configured LLM provider",
}

var llmCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Send a one-line prompt and print the reply",
	RunE: func(cmd *cobra.Command, args []string) error {
		prompt, _ := cmd.Flags().GetString("prompt")

		cfg := llm.DiscoverConfig()
		if err := cfg.Validate(); err != nil {
			return err
		}

		provider, err := llm.NewProvider(cmd.Context(), cfg)
		if err != nil {
			return fmt.Errorf("build provider: %w", err)
		}

		ctx := llm.WithPurpose(cmd.Context(), "cli-check")
		resp, err := provider.Complete(ctx, llm.Request{
			Prompt:    prompt,
			MaxTokens: 256,
		})
		if err != nil {
			return fmt.Errorf("completion: %w", err)
		}

		fmt.Printf("model: %s\ntokens: %d in / %d out\n\n%s\n",
			resp.Model, resp.Usage.InputTokens, resp.Usage.OutputTokens, resp.Text)
		return nil
	},
}

func init() {
	llmCheckCmd.Flags().String("prompt", "Ответь одним словом: сколько будет 2+2?", "Prompt to send")
	llmCmd.AddCommand(llmCheckCmd)
}
