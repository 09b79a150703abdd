// Package app wires the bot's collaborators together and runs the event
// dispatch loop.
package app

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/abhisek/tutorbot/internal/bot"
	"github.com/abhisek/tutorbot/internal/config"
	"github.com/abhisek/tutorbot/internal/llm"
	"github.com/abhisek/tutorbot/internal/mathgen"
	"github.com/abhisek/tutorbot/internal/session"
	"github.com/abhisek/tutorbot/internal/store"
)

// Options carries the pieces Run needs. Delivery and Provider may be
// pre-built (tests, probes); left nil they are constructed from Config.
type Options struct {
	Config   config.Config
	Delivery bot.Delivery
	Provider llm.Provider
}

// Run builds the controller and processes inbound events until ctx is
// cancelled. Dispatch is strictly sequential: one event is handled to
// completion before the next is read, so per-user state and the user
// store never see interleaved updates.
func Run(ctx context.Context, opts Options) error {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration: %w", err)
	}

	delivery := opts.Delivery
	if delivery == nil {
		var err error
		delivery, err = bot.NewTelegram(cfg.Token)
		if err != nil {
			return fmt.Errorf("telegram transport: %w", err)
		}
	}

	provider := opts.Provider
	if provider == nil {
		var err error
		provider, err = llm.NewProvider(ctx, llm.DiscoverConfig())
		if err != nil {
			return fmt.Errorf("llm provider: %w", err)
		}
	}

	storePath := cfg.StorePath
	if storePath == "" {
		var err error
		storePath, err = store.DefaultStorePath()
		if err != nil {
			return fmt.Errorf("resolve store path: %w", err)
		}
	}
	users, err := store.Open(storePath)
	if err != nil {
		return fmt.Errorf("open user store: %w", err)
	}
	log.Printf("app: user store at %s", storePath)

	controller := bot.NewController(cfg, delivery, provider,
		users, session.NewRegistry(), mathgen.New(nil))

	log.Printf("app: dispatch loop started")
	for ev := range delivery.Events(ctx) {
		controller.Handle(ctx, ev)
	}

	if err := ctx.Err(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Printf("app: dispatch loop stopped")
	return nil
}
