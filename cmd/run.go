package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/app"
	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/coach"
	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/curriculum"
	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/llm"
	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/quiz"
	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/store"
)

// runApp opens the store, restores the learner's roadmap position, and
// launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	topics, err := curriculum.Load()
	if err != nil {
		return fmt.Errorf("load curriculum: %w", err)
	}

	engine, err := quiz.New(topics)
	if err != nil {
		return fmt.Errorf("build engine: %w", err)
	}

	snapRepo := st.SnapshotRepo()
	snap, err := snapRepo.Latest(ctx)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}
	if snap != nil {
		if err := engine.Restore(snap.Data); err != nil {
			// A snapshot from an older curriculum layout may not fit;
			// start fresh rather than refuse to launch.
			fmt.Fprintln(os.Stderr, "Saved progress could not be restored:", err)
		}
	}

	eventRepo := st.EventRepo()
	opts := app.Options{
		Engine:    engine,
		Topics:    topics,
		EventRepo: eventRepo,
		SnapRepo:  snapRepo,
	}

	provider, err := newProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Coach provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Missed questions will show only the built-in explanations.")
	} else {
		opts.CoachSvc = coach.NewService(provider, coach.DefaultConfig())
	}

	return app.Run(opts)
}

// newProviderFromEnv builds an LLM provider from STUDYCOACH_* variables,
// falling back to probing the standard API key variables.
func newProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (llm.Provider, error) {
	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return nil, errors.New("no API key found (set STUDYCOACH_LLM_PROVIDER or a provider API key)")
		}
		cfg = discovered
	}
	return llm.NewProvider(ctx, cfg, eventRepo)
}
