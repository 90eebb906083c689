package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tinkerlab/tinkeralpha/internal/app"
	"github.com/tinkerlab/tinkeralpha/internal/auth"
	"github.com/tinkerlab/tinkeralpha/internal/llm"
	"github.com/tinkerlab/tinkeralpha/internal/mascot"
	"github.com/tinkerlab/tinkeralpha/internal/selfupdate"
	"github.com/tinkerlab/tinkeralpha/internal/stars"
	"github.com/tinkerlab/tinkeralpha/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
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

	eventRepo := st.EventRepo()
	session, err := auth.Load(ctx, st.ProfileRepo(), eventRepo)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}

	opts := app.Options{
		Session:     session,
		StarService: stars.NewService(eventRepo),
		EventRepo:   eventRepo,
		SnapRepo:    st.SnapshotRepo(),
	}

	// Sparky works offline; the LLM provider is optional.
	provider, err := providerFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Sparky will use built-in hints.")
	}
	opts.Guide = mascot.NewService(provider, mascot.DefaultConfig())

	opts.LatestVersion = checkLatestVersion(ctx)

	return app.Run(opts)
}

// providerFromEnv builds an LLM provider from TINKER_* configuration,
// falling back to probing standard API key env vars. Returns (nil, err)
// when no provider is configured.
func providerFromEnv(ctx context.Context, eventRepo store.EventRepo) (llm.Provider, error) {
	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return llm.NewProvider(ctx, cfg, eventRepo)
}

// checkLatestVersion asks GitHub for a newer release. Best effort; the
// portal starts regardless.
func checkLatestVersion(ctx context.Context) string {
	if version == "(devel)" {
		return ""
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	checker := selfupdate.NewChecker(selfupdate.WithTimeout(3 * time.Second))
	result, err := checker.Check(ctx, &selfupdate.CheckInput{Version: version})
	if err != nil || !result.UpdateAvailable {
		return ""
	}
	return result.LatestVersion
}
