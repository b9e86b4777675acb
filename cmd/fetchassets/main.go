// ABOUTME: Main entry point for the fixed-asset fetcher CLI
// ABOUTME: Re-downloads every manifest entry unconditionally, overwriting local copies

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"framelocal/core/download"
	"framelocal/core/fetch"
	"framelocal/core/interfaces"
	stdhttp "framelocal/infrastructure/http/standard"
	logrusLogger "framelocal/infrastructure/logger/logrus"
	"framelocal/pkg/config"
)

var rootCmd = &cobra.Command{
	Use:   "fetchassets",
	Short: "Refresh the fixed list of mirrored framer assets",
	Long: `fetchassets downloads every entry of the asset manifest and overwrites
the local copy, keeping mirrored runtime scripts current.

The manifest is resolved from FETCH_MANIFEST, a fetch-assets.yaml under the
working root, or the built-in default list, in that order.`,
	RunE: runFetch,
}

func runFetch(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	root := cfg.Localize.Root

	entries, err := fetch.ResolveManifest(root, cfg.Fetch.Manifest)
	if err != nil {
		return fmt.Errorf("failed to load manifest: %w", err)
	}

	// Create logger
	logger := logrusLogger.NewLogrusLogger(cfg.Logging)
	logger.Info("starting asset fetch", map[string]interface{}{
		"root":    root,
		"entries": len(entries),
	})

	// Create HTTP client
	httpClient := stdhttp.NewStandardHTTPClient(
		time.Duration(cfg.HTTP.Timeout)*time.Second,
		cfg.HTTP.UserAgent,
		cfg.HTTP.RequestsPerSecond,
	)

	// Create dependencies container
	deps := interfaces.Dependencies{
		HTTPClient: httpClient,
		Logger:     logger,
	}

	downloader := download.NewService(deps)
	svc := fetch.NewService(deps, downloader)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Per-entry failures are logged by the service; only directory
	// establishment aborts the run.
	_, err = svc.Run(ctx, root, entries)
	if err != nil {
		return fmt.Errorf("asset fetch failed: %w", err)
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
