// ABOUTME: Main entry point for the HTML localizer CLI
// ABOUTME: Wires configuration, logging, cache, and HTTP into a localize run

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
	"framelocal/core/interfaces"
	"framelocal/core/localize"
	"framelocal/infrastructure/cache/memory"
	stdhttp "framelocal/infrastructure/http/standard"
	logrusLogger "framelocal/infrastructure/logger/logrus"
	"framelocal/pkg/config"
	"framelocal/pkg/featureflags"
)

var (
	flagRoot       string
	flagDryRun     bool
	flagRecursive  bool
	flagIncludeCSS bool
	flagNoDownload bool
	flagKeepEvents bool
)

var rootCmd = &cobra.Command{
	Use:   "localize",
	Short: "Rewrite framerusercontent.com references to local assets",
	Long: `localize scans HTML documents for framerusercontent.com image and
module URLs, downloads each distinct asset once into assets/, and rewrites
the documents to reference the local copies.

Documents are discovered by extension under the working root. Rewritten
documents no longer match the extraction pattern, so repeated runs are safe.`,
	RunE: runLocalize,
}

func init() {
	rootCmd.Flags().StringVar(&flagRoot, "root", "", "Directory to scan (default: LOCALIZE_ROOT or current directory)")
	rootCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Preview actions; don't write or download files")
	rootCmd.Flags().BoolVar(&flagRecursive, "recursive", false, "Process files in subfolders too")
	rootCmd.Flags().BoolVar(&flagIncludeCSS, "include-css", false, "Also scan .css files for framerusercontent.com URLs")
	rootCmd.Flags().BoolVar(&flagNoDownload, "no-download", false, "Don't download; only rewrite if local files already exist")
	rootCmd.Flags().BoolVar(&flagKeepEvents, "keep-cdn-events", false, "Keep events.framer.com script on CDN")
}

func runLocalize(cmd *cobra.Command, args []string) error {
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
	if flagRoot != "" {
		root = flagRoot
	}

	// Create logger
	logger := logrusLogger.NewLogrusLogger(cfg.Logging)
	logger.Info("starting localize run", map[string]interface{}{
		"root":      root,
		"dry_run":   flagDryRun,
		"recursive": flagRecursive,
	})

	// Create HTTP client
	httpClient := stdhttp.NewStandardHTTPClient(
		time.Duration(cfg.HTTP.Timeout)*time.Second,
		cfg.HTTP.UserAgent,
		cfg.HTTP.RequestsPerSecond,
	)

	// Create dependencies container
	deps := interfaces.Dependencies{
		Cache:      memory.NewMemoryCache(),
		HTTPClient: httpClient,
		Logger:     logger,
	}

	downloader := download.NewService(deps)
	svc := localize.NewService(deps, downloader)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Feature flags come from FEATURE_* environment variables
	ctx = featureflags.WithManager(ctx, featureflags.NewEnvManager(""))

	_, err = svc.Run(ctx, root, localize.Options{
		DryRun:        flagDryRun,
		Recursive:     flagRecursive,
		IncludeCSS:    flagIncludeCSS,
		NoDownload:    flagNoDownload,
		KeepCDNEvents: flagKeepEvents,
	})
	if err != nil {
		return fmt.Errorf("localize run failed: %w", err)
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
