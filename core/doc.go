// Package core contains the business logic for localizing framer-hosted
// assets. It is designed to be framework-agnostic and can be used
// independently of any CLI or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Contains pure domain models (LocalAsset, ManifestEntry, run results)
// - assets: URL extraction patterns and deterministic local filename derivation
// - download: The scoped download-to-file primitive shared by both tools
// - localize: Document discovery, rewrite orchestration, and write-back
// - fetch: Fixed-asset manifest loading and unconditional refresh
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "framelocal/core/download"
//	    "framelocal/core/interfaces"
//	    "framelocal/core/localize"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create services
//	downloader := download.NewService(deps)
//	localizer := localize.NewService(deps, downloader)
//
//	// Rewrite documents under a site root
//	summary, err := localizer.Run(ctx, "./site", localize.Options{
//	    Recursive: true,
//	})
//
package core
