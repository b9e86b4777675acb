// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache backed by go-cache
// - http/standard: Standard library HTTP client, one attempt per request
// - logger/logrus: Logrus-backed structured logger with optional file rotation
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include both unit and integration tests
//
// # Cache
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache()
//	err := cache.Set(ctx, "key", []byte("value"), 1*time.Hour)
//	value, err := cache.Get(ctx, "key")
//
// # HTTP Client
//
// The HTTP client performs exactly one attempt per request; failed downloads
// are reported to the caller rather than retried. An optional rate limit
// paces outbound requests:
//
//	client := standard.NewStandardHTTPClient(30*time.Second, "", 2)
//	resp, err := client.Get(ctx, "https://framerusercontent.com/images/pic.png")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := logrus.NewLogrusLogger(cfg.Logging)
//	logger.Info("downloaded", map[string]interface{}{
//	    "url":  url,
//	    "dest": dest,
//	})
//
package infrastructure
