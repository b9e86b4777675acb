// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for services used throughout the application

package interfaces

import (
	"context"
)

// DownloadOutcome describes how a Download call resolved without error.
type DownloadOutcome string

const (
	// OutcomeDownloaded means the body was fetched and written to the destination
	OutcomeDownloaded DownloadOutcome = "downloaded"

	// OutcomeAlreadyPresent means the destination file already existed and was kept
	OutcomeAlreadyPresent DownloadOutcome = "already-present"
)

// Downloader is the scoped download-to-file primitive shared by the
// localizer and the fixed asset fetcher: a single GET per call, body
// persisted to a destination path, no retry.
type Downloader interface {
	// Download fetches url into dest unless dest already exists.
	// Existing destinations are never overwritten.
	Download(ctx context.Context, url string, dest string) (DownloadOutcome, error)

	// Refresh fetches url into dest unconditionally, replacing any existing file.
	Refresh(ctx context.Context, url string, dest string) error
}
