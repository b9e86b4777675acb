// ABOUTME: Download service implements the scoped download-to-file primitive
// ABOUTME: One GET per call, body written to a temp file then renamed into place

package download

import (
	"context"
	"errors"
	"io"
	"os"

	coreErrors "framelocal/core/errors"
	"framelocal/core/interfaces"
)

// Service performs single-attempt downloads to destination paths. It is
// shared by the localizer (skip-if-present) and the fixed asset fetcher
// (always refresh).
type Service struct {
	deps interfaces.Dependencies
}

// NewService creates a new download service instance
func NewService(deps interfaces.Dependencies) *Service {
	return &Service{
		deps: deps,
	}
}

// Download fetches url into dest unless dest already exists. An existing
// file is never overwritten, even if the remote content has since changed.
func (s *Service) Download(ctx context.Context, url string, dest string) (interfaces.DownloadOutcome, error) {
	if _, err := os.Stat(dest); err == nil {
		return interfaces.OutcomeAlreadyPresent, nil
	}

	if err := s.fetch(ctx, url, dest); err != nil {
		return "", err
	}

	return interfaces.OutcomeDownloaded, nil
}

// Refresh fetches url into dest unconditionally, replacing any existing file.
func (s *Service) Refresh(ctx context.Context, url string, dest string) error {
	return s.fetch(ctx, url, dest)
}

// fetch performs the single GET and persists the body. The body lands in a
// temp file that is renamed into place, so dest does not exist until the
// write completed.
func (s *Service) fetch(ctx context.Context, url string, dest string) error {
	if url == "" {
		return errors.New("download URL cannot be empty")
	}

	if s.deps.HTTPClient == nil {
		return errors.New("HTTP client not configured")
	}

	resp, err := s.deps.HTTPClient.Get(ctx, url)
	if err != nil {
		return &coreErrors.DownloadError{URL: url, Dest: dest, Err: err}
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return &coreErrors.DownloadError{URL: url, Dest: dest, StatusCode: resp.StatusCode()}
	}

	tmpPath := dest + ".tmp"
	tmpFile, err := os.Create(tmpPath)
	if err != nil {
		return &coreErrors.DownloadError{URL: url, Dest: dest, Err: err}
	}
	defer os.Remove(tmpPath)
	defer tmpFile.Close()

	if _, err := io.Copy(tmpFile, resp.Body()); err != nil {
		return &coreErrors.DownloadError{URL: url, Dest: dest, Err: err}
	}

	if err := tmpFile.Close(); err != nil {
		return &coreErrors.DownloadError{URL: url, Dest: dest, Err: err}
	}

	if err := os.Rename(tmpPath, dest); err != nil {
		return &coreErrors.DownloadError{URL: url, Dest: dest, Err: err}
	}

	return nil
}
