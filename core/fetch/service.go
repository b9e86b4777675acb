// ABOUTME: Fetch service re-downloads a fixed list of assets on every run
// ABOUTME: Unlike the localizer it always overwrites, keeping mirrored scripts current

package fetch

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"framelocal/core/domain"
	coreErrors "framelocal/core/errors"
	"framelocal/core/interfaces"
)

// Service refreshes the fixed assets named by a manifest.
type Service struct {
	deps       interfaces.Dependencies
	downloader interfaces.Downloader
}

// NewService creates a new fetch service with the given dependencies.
func NewService(deps interfaces.Dependencies, downloader interfaces.Downloader) *Service {
	return &Service{
		deps:       deps,
		downloader: downloader,
	}
}

// Run refreshes every manifest entry in order, overwriting whatever is on
// disk. A failed entry is logged and the batch continues; only a failure to
// establish a destination directory aborts the run.
func (s *Service) Run(ctx context.Context, root string, entries []domain.ManifestEntry) (*domain.FetchSummary, error) {
	if s.downloader == nil {
		return nil, errors.New("downloader not configured")
	}

	summary := &domain.FetchSummary{}

	for i := range entries {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		entry := &entries[i]
		dest := entry.DiskPath(root)

		if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			return summary, coreErrors.WrapError(err, "could not create asset directory")
		}

		s.logInfo("refreshing asset", map[string]interface{}{
			"url":  entry.URL,
			"dest": entry.Dest,
		})

		if err := s.downloader.Refresh(ctx, entry.URL, dest); err != nil {
			summary.Failed++
			s.logError("refresh failed", map[string]interface{}{
				"url":   entry.URL,
				"dest":  entry.Dest,
				"error": err.Error(),
			})
			continue
		}

		summary.Refreshed++
	}

	s.logInfo("fetch complete", map[string]interface{}{
		"assets":   summary.Refreshed,
		"failures": summary.Failed,
	})

	return summary, nil
}

func (s *Service) logInfo(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Info(msg, fields)
	}
}

func (s *Service) logError(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Error(msg, fields)
	}
}
