// ABOUTME: Mock implementations for testing the fetch service
// ABOUTME: Provides configurable downloader and logger mocks

package fetch

import (
	"context"

	"framelocal/core/interfaces"
)

type mockDownloader struct {
	downloadFunc func(ctx context.Context, url string, dest string) (interfaces.DownloadOutcome, error)
	refreshFunc  func(ctx context.Context, url string, dest string) error
}

func (m *mockDownloader) Download(ctx context.Context, url string, dest string) (interfaces.DownloadOutcome, error) {
	if m.downloadFunc != nil {
		return m.downloadFunc(ctx, url, dest)
	}
	return interfaces.OutcomeDownloaded, nil
}

func (m *mockDownloader) Refresh(ctx context.Context, url string, dest string) error {
	if m.refreshFunc != nil {
		return m.refreshFunc(ctx, url, dest)
	}
	return nil
}

type mockLogger struct {
	infoFunc  func(msg string, fields map[string]interface{})
	errorFunc func(msg string, fields map[string]interface{})
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Info(msg string, fields map[string]interface{}) {
	if m.infoFunc != nil {
		m.infoFunc(msg, fields)
	}
}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Error(msg string, fields map[string]interface{}) {
	if m.errorFunc != nil {
		m.errorFunc(msg, fields)
	}
}
