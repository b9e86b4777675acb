package localize

import (
	"context"
	"errors"
	"time"

	"framelocal/core/interfaces"
)

// mockDownloader is a mock implementation of the Downloader interface
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

// mockCache is a map-backed mock implementation of the Cache interface
type mockCache struct {
	store map[string][]byte
}

func newMockCache() *mockCache {
	return &mockCache{store: make(map[string][]byte)}
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if v, ok := m.store[key]; ok {
		return v, nil
	}
	return nil, errors.New("cache miss")
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.store[key] = value
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	delete(m.store, key)
	return nil
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct {
	debugFunc func(msg string, fields map[string]interface{})
	infoFunc  func(msg string, fields map[string]interface{})
	warnFunc  func(msg string, fields map[string]interface{})
	errorFunc func(msg string, fields map[string]interface{})
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {
	if m.debugFunc != nil {
		m.debugFunc(msg, fields)
	}
}

func (m *mockLogger) Info(msg string, fields map[string]interface{}) {
	if m.infoFunc != nil {
		m.infoFunc(msg, fields)
	}
}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	if m.warnFunc != nil {
		m.warnFunc(msg, fields)
	}
}

func (m *mockLogger) Error(msg string, fields map[string]interface{}) {
	if m.errorFunc != nil {
		m.errorFunc(msg, fields)
	}
}
