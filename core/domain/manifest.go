// ABOUTME: Manifest entry describes one fixed (URL, destination) pair for the fetcher
// ABOUTME: Provides validation so bad manifest rows are rejected before any network work

package domain

import (
	"errors"
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

// ManifestEntry is one row of the fixed asset manifest: a source URL and the
// destination path, relative to the site root, where its body is written.
type ManifestEntry struct {
	// URL is the absolute source URL to fetch
	URL string `yaml:"url"`

	// Dest is the destination path relative to the site root, forward slashes
	Dest string `yaml:"dest"`
}

// Validate checks that the entry can be acted on safely
func (e *ManifestEntry) Validate() error {
	if e.URL == "" {
		return errors.New("manifest entry url cannot be empty")
	}

	parsed, err := url.Parse(e.URL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return errors.New("manifest entry url must be an absolute URL")
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return errors.New("manifest entry url must use http or https")
	}

	if e.Dest == "" {
		return errors.New("manifest entry dest cannot be empty")
	}

	if path.IsAbs(e.Dest) || filepath.IsAbs(filepath.FromSlash(e.Dest)) {
		return errors.New("manifest entry dest must be relative to the root")
	}

	clean := path.Clean(e.Dest)
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return errors.New("manifest entry dest cannot escape the root")
	}

	return nil
}

// DiskPath returns the destination's filesystem path under root.
func (e *ManifestEntry) DiskPath(root string) string {
	return filepath.Join(root, filepath.FromSlash(e.Dest))
}
