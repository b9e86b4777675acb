// ABOUTME: Manifest loading resolves the ordered list of fixed assets to fetch
// ABOUTME: Sources are an explicit path, a file under the root, or the embedded default

package fetch

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"framelocal/core/domain"
	coreErrors "framelocal/core/errors"
)

// DefaultManifestName is the manifest filename looked up under the working
// root when no explicit path is configured.
const DefaultManifestName = "fetch-assets.yaml"

//go:embed manifest.yaml
var defaultManifest []byte

// LoadManifest reads and validates an ordered manifest from the given path.
func LoadManifest(path string) ([]domain.ManifestEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, coreErrors.WrapError(err, "could not read manifest")
	}

	return parseManifest(data)
}

// ResolveManifest picks the manifest source in order of precedence: an
// explicit override path, DefaultManifestName under root when present, and
// finally the embedded default list.
func ResolveManifest(root string, override string) ([]domain.ManifestEntry, error) {
	if override != "" {
		return LoadManifest(override)
	}

	local := filepath.Join(root, DefaultManifestName)
	if _, err := os.Stat(local); err == nil {
		return LoadManifest(local)
	}

	return parseManifest(defaultManifest)
}

func parseManifest(data []byte) ([]domain.ManifestEntry, error) {
	var entries []domain.ManifestEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, coreErrors.WrapError(err, "could not parse manifest")
	}

	if len(entries) == 0 {
		return nil, errors.New("manifest contains no entries")
	}

	for i := range entries {
		if err := entries[i].Validate(); err != nil {
			return nil, coreErrors.WrapError(err, fmt.Sprintf("manifest entry %d is invalid", i+1))
		}
	}

	return entries, nil
}
