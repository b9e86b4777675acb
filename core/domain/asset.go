// ABOUTME: Asset domain model pairs a remote CDN URL with its derived local location
// ABOUTME: Provides kind-based directory mapping and validation for asset records

package domain

import (
	"errors"
	"path"
	"path/filepath"
	"strings"
)

// Asset directory layout relative to the site root. These are stored with
// forward slashes because they are embedded verbatim into rewritten documents.
const (
	// ImageAssetsDir holds downloaded image assets
	ImageAssetsDir = "assets/images"

	// ScriptAssetsDir holds downloaded Framer runtime modules
	ScriptAssetsDir = "assets/js/framer"

	// EventsScriptName is the fixed local filename for the Framer analytics script
	EventsScriptName = "events-script-v2.js"
)

// AssetKind classifies a remote asset by how it is referenced and where its
// local copy is stored.
type AssetKind string

const (
	// AssetKindImage is a framerusercontent.com image (png, jpg, webp, ...)
	AssetKindImage AssetKind = "image"

	// AssetKindScript is a framerusercontent.com .mjs runtime module
	AssetKindScript AssetKind = "script"

	// AssetKindEvents is the events.framer.com analytics script
	AssetKindEvents AssetKind = "events"
)

// Dir returns the asset directory (forward slashes, relative to the site
// root) where local copies of this kind are stored.
func (k AssetKind) Dir() string {
	switch k {
	case AssetKindScript, AssetKindEvents:
		return ScriptAssetsDir
	default:
		return ImageAssetsDir
	}
}

// LocalAsset represents the mapping from one extracted remote URL to the
// local file that replaces it. Records are recomputed each run, never
// persisted.
type LocalAsset struct {
	// RemoteURL is the exact matched URL substring from the source document
	RemoteURL string

	// Kind determines which asset directory the local copy lives in
	Kind AssetKind

	// Filename is the derived local filename (no directory component)
	Filename string
}

// NewLocalAsset creates a new LocalAsset instance with validation
func NewLocalAsset(remoteURL string, kind AssetKind, filename string) (*LocalAsset, error) {
	asset := &LocalAsset{
		RemoteURL: remoteURL,
		Kind:      kind,
		Filename:  filename,
	}

	if err := asset.Validate(); err != nil {
		return nil, err
	}

	return asset, nil
}

// Validate checks that the asset record has valid required fields
func (a *LocalAsset) Validate() error {
	if a.RemoteURL == "" {
		return errors.New("asset remote URL cannot be empty")
	}

	if a.Filename == "" {
		return errors.New("asset filename cannot be empty")
	}

	if strings.ContainsAny(a.Filename, `/\`) {
		return errors.New("asset filename cannot contain path separators")
	}

	return nil
}

// RelativePath returns the document-facing path of the local copy, always
// with forward slashes regardless of platform.
func (a *LocalAsset) RelativePath() string {
	return path.Join(a.Kind.Dir(), a.Filename)
}

// DiskPath returns the filesystem path of the local copy under root.
func (a *LocalAsset) DiskPath(root string) string {
	return filepath.Join(root, filepath.FromSlash(a.Kind.Dir()), a.Filename)
}
