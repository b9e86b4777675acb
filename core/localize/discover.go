// ABOUTME: Document discovery finds HTML (and optionally CSS) files under a root
// ABOUTME: Returns sorted root-relative paths so runs process documents in a stable order

package localize

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// DiscoverDocuments returns the root-relative paths of documents to
// process. Non-recursive discovery looks at the root directory only;
// recursive discovery walks the whole tree. Extension matching is
// case-insensitive. The result is sorted lexicographically.
func DiscoverDocuments(root string, recursive bool, includeCSS bool) ([]string, error) {
	var docs []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if !recursive && path != root {
				return filepath.SkipDir
			}
			return nil
		}

		if !matchesDocumentExt(d.Name(), includeCSS) {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		docs = append(docs, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(docs)
	return docs, nil
}

// matchesDocumentExt reports whether name carries a processable extension.
func matchesDocumentExt(name string, includeCSS bool) bool {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == ".html" {
		return true
	}
	return includeCSS && ext == ".css"
}
