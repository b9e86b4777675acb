// ABOUTME: Local filename deriver maps an asset URL to a deterministic collision-safe name
// ABOUTME: Pure function of the URL string so repeated runs resolve identical local paths

package assets

import (
	"crypto/sha1"
	"encoding/hex"
	"net/url"
	"path"
	"strings"
)

const (
	fallbackPrefix  = "asset-"
	fallbackExt     = ".bin"
	fallbackHashLen = 10
	queryHashLen    = 6
)

// LocalFilename derives the local filename for rawURL.
//
// The base name is the URL's final path segment. Malformed URLs and URLs
// without an extractable base fall back to a name hashed from the full URL
// string. URLs carrying a query string get a short hash fragment inserted
// between stem and extension, so two URLs sharing a path but differing in
// query parameters land on distinct files. preferExt supplies an extension
// when the path segment itself has none.
func LocalFilename(rawURL string, preferExt string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fallbackName(rawURL)
	}

	base := path.Base(u.Path)
	if base == "" || base == "." || base == ".." || base == "/" {
		return fallbackName(rawURL)
	}

	ext := path.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	if ext == "" && preferExt != "" {
		if !strings.HasPrefix(preferExt, ".") {
			preferExt = "." + preferExt
		}
		ext = preferExt
	}

	if u.RawQuery != "" {
		return stem + "." + shortHash(rawURL, queryHashLen) + ext
	}

	return stem + ext
}

// fallbackName builds the hash-based name used when no base name can be
// extracted. The hash covers the full URL string, so the result is stable
// across runs and processes.
func fallbackName(rawURL string) string {
	return fallbackPrefix + shortHash(rawURL, fallbackHashLen) + fallbackExt
}

// shortHash returns the first n hex characters of the SHA-1 of s.
func shortHash(s string, n int) string {
	sum := sha1.Sum([]byte(s))
	return hex.EncodeToString(sum[:])[:n]
}
