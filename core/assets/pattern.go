// ABOUTME: Pattern-based URL extractor scans raw document text for CDN asset URLs
// ABOUTME: Matching is purely lexical, no HTML parsing, output deduplicated and sorted

package assets

import (
	"regexp"
	"sort"
	"strings"
)

// imageExtensions is the alternation of recognized image extensions.
const imageExtensions = `(?:png|jpe?g|webp|gif|svg|ico|avif)`

// framerHost matches an absolute URL on the framerusercontent.com CDN.
// Matches stop at whitespace and quote characters because the URLs sit
// inside quoted HTML attributes, inline styles or script bodies.
const framerHost = `https?://[^"'\s]*framerusercontent\.com[^"'\s]*`

var (
	imageURLPattern  = regexp.MustCompile(`(?i)` + framerHost + `\.` + imageExtensions + `(?:\?[^"'\s]*)?`)
	scriptURLPattern = regexp.MustCompile(`(?i)` + framerHost + `\.mjs(?:\?[^"'\s]*)?`)
	eventsURLPattern = regexp.MustCompile(`(?i)https?://events\.framer\.com/script[^\s"']*`)
	imageExtPattern  = regexp.MustCompile(`(?i)\.(` + imageExtensions + `)\b`)
)

// ExtractImageURLs returns the distinct framerusercontent.com image URLs
// found in text. The result is sorted so repeated runs list URLs in the
// same order.
func ExtractImageURLs(text string) []string {
	return matchSet(imageURLPattern, text)
}

// ExtractScriptURLs returns the distinct framerusercontent.com .mjs module
// URLs found in text, sorted.
func ExtractScriptURLs(text string) []string {
	return matchSet(scriptURLPattern, text)
}

// ExtractEventsURLs returns the distinct events.framer.com script URLs
// found in text, sorted.
func ExtractEventsURLs(text string) []string {
	return matchSet(eventsURLPattern, text)
}

// ImageExtension returns the lowercased image extension (".png", ".jpg",
// ...) found in rawURL, or "" when none is present. URLs whose extension
// appears only in the query string still yield one, which callers use as
// the preferred extension during filename derivation.
func ImageExtension(rawURL string) string {
	m := imageExtPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return ""
	}
	return "." + strings.ToLower(m[1])
}

// matchSet collects pattern matches deduplicated by exact string equality.
func matchSet(pattern *regexp.Regexp, text string) []string {
	matches := pattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	urls := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		urls = append(urls, m)
	}

	sort.Strings(urls)
	return urls
}
