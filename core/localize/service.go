// ABOUTME: Localize service orchestrates scanning, downloading and rewriting documents
// ABOUTME: One document at a time, one URL at a time, a failed item never halts the batch

package localize

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"framelocal/core/assets"
	"framelocal/core/domain"
	coreErrors "framelocal/core/errors"
	"framelocal/core/interfaces"
	"framelocal/pkg/featureflags"
)

// Options control a localize run.
type Options struct {
	// DryRun reports intended actions without touching the network or the filesystem
	DryRun bool

	// Recursive extends document discovery into subdirectories
	Recursive bool

	// IncludeCSS also scans *.css documents
	IncludeCSS bool

	// NoDownload rewrites only, warning about local files that are absent
	NoDownload bool

	// KeepCDNEvents leaves the events.framer.com analytics script untouched
	KeepCDNEvents bool
}

// Service rewrites documents so framerusercontent.com assets are served
// from the local assets directory.
type Service struct {
	deps       interfaces.Dependencies
	downloader interfaces.Downloader
}

// NewService creates a new localize service instance
func NewService(deps interfaces.Dependencies, downloader interfaces.Downloader) *Service {
	return &Service{
		deps:       deps,
		downloader: downloader,
	}
}

// Run discovers and processes every document under root, returning the
// aggregated summary. Only a failure to establish an asset directory
// aborts the run; per-document and per-URL failures are logged and the
// batch continues.
func (s *Service) Run(ctx context.Context, root string, opts Options) (*domain.RunSummary, error) {
	if s.downloader == nil && !opts.DryRun && !opts.NoDownload {
		return nil, errors.New("downloader not configured")
	}

	docs, err := DiscoverDocuments(root, opts.Recursive, opts.IncludeCSS)
	if err != nil {
		return nil, err
	}

	summary := &domain.RunSummary{}

	if len(docs) == 0 {
		s.logInfo("no documents found to process", map[string]interface{}{
			"root": root,
		})
		return summary, nil
	}

	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		result, err := s.processDocument(ctx, root, doc, opts)
		if err != nil {
			return summary, err
		}
		summary.Add(result)
	}

	s.logRunOutcome(summary, opts)

	return summary, nil
}

// processDocument runs the full scan-download-rewrite pass for one
// document. The returned error is non-nil only for conditions that abort
// the whole run.
func (s *Service) processDocument(ctx context.Context, root string, doc string, opts Options) (domain.DocumentResult, error) {
	result := domain.DocumentResult{Document: doc}

	s.logInfo("processing", map[string]interface{}{"document": doc})

	fullPath := filepath.Join(root, doc)
	data, err := os.ReadFile(fullPath)
	if err != nil {
		result.Skipped = true
		docErr := &coreErrors.DocumentError{Path: doc, Op: "read", Err: err}
		s.logWarn("skipping unreadable document", map[string]interface{}{
			"document": doc,
			"error":    docErr.Error(),
		})
		return result, nil
	}
	if len(data) == 0 {
		result.Skipped = true
		s.logWarn("skipping empty document", map[string]interface{}{"document": doc})
		return result, nil
	}

	original := string(data)

	assetList := collectAssets(original, opts)
	result.URLsFound = len(assetList)

	if len(assetList) == 0 {
		s.logInfo("no matches", map[string]interface{}{"document": doc})
		return result, nil
	}

	if !opts.DryRun {
		if err := ensureAssetDirs(root, assetList); err != nil {
			return result, err
		}
	}

	mapping := s.resolveAssets(ctx, root, assetList, opts, &result)

	text := replaceAll(original, mapping)
	changed := text != original

	switch {
	case opts.DryRun:
		s.logInfo("would update", map[string]interface{}{"document": doc})
	case changed:
		if err := os.WriteFile(fullPath, []byte(text), 0644); err != nil {
			docErr := &coreErrors.DocumentError{Path: doc, Op: "write", Err: err}
			s.logError("document write failed", map[string]interface{}{
				"document": doc,
				"error":    docErr.Error(),
			})
			return result, nil
		}
		result.Changed = true
		s.logInfo("updated", map[string]interface{}{"document": doc})
	default:
		s.logInfo("unchanged", map[string]interface{}{"document": doc})
	}

	return result, nil
}

// resolveAssets ensures each asset has a local copy (mode permitting) and
// returns the remote-to-local substitution mapping. Failed downloads stay
// in the mapping unless the strict_rewrite feature flag is enabled.
func (s *Service) resolveAssets(ctx context.Context, root string, assetList []*domain.LocalAsset, opts Options, result *domain.DocumentResult) map[string]string {
	strict := featureflags.IsEnabled(ctx, featureflags.StrictRewrite)

	mapping := make(map[string]string, len(assetList))
	for _, a := range assetList {
		rel := a.RelativePath()
		mapping[a.RemoteURL] = rel

		switch {
		case opts.DryRun:
			s.logInfo("would download", map[string]interface{}{
				"url":  a.RemoteURL,
				"dest": rel,
			})

		case opts.NoDownload:
			// The events script is optional, only images and modules
			// warrant a missing-file warning.
			if a.Kind == domain.AssetKindEvents {
				continue
			}
			if _, err := os.Stat(a.DiskPath(root)); err != nil {
				result.MissingLocal++
				s.logWarn("missing local file", map[string]interface{}{
					"url":  a.RemoteURL,
					"dest": rel,
				})
			}

		default:
			outcome, err := s.resolveOne(ctx, root, a)
			if err != nil {
				result.Failed++
				s.logError("download failed", map[string]interface{}{
					"url":   a.RemoteURL,
					"dest":  rel,
					"error": err.Error(),
				})
				if strict {
					s.logDebug("strict rewrite: leaving URL on CDN", map[string]interface{}{
						"url": a.RemoteURL,
					})
					delete(mapping, a.RemoteURL)
				}
				continue
			}

			switch outcome {
			case interfaces.OutcomeDownloaded:
				result.Downloaded++
				s.logInfo("downloaded", map[string]interface{}{
					"url":  a.RemoteURL,
					"dest": rel,
				})
			case interfaces.OutcomeAlreadyPresent:
				result.AlreadyPresent++
				s.logInfo("already present", map[string]interface{}{
					"url":  a.RemoteURL,
					"dest": rel,
				})
			}
		}
	}

	return mapping
}

// resolveOne downloads one asset, memoizing successful outcomes so a URL
// repeated across documents is resolved once per run. Failures are not
// memoized; a URL that failed for one document is attempted again for the
// next.
func (s *Service) resolveOne(ctx context.Context, root string, a *domain.LocalAsset) (interfaces.DownloadOutcome, error) {
	if s.seenThisRun(ctx, a.RemoteURL) {
		return interfaces.OutcomeAlreadyPresent, nil
	}

	outcome, err := s.downloader.Download(ctx, a.RemoteURL, a.DiskPath(root))
	if err != nil {
		return "", err
	}

	s.markResolved(ctx, a.RemoteURL, outcome)
	return outcome, nil
}

// seenThisRun reports whether url was already resolved during this run.
func (s *Service) seenThisRun(ctx context.Context, url string) bool {
	if s.deps.Cache == nil {
		return false
	}

	data, err := s.deps.Cache.Get(ctx, resolvedKey(url))
	return err == nil && len(data) > 0
}

// markResolved records a successful resolution for url.
func (s *Service) markResolved(ctx context.Context, url string, outcome interfaces.DownloadOutcome) {
	if s.deps.Cache == nil {
		return
	}

	_ = s.deps.Cache.Set(ctx, resolvedKey(url), []byte(outcome), 0)
}

func resolvedKey(url string) string {
	return fmt.Sprintf("resolved:%s", url)
}

// collectAssets extracts every rewritable URL from text in a stable order:
// images, then module scripts, then the events script.
func collectAssets(text string, opts Options) []*domain.LocalAsset {
	var out []*domain.LocalAsset

	for _, u := range assets.ExtractImageURLs(text) {
		out = append(out, &domain.LocalAsset{
			RemoteURL: u,
			Kind:      domain.AssetKindImage,
			Filename:  assets.LocalFilename(u, assets.ImageExtension(u)),
		})
	}

	for _, u := range assets.ExtractScriptURLs(text) {
		out = append(out, &domain.LocalAsset{
			RemoteURL: u,
			Kind:      domain.AssetKindScript,
			Filename:  assets.LocalFilename(u, ".mjs"),
		})
	}

	if !opts.KeepCDNEvents {
		for _, u := range assets.ExtractEventsURLs(text) {
			out = append(out, &domain.LocalAsset{
				RemoteURL: u,
				Kind:      domain.AssetKindEvents,
				Filename:  domain.EventsScriptName,
			})
		}
	}

	return out
}

// ensureAssetDirs creates the asset directories assetList needs. A
// directory that cannot be created aborts the run, since no useful work
// can proceed without it.
func ensureAssetDirs(root string, assetList []*domain.LocalAsset) error {
	dirs := make(map[string]struct{})
	for _, a := range assetList {
		dirs[a.Kind.Dir()] = struct{}{}
	}

	for dir := range dirs {
		if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(dir)), 0755); err != nil {
			return coreErrors.WrapError(err, "could not create asset directory")
		}
	}

	return nil
}

// replaceAll substitutes every mapped URL with its local path. Longer URLs
// are replaced first so a URL that is a prefix of another is never
// clobbered by the shorter one's substitution.
func replaceAll(text string, mapping map[string]string) string {
	urls := make([]string, 0, len(mapping))
	for u := range mapping {
		urls = append(urls, u)
	}
	sort.Slice(urls, func(i, j int) bool {
		if len(urls[i]) != len(urls[j]) {
			return len(urls[i]) > len(urls[j])
		}
		return urls[i] < urls[j]
	})

	for _, u := range urls {
		text = strings.ReplaceAll(text, u, mapping[u])
	}

	return text
}

func (s *Service) logDebug(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Debug(msg, fields)
	}
}

func (s *Service) logInfo(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Info(msg, fields)
	}
}

func (s *Service) logWarn(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Warn(msg, fields)
	}
}

func (s *Service) logError(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Error(msg, fields)
	}
}

// logRunOutcome emits the end-of-run status line.
func (s *Service) logRunOutcome(summary *domain.RunSummary, opts Options) {
	fields := map[string]interface{}{
		"documents": summary.DocumentsProcessed,
		"changed":   summary.DocumentsChanged,
		"downloads": summary.Downloaded,
		"failures":  summary.Failed,
	}

	switch {
	case opts.DryRun:
		s.logInfo("dry run complete", fields)
	case summary.AnyChanged():
		s.logInfo("done, files were updated", fields)
	default:
		s.logInfo("done, nothing to update", fields)
	}
}
