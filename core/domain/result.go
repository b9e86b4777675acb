// ABOUTME: Result types carry per-document and per-run outcomes of a localize pass
// ABOUTME: Aggregated counts back the human-readable summary printed after a run

package domain

// DocumentResult records what happened to a single source document.
type DocumentResult struct {
	// Document is the path of the processed file, relative to the root
	Document string

	// Skipped is true when the document could not be read and was passed over
	Skipped bool

	// Changed is true when the rewritten text was written back to disk
	Changed bool

	// URLsFound is the number of distinct asset URLs extracted
	URLsFound int

	// Downloaded counts assets fetched during this document's pass
	Downloaded int

	// AlreadyPresent counts assets that existed locally before the pass
	AlreadyPresent int

	// Failed counts assets whose download was attempted and failed
	Failed int

	// MissingLocal counts assets reported absent in no-download mode
	MissingLocal int
}

// RunSummary aggregates DocumentResults across a whole localize run.
type RunSummary struct {
	DocumentsProcessed int
	DocumentsSkipped   int
	DocumentsChanged   int
	URLsFound          int
	Downloaded         int
	AlreadyPresent     int
	Failed             int
	MissingLocal       int
}

// Add folds one document's result into the summary.
func (s *RunSummary) Add(r DocumentResult) {
	s.DocumentsProcessed++
	if r.Skipped {
		s.DocumentsSkipped++
	}
	if r.Changed {
		s.DocumentsChanged++
	}
	s.URLsFound += r.URLsFound
	s.Downloaded += r.Downloaded
	s.AlreadyPresent += r.AlreadyPresent
	s.Failed += r.Failed
	s.MissingLocal += r.MissingLocal
}

// AnyChanged reports whether any document was written back during the run.
func (s *RunSummary) AnyChanged() bool {
	return s.DocumentsChanged > 0
}

// FetchSummary aggregates per-entry outcomes of a fixed-asset fetch run.
type FetchSummary struct {
	Refreshed int
	Failed    int
}
