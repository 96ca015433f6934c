// Package gen implements the QA artifact generation pipeline: feature
// name extraction, the three renderers (test plan, test-case table,
// exploratory charters), the timestamped output writer, and the
// orchestrator that ties them together.
package gen

import (
	"time"
)

// Kind identifies one of the three generated artifacts
type Kind string

const (
	KindTestPlan    Kind = "test_plan"
	KindTestCases   Kind = "test_cases"
	KindExploratory Kind = "exploratory"
)

// Format identifies an artifact encoding
type Format string

const (
	// FormatStructuredText is a plain-text document with numbered
	// sections and box-drawing tables, written as .md
	FormatStructuredText Format = "structured_text"

	// FormatTabularText is RFC 4180 delimited text, written as .csv
	FormatTabularText Format = "tabular_text"

	// FormatPaginatedDocument is a PDF with styled headings, rendered
	// tables and explicit page breaks
	FormatPaginatedDocument Format = "paginated_document"
)

// Ext returns the file extension for the format, including the dot
func (f Format) Ext() string {
	switch f {
	case FormatTabularText:
		return ".csv"
	case FormatPaginatedDocument:
		return ".pdf"
	default:
		return ".md"
	}
}

// ContentType returns the MIME type served for the format
func (f Format) ContentType() string {
	switch f {
	case FormatTabularText:
		return "text/csv"
	case FormatPaginatedDocument:
		return "application/pdf"
	default:
		return "text/markdown"
	}
}

// Artifact is one generated QA document
type Artifact struct {
	Kind     Kind
	Format   Format
	Title    string
	Body     []byte
	FileName string
}

// StampLayout encodes the run timestamp at second granularity. Two runs
// within the same second share a stamp and silently overwrite each
// other's files; documented limitation, kept from the original design.
const StampLayout = "20060102_150405"

// Stamp formats a run timestamp token
func Stamp(t time.Time) string {
	return t.Format(StampLayout)
}

// FileName derives the artifact file name for a kind, stamp and format
func FileName(kind Kind, stamp string, format Format) string {
	return string(kind) + "_" + stamp + format.Ext()
}

// Request is one generation request
type Request struct {
	Requirement string
	SessionID   string
}

// Result is the per-request outcome threaded back to the HTTP layer.
// It replaces any process-wide last-error state: diagnostics read the
// result value, never a global.
type Result struct {
	RequestID      string
	FeatureName    string
	Summary        string
	TotalTestCases int
	CharterCount   int
	Coverage       string
	Stamp          string
	GeneratedAt    time.Time
	Artifacts      []Artifact
}

// ArtifactByKind returns the artifact of the given kind, or nil
func (r *Result) ArtifactByKind(kind Kind) *Artifact {
	for i := range r.Artifacts {
		if r.Artifacts[i].Kind == kind {
			return &r.Artifacts[i]
		}
	}
	return nil
}
