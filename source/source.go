// Package source defines the interface for source-adapter plugins: each
// adapter maps one raw source document format into canonical Plans.
package source

import (
	"io"

	"github.com/coecms/zenmeta/plan"
)

// Adapter is implemented by every source plugin.
type Adapter interface {
	// Name returns the source identifier (e.g. "geonetwork", "csiro").
	Name() string

	// Description returns a human-readable source description.
	Description() string

	// Extensions returns file extensions associated with this source.
	Extensions() []string

	// CanParse returns true if this adapter can parse the given input.
	CanParse(peek []byte) bool

	// Parse reads one raw source document stream and returns Plans.
	Parse(r io.Reader, opts *ParseOptions) ([]*plan.Plan, error)
}

// ParseOptions carries cross-adapter parse configuration.
type ParseOptions struct {
	// Diags collects heuristic fallbacks and degraded-path decisions.
	// May be nil.
	Diags *plan.DiagSink

	// SourceName identifies the input for error messages.
	SourceName string
}

// NewParseOptions creates ParseOptions with a diagnostic sink attached.
func NewParseOptions() *ParseOptions {
	return &ParseOptions{Diags: &plan.DiagSink{}}
}
