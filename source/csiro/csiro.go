// Package csiro adapts CSIRO Data Access Portal collection JSON into Plans.
package csiro

import (
	"bytes"

	"github.com/coecms/zenmeta/source"
)

// Adapter implements the CSIRO DAP source.
type Adapter struct{}

var _ source.Adapter = (*Adapter)(nil)

// Name returns the source identifier.
func (a *Adapter) Name() string {
	return "csiro"
}

// Description returns a human-readable source description.
func (a *Adapter) Description() string {
	return "CSIRO Data Access Portal collection JSON"
}

// Extensions returns file extensions associated with this source.
func (a *Adapter) Extensions() []string {
	return []string{"json"}
}

// CanParse returns true if the input looks like a DAP collection document.
func (a *Adapter) CanParse(peek []byte) bool {
	peek = bytes.TrimSpace(peek)
	if len(peek) == 0 || (peek[0] != '{' && peek[0] != '[') {
		return false
	}
	return bytes.Contains(peek, []byte("dataCollectionId"))
}

func init() {
	source.Register(&Adapter{})
}
