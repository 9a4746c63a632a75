// Package geonetwork adapts GeoNetwork ISO-19115 XML records into Plans.
package geonetwork

import (
	"bytes"

	"github.com/coecms/zenmeta/source"
)

// Adapter implements the GeoNetwork source.
type Adapter struct{}

var _ source.Adapter = (*Adapter)(nil)

// Name returns the source identifier.
func (a *Adapter) Name() string {
	return "geonetwork"
}

// Description returns a human-readable source description.
func (a *Adapter) Description() string {
	return "GeoNetwork ISO-19115 XML metadata record"
}

// Extensions returns file extensions associated with this source.
func (a *Adapter) Extensions() []string {
	return []string{"xml"}
}

// CanParse returns true if the input looks like an ISO-19115 record.
func (a *Adapter) CanParse(peek []byte) bool {
	peek = bytes.TrimSpace(peek)
	if len(peek) == 0 || peek[0] != '<' {
		return false
	}

	patterns := [][]byte{
		[]byte("MD_Metadata"),
		[]byte("CI_ResponsibleParty"),
		[]byte("gmd:"),
	}
	for _, pattern := range patterns {
		if bytes.Contains(peek, pattern) {
			return true
		}
	}
	return false
}

func init() {
	source.Register(&Adapter{})
}
