package vocab

import (
	"log/slog"
	"strings"
)

// Affiliation is a resolved institution: the registry id is empty when the
// institution is not in the affiliation table.
type Affiliation struct {
	Name string `json:"name"`
	ID   string `json:"id,omitempty"`
}

// csiroAcronym is the one institutional alias applied before lookup: source
// records abbreviate the organisation while the registry carries the full
// name.
const (
	csiroAcronym  = "CSIRO"
	csiroFullName = "Commonwealth Scientific and Industrial Research Organisation"
)

// ResolveAffiliation looks an institution up in the affiliation registry by
// exact name, then by acronym. A miss returns a name-only affiliation.
func ResolveAffiliation(name string) Affiliation {
	load()

	name = strings.TrimSpace(name)
	if name == csiroAcronym {
		name = csiroFullName
	}

	if e, ok := affByName[name]; ok {
		return Affiliation{Name: e.Name, ID: e.ID}
	}
	if e, ok := affByAcronym[name]; ok {
		return Affiliation{Name: e.Name, ID: e.ID}
	}

	slog.Debug("affiliation not in registry", "name", name)
	return Affiliation{Name: name}
}
