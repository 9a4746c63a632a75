package vocab

import "fmt"

// Target schema identifiers for role mapping.
const (
	SchemaZenodo  = "zenodo"
	SchemaInvenio = "invenio"
)

// Source-vocabulary roles to legacy Zenodo (DataCite-cased) contributor
// types.
var zenodoRoles = map[string]string{
	"author":                "Researcher",
	"owner":                 "RightsHolder",
	"funder":                "Sponsor",
	"principalInvestigator": "ProjectLeader",
	"sponsor":               "Sponsor",
	"contact":               "ContactPerson",
}

// Source-vocabulary roles to InvenioRDM role ids.
var invenioRoles = map[string]string{
	"author":                "other",
	"owner":                 "rightsholder",
	"funder":                "sponsor",
	"principalInvestigator": "projectleader",
	"sponsor":               "sponsor",
	"contact":               "contactperson",
}

// UnmappedRoleError indicates a source role with no equivalent in the target
// schema. Every target record requires a role, so this is a hard error
// rather than a degraded lookup.
type UnmappedRoleError struct {
	Role   string
	Schema string
}

func (e *UnmappedRoleError) Error() string {
	return fmt.Sprintf("role %q has no mapping for target schema %q", e.Role, e.Schema)
}

// MapRole maps a source role to the target schema's role vocabulary.
func MapRole(sourceRole, targetSchema string) (string, error) {
	var table map[string]string
	switch targetSchema {
	case SchemaZenodo:
		table = zenodoRoles
	case SchemaInvenio:
		table = invenioRoles
	default:
		return "", fmt.Errorf("unknown target schema %q", targetSchema)
	}

	role, ok := table[sourceRole]
	if !ok {
		return "", &UnmappedRoleError{Role: sourceRole, Schema: targetSchema}
	}
	return role, nil
}
