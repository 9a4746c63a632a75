package vocab

import (
	"strings"

	"github.com/coecms/zenmeta/plan"
)

// ccLicensePath is the URL fragment that identifies a Creative Commons
// license; the short code sits between the fixed path delimiters after it.
const ccLicensePath = "creativecommons.org/licenses/"

// ZenodoLicense is the legacy Zenodo license object.
type ZenodoLicense struct {
	ID string `json:"id"`
}

// InvenioLicense is the InvenioRDM rights object: either an identified
// license or a free-text description for licenses with no registry id.
type InvenioLicense struct {
	ID          string            `json:"id,omitempty"`
	Description map[string]string `json:"description,omitempty"`
	Title       map[string]string `json:"title,omitempty"`
}

// ccShortCode extracts the license code from a Creative Commons URL,
// e.g. ".../licenses/by/4.0/" yields "cc-by-4.0".
func ccShortCode(license string) (string, bool) {
	idx := strings.Index(license, ccLicensePath)
	if idx == -1 {
		return "", false
	}
	parts := strings.Split(license[idx:], "/")
	if len(parts) < 3 || parts[2] == "" {
		return "", false
	}
	return strings.Join([]string{"cc", parts[2], "4.0"}, "-"), true
}

// NormalizeLicenseZenodo maps a free-text license string to the legacy
// Zenodo license object. A Creative Commons URL resolves to its short code;
// the older "Attribution" phrasing and anything unrecognised fall back to
// cc-by-4.0 with a diagnostic, for a reviewer to correct by hand.
func NormalizeLicenseZenodo(license string, diags *plan.DiagSink) ZenodoLicense {
	if id, ok := ccShortCode(license); ok {
		return ZenodoLicense{ID: id}
	}
	if strings.Contains(license, "Attribution") {
		return ZenodoLicense{ID: "cc-by-4.0"}
	}
	diags.Add("vocab", "license", "no Creative Commons pattern in %q, defaulting to cc-by-4.0", license)
	return ZenodoLicense{ID: "cc-by-4.0"}
}

// NormalizeLicenseInvenio maps a free-text license string to the InvenioRDM
// rights object. When no Creative Commons pattern is found the license text
// is carried verbatim as a custom license description.
func NormalizeLicenseInvenio(license string, diags *plan.DiagSink) InvenioLicense {
	if id, ok := ccShortCode(license); ok {
		return InvenioLicense{ID: id}
	}
	diags.Add("vocab", "license", "no Creative Commons pattern in %q, emitting custom license", license)
	return InvenioLicense{
		Description: map[string]string{"en": license},
		Title:       map[string]string{"en": "Custom license"},
	}
}
