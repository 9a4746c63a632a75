package vocab

import "strings"

// formatKeywords maps substrings of a file-format description to the subject
// term attached to the record. Order matters: the first match wins.
var formatKeywords = []struct {
	keyword string
	subject string
}{
	{"netcdf", "netcdf"},
	{"grib", "grib"},
	{"hdf", "hdf"},
	{"geotiff", "geotiff"},
	{"matlab", "matlab"},
}

// FormatSubject resolves a free-text file-format string to a format subject
// term. The UM fieldsfile format has no common name and maps to a literal
// "other binary"; anything unrecognised maps to "other".
func FormatSubject(fformat string) string {
	lower := strings.ToLower(strings.TrimSpace(fformat))
	if lower == "um" {
		return "other binary"
	}
	for _, f := range formatKeywords {
		if strings.Contains(lower, f.keyword) {
			return f.subject
		}
	}
	return "other"
}
