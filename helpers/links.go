package helpers

import "strings"

// Link tags shared by adapters and serializers.
const (
	TagGeonetwork = "geonetwork"
	TagRDA        = "RDA"
	TagTDS        = "TDS"
	TagPaper      = "paper"
	TagOther      = "other"
)

// ClassifyLink assigns a tag to a URL by substring match on its host and
// path. The geonetwork tag is never produced here: the GeoNetwork adapter
// assigns it to its own record link directly.
func ClassifyLink(url string) string {
	switch {
	case strings.Contains(url, "researchdata.edu.au"):
		return TagRDA
	case strings.Contains(url, "thredds"):
		return TagTDS
	case strings.Contains(url, "doi.org"):
		return TagPaper
	default:
		return TagOther
	}
}

// IsHTTPURL reports whether a string looks like a web URL.
func IsHTTPURL(s string) bool {
	return strings.Contains(s, "http://") || strings.Contains(s, "https://")
}
