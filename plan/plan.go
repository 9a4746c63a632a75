// Package plan defines the canonical intermediate record that every source
// adapter produces and every target serializer consumes.
package plan

import "time"

// ForCode is a research classification entry. Codes are always from the 2020
// version of the ANZSRC FOR classification: the 2008 to 2020 crosswalk is
// applied once, at adapter time, never again at serialization.
type ForCode struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Link associates a source tag (geonetwork, RDA, TDS, paper, other) with a URL.
type Link struct {
	Tag string `json:"tag"`
	URL string `json:"url"`
}

// Plan is the canonical record. Every field may be empty; serializers apply
// their own fallbacks where the target schema requires a value.
type Plan struct {
	Title       string            `json:"title"`
	AltTitle    string            `json:"alt_title"`
	Description string            `json:"description"`
	DOI         string            `json:"doi"`
	License     string            `json:"license"`
	Keywords    []string          `json:"keywords"`
	ForCodes    []ForCode         `json:"for_codes"`
	Parties     []Party           `json:"parties"`
	Dates       map[string]string `json:"dates"`
	// TimeCoverage is [start, end] or empty.
	TimeCoverage []string `json:"time_coverage"`
	// Geospatial is [minLon, maxLon, minLat, maxLat]; west/east bounds
	// occupy the first two slots.
	Geospatial []float64 `json:"geospatial"`
	Links      []Link    `json:"links"`
	Location   string    `json:"location"`
	Citation   string    `json:"citation"`
	Version    string    `json:"version"`
	FFormat    string    `json:"fformat"`
	Publisher  string    `json:"publisher"`
	// ResourceType is dataset, software or service. Serializers fall back
	// to dataset when empty.
	ResourceType string `json:"resource_type"`
}

// YearPlaceholder is the sentinel used in citation text when a record carries
// neither a publication nor a creation date. It round-trips unchanged.
const YearPlaceholder = "YYYY"

// New returns an empty Plan with its collections allocated.
func New() *Plan {
	return &Plan{
		Keywords: make([]string, 0),
		ForCodes: make([]ForCode, 0),
		Parties:  make([]Party, 0),
		Dates:    make(map[string]string),
		Links:    make([]Link, 0),
	}
}

// ResolveDate returns the date a serializer should use as publication date:
// the publication date, else the creation date, else today. The substitution
// is an explicit fallback policy, not an error.
func (p *Plan) ResolveDate() string {
	if d := p.Dates["publication"]; d != "" {
		return d
	}
	if d := p.Dates["creation"]; d != "" {
		return d
	}
	return time.Now().Format("2006-01-02")
}

// CitationYear returns the year for citation text: publication year, else
// creation year, else the YearPlaceholder sentinel.
func (p *Plan) CitationYear() string {
	for _, key := range []string{"publication", "creation"} {
		if d := p.Dates[key]; len(d) >= 4 {
			return d[0:4]
		}
	}
	return YearPlaceholder
}

// AddLink appends a link unless an identical tag/URL pair is already present.
func (p *Plan) AddLink(tag, url string) {
	for _, l := range p.Links {
		if l.Tag == tag && l.URL == url {
			return
		}
	}
	p.Links = append(p.Links, Link{Tag: tag, URL: url})
}
