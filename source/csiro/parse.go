package csiro

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/coecms/zenmeta/helpers"
	"github.com/coecms/zenmeta/plan"
	"github.com/coecms/zenmeta/source"
	"github.com/coecms/zenmeta/vocab"
)

const csiroName = "Commonwealth Scientific and Industrial Research Organisation"

// spatialKeys fixes the order bounds are read from spatialParameters so the
// Plan's geospatial slice is [minLon, maxLon, minLat, maxLat] with west/east
// in the first two slots.
var spatialKeys = []string{"eastLongitude", "westLongitude", "southLatitude", "northLatitude"}

// resourceTypes maps the portal's collectionContentType to the resource type
// carried on the Plan.
var resourceTypes = map[string]string{
	"Data":     "dataset",
	"Software": "software",
	"Service":  "service",
}

// Parse reads one DAP collection document and returns a single Plan.
func (a *Adapter) Parse(r io.Reader, opts *source.ParseOptions) ([]*plan.Plan, error) {
	if opts == nil {
		opts = source.NewParseOptions()
	}

	var doc Document
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing DAP collection JSON: %w", err)
	}
	if err := doc.validate(); err != nil {
		return nil, err
	}

	p := plan.New()
	p.Title = doc.Title
	p.DOI = doc.DOI
	p.License = doc.Licence
	// The licence text alone often lacks the Creative Commons URL needed
	// for normalization; carry the link alongside it when present.
	if doc.LicenceLink != nil && doc.LicenceLink.Href != "" &&
		!strings.Contains(p.License, "creativecommons.org/licenses/") {
		p.License = strings.TrimSpace(p.License + " " + doc.LicenceLink.Href)
	}
	p.Publisher = "CSIRO (Australia)"

	if rt, ok := resourceTypes[doc.CollectionContentType]; ok {
		p.ResourceType = rt
	} else if doc.CollectionContentType != "" {
		opts.Diags.Add("csiro", "resource_type", "unknown collectionContentType %q, leaving resource type to the serializer default", doc.CollectionContentType)
	}

	p.Keywords = splitKeywords(doc.Keywords)

	for2008 := make([]string, 0, len(doc.FieldsOfResearch))
	for _, c := range doc.FieldsOfResearch {
		for2008 = append(for2008, c)
		p.ForCodes = append(p.ForCodes, resolveForEntry(c, opts.Diags)...)
	}

	a.extractParties(&doc, p, opts.Diags)
	a.extractSpatial(&doc, p, opts.Diags)

	p.Dates["publication"] = strings.SplitN(doc.Published, "T", 2)[0]
	if doc.DataStartDate != "" || doc.DataEndDate != "" {
		p.TimeCoverage = []string{doc.DataStartDate, doc.DataEndDate}
	}

	a.extractLinks(&doc, p)

	p.Citation = buildCitation(&doc)
	p.Description = buildDescription(&doc, p.Keywords, for2008)

	return []*plan.Plan{p}, nil
}

// splitKeywords separates the portal's keyword string on comma, or semicolon
// when no comma is present.
func splitKeywords(keywords string) []string {
	if keywords == "" {
		return nil
	}
	sep := ";"
	if strings.Contains(keywords, ",") {
		sep = ","
	}
	var result []string
	for _, k := range strings.Split(keywords, sep) {
		if k = strings.TrimSpace(k); k != "" {
			result = append(result, k)
		}
	}
	return result
}

// resolveForEntry crosswalks one fieldsOfResearch entry, which may be a bare
// 2008 code, a "code name" pair or a classification name.
func resolveForEntry(entry string, diags *plan.DiagSink) []plan.ForCode {
	entry = strings.TrimSpace(entry)
	if mapped := vocab.ResolveForCodes(entry); len(mapped) > 0 {
		return mapped
	}
	bits := strings.Fields(entry)
	if len(bits) > 1 && vocab.LooksLikeForCode(bits[0]) {
		if mapped := vocab.ResolveForCodes(bits[0]); len(mapped) > 0 {
			return mapped
		}
	}
	diags.Add("csiro", "for_codes", "no 2020 mapping for %q", entry)
	return nil
}

// extractParties builds the party list: every listed name as an author (the
// source type flag marks organisations), the lead researcher doubled as
// principal investigator, a synthesized CSIRO owner party, and one sponsor
// party per non-CSIRO organisation.
func (a *Adapter) extractParties(doc *Document, p *plan.Plan, diags *plan.DiagSink) {
	contactName := doc.LeadResearcher
	if doc.Contact != nil && doc.Contact.ContactName != "" {
		contactName = doc.Contact.ContactName
	}

	appendUnique := func(party plan.Party) {
		for _, existing := range p.Parties {
			if existing == party {
				return
			}
		}
		p.Parties = append(p.Parties, party)
	}

	for _, n := range doc.AllNames {
		party := plan.Party{
			Name: n.Name,
			Role: "author",
			Org:  n.Type != "Person",
		}
		if party.Org {
			diags.Add("csiro", "parties", "source marks %q as organisation", n.Name)
		}
		if n.Display == contactName {
			party.Affiliation = csiroName
		}
		appendUnique(party)
		if n.Display == doc.LeadResearcher {
			leader := party
			leader.Role = "principalInvestigator"
			appendUnique(leader)
		}
	}

	appendUnique(plan.Party{
		Name:        csiroName,
		Role:        "owner",
		Affiliation: csiroName,
		Org:         true,
	})

	for _, org := range doc.Organisations {
		if strings.Contains(org, "CSIRO") {
			continue
		}
		appendUnique(plan.Party{Name: org, Role: "sponsor", Org: true})
	}
}

// extractSpatial converts the DMS bound strings to decimal degrees in the
// fixed key order, negating southern and eastern values per the source's
// hemisphere convention.
func (a *Adapter) extractSpatial(doc *Document, p *plan.Plan, diags *plan.DiagSink) {
	geo := make([]float64, 0, len(spatialKeys))
	for _, key := range spatialKeys {
		dms, ok := doc.SpatialParameters[key]
		if !ok {
			diags.Add("csiro", "geospatial", "spatialParameters missing %s", key)
			return
		}
		dd, err := helpers.DMSToDecimal(dms)
		if err != nil {
			diags.Add("csiro", "geospatial", "unparseable bound %s: %v", key, err)
			return
		}
		if helpers.NegatesHemisphere(key) {
			dd *= -1
			diags.Add("csiro", "geospatial", "negated %s per hemisphere convention", key)
		}
		geo = append(geo, dd)
	}
	p.Geospatial = geo
}

// extractLinks tags the landing page and every related link.
func (a *Adapter) extractLinks(doc *Document, p *plan.Plan) {
	if doc.LandingPage != nil && doc.LandingPage.Href != "" {
		p.AddLink(helpers.ClassifyLink(doc.LandingPage.Href), doc.LandingPage.Href)
	}
	for _, l := range doc.RelatedLinks {
		if l.Address == "" {
			continue
		}
		p.AddLink(helpers.ClassifyLink(l.Address), l.Address)
	}
}

// buildCitation assembles the attribution statement plus the access detail
// paragraphs the target schemas have no field for.
func buildCitation(doc *Document) string {
	citation := helpers.Paragraph("Preferred citation:") + " " +
		helpers.Paragraph(doc.AttributionStatement)
	citation += helpers.LabelledParagraph("Access", doc.Access)
	citation += helpers.LabelledParagraph("Access level", doc.AccessLevel)
	citation += helpers.LabelledParagraph("Rights", doc.Rights)
	citation += helpers.LabelledParagraph("Data restricted", fmt.Sprintf("%v", doc.DataRestricted))
	if doc.Contact != nil {
		details := doc.Contact.ContactName
		if doc.Contact.ContactEmail != "" {
			details += " - " + doc.Contact.ContactEmail
		}
		citation += helpers.LabelledParagraph("Contact", details)
	}
	return citation
}

// buildDescription extends the abstract with the fields that cannot be
// mapped to their own metadata slots. Absent values still produce their
// paragraph so the order and count stay stable; the FOR-code summary keeps
// the 2008 entries as found, since for_codes carries the 2020 crosswalk.
func buildDescription(doc *Document, keywords, for2008 []string) string {
	var sb strings.Builder
	sb.WriteString(doc.Description)
	sb.WriteString(helpers.LabelledParagraph("Lineage", doc.Lineage))
	sb.WriteString(helpers.LabelledParagraph("Credit", doc.Credit))
	sb.WriteString(helpers.LabelledParagraph("Size", doc.Size))
	sb.WriteString(helpers.LabelledParagraph("Keywords", strings.Join(keywords, ", ")))

	levels := make([]string, 0, len(doc.OrganisationalLevels))
	for k := range doc.OrganisationalLevels {
		if k != "irpHierarchy" {
			levels = append(levels, k)
		}
	}
	sort.Strings(levels)
	for _, k := range levels {
		sb.WriteString(helpers.LabelledParagraph(capitalize(k), doc.OrganisationalLevels[k]))
	}

	sb.WriteString(helpers.LabelledParagraph("FOR codes", strings.Join(for2008, ", ")))
	if doc.Project != nil {
		sb.WriteString(helpers.LabelledParagraph("Project", doc.Project.ProjectTitle))
	}
	return sb.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[0:1]) + s[1:]
}
