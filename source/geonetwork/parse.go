package geonetwork

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/coecms/zenmeta/helpers"
	"github.com/coecms/zenmeta/plan"
	"github.com/coecms/zenmeta/source"
	"github.com/coecms/zenmeta/vocab"
)

// partyRoles is the allow-list of CI_RoleCode values kept as parties.
var partyRoles = map[string]bool{
	"author":                true,
	"owner":                 true,
	"funder":                true,
	"principalInvestigator": true,
}

const officialRecordNote = "Official metadata and access to the data is " +
	"via the NCI geonetwork record in related identifiers."

const thredsAcknowledgment = "NCI Australia (2021): NCI THREDDS Data Service. " +
	"NCI Australia. (Service) https://dx.doi.org/10.25914/608bfc062f4c7"

// Parse reads one ISO-19115 record and returns a single Plan.
func (a *Adapter) Parse(r io.Reader, opts *source.ParseOptions) ([]*plan.Plan, error) {
	if opts == nil {
		opts = source.NewParseOptions()
	}

	root, err := decodeTree(r)
	if err != nil {
		return nil, fmt.Errorf("parsing ISO-19115 XML: %w", err)
	}

	p := plan.New()
	p.Title = root.findText("title")
	if p.Title == "" {
		return nil, &source.MissingFieldsError{Source: "geonetwork", Fields: []string{"title"}}
	}
	p.AltTitle = root.findText("alternateTitle")
	p.DOI = root.findText("dataSetURI")
	p.License = root.findText("useLimitation")
	p.FFormat = root.findText("MD_Format")

	abstract := root.findText("abstract")
	lineage := root.findText("LI_Lineage")
	credit := root.findText("credit")
	classification := root.findText("MD_ClassificationCode")
	update := root.findText("maintenanceAndUpdateFrequency")
	path := root.findText("mediumName")
	project := root.findText("code")

	for2008 := a.extractKeywords(root, p, opts.Diags)
	a.extractParties(root, p, opts.Diags)
	a.extractDates(root, p, opts.Diags)
	a.extractLinks(root, p)
	a.extractExtents(root, p, opts.Diags)

	p.Location = "Direct access to the data is available on the NCI servers:\n" +
		fmt.Sprintf("project: https://my.nci.org.au/mancini/login?next=/mancini/project/%s\n", project) +
		fmt.Sprintf("path: %s", path)

	p.Citation = "Preferred citation:\n" +
		fmt.Sprintf("<authors> (%s): %s NCI Australia. (Dataset). https://dx.doi.org/%s \n",
			p.CitationYear(), p.Title, p.DOI) +
		"If accessing from NCI thredds you can also acknowledge the service:\n" +
		thredsAcknowledgment

	p.Description = helpers.JoinParagraphs([]string{
		helpers.Paragraph(abstract),
		helpers.Paragraph(officialRecordNote),
		helpers.LabelledParagraph("Lineage", lineage),
		helpers.LabelledParagraph("Credit", credit),
		helpers.LabelledParagraph("Format", p.FFormat),
		helpers.LabelledParagraph("Classification", classification),
		helpers.LabelledParagraph("Update frequency", update),
		helpers.LabelledParagraph("Keywords", strings.Join(p.Keywords, ", ")),
		helpers.LabelledParagraph("FOR codes", strings.Join(for2008, ", ")),
	})

	return []*plan.Plan{p}, nil
}

// extractKeywords splits keyword elements into free-text terms and FOR-code
// tokens, crosswalks the codes to the 2020 classification, and returns the
// raw 2008 tokens for the description summary.
func (a *Adapter) extractKeywords(root *node, p *plan.Plan, diags *plan.DiagSink) []string {
	seen2008 := make(map[string]bool)
	var for2008 []string

	addCode := func(code, name string) {
		if code == "" || seen2008[code] {
			return
		}
		seen2008[code] = true
		for2008 = append(for2008, strings.TrimSpace(code+" "+name))
		mapped := vocab.ResolveForCodes(code)
		if len(mapped) == 0 {
			diags.Add("geonetwork", "for_codes", "no 2020 mapping for 2008 code %q", code)
			return
		}
		p.ForCodes = append(p.ForCodes, mapped...)
	}

	// Some records carry an explicit code/description pair ahead of the
	// keyword list.
	addCode(root.findText("abs_code"), root.findText("abs_code_description"))

	for _, k := range root.findAll("keyword") {
		key := k.text()
		if key == "" {
			continue
		}
		if vocab.LooksLikeForCode(key) {
			bits := strings.Fields(key)
			addCode(bits[0], strings.Join(bits[1:], " "))
		} else {
			p.Keywords = append(p.Keywords, key)
		}
	}
	return for2008
}

// extractParties keeps responsible parties on the role allow-list. A party
// is organisational when its display name equals its affiliation string;
// that is a heuristic of the source data and is reported as a diagnostic.
func (a *Adapter) extractParties(root *node, p *plan.Plan, diags *plan.DiagSink) {
	for _, rp := range root.findAll("CI_ResponsibleParty") {
		roleNode := rp.find("CI_RoleCode")
		if roleNode == nil {
			continue
		}
		role := roleNode.text()
		if role == "" {
			role = roleNode.attr("codeListValue")
		}
		if !partyRoles[role] {
			continue
		}

		party := plan.Party{
			Name:        rp.findText("individualName"),
			Affiliation: rp.findText("organisationName"),
			Role:        role,
		}
		if party.Name == party.Affiliation {
			party.Org = true
			diags.Add("geonetwork", "parties", "treating %q as organisation: name equals affiliation", party.Name)
		}
		p.Parties = append(p.Parties, party)
	}
}

// extractDates reads CI_Date elements. The joined text carries a trailing
// date-type token; the rest, truncated to ten characters, is the calendar
// date.
func (a *Adapter) extractDates(root *node, p *plan.Plan, diags *plan.DiagSink) {
	for _, d := range root.findAll("CI_Date") {
		bits := strings.Fields(d.text())
		if len(bits) < 2 {
			diags.Add("geonetwork", "dates", "CI_Date %q has no type token", d.text())
			continue
		}
		dtype := bits[len(bits)-1]
		date := strings.Join(bits[:len(bits)-1], " ")
		if len(date) > 10 {
			date = date[0:10]
		}
		p.Dates[dtype] = date
	}
}

// extractLinks tags and deduplicates every URL element in the record.
func (a *Adapter) extractLinks(root *node, p *plan.Plan) {
	for _, u := range root.findAll("URL") {
		url := u.text()
		if url == "" {
			continue
		}
		tag := helpers.TagGeonetwork
		if !strings.Contains(url, "geonetwork") {
			tag = helpers.ClassifyLink(url)
		}
		p.AddLink(tag, url)
	}
}

// extractExtents passes the bounding box and time period through as found:
// GeoNetwork already encodes bounding coordinates in decimal degrees, so no
// DMS conversion applies.
func (a *Adapter) extractExtents(root *node, p *plan.Plan, diags *plan.DiagSink) {
	for _, tok := range root.findFields("EX_GeographicBoundingBox") {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			diags.Add("geonetwork", "geospatial", "skipping non-numeric bound %q", tok)
			continue
		}
		p.Geospatial = append(p.Geospatial, v)
	}

	period := root.findFields("TimePeriod")
	if len(period) >= 2 {
		p.TimeCoverage = []string{period[0], period[1]}
	}
}
