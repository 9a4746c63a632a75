package csiro

import "github.com/coecms/zenmeta/source"

// Document is the DAP collection record as delivered by the portal API.
// Required fields are validated by validate; everything else is optional and
// degrades to an empty value in the Plan.
type Document struct {
	DataCollectionID      int64             `json:"dataCollectionId"`
	Title                 string            `json:"title"`
	Description           string            `json:"description"`
	DOI                   string            `json:"doi"`
	Licence               string            `json:"licence"`
	LicenceLink           *Href             `json:"licenceLink"`
	Keywords              string            `json:"keywords"`
	FieldsOfResearch      []string          `json:"fieldsOfResearch"`
	CollectionContentType string            `json:"collectionContentType"`
	AllNames              []PartyName       `json:"allNames"`
	LeadResearcher        string            `json:"leadResearcher"`
	Contact               *Contact          `json:"contact"`
	Organisations         []string          `json:"organisations"`
	OrganisationalLevels  map[string]string `json:"organisationalLevels"`
	SpatialParameters     map[string]string `json:"spatialParameters"`
	DataStartDate         string            `json:"dataStartDate"`
	DataEndDate           string            `json:"dataEndDate"`
	Published             string            `json:"published"`
	AttributionStatement  string            `json:"attributionStatement"`
	Lineage               string            `json:"lineage"`
	Credit                string            `json:"credit"`
	Size                  string            `json:"size"`
	Access                string            `json:"access"`
	AccessLevel           string            `json:"accessLevel"`
	Rights                string            `json:"rights"`
	DataRestricted        bool              `json:"dataRestricted"`
	Project               *Project          `json:"project"`
	LandingPage           *Href             `json:"landingPage"`
	RelatedLinks          []RelatedLink     `json:"relatedLinks"`
}

// Href wraps the portal's link objects.
type Href struct {
	Href string `json:"href"`
}

// PartyName is one entry of the allNames list. Type distinguishes persons
// from organisations; Display is the form matched against contact and lead
// researcher names.
type PartyName struct {
	Name    string `json:"name"`
	Display string `json:"display"`
	Type    string `json:"type"`
	OrcidID string `json:"orcidId"`
}

// Contact holds the collection's contact details.
type Contact struct {
	ContactName  string `json:"contactName"`
	ContactEmail string `json:"contactEmail"`
}

// Project holds the owning project reference.
type Project struct {
	ProjectTitle string `json:"projectTitle"`
}

// RelatedLink is one entry of relatedLinks.
type RelatedLink struct {
	Type    string `json:"type"`
	Address string `json:"address"`
}

// validate reports every missing required field at once.
func (d *Document) validate() error {
	var missing []string
	if d.DataCollectionID == 0 {
		missing = append(missing, "dataCollectionId")
	}
	if d.Title == "" {
		missing = append(missing, "title")
	}
	if d.Licence == "" {
		missing = append(missing, "licence")
	}
	if len(d.AllNames) == 0 {
		missing = append(missing, "allNames")
	}
	if len(d.SpatialParameters) == 0 {
		missing = append(missing, "spatialParameters")
	}
	if d.Published == "" {
		missing = append(missing, "published")
	}
	if len(missing) > 0 {
		return &source.MissingFieldsError{Source: "csiro", Fields: missing}
	}
	return nil
}
