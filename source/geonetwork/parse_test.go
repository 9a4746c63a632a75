package geonetwork

import (
	"errors"
	"strings"
	"testing"

	"github.com/coecms/zenmeta/plan"
	"github.com/coecms/zenmeta/source"
)

const sampleRecord = `<?xml version="1.0" encoding="UTF-8"?>
<gmd:MD_Metadata xmlns:gmd="http://www.isotc211.org/2005/gmd" xmlns:gco="http://www.isotc211.org/2005/gco">
  <gmd:identificationInfo>
    <gmd:citation>
      <gmd:CI_Citation>
        <gmd:title><gco:CharacterString>Test Dataset</gco:CharacterString></gmd:title>
        <gmd:alternateTitle><gco:CharacterString>td-v1</gco:CharacterString></gmd:alternateTitle>
        <gmd:date>
          <gmd:CI_Date>
            <gmd:date><gco:DateTime>2020-05-01 00:00:00</gco:DateTime></gmd:date>
            <gmd:dateType><gmd:CI_DateTypeCode codeListValue="publication">publication</gmd:CI_DateTypeCode></gmd:dateType>
          </gmd:CI_Date>
        </gmd:date>
      </gmd:CI_Citation>
    </gmd:citation>
    <gmd:abstract><gco:CharacterString>An ocean state estimate.</gco:CharacterString></gmd:abstract>
    <gmd:pointOfContact>
      <gmd:CI_ResponsibleParty>
        <gmd:individualName><gco:CharacterString>Jane Bloggs</gco:CharacterString></gmd:individualName>
        <gmd:organisationName><gco:CharacterString>University of New South Wales</gco:CharacterString></gmd:organisationName>
        <gmd:role><gmd:CI_RoleCode codeListValue="author">author</gmd:CI_RoleCode></gmd:role>
      </gmd:CI_ResponsibleParty>
    </gmd:pointOfContact>
    <gmd:pointOfContact>
      <gmd:CI_ResponsibleParty>
        <gmd:individualName><gco:CharacterString>John Smith</gco:CharacterString></gmd:individualName>
        <gmd:organisationName><gco:CharacterString>Monash University</gco:CharacterString></gmd:organisationName>
        <gmd:role><gmd:CI_RoleCode codeListValue="processor">processor</gmd:CI_RoleCode></gmd:role>
      </gmd:CI_ResponsibleParty>
    </gmd:pointOfContact>
    <gmd:descriptiveKeywords>
      <gmd:MD_Keywords>
        <gmd:keyword><gco:CharacterString>040503 Physical Oceanography</gco:CharacterString></gmd:keyword>
        <gmd:keyword><gco:CharacterString>ocean currents</gco:CharacterString></gmd:keyword>
      </gmd:MD_Keywords>
    </gmd:descriptiveKeywords>
    <gmd:extent>
      <gmd:EX_Extent>
        <gmd:EX_GeographicBoundingBox>
          <gmd:westBoundLongitude><gco:Decimal>100.0</gco:Decimal></gmd:westBoundLongitude>
          <gmd:eastBoundLongitude><gco:Decimal>160.0</gco:Decimal></gmd:eastBoundLongitude>
          <gmd:southBoundLatitude><gco:Decimal>-50.0</gco:Decimal></gmd:southBoundLatitude>
          <gmd:northBoundLatitude><gco:Decimal>-5.0</gco:Decimal></gmd:northBoundLatitude>
        </gmd:EX_GeographicBoundingBox>
        <gmd:TimePeriod>
          <gmd:beginPosition>1990-01-01</gmd:beginPosition>
          <gmd:endPosition>2019-12-31</gmd:endPosition>
        </gmd:TimePeriod>
      </gmd:EX_Extent>
    </gmd:extent>
  </gmd:identificationInfo>
  <gmd:distributionInfo>
    <gmd:onLine>
      <gmd:URL>https://geonetwork.nci.org.au/geonetwork/srv/eng/catalog.search#/metadata/f123</gmd:URL>
    </gmd:onLine>
    <gmd:onLine>
      <gmd:URL>https://dapds00.nci.org.au/thredds/catalog.html</gmd:URL>
    </gmd:onLine>
  </gmd:distributionInfo>
</gmd:MD_Metadata>`

func parseSample(t *testing.T) *plan.Plan {
	t.Helper()
	a := &Adapter{}
	opts := source.NewParseOptions()
	plans, err := a.Parse(strings.NewReader(sampleRecord), opts)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(plans) != 1 {
		t.Fatalf("expected 1 plan, got %d", len(plans))
	}
	return plans[0]
}

func TestParseSampleRecord(t *testing.T) {
	p := parseSample(t)

	if p.Title != "Test Dataset" {
		t.Errorf("title: got %q", p.Title)
	}
	if p.AltTitle != "td-v1" {
		t.Errorf("alt title: got %q", p.AltTitle)
	}
	if got := p.Dates["publication"]; got != "2020-05-01" {
		t.Errorf("publication date: got %q", got)
	}
	if p.CitationYear() != "2020" {
		t.Errorf("citation year: got %q", p.CitationYear())
	}
}

func TestParsePartiesAllowList(t *testing.T) {
	p := parseSample(t)

	if len(p.Parties) != 1 {
		t.Fatalf("expected 1 party (processor dropped), got %d: %v", len(p.Parties), p.Parties)
	}
	party := p.Parties[0]
	if party.Name != "Jane Bloggs" || party.Role != "author" || party.Org {
		t.Errorf("unexpected party: %+v", party)
	}
	if party.Affiliation != "University of New South Wales" {
		t.Errorf("affiliation: got %q", party.Affiliation)
	}
}

func TestParseKeywordsAndForCodes(t *testing.T) {
	p := parseSample(t)

	if len(p.Keywords) != 1 || p.Keywords[0] != "ocean currents" {
		t.Errorf("keywords: got %v", p.Keywords)
	}
	if len(p.ForCodes) != 1 || p.ForCodes[0].Code != "370803" {
		t.Errorf("for codes: got %v", p.ForCodes)
	}
}

func TestParseExtents(t *testing.T) {
	p := parseSample(t)

	want := []float64{100.0, 160.0, -50.0, -5.0}
	if len(p.Geospatial) != 4 {
		t.Fatalf("geospatial: got %v", p.Geospatial)
	}
	for i, v := range want {
		if p.Geospatial[i] != v {
			t.Errorf("geospatial[%d] = %v, want %v", i, p.Geospatial[i], v)
		}
	}
	if len(p.TimeCoverage) != 2 || p.TimeCoverage[0] != "1990-01-01" || p.TimeCoverage[1] != "2019-12-31" {
		t.Errorf("time coverage: got %v", p.TimeCoverage)
	}
}

func TestParseLinks(t *testing.T) {
	p := parseSample(t)

	tags := map[string]string{}
	for _, l := range p.Links {
		tags[l.Tag] = l.URL
	}
	if !strings.Contains(tags["geonetwork"], "geonetwork") {
		t.Errorf("geonetwork link missing: %v", p.Links)
	}
	if !strings.Contains(tags["TDS"], "thredds") {
		t.Errorf("thredds link missing: %v", p.Links)
	}
}

func TestParseMissingTitle(t *testing.T) {
	a := &Adapter{}
	record := `<gmd:MD_Metadata xmlns:gmd="http://www.isotc211.org/2005/gmd"></gmd:MD_Metadata>`
	_, err := a.Parse(strings.NewReader(record), source.NewParseOptions())
	if err == nil {
		t.Fatal("expected missing-fields error")
	}
	var missing *source.MissingFieldsError
	if !errors.As(err, &missing) {
		t.Fatalf("expected *MissingFieldsError, got %T: %v", err, err)
	}
	if len(missing.Fields) != 1 || missing.Fields[0] != "title" {
		t.Errorf("unexpected fields: %v", missing.Fields)
	}
}

func TestCanParse(t *testing.T) {
	a := &Adapter{}
	if !a.CanParse([]byte(sampleRecord)) {
		t.Error("sample record must be recognised")
	}
	if a.CanParse([]byte(`{"dataCollectionId": 1}`)) {
		t.Error("JSON input must be rejected")
	}
	if a.CanParse([]byte("")) {
		t.Error("empty input must be rejected")
	}
}
