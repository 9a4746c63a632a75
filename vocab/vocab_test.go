package vocab

import (
	"errors"
	"testing"

	"github.com/coecms/zenmeta/plan"
)

func TestResolveForCodes(t *testing.T) {
	got := ResolveForCodes("040503")
	if len(got) != 1 {
		t.Fatalf("expected 1 entry for 040503, got %d", len(got))
	}
	if got[0].Code != "370803" || got[0].Name != "Physical oceanography" {
		t.Errorf("unexpected mapping: %+v", got[0])
	}
}

func TestResolveForCodesFanOut(t *testing.T) {
	got := ResolveForCodes("040104")
	if len(got) != 2 {
		t.Fatalf("expected 2 entries for 040104, got %d: %v", len(got), got)
	}
	codes := map[string]bool{}
	for _, fc := range got {
		codes[fc.Code] = true
	}
	if !codes["370201"] || !codes["370202"] {
		t.Errorf("unexpected fan-out codes: %v", got)
	}
}

func TestResolveForCodesByName(t *testing.T) {
	got := ResolveForCodes("Physical Oceanography")
	if len(got) != 1 || got[0].Code != "370803" {
		t.Errorf("name lookup failed: %v", got)
	}
}

func TestResolveForCodesUnknown(t *testing.T) {
	if got := ResolveForCodes("999999"); got != nil {
		t.Errorf("unknown code must return nil, got %v", got)
	}
	if got := ResolveForCodes(""); got != nil {
		t.Errorf("empty code must return nil, got %v", got)
	}
}

func TestLooksLikeForCode(t *testing.T) {
	if !LooksLikeForCode("040503") {
		t.Error("leading-zero token is a FOR code")
	}
	if LooksLikeForCode("ocean currents") || LooksLikeForCode("") {
		t.Error("free-text keywords are not FOR codes")
	}
}

func TestNormalizeLicenseZenodo(t *testing.T) {
	diags := &plan.DiagSink{}

	got := NormalizeLicenseZenodo("https://creativecommons.org/licenses/by/4.0/", diags)
	if got.ID != "cc-by-4.0" {
		t.Errorf("CC URL: got %q", got.ID)
	}
	if diags.Len() != 0 {
		t.Errorf("clean CC URL must not produce diagnostics: %v", diags.All())
	}

	got = NormalizeLicenseZenodo("https://creativecommons.org/licenses/by-nc-sa/4.0/", diags)
	if got.ID != "cc-by-nc-sa-4.0" {
		t.Errorf("CC variant: got %q", got.ID)
	}

	got = NormalizeLicenseZenodo("Creative Commons Attribution 4.0 International", diags)
	if got.ID != "cc-by-4.0" {
		t.Errorf("Attribution phrasing: got %q", got.ID)
	}

	before := diags.Len()
	got = NormalizeLicenseZenodo("All rights reserved", diags)
	if got.ID != "cc-by-4.0" {
		t.Errorf("fallback: got %q", got.ID)
	}
	if diags.Len() != before+1 {
		t.Error("fallback must be reported as a diagnostic")
	}
}

func TestNormalizeLicenseInvenio(t *testing.T) {
	diags := &plan.DiagSink{}

	got := NormalizeLicenseInvenio("http://creativecommons.org/licenses/by/4.0/", diags)
	if got.ID != "cc-by-4.0" || got.Description != nil {
		t.Errorf("CC URL: got %+v", got)
	}

	got = NormalizeLicenseInvenio("CSIRO Data Licence", diags)
	if got.ID != "" {
		t.Errorf("custom license must not carry an id, got %q", got.ID)
	}
	if got.Description["en"] != "CSIRO Data Licence" || got.Title["en"] != "Custom license" {
		t.Errorf("custom license: got %+v", got)
	}
	if diags.Len() == 0 {
		t.Error("custom license must be reported as a diagnostic")
	}
}

func TestMapRole(t *testing.T) {
	tests := []struct {
		role   string
		schema string
		want   string
	}{
		{"author", SchemaZenodo, "Researcher"},
		{"owner", SchemaZenodo, "RightsHolder"},
		{"funder", SchemaZenodo, "Sponsor"},
		{"principalInvestigator", SchemaZenodo, "ProjectLeader"},
		{"contact", SchemaZenodo, "ContactPerson"},
		{"author", SchemaInvenio, "other"},
		{"owner", SchemaInvenio, "rightsholder"},
		{"principalInvestigator", SchemaInvenio, "projectleader"},
		{"sponsor", SchemaInvenio, "sponsor"},
	}
	for _, tt := range tests {
		got, err := MapRole(tt.role, tt.schema)
		if err != nil {
			t.Errorf("MapRole(%q, %q): %v", tt.role, tt.schema, err)
			continue
		}
		if got != tt.want {
			t.Errorf("MapRole(%q, %q) = %q, want %q", tt.role, tt.schema, got, tt.want)
		}
	}
}

func TestMapRoleUnknown(t *testing.T) {
	_, err := MapRole("editor", SchemaZenodo)
	if err == nil {
		t.Fatal("unmapped role must be a hard error")
	}
	var unmapped *UnmappedRoleError
	if !errors.As(err, &unmapped) {
		t.Fatalf("expected *UnmappedRoleError, got %T", err)
	}
	if unmapped.Role != "editor" || unmapped.Schema != SchemaZenodo {
		t.Errorf("unexpected error detail: %+v", unmapped)
	}

	if _, err := MapRole("author", "datacite"); err == nil {
		t.Error("unknown schema must be an error")
	}
}

func TestFormatSubject(t *testing.T) {
	tests := []struct {
		fformat string
		want    string
	}{
		{"netCDF-4 classic", "netcdf"},
		{"GRIB2", "grib"},
		{"HDF5", "hdf"},
		{"GeoTIFF imagery", "geotiff"},
		{"Matlab .mat", "matlab"},
		{"um", "other binary"},
		{"UM", "other binary"},
		{"csv", "other"},
		{"", "other"},
	}
	for _, tt := range tests {
		if got := FormatSubject(tt.fformat); got != tt.want {
			t.Errorf("FormatSubject(%q) = %q, want %q", tt.fformat, got, tt.want)
		}
	}
}

func TestResolveAffiliation(t *testing.T) {
	got := ResolveAffiliation("University of New South Wales")
	if got.ID != "https://ror.org/03r8z3t63" {
		t.Errorf("name lookup: got %+v", got)
	}

	got = ResolveAffiliation("UNSW")
	if got.Name != "University of New South Wales" || got.ID == "" {
		t.Errorf("acronym lookup: got %+v", got)
	}

	got = ResolveAffiliation("CSIRO")
	if got.Name != "Commonwealth Scientific and Industrial Research Organisation" {
		t.Errorf("alias must expand before lookup: got %+v", got)
	}
	if got.ID != "https://ror.org/03qn8fb07" {
		t.Errorf("alias lookup must still resolve the id: got %+v", got)
	}

	got = ResolveAffiliation("Unlisted Institute")
	if got.Name != "Unlisted Institute" || got.ID != "" {
		t.Errorf("miss must return name-only: got %+v", got)
	}
}
