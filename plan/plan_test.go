package plan

import (
	"testing"
	"time"
)

func TestDedupe(t *testing.T) {
	parties := []Party{
		{Name: "Jane Bloggs", Role: "author", Affiliation: "UNSW"},
		{Name: "Jane Bloggs", Role: "author", Affiliation: "UNSW"},
		{Name: "Jane Bloggs", Role: "contact", Affiliation: "UNSW"},
		{Name: "CSIRO", Role: "owner", Org: true},
	}

	got := Dedupe(parties)
	if len(got) != 3 {
		t.Fatalf("expected 3 distinct parties, got %d: %v", len(got), got)
	}

	// A second pass changes nothing.
	again := Dedupe(got)
	if len(again) != len(got) {
		t.Errorf("dedupe not idempotent: %d then %d", len(got), len(again))
	}
}

func TestDedupeKeepsDistinctTuples(t *testing.T) {
	parties := []Party{
		{Name: "Jane Bloggs", Role: "author"},
		{Name: "Jane Bloggs", Role: "author", Org: true},
		{Name: "Jane Bloggs", Role: "author", Affiliation: "UNSW"},
	}
	got := Dedupe(parties)
	if len(got) != 3 {
		t.Errorf("parties differing in one attribute must all survive, got %d", len(got))
	}
}

func TestResolveDate(t *testing.T) {
	p := New()
	p.Dates["publication"] = "2020-05-01"
	p.Dates["creation"] = "2019-01-01"
	if got := p.ResolveDate(); got != "2020-05-01" {
		t.Errorf("expected publication date, got %q", got)
	}

	delete(p.Dates, "publication")
	if got := p.ResolveDate(); got != "2019-01-01" {
		t.Errorf("expected creation date, got %q", got)
	}

	delete(p.Dates, "creation")
	today := time.Now().Format("2006-01-02")
	if got := p.ResolveDate(); got != today {
		t.Errorf("expected today %q, got %q", today, got)
	}
}

func TestCitationYear(t *testing.T) {
	p := New()
	if got := p.CitationYear(); got != YearPlaceholder {
		t.Errorf("expected %q placeholder, got %q", YearPlaceholder, got)
	}

	p.Dates["creation"] = "2019-01-01"
	if got := p.CitationYear(); got != "2019" {
		t.Errorf("expected creation year, got %q", got)
	}

	p.Dates["publication"] = "2020-05-01"
	if got := p.CitationYear(); got != "2020" {
		t.Errorf("expected publication year, got %q", got)
	}
}

func TestAddLink(t *testing.T) {
	p := New()
	p.AddLink("TDS", "https://example.org/thredds")
	p.AddLink("TDS", "https://example.org/thredds")
	p.AddLink("other", "https://example.org/thredds")
	if len(p.Links) != 2 {
		t.Errorf("expected 2 links, got %d: %v", len(p.Links), p.Links)
	}
}

func TestDiagSinkNil(t *testing.T) {
	var sink *DiagSink
	sink.Add("test", "field", "dropped %d", 1)
	if sink.Len() != 0 || sink.All() != nil {
		t.Error("nil sink must drop diagnostics")
	}
}

func TestDiagSinkCollects(t *testing.T) {
	sink := &DiagSink{}
	sink.Add("csiro", "name", "could not split %q", "Plato")
	if sink.Len() != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", sink.Len())
	}
	d := sink.All()[0]
	if d.Component != "csiro" || d.Field != "name" || d.Message != `could not split "Plato"` {
		t.Errorf("unexpected diagnostic: %+v", d)
	}
}
