package jobs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func samplePostings() *Postings {
	return &Postings{Items: []*Posting{
		{ID: "1", Title: "Go Developer", Company: "Acme", Type: "full-time", Status: StatusActive, Applicants: []string{"u1", "u2"}},
		{ID: "2", Title: "QA Engineer", Company: "Globex", Type: "contract", Status: StatusClosed},
		{ID: "3", Title: "SRE", Company: "Acme", Type: "full-time", Status: StatusDraft},
		{ID: "4", Title: "Data Engineer", Company: "Initech", Type: "part-time", Status: StatusActive},
	}}
}

func ids(p *Postings) []string {
	result := make([]string, 0, p.Len())
	for _, posting := range p.Items {
		result = append(result, posting.ID)
	}
	return result
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestExcludeKeepsOrder(t *testing.T) {
	postings := samplePostings()

	removed := postings.Exclude(PostingCompanyField, []string{"Acme"})

	if !equal(removed, []string{"1", "3"}) {
		t.Fatalf("unexpected removed ids: %v", removed)
	}
	if got := ids(postings); !equal(got, []string{"2", "4"}) {
		t.Fatalf("unexpected remaining ids: %v", got)
	}
}

func TestExcludeUnknownField(t *testing.T) {
	postings := samplePostings()

	if removed := postings.Exclude("Salary", []string{""}); len(removed) != 4 {
		t.Fatalf("unknown fields read as empty strings, expected all removed, got %v", removed)
	}

	postings = samplePostings()
	if removed := postings.Exclude(PostingIDField, []string{"42"}); len(removed) != 0 {
		t.Fatalf("expected nothing removed, got %v", removed)
	}
}

func TestActive(t *testing.T) {
	postings := samplePostings()

	if got := ids(postings.Active()); !equal(got, []string{"1", "4"}) {
		t.Fatalf("unexpected active ids: %v", got)
	}
	if postings.Len() != 4 {
		t.Fatalf("Active must not modify the collection")
	}
}

func TestFindByIDAndApplicants(t *testing.T) {
	postings := samplePostings()

	found := postings.FindByID("1")
	if found == nil || found.ApplicantCount() != 2 {
		t.Fatalf("unexpected posting: %+v", found)
	}
	if postings.FindByID("missing") != nil {
		t.Fatalf("expected nil for unknown id")
	}
}

func TestSalaryString(t *testing.T) {
	tests := []struct {
		salary Salary
		want   string
	}{
		{Salary{}, "n/a"},
		{Salary{Min: 100, Currency: "USD"}, "from 100 USD"},
		{Salary{Max: 200, Currency: "EUR"}, "up to 200 EUR"},
		{Salary{Min: 100, Max: 200, Currency: "USD"}, "100-200 USD"},
	}

	for _, tt := range tests {
		if got := tt.salary.String(); got != tt.want {
			t.Fatalf("expected %q, got %q", tt.want, got)
		}
	}
}

func TestReportByCompany(t *testing.T) {
	report := samplePostings().ReportByCompany()

	if len(report["Acme"]) != 2 {
		t.Fatalf("expected 2 Acme postings, got %d", len(report["Acme"]))
	}
	if report["Globex"][0]["status"] != "closed" {
		t.Fatalf("unexpected status: %q", report["Globex"][0]["status"])
	}
}

func TestDumpToTmpFile(t *testing.T) {
	name, err := samplePostings().DumpToTmpFile()
	if err != nil {
		t.Fatalf("dumping postings: %v", err)
	}
	t.Cleanup(func() { os.Remove(name) })

	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatalf("reading dump: %v", err)
	}

	var decoded Postings
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decoding dump: %v", err)
	}
	if decoded.Len() != 4 {
		t.Fatalf("expected 4 postings, got %d", decoded.Len())
	}
}

func TestExcludedFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exclude.json")

	empty, err := LoadExcluded(path)
	if err != nil || len(empty.Items) != 0 {
		t.Fatalf("missing file should give empty list, got %+v (%v)", empty, err)
	}

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	excluded := samplePostings().ToExcluded(now)
	excluded.Append(&ExcludedPostings{Items: []*ExcludedPosting{{ID: "1"}, {ID: "9"}}})

	if got := excluded.IDs(); !equal(got, []string{"1", "2", "3", "4", "9"}) {
		t.Fatalf("unexpected ids after append: %v", got)
	}

	if err := excluded.ToFile(path); err != nil {
		t.Fatalf("writing exclude file: %v", err)
	}

	shorter := &ExcludedPostings{Items: []*ExcludedPosting{{ID: "only"}}}
	if err := shorter.ToFile(path); err != nil {
		t.Fatalf("rewriting exclude file: %v", err)
	}

	loaded, err := LoadExcluded(path)
	if err != nil {
		t.Fatalf("loading exclude file: %v", err)
	}
	if got := loaded.IDs(); !equal(got, []string{"only"}) {
		t.Fatalf("unexpected ids after rewrite: %v", got)
	}
}

func TestLoadExcludedEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exclude.json")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatalf("creating file: %v", err)
	}

	excluded, err := LoadExcluded(path)
	if err != nil || len(excluded.Items) != 0 {
		t.Fatalf("expected empty list, got %+v (%v)", excluded, err)
	}
}
