// Package jobs holds the job posting model read by the matcher, plus loading and exclusion helpers.
package jobs

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

const (
	PostingIDField      = "ID"
	PostingCompanyField = "Company"
	PostingTypeField    = "Type"
)

type Status string

const (
	StatusActive Status = "active"
	StatusClosed Status = "closed"
	StatusDraft  Status = "draft"
)

type Postings struct {
	Items []*Posting `json:"items"`
}

type Posting struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	Location     string    `json:"location"`
	Type         string    `json:"type"`
	Description  string    `json:"description"`
	Requirements []string  `json:"requirements"`
	Salary       Salary    `json:"salary"`
	Status       Status    `json:"status"`
	Applicants   []string  `json:"applicants"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Salary struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}

func (s Salary) String() string {
	switch {
	case s.Min == 0 && s.Max == 0:
		return "n/a"
	case s.Max == 0:
		return fmt.Sprintf("from %d %s", s.Min, s.Currency)
	case s.Min == 0:
		return fmt.Sprintf("up to %d %s", s.Max, s.Currency)
	default:
		return fmt.Sprintf("%d-%d %s", s.Min, s.Max, s.Currency)
	}
}

func (p *Posting) IsActive() bool {
	return p.Status == StatusActive
}

func (p *Posting) ApplicantCount() int {
	return len(p.Applicants)
}

func (p *Posting) GetStringField(name string) string {
	switch name {
	case PostingIDField:
		return p.ID
	case PostingCompanyField:
		return p.Company
	case PostingTypeField:
		return p.Type
	default:
		return ""
	}
}

func (p *Postings) Len() int {
	return len(p.Items)
}

func (p *Postings) FindByID(id string) *Posting {
	for _, posting := range p.Items {
		if posting.ID == id {
			return posting
		}
	}
	return nil
}

// Active returns the active postings in their original order.
func (p *Postings) Active() *Postings {
	active := &Postings{Items: make([]*Posting, 0, len(p.Items))}
	for _, posting := range p.Items {
		if posting.IsActive() {
			active.Items = append(active.Items, posting)
		}
	}
	return active
}

// Exclude removes postings whose field equals any target and returns the removed IDs.
// The remaining postings keep their order.
func (p *Postings) Exclude(field string, targets []string) []string {
	return p.Retain(func(posting *Posting) bool {
		value := posting.GetStringField(field)
		for _, target := range targets {
			if value == target {
				return false
			}
		}
		return true
	})
}

// Retain keeps postings for which keep returns true and returns the IDs of the removed ones.
func (p *Postings) Retain(keep func(*Posting) bool) []string {
	var removed []string
	kept := p.Items[:0]

	for _, posting := range p.Items {
		if keep(posting) {
			kept = append(kept, posting)
			continue
		}
		removed = append(removed, posting.ID)
	}

	clear(p.Items[len(kept):])
	p.Items = kept
	return removed
}

// ReportByCompany groups postings by company for a quick overview.
func (p *Postings) ReportByCompany() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, posting := range p.Items {
		report[posting.Company] = append(report[posting.Company], map[string]string{
			"id":           posting.ID,
			"title":        posting.Title,
			"location":     posting.Location,
			"type":         posting.Type,
			"salary":       posting.Salary.String(),
			"status":       string(posting.Status),
			"requirements": fmt.Sprintf("%d", len(posting.Requirements)),
		})
	}
	return report
}

func (p *Postings) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "postings_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return "", err
	}
	return file.Name(), nil
}
