package domain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

// FlexString is a string that also accepts JSON numbers. The catalog feed and
// editor configuration use both for group identifiers.
type FlexString string

func (s *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*s = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = FlexString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", b)
	}
	*s = FlexString(n.String())
	return nil
}

func (s FlexString) String() string { return string(s) }

// CatalogDocument is the root of a catalog payload.
type CatalogDocument struct {
	Programs []*Program `json:"programs"`
}

// Program is a catalog program owning an ordered list of instances.
type Program struct {
	ID                  FlexString           `json:"id"`
	Title               string               `json:"title"`
	InstructionalMethod *InstructionalMethod `json:"instructional_method,omitempty"`
	Instances           []*ProgramInstance   `json:"program_instances"`
}

// Group is a course stream. Every program instance references one.
type Group struct {
	ID    FlexString `json:"id"`
	Code  string     `json:"code"`
	Title string     `json:"title"`
}

// Status is the catalog status record of an instance (CI_OPEN when open).
type Status struct {
	Code  string `json:"code"`
	Title string `json:"title,omitempty"`
}

// InstructionalMethod describes how an instance or program is delivered.
type InstructionalMethod struct {
	Code  string `json:"code,omitempty"`
	Title string `json:"title"`
}

// Service is an online capability enabled for an instance, e.g. the
// registration window (ONLINE_REG, "Enroll and Pay").
type Service struct {
	Code      string `json:"code"`
	Title     string `json:"title"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

// Fee is a single fee record of a section.
type Fee struct {
	Amount float64 `json:"amount"`
}

// Tutorial is one scheduled class meeting. All fields are comparable so two
// tutorials are structurally equal iff t1 == t2.
type Tutorial struct {
	DaysOfTheWeek string `json:"days_of_the_week"`
	TutorialTime  string `json:"tutorial_time"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	Tutor         string `json:"tutor"`
}

// Section is a purchasable unit within an instance.
type Section struct {
	ObjectID     FlexString `json:"id"`
	SectionID    string     `json:"section_id"`
	Title        string     `json:"section_title"`
	SummaryBrief string     `json:"section_summary_brief,omitempty"`
	SummaryLong  string     `json:"section_summary_long,omitempty"`
	Credits      float64    `json:"credits"`
	Fees         []Fee      `json:"fees"`
	Tutorials    []Tutorial `json:"tutorials"`
}

// ProgramInstance is one scheduled offering of a program.
type ProgramInstance struct {
	ObjectID            FlexString           `json:"id"`
	Code                string               `json:"code"`
	ProgramInstanceID   string               `json:"program_instance_id"`
	Title               string               `json:"program_instance_title"`
	SummaryBrief        string               `json:"program_instance_summary_brief,omitempty"`
	SummaryLong         string               `json:"program_instance_summary_long,omitempty"`
	Fee                 float64              `json:"fee"`
	Credits             float64              `json:"credits"`
	PlacesLeft          int                  `json:"places_left"`
	WaitlistPlacesLeft  int                  `json:"waitlist_places_left"`
	Status              Status               `json:"status"`
	InstructionalMethod *InstructionalMethod `json:"instructional_method,omitempty"`
	Group               *Group               `json:"course_stream,omitempty"`
	Services            []Service            `json:"services"`
	Sections            []Section            `json:"sections"`

	// Program is the owning program, set when the document is linked.
	Program *Program `json:"-"`
}

// Link sets the Program back-reference of every instance in the document.
func (d *CatalogDocument) Link() {
	for _, p := range d.Programs {
		if p == nil {
			continue
		}
		for _, inst := range p.Instances {
			if inst != nil {
				inst.Program = p
			}
		}
	}
}

// CatalogFetcher fetches a catalog document from an endpoint (or a test double).
type CatalogFetcher interface {
	Fetch(ctx context.Context, endpointURL string) (*CatalogDocument, error)
}
