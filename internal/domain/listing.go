package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// MatchMethod selects which group field a selector compares against.
type MatchMethod string

const (
	MatchByID   MatchMethod = "id"
	MatchByCode MatchMethod = "code"
)

// ParseMatchMethod accepts the editor names (id, code) and the long forms
// (byId, byCode).
func ParseMatchMethod(s string) (MatchMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "id", "byid":
		return MatchByID, nil
	case "code", "bycode":
		return MatchByCode, nil
	}
	return "", fmt.Errorf("%w: unknown match method %q", ErrInvalidInput, s)
}

// GroupSelector picks the instances of one group from a catalog.
type GroupSelector struct {
	MatchMethod MatchMethod `json:"match_method"`
	MatchValue  string      `json:"match_value"`
}

// UnmarshalJSON reads both the API form {match_method, match_value} and the CMS
// editor form {"match-method": "code", "course-stream-code": "FALL25"}.
func (g *GroupSelector) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	field := func(keys ...string) (string, bool, error) {
		for _, k := range keys {
			v, ok := raw[k]
			if !ok {
				continue
			}
			var s FlexString
			if err := json.Unmarshal(v, &s); err != nil {
				return "", true, fmt.Errorf("%w: group selector %q: %v", ErrInvalidInput, k, err)
			}
			return string(s), true, nil
		}
		return "", false, nil
	}

	method, _, err := field("match_method", "match-method")
	if err != nil {
		return err
	}
	m, err := ParseMatchMethod(method)
	if err != nil {
		return err
	}
	value, ok, err := field("match_value", "course-stream-"+string(m))
	if err != nil {
		return err
	}
	if !ok || value == "" {
		return fmt.Errorf("%w: group selector has no value for %s", ErrInvalidInput, m)
	}
	g.MatchMethod = m
	g.MatchValue = value
	return nil
}

// DefaultNoCoursesMessage is shown for a group with no offerings.
const DefaultNoCoursesMessage = "There are no course offerings at this time. Please check back later."

// PageConfig is the per-page listing configuration.
type PageConfig struct {
	ID               string          `json:"id"`
	EndpointURL      string          `json:"endpoint_url"`
	Groups           []GroupSelector `json:"groups"`
	NoCoursesMessage string          `json:"no_courses_message"`
}

// PageRepository looks up configured pages.
type PageRepository interface {
	GetByID(ctx context.Context, id string) (*PageConfig, error)
}

// AvailabilityState is the composite availability of an instance.
type AvailabilityState string

const (
	AvailabilityClosed           AvailabilityState = "Closed"
	AvailabilityFullNoWaitlist   AvailabilityState = "Full-NoWaitlist"
	AvailabilityFullWaitlistOpen AvailabilityState = "Full-WaitlistOpen"
	AvailabilityOpen             AvailabilityState = "Open"
)

// Action is the call to action offered for an availability state.
type Action string

const (
	ActionRegister     Action = "register"
	ActionJoinWaitlist Action = "join_waitlist"
	ActionNone         Action = "none"
)

// TutorialView is a display-ready class meeting.
type TutorialView struct {
	DateRange   string `json:"date_range"`
	Days        string `json:"days"`
	MeetingTime string `json:"meeting_time"`
	Tutor       string `json:"tutor"`
}

// SectionView is a display-ready section.
type SectionView struct {
	ObjectID     string         `json:"id"`
	SectionID    string         `json:"section_id"`
	Title        string         `json:"title"`
	SummaryBrief string         `json:"summary_brief,omitempty"`
	SummaryLong  string         `json:"summary_long,omitempty"`
	Credits      float64        `json:"credits"`
	FeeTotal     float64        `json:"fee_total"`
	FriendlyFee  string         `json:"friendly_fee"`
	Tutorials    []TutorialView `json:"tutorials"`
}

// InstanceView is an availability-annotated program instance, rendered as a card.
type InstanceView struct {
	ObjectID            string            `json:"id"`
	Code                string            `json:"code"`
	ProgramInstanceID   string            `json:"program_instance_id"`
	Title               string            `json:"title"`
	SummaryBrief        string            `json:"summary_brief"`
	SummaryLong         string            `json:"summary_long"`
	Fee                 float64           `json:"fee"`
	FriendlyFee         string            `json:"friendly_fee"`
	Credits             float64           `json:"credits"`
	SectionCount        int               `json:"section_count"`
	PlacesLeft          int               `json:"places_left"`
	WaitlistPlacesLeft  int               `json:"waitlist_places_left"`
	InstructionalMethod string            `json:"instructional_method"`
	Availability        AvailabilityState `json:"availability"`
	Action              Action            `json:"action"`
	StatusMessage       string            `json:"status_message"`
	Sections            []SectionView     `json:"sections"`
	// Sections as they would be snapshotted into a cart item.
	CartSections []Section `json:"cart_sections"`
}

// GroupListing is the render-ready result for one configured group. Group is
// nil when no instance matched; Message then carries the empty-group text.
type GroupListing struct {
	Selector  GroupSelector   `json:"selector"`
	Group     *Group          `json:"group"`
	Message   string          `json:"message,omitempty"`
	Instances []*InstanceView `json:"instances"`
}

// ListingService turns a page configuration into grouped listings.
type ListingService interface {
	ListGroups(ctx context.Context, page *PageConfig) ([]*GroupListing, error)
}
