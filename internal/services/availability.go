package services

import (
	"fmt"
	"strings"
	"time"

	"elevatecart/internal/domain"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	registrationServiceCode  = "ONLINE_REG"
	registrationServiceTitle = "Enroll and Pay"
	openStatusCode           = "CI_OPEN"
	unknownMethod            = "Unknown"

	// catalogDateLayout parses dates such as 24-OCT-2024. Month names match
	// case-insensitively.
	catalogDateLayout = "2-Jan-2006"
)

// IsFull reports whether no regular places are left.
func IsFull(inst *domain.ProgramInstance) bool {
	return inst.PlacesLeft <= 0
}

// IsWaitlistFull reports whether no waitlist places are left.
func IsWaitlistFull(inst *domain.ProgramInstance) bool {
	return inst.WaitlistPlacesLeft <= 0
}

// FriendlyFee returns the instance fee as US currency, or "Free".
func FriendlyFee(inst *domain.ProgramInstance) string {
	if inst.Fee > 0 {
		return FormatCurrency(inst.Fee)
	}
	return "Free"
}

// FormatCurrency formats an amount as $1,234.50.
func FormatCurrency(amount float64) string {
	p := message.NewPrinter(language.AmericanEnglish)
	return p.Sprintf("$%.2f", amount)
}

// InstructionalMethod returns the instance delivery format, falling back to
// the owning program and then to "Unknown".
func InstructionalMethod(inst *domain.ProgramInstance) string {
	if m := inst.InstructionalMethod; m != nil && m.Title != "" {
		return m.Title
	}
	if p := inst.Program; p != nil && p.InstructionalMethod != nil && p.InstructionalMethod.Title != "" {
		return p.InstructionalMethod.Title
	}
	return unknownMethod
}

// RegistrationService returns the first "Enroll and Pay" ONLINE_REG service.
// Later matches are ignored.
func RegistrationService(inst *domain.ProgramInstance) (domain.Service, bool) {
	for _, s := range inst.Services {
		if s.Code == registrationServiceCode && s.Title == registrationServiceTitle {
			return s, true
		}
	}
	return domain.Service{}, false
}

// EnrollmentClosed reports whether enrollment is closed at now. Without a
// registration service the status code decides; with one, now must fall inside
// its window (inclusive, compared by calendar day). A window with a missing or
// unreadable date is not enforced.
func EnrollmentClosed(inst *domain.ProgramInstance, now time.Time) bool {
	svc, ok := RegistrationService(inst)
	if !ok {
		return inst.Status.Code != openStatusCode
	}
	loc := now.Location()
	start, okStart := parseCatalogDate(svc.StartDate, loc)
	end, okEnd := parseCatalogDate(svc.EndDate, loc)
	if !okStart || !okEnd {
		return false
	}
	today := truncateToDay(now)
	return today.After(end) || today.Before(start)
}

// Evaluate returns the availability state of inst at now. Closed wins over
// seat counts.
func Evaluate(inst *domain.ProgramInstance, now time.Time) domain.AvailabilityState {
	switch {
	case EnrollmentClosed(inst, now):
		return domain.AvailabilityClosed
	case IsFull(inst) && IsWaitlistFull(inst):
		return domain.AvailabilityFullNoWaitlist
	case IsFull(inst):
		return domain.AvailabilityFullWaitlistOpen
	default:
		return domain.AvailabilityOpen
	}
}

// ActionFor maps an availability state to the purchase action it allows.
func ActionFor(state domain.AvailabilityState) domain.Action {
	switch state {
	case domain.AvailabilityOpen:
		return domain.ActionRegister
	case domain.AvailabilityFullWaitlistOpen:
		return domain.ActionJoinWaitlist
	default:
		return domain.ActionNone
	}
}

// StatusMessage is the informational line shown on an instance card.
func StatusMessage(inst *domain.ProgramInstance, state domain.AvailabilityState) string {
	switch state {
	case domain.AvailabilityClosed:
		return "Enrollment is closed."
	case domain.AvailabilityFullNoWaitlist:
		return "No seats available. Waitlist is also full."
	case domain.AvailabilityFullWaitlistOpen:
		return fmt.Sprintf("No seats available. %s left on waitlist.", pluralize(inst.WaitlistPlacesLeft, "place", "places"))
	default:
		return fmt.Sprintf("Course is open with %s left.", pluralize(inst.PlacesLeft, "place", "places"))
	}
}

// FriendlySectionFeeTotal sums the fee records of a section.
func FriendlySectionFeeTotal(section domain.Section) float64 {
	var total float64
	for _, f := range section.Fees {
		total += f.Amount
	}
	return total
}

// DedupeTutorials drops structurally equal repeats, keeping first occurrences
// in order.
func DedupeTutorials(tutorials []domain.Tutorial) []domain.Tutorial {
	seen := make(map[domain.Tutorial]struct{}, len(tutorials))
	out := make([]domain.Tutorial, 0, len(tutorials))
	for _, t := range tutorials {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// SectionCountLabel renders "1 class section included" / "N class sections included".
func SectionCountLabel(n int) string {
	return pluralize(n, "class section", "class sections") + " included"
}

func pluralize(n int, one, many string) string {
	if n > 1 {
		return fmt.Sprintf("%d %s", n, many)
	}
	return fmt.Sprintf("%d %s", n, one)
}

func parseCatalogDate(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(catalogDateLayout, s, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
