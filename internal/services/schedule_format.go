package services

import (
	"io"
	"strings"
	"time"

	"golang.org/x/net/html"
)

var dayLetters = map[string]string{
	"monday":    "M",
	"tuesday":   "T",
	"wednesday": "W",
	"thursday":  "R",
	"friday":    "F",
	"saturday":  "S",
	"sunday":    "U",
}

// FriendlyDaysOfWeek abbreviates "Monday, Thursday" to "MR". Unknown names are
// kept as written.
func FriendlyDaysOfWeek(days string) string {
	var b strings.Builder
	for _, d := range strings.Split(days, ",") {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		if l, ok := dayLetters[strings.ToLower(d)]; ok {
			b.WriteString(l)
			continue
		}
		b.WriteString(d)
	}
	return b.String()
}

// FriendlyMeetingTime converts "18:00 - 21:00" to "6:00 PM - 9:00 PM". Input
// that is not two HH:MM values separated by " - " is returned unchanged.
func FriendlyMeetingTime(r string) string {
	start, end, ok := strings.Cut(r, " - ")
	if !ok {
		return r
	}
	s, err := time.Parse("15:04", strings.TrimSpace(start))
	if err != nil {
		return r
	}
	e, err := time.Parse("15:04", strings.TrimSpace(end))
	if err != nil {
		return r
	}
	return s.Format("3:04 PM") + " - " + e.Format("3:04 PM")
}

// FriendlyDateRange converts catalog dates (05-MAR-2025) to
// "Mar 5, 2025 - Mar 12, 2025". Unreadable dates are kept as written.
func FriendlyDateRange(start, end string) string {
	return friendlyDate(start) + " - " + friendlyDate(end)
}

func friendlyDate(s string) string {
	t, ok := parseCatalogDate(s, time.UTC)
	if !ok {
		return s
	}
	return t.Format("Jan 2, 2006")
}

// PlainText strips markup from catalog summaries, collapsing whitespace.
func PlainText(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return strings.Join(strings.Fields(s), " ")
	}
	z := html.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	for {
		switch z.Next() {
		case html.ErrorToken:
			if z.Err() == io.EOF {
				return strings.Join(strings.Fields(b.String()), " ")
			}
			return strings.Join(strings.Fields(s), " ")
		case html.TextToken:
			b.Write(z.Text())
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			// Tags separate words.
			b.WriteByte(' ')
		}
	}
}
