package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across services and delivery. Match with errors.Is.
var (
	ErrNotFound               = errors.New("not found")
	ErrInvalidInput           = errors.New("invalid input")
	ErrDuplicateItem          = errors.New("duplicate item")
	ErrFetch                  = errors.New("catalog fetch failed")
	ErrParse                  = errors.New("catalog payload malformed")
	ErrAmbiguousGroupIdentity = errors.New("ambiguous group identity")
)

// FetchError reports a failure to reach the catalog endpoint: transport errors,
// timeouts and non-200 responses.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch catalog %s: status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch catalog %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

func (e *FetchError) Is(target error) bool { return target == ErrFetch }

// ParseError reports a catalog payload that could not be decoded or does not
// have the expected shape.
type ParseError struct {
	URL string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse catalog %s: %v", e.URL, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// AmbiguousGroupIdentityError is returned when instances matched by one group
// selector carry different group records.
type AmbiguousGroupIdentityError struct {
	First       Group
	Conflicting Group
}

func (e *AmbiguousGroupIdentityError) Error() string {
	return fmt.Sprintf("group identity mismatch: %q (%s/%s) vs %q (%s/%s)",
		e.First.Title, e.First.ID, e.First.Code,
		e.Conflicting.Title, e.Conflicting.ID, e.Conflicting.Code)
}

func (e *AmbiguousGroupIdentityError) Is(target error) bool {
	return target == ErrAmbiguousGroupIdentity
}
