package domain

import (
	"context"
	"time"
)

// FetchOutcome classifies a catalog fetch.
type FetchOutcome string

const (
	FetchOutcomeOK         FetchOutcome = "ok"
	FetchOutcomeFetchError FetchOutcome = "fetch_error"
	FetchOutcomeParseError FetchOutcome = "parse_error"
)

// FetchLog records one catalog fetch made while rendering a page.
// swagger:model FetchLog
type FetchLog struct {
	ID            string       `json:"id"`
	PageID        string       `json:"page_id"`
	EndpointURL   string       `json:"endpoint_url"`
	Outcome       FetchOutcome `json:"outcome"`
	ProgramCount  int          `json:"program_count"`
	InstanceCount int          `json:"instance_count"`
	DurationMs    int64        `json:"duration_ms"`
	Error         string       `json:"error,omitempty"`
	FetchedAt     time.Time    `json:"fetched_at"`
}

// NewFetchLog returns a new FetchLog. ID is set by the repository on create.
func NewFetchLog(pageID, endpointURL string, outcome FetchOutcome, duration time.Duration, fetchedAt time.Time) *FetchLog {
	return &FetchLog{
		PageID:      pageID,
		EndpointURL: endpointURL,
		Outcome:     outcome,
		DurationMs:  duration.Milliseconds(),
		FetchedAt:   fetchedAt,
	}
}

// FetchLogRepository stores catalog fetch records.
type FetchLogRepository interface {
	Create(ctx context.Context, log *FetchLog) error
	List(ctx context.Context, params PaginationParams) ([]*FetchLog, int, error)
}
