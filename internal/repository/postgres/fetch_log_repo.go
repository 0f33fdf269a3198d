package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"elevatecart/internal/domain"

	"github.com/lib/pq"
)

// undefinedTable is the Postgres error code for a missing relation.
const undefinedTable = "42P01"

type fetchLogRepository struct {
	DB *sql.DB
}

// NewFetchLogRepository returns a domain.FetchLogRepository implemented with Postgres.
func NewFetchLogRepository(db *sql.DB) domain.FetchLogRepository {
	return &fetchLogRepository{DB: db}
}

func (r *fetchLogRepository) Create(ctx context.Context, log *domain.FetchLog) error {
	query := `
		INSERT INTO catalog_fetches (page_id, endpoint_url, outcome, program_count, instance_count, duration_ms, error, fetched_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		log.PageID, log.EndpointURL, string(log.Outcome), log.ProgramCount, log.InstanceCount,
		log.DurationMs, nullString(log.Error), log.FetchedAt,
	).Scan(&log.ID)
	return wrapSchemaError(err)
}

func (r *fetchLogRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.FetchLog, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM catalog_fetches`).Scan(&total); err != nil {
		return nil, 0, wrapSchemaError(err)
	}

	query := `
		SELECT id, page_id, endpoint_url, outcome, program_count, instance_count, duration_ms, error, fetched_at
		FROM catalog_fetches
		ORDER BY fetched_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.QueryContext(ctx, query, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	logs := []*domain.FetchLog{}
	for rows.Next() {
		l := &domain.FetchLog{}
		var outcome string
		var errText sql.NullString
		if err := rows.Scan(&l.ID, &l.PageID, &l.EndpointURL, &outcome, &l.ProgramCount, &l.InstanceCount, &l.DurationMs, &errText, &l.FetchedAt); err != nil {
			return nil, 0, err
		}
		l.Outcome = domain.FetchOutcome(outcome)
		l.Error = errText.String
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func wrapSchemaError(err error) error {
	var perr *pq.Error
	if errors.As(err, &perr) && perr.Code == undefinedTable {
		return fmt.Errorf("catalog_fetches table missing, apply migrations: %w", err)
	}
	return err
}
