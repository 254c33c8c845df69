package querylog

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bpmghb/backend-projeto-PedroErnesto/internal/domain/querylog"
)

// PostgresRepository implements querylog.Repository using pgx.
//
// Expected schema:
//
//	CREATE TABLE travel_queries (
//	    id            UUID PRIMARY KEY,
//	    destination   TEXT NOT NULL,
//	    start_date    TEXT NOT NULL,
//	    end_date      TEXT NOT NULL,
//	    request_type  TEXT NOT NULL,
//	    request_json  TEXT NOT NULL,
//	    response_json TEXT NOT NULL,
//	    created_at    TIMESTAMPTZ NOT NULL
//	);
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Save inserts a new query row.
func (r *PostgresRepository) Save(ctx context.Context, entry querylog.Entry) (querylog.Entry, error) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO travel_queries (id, destination, start_date, end_date, request_type, request_json, response_json, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, entry.ID, entry.Destination, entry.StartDate, entry.EndDate, entry.RequestType, entry.RequestJSON, entry.ResponseJSON, entry.Timestamp)
	if err != nil {
		return querylog.Entry{}, err
	}
	return entry, nil
}

// FindByType fetches the history for one request type, newest first.
func (r *PostgresRepository) FindByType(ctx context.Context, requestType string) ([]querylog.Entry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, destination, start_date, end_date, request_type, request_json, response_json, created_at
		FROM travel_queries
		WHERE request_type = $1
		ORDER BY created_at DESC
	`, requestType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]querylog.Entry, 0)
	for rows.Next() {
		var entry querylog.Entry
		if err := rows.Scan(
			&entry.ID,
			&entry.Destination,
			&entry.StartDate,
			&entry.EndDate,
			&entry.RequestType,
			&entry.RequestJSON,
			&entry.ResponseJSON,
			&entry.Timestamp,
		); err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}

// Destinations lists the distinct destinations queried for one request type.
func (r *PostgresRepository) Destinations(ctx context.Context, requestType string) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT DISTINCT destination
		FROM travel_queries
		WHERE request_type = $1
		ORDER BY destination
	`, requestType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var destination string
		if err := rows.Scan(&destination); err != nil {
			return nil, err
		}
		out = append(out, destination)
	}
	return out, rows.Err()
}

var _ querylog.Repository = (*PostgresRepository)(nil)
