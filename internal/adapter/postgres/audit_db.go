package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/domain"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/ports"

	"github.com/lib/pq"
	"github.com/pressly/goose"
)

// AuditRepository appends audit records to the audit_events table.
// Rows are only ever inserted; log separates the creation and rental trails.
type AuditRepository struct {
	db  *sql.DB
	log string
}

func NewAuditRepository(db *sql.DB, log string) *AuditRepository {
	return &AuditRepository{
		db:  db,
		log: log,
	}
}

func (r *AuditRepository) Append(ctx context.Context, record domain.AuditRecord) error {
	query := `INSERT INTO audit_events (id, log, event, bike_id, bike_type, catalog, first_name, last_name, line, recorded_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.ExecContext(ctx, query,
		record.ID,
		r.log,
		record.Event,
		record.BikeID,
		nullString(string(record.BikeType)),
		nullString(record.Catalog),
		nullString(record.FirstName),
		nullString(record.LastName),
		record.Line(),
		record.At,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Code {
			case "23502":
				return fmt.Errorf("%w: required audit field is missing", domain.ErrStorageUnavailable)
			case "23505":
				return fmt.Errorf("%w: audit entry %s already recorded", domain.ErrStorageUnavailable, record.ID)
			}
		}
		return fmt.Errorf("%w: insert audit entry: %v", domain.ErrStorageUnavailable, err)
	}
	return nil
}

// Lines returns the recorded lines of this log for one bike, oldest first.
func (r *AuditRepository) Lines(ctx context.Context, bikeID string) ([]string, error) {
	query := `SELECT line FROM audit_events
		WHERE log = $1 AND bike_id = $2
		ORDER BY recorded_at ASC, created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, r.log, bikeID)
	if err != nil {
		return nil, fmt.Errorf("%w: query audit entries: %v", domain.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	var lines []string
	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			return nil, fmt.Errorf("%w: scan audit entry: %v", domain.ErrStorageUnavailable, err)
		}
		lines = append(lines, line)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: read audit entries: %v", domain.ErrStorageUnavailable, err)
	}
	return lines, nil
}

// Migrate applies the audit schema migrations found in dir.
func Migrate(db *sql.DB, dir string) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

var (
	_ ports.AuditAppender = (*AuditRepository)(nil)
	_ ports.AuditReader   = (*AuditRepository)(nil)
)
