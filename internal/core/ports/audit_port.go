package ports

import (
	"context"

	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/domain"
)

// AuditSink is an append-only record of bike lifecycle events.
// A failed write returns an error matching domain.ErrStorageUnavailable.
type AuditSink interface {
	RecordCreation(ctx context.Context, bike *domain.Bike, catalog *domain.Catalog) error
	RecordRental(ctx context.Context, bike *domain.Bike, firstName, lastName string) error
	RecordReturn(ctx context.Context, bike *domain.Bike, firstName, lastName string) error
}

// AuditAppender stores already-formatted records. Sinks built on a
// storage backend implement it and get AuditSink through RecordSink.
type AuditAppender interface {
	Append(ctx context.Context, record domain.AuditRecord) error
}

// AuditReader reads back the lines recorded for one bike, oldest first.
type AuditReader interface {
	Lines(ctx context.Context, bikeID string) ([]string, error)
}
