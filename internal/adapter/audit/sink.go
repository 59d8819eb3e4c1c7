// Package audit turns storage appenders into the rental audit trail.
package audit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/domain"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/ports"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// RecordSink formats lifecycle events into records and hands them to an appender.
type RecordSink struct {
	name     string
	appender ports.AuditAppender
	logger   ports.LoggerPort
	now      func() time.Time
	tracer   trace.Tracer
}

type Option func(*RecordSink)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *RecordSink) { s.now = now }
}

func NewRecordSink(name string, appender ports.AuditAppender, logger ports.LoggerPort, opts ...Option) *RecordSink {
	s := &RecordSink{
		name:     name,
		appender: appender,
		logger:   logger,
		now:      time.Now,
		tracer:   otel.Tracer("webike/audit"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RecordSink) RecordCreation(ctx context.Context, bike *domain.Bike, catalog *domain.Catalog) error {
	return s.append(ctx, domain.NewCreationRecord(bike, catalog, s.now()))
}

func (s *RecordSink) RecordRental(ctx context.Context, bike *domain.Bike, firstName, lastName string) error {
	return s.append(ctx, domain.NewRentalRecord(bike, firstName, lastName, s.now()))
}

func (s *RecordSink) RecordReturn(ctx context.Context, bike *domain.Bike, firstName, lastName string) error {
	return s.append(ctx, domain.NewReturnRecord(bike, firstName, lastName, s.now()))
}

func (s *RecordSink) append(ctx context.Context, record domain.AuditRecord) error {
	ctx, span := s.tracer.Start(ctx, "audit.append",
		trace.WithAttributes(
			attribute.String("audit.log", s.name),
			attribute.String("audit.event", string(record.Event)),
			attribute.String("bike.id", record.BikeID),
		),
	)
	defer span.End()

	if err := s.appender.Append(ctx, record); err != nil {
		s.logger.Error("Failed to write audit entry", map[string]interface{}{
			"log":     s.name,
			"event":   string(record.Event),
			"bike_id": record.BikeID,
			"error":   err.Error(),
		})
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if errors.Is(err, domain.ErrStorageUnavailable) {
			return err
		}
		return fmt.Errorf("%w: unable to record operation: %v", domain.ErrStorageUnavailable, err)
	}

	s.logger.Debug("Audit entry recorded", map[string]interface{}{
		"log":     s.name,
		"event":   string(record.Event),
		"bike_id": record.BikeID,
	})
	return nil
}

var _ ports.AuditSink = (*RecordSink)(nil)
