package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/domain"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

// StreamAdapter appends audit records to a Redis stream. XADD is atomic
// per entry, so a record is never split across entries.
type StreamAdapter struct {
	client   *redis.Client
	stream   string
	maxLen   int64
	pageSize int64
}

const defaultPageSize = 500

// NewStreamAdapter writes to stream. A positive maxLen caps the stream
// approximately; zero keeps every entry.
func NewStreamAdapter(client *redis.Client, stream string, maxLen int64) *StreamAdapter {
	return &StreamAdapter{
		client:   client,
		stream:   stream,
		maxLen:   maxLen,
		pageSize: defaultPageSize,
	}
}

func (r *StreamAdapter) Append(ctx context.Context, record domain.AuditRecord) error {
	args := &redis.XAddArgs{
		Stream: r.stream,
		Values: recordValues(record),
	}
	if r.maxLen > 0 {
		args.MaxLen = r.maxLen
		args.Approx = true
	}
	if err := r.client.XAdd(ctx, args).Err(); err != nil {
		return fmt.Errorf("%w: xadd %s: %v", domain.ErrStorageUnavailable, r.stream, err)
	}
	return nil
}

// Lines returns the lines recorded for bikeID, oldest first. The stream is
// read pageSize entries at a time.
func (r *StreamAdapter) Lines(ctx context.Context, bikeID string) ([]string, error) {
	var lines []string
	start := "-"
	for {
		msgs, err := r.client.XRangeN(ctx, r.stream, start, "+", r.pageSize).Result()
		if err != nil {
			return nil, fmt.Errorf("%w: xrange %s: %v", domain.ErrStorageUnavailable, r.stream, err)
		}
		for _, msg := range msgs {
			if fmt.Sprint(msg.Values["bike_id"]) != bikeID {
				continue
			}
			if line, ok := msg.Values["line"].(string); ok {
				lines = append(lines, line)
			}
		}
		if int64(len(msgs)) < r.pageSize {
			return lines, nil
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		// Exclusive start, Redis 6.2+.
		start = "(" + msgs[len(msgs)-1].ID
	}
}

func recordValues(record domain.AuditRecord) map[string]interface{} {
	values := map[string]interface{}{
		"id":          record.ID.String(),
		"event":       string(record.Event),
		"bike_id":     record.BikeID,
		"line":        record.Line(),
		"recorded_at": record.At.Format(time.RFC3339Nano),
	}
	if record.BikeType != "" {
		values["bike_type"] = string(record.BikeType)
	}
	if record.Catalog != "" {
		values["catalog"] = record.Catalog
	}
	if record.FirstName != "" {
		values["first_name"] = record.FirstName
	}
	if record.LastName != "" {
		values["last_name"] = record.LastName
	}
	return values
}

var (
	_ ports.AuditAppender = (*StreamAdapter)(nil)
	_ ports.AuditReader   = (*StreamAdapter)(nil)
)
