package redis

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/domain"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *redis.Client {
	t.Helper()
	addr := os.Getenv("REDIS_ADDRESS")
	if addr == "" {
		addr = "localhost:6379"
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("redis not reachable at %s: %v", addr, err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

func TestRecordValues(t *testing.T) {
	at := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	record := domain.AuditRecord{
		ID:        uuid.New(),
		Event:     domain.EventRented,
		BikeID:    "123abc",
		BikeType:  domain.Mountain,
		FirstName: "John",
		LastName:  "Doe",
		At:        at,
	}

	values := recordValues(record)
	assert.Equal(t, "RENTED", values["event"])
	assert.Equal(t, "123abc", values["bike_id"])
	assert.Equal(t, "John", values["first_name"])
	assert.Equal(t, record.Line(), values["line"])
	assert.Equal(t, "2024-05-01T09:30:00Z", values["recorded_at"])
	assert.NotContains(t, values, "catalog")
}

func TestStreamAdapterAppendAndLines(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	stream := fmt.Sprintf("webike:test:%s", uuid.NewString())
	t.Cleanup(func() { client.Del(context.Background(), stream) })

	adapter := NewStreamAdapter(client, stream, 100)
	at := time.Now()
	for _, rec := range []domain.AuditRecord{
		{ID: uuid.New(), Event: domain.EventRented, BikeID: "a1", FirstName: "Ann", LastName: "Lee", At: at},
		{ID: uuid.New(), Event: domain.EventRented, BikeID: "b2", FirstName: "Bob", LastName: "Ray", At: at},
		{ID: uuid.New(), Event: domain.EventReturned, BikeID: "a1", FirstName: "Ann", LastName: "Lee", At: at},
	} {
		require.NoError(t, adapter.Append(ctx, rec))
	}

	lines, err := adapter.Lines(ctx, "a1")
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "RENTED | Bike=a1")
	assert.Contains(t, lines[1], "RETURNED | Bike=a1")
}

func TestStreamAdapterUnreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	adapter := NewStreamAdapter(client, "webike:test", 0)
	err := adapter.Append(context.Background(), domain.AuditRecord{ID: uuid.New(), Event: domain.EventRented, BikeID: "a1"})
	require.ErrorIs(t, err, domain.ErrStorageUnavailable)

	_, err = adapter.Lines(context.Background(), "a1")
	require.ErrorIs(t, err, domain.ErrStorageUnavailable)
}

func TestStreamAdapterLinesPagesThroughStream(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	stream := fmt.Sprintf("webike:test:%s", uuid.NewString())
	t.Cleanup(func() { client.Del(context.Background(), stream) })

	adapter := NewStreamAdapter(client, stream, 0)
	adapter.pageSize = 2
	at := time.Now()
	for i := range 7 {
		bikeID := "other"
		if i%2 == 0 {
			bikeID = "a1"
		}
		require.NoError(t, adapter.Append(ctx, domain.AuditRecord{
			ID: uuid.New(), Event: domain.EventRented, BikeID: bikeID,
			FirstName: "Ann", LastName: fmt.Sprintf("Lee%c", 'a'+i), At: at,
		}))
	}

	lines, err := adapter.Lines(ctx, "a1")
	require.NoError(t, err)
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Last Name=Leea")
	assert.Contains(t, lines[3], "Last Name=Leeg")
}
