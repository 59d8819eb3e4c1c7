package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}

// fakeSink keeps formatted lines in memory and fails on demand.
type fakeSink struct {
	lines []string
	fail  bool
}

func (s *fakeSink) record(line string) error {
	if s.fail {
		return fmt.Errorf("%w: disk full", domain.ErrStorageUnavailable)
	}
	s.lines = append(s.lines, line)
	return nil
}

func (s *fakeSink) RecordCreation(_ context.Context, bike *domain.Bike, catalog *domain.Catalog) error {
	return s.record(fmt.Sprintf("CREATED %s %s %s", bike.ID, bike.Type, catalog))
}

func (s *fakeSink) RecordRental(_ context.Context, bike *domain.Bike, firstName, lastName string) error {
	return s.record(fmt.Sprintf("RENTED %s %s %s", bike.ID, firstName, lastName))
}

func (s *fakeSink) RecordReturn(_ context.Context, bike *domain.Bike, firstName, lastName string) error {
	return s.record(fmt.Sprintf("RETURNED %s %s %s", bike.ID, firstName, lastName))
}

func newTestService() (*RentalService, *fakeSink, *fakeSink) {
	creation, rental := &fakeSink{}, &fakeSink{}
	return NewRentalService(creation, rental, nopLogger{}), creation, rental
}

func builder(t testing.TB, id, model string, available bool) *domain.BikeBuilder {
	t.Helper()
	b, err := domain.NewBikeBuilder(id, model, available)
	require.NoError(t, err)
	return b
}

func TestCreateIndexesAndRecords(t *testing.T) {
	svc, creation, _ := newTestService()
	catalog := domain.NewCatalog(domain.MountainCatalog)
	ctx := context.Background()

	bike, err := svc.Create(ctx, builder(t, "123abc", "GT3", true).WithLights(true).WithGPS(true), catalog, domain.Mountain)
	require.NoError(t, err)

	assert.Equal(t, domain.Mountain, bike.Type)
	assert.True(t, bike.IsAvailable())
	assert.True(t, bike.Lights)
	assert.True(t, bike.GPS)

	found, ok := svc.Lookup("123abc")
	require.True(t, ok)
	assert.Same(t, bike, found)
	assert.True(t, catalog.Contains(bike))
	assert.True(t, svc.Inventory().Contains(catalog))
	assert.Equal(t, []string{"CREATED 123abc mountain Mountain Bike Catalog"}, creation.lines)
}

func TestCreateRegistersCatalogOnce(t *testing.T) {
	svc, _, _ := newTestService()
	catalog := domain.NewCatalog(domain.ElectricCatalog)
	ctx := context.Background()

	require.NoError(t, svc.RegisterCatalog(catalog))
	_, err := svc.Create(ctx, builder(t, "456def", "TT8", false), catalog, domain.Electric)
	require.NoError(t, err)
	_, err = svc.Create(ctx, builder(t, "789ghi", "SSR", true), catalog, domain.Electric)
	require.NoError(t, err)

	assert.Equal(t, 1, svc.Inventory().Size())
	assert.Equal(t, 2, catalog.Size())
}

func TestCreateAcceptsMismatchedCatalog(t *testing.T) {
	svc, _, _ := newTestService()
	catalog := domain.NewCatalog(domain.RoadCatalog)

	bike, err := svc.Create(context.Background(), builder(t, "m1", "Hardtail", true), catalog, domain.Mountain)
	require.NoError(t, err)
	assert.Equal(t, domain.Mountain, bike.Type)
	assert.True(t, catalog.Contains(bike))
}

func TestCreateRejectsBadInput(t *testing.T) {
	svc, creation, _ := newTestService()
	ctx := context.Background()
	catalog := domain.NewCatalog(domain.MountainCatalog)

	_, err := svc.Create(ctx, builder(t, "a", "GT3", true), nil, domain.Mountain)
	require.ErrorIs(t, err, domain.ErrCatalogNotFound)

	_, err = svc.Create(ctx, nil, catalog, domain.Mountain)
	require.ErrorIs(t, err, domain.ErrInvalidBuilder)

	_, err = svc.Create(ctx, builder(t, "a", "GT3", true), catalog, "")
	require.ErrorIs(t, err, domain.ErrInvalidBikeType)

	_, err = svc.Create(ctx, builder(t, "a", "GT3", true), catalog, "tandem")
	require.ErrorIs(t, err, domain.ErrInvalidBikeType)

	assert.Equal(t, 0, catalog.Size())
	assert.Equal(t, 0, svc.Inventory().Size())
	assert.Empty(t, creation.lines)
}

func TestCreateWrapsBuilderFailure(t *testing.T) {
	svc, _, _ := newTestService()
	blank := &domain.BikeBuilder{ID: "x", Model: "  "}

	_, err := svc.Create(context.Background(), blank, domain.NewCatalog(domain.RoadCatalog), domain.Road)
	require.ErrorIs(t, err, domain.ErrInvalidBuilder)
	assert.True(t, domain.IsRentalError(err))
}

func TestCreateRejectsDuplicateID(t *testing.T) {
	svc, creation, _ := newTestService()
	ctx := context.Background()
	catalog := domain.NewCatalog(domain.MountainCatalog)

	first, err := svc.Create(ctx, builder(t, "123abc", "GT3", true), catalog, domain.Mountain)
	require.NoError(t, err)

	_, err = svc.Create(ctx, builder(t, "123abc", "Other", true), catalog, domain.Mountain)
	require.ErrorIs(t, err, domain.ErrDuplicateBike)
	assert.True(t, domain.IsRentalError(err))

	found, _ := svc.Lookup("123abc")
	assert.Same(t, first, found)
	assert.Equal(t, 1, catalog.Size())
	assert.Len(t, creation.lines, 1)
}

func TestCreateRollsBackWhenAuditFails(t *testing.T) {
	svc, creation, _ := newTestService()
	creation.fail = true
	catalog := domain.NewCatalog(domain.FoldingCatalog)

	_, err := svc.Create(context.Background(), builder(t, "f1", "Fold", true), catalog, domain.Folding)
	require.ErrorIs(t, err, domain.ErrStorageUnavailable)
	assert.True(t, domain.IsRentalError(err))

	_, ok := svc.Lookup("f1")
	assert.False(t, ok)
	assert.Equal(t, 0, catalog.Size())
	assert.False(t, svc.Inventory().Contains(catalog))
}

func TestCreateRollbackKeepsPreviouslyRegisteredCatalog(t *testing.T) {
	svc, creation, _ := newTestService()
	catalog := domain.NewCatalog(domain.FoldingCatalog)
	require.NoError(t, svc.RegisterCatalog(catalog))

	creation.fail = true
	_, err := svc.Create(context.Background(), builder(t, "f1", "Fold", true), catalog, domain.Folding)
	require.Error(t, err)
	assert.True(t, svc.Inventory().Contains(catalog))
}

func TestRentAndReturn(t *testing.T) {
	svc, _, rental := newTestService()
	ctx := context.Background()
	bike, err := svc.Create(ctx, builder(t, "123abc", "GT3", true), domain.NewCatalog(domain.MountainCatalog), domain.Mountain)
	require.NoError(t, err)

	require.NoError(t, svc.Rent(ctx, "123abc", "John", "Doe"))
	assert.False(t, bike.IsAvailable())

	err = svc.Rent(ctx, "123abc", "Jane", "Roe")
	require.ErrorIs(t, err, domain.ErrBikeUnavailable)
	var re *domain.RentalError
	require.True(t, errors.As(err, &re))
	assert.Contains(t, re.Msg, "bike already rented")

	require.NoError(t, svc.Return(ctx, " 123abc ", "John", "Doe"))
	assert.True(t, bike.IsAvailable())

	err = svc.Return(ctx, "123abc", "John", "Doe")
	require.ErrorIs(t, err, domain.ErrBikeNotRented)
	assert.True(t, domain.IsRentalError(err))

	assert.Equal(t, []string{
		"RENTED 123abc John Doe",
		"RETURNED 123abc John Doe",
	}, rental.lines)
}

func TestRentUnknownBike(t *testing.T) {
	svc, _, rental := newTestService()
	ctx := context.Background()

	for _, id := range []string{"missing", "", "   "} {
		err := svc.Rent(ctx, id, "John", "Doe")
		require.ErrorIs(t, err, domain.ErrBikeNotFound)
		assert.False(t, domain.IsRentalError(err))

		err = svc.Return(ctx, id, "John", "Doe")
		require.ErrorIs(t, err, domain.ErrBikeNotFound)
	}
	assert.Empty(t, rental.lines)
}

func TestRentRevertsWhenAuditFails(t *testing.T) {
	svc, _, rental := newTestService()
	ctx := context.Background()
	bike, err := svc.Create(ctx, builder(t, "789ghi", "SSR", true), domain.NewCatalog(domain.ElectricCatalog), domain.Electric)
	require.NoError(t, err)

	rental.fail = true
	err = svc.Rent(ctx, "789ghi", "John", "Doe")
	require.ErrorIs(t, err, domain.ErrStorageUnavailable)
	assert.True(t, domain.IsRentalError(err))
	assert.True(t, bike.IsAvailable())

	rental.fail = false
	require.NoError(t, svc.Rent(ctx, "789ghi", "John", "Doe"))

	rental.fail = true
	err = svc.Return(ctx, "789ghi", "John", "Doe")
	require.ErrorIs(t, err, domain.ErrStorageUnavailable)
	assert.False(t, bike.IsAvailable())
}

func TestLookup(t *testing.T) {
	svc, _, _ := newTestService()
	_, err := svc.Create(context.Background(), builder(t, "1011jkl", "ZV10", false), domain.NewCatalog(domain.RoadCatalog), domain.Road)
	require.NoError(t, err)

	_, ok := svc.Lookup("1011jkl")
	assert.True(t, ok)
	_, ok = svc.Lookup("\t1011jkl\n")
	assert.True(t, ok)
	_, ok = svc.Lookup("")
	assert.False(t, ok)
	_, ok = svc.Lookup("nope")
	assert.False(t, ok)
}

func TestRegisterCatalogRejectsNil(t *testing.T) {
	svc, _, _ := newTestService()
	require.ErrorIs(t, svc.RegisterCatalog(nil), domain.ErrInvalidCatalog)
}

// Every successful rent or return leaves exactly one rental line, and
// availability always matches the parity of successful operations.
func TestRentalStateMachine(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		svc, _, rental := newTestService()
		ctx := context.Background()
		b, err := domain.NewBikeBuilder("p1", "Prop", true)
		if err != nil {
			t.Fatal(err)
		}
		bike, err := svc.Create(ctx, b, domain.NewCatalog(domain.RoadCatalog), domain.Road)
		if err != nil {
			t.Fatal(err)
		}

		available := true
		successes := 0
		ops := rapid.SliceOf(rapid.Bool()).Draw(t, "ops")
		for _, rent := range ops {
			if rent {
				err = svc.Rent(ctx, "p1", "Ann", "Lee")
				if available != (err == nil) {
					t.Fatalf("rent: available=%v err=%v", available, err)
				}
			} else {
				err = svc.Return(ctx, "p1", "Ann", "Lee")
				if available == (err == nil) {
					t.Fatalf("return: available=%v err=%v", available, err)
				}
			}
			if err == nil {
				available = !available
				successes++
			}
			if bike.IsAvailable() != available {
				t.Fatalf("bike availability %v, want %v", bike.IsAvailable(), available)
			}
		}
		if len(rental.lines) != successes {
			t.Fatalf("%d rental lines, want %d", len(rental.lines), successes)
		}
	})
}
