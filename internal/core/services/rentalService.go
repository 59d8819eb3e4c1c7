package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/domain"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/ports"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// RentalService owns the id index, the inventory and the two audit logs.
// It is not safe for concurrent use; callers serialize access.
type RentalService struct {
	bikes       map[string]*domain.Bike
	inventory   *domain.Inventory
	creationLog ports.AuditSink
	rentalLog   ports.AuditSink
	logger      ports.LoggerPort
	tracer      trace.Tracer
}

func NewRentalService(
	creationLog ports.AuditSink,
	rentalLog ports.AuditSink,
	logger ports.LoggerPort,
) *RentalService {
	return &RentalService{
		bikes:       make(map[string]*domain.Bike),
		inventory:   domain.NewInventory(),
		creationLog: creationLog,
		rentalLog:   rentalLog,
		logger:      logger,
		tracer:      otel.Tracer("webike/rental"),
	}
}

// Create builds a bike of bikeType, indexes it, files it into catalog and
// records the creation. Nothing is left behind if the audit write fails.
func (s *RentalService) Create(
	ctx context.Context,
	builder *domain.BikeBuilder,
	catalog *domain.Catalog,
	bikeType domain.BikeType,
) (*domain.Bike, error) {
	const op = "RentalService.Create"

	ctx, span := s.tracer.Start(ctx, "rental.create",
		trace.WithAttributes(attribute.String("bike.type", string(bikeType))),
	)
	defer span.End()

	if catalog == nil {
		return nil, fail(span, fmt.Errorf("%w: catalog cannot be nil", domain.ErrCatalogNotFound))
	}
	if builder == nil {
		return nil, fail(span, fmt.Errorf("%w: bike builder cannot be nil", domain.ErrInvalidBuilder))
	}

	factory, err := domain.NewFactory(bikeType)
	if err != nil {
		s.logger.Warn("Rejected bike type", map[string]interface{}{
			"bike_type": string(bikeType),
			"error":     err.Error(),
		})
		return nil, fail(span, err)
	}

	bike, err := factory.Create(builder)
	if err != nil {
		s.logger.Error("Failed to build bike", map[string]interface{}{
			"bike_type": string(bikeType),
			"error":     err.Error(),
		})
		return nil, fail(span, asRentalError(op, err))
	}
	span.SetAttributes(attribute.String("bike.id", bike.ID))

	if _, exists := s.bikes[bike.ID]; exists {
		s.logger.Warn("Duplicate bike ID", map[string]interface{}{
			"bike_id": bike.ID,
		})
		return nil, fail(span, domain.NewRentalError(op,
			fmt.Errorf("%w: bike %s already exists", domain.ErrDuplicateBike, bike.ID)))
	}

	if err := catalog.Add(bike); err != nil {
		return nil, fail(span, domain.NewRentalError(op, err))
	}
	s.bikes[bike.ID] = bike

	registered, err := s.inventory.Register(catalog)
	if err != nil {
		s.undoCreate(bike, catalog, false)
		return nil, fail(span, domain.NewRentalError(op, err))
	}

	if err := s.creationLog.RecordCreation(ctx, bike, catalog); err != nil {
		s.logger.Error("Failed to record bike creation, rolling back", map[string]interface{}{
			"bike_id": bike.ID,
			"error":   err.Error(),
		})
		s.undoCreate(bike, catalog, registered)
		return nil, fail(span, domain.NewRentalError(op, err))
	}

	s.logger.Info("Bike created", map[string]interface{}{
		"bike_id": bike.ID,
		"type":    string(bike.Type),
		"catalog": catalog.String(),
	})

	return bike, nil
}

func (s *RentalService) undoCreate(bike *domain.Bike, catalog *domain.Catalog, registered bool) {
	delete(s.bikes, bike.ID)
	if err := catalog.Remove(bike); err != nil {
		s.logger.Warn("Rollback could not remove bike from catalog", map[string]interface{}{
			"bike_id": bike.ID,
			"error":   err.Error(),
		})
	}
	if registered {
		if err := s.inventory.Unregister(catalog); err != nil {
			s.logger.Warn("Rollback could not unregister catalog", map[string]interface{}{
				"catalog": catalog.String(),
				"error":   err.Error(),
			})
		}
	}
}

// Rent hands the bike identified by id to the named customer.
func (s *RentalService) Rent(ctx context.Context, id, firstName, lastName string) error {
	const op = "RentalService.Rent"

	ctx, span := s.tracer.Start(ctx, "rental.rent",
		trace.WithAttributes(attribute.String("bike.id", id)),
	)
	defer span.End()

	bike, ok := s.Lookup(id)
	if !ok {
		return fail(span, fmt.Errorf("%w: bike ID not found: %s", domain.ErrBikeNotFound, id))
	}

	if !bike.IsAvailable() {
		s.logger.Warn("Attempt to rent unavailable bike", map[string]interface{}{
			"bike_id": bike.ID,
		})
		return fail(span, domain.NewRentalError(op,
			fmt.Errorf("%w: bike already rented", domain.ErrBikeUnavailable)))
	}

	if err := bike.Rent(); err != nil {
		return fail(span, domain.NewRentalError(op, err))
	}

	if err := s.rentalLog.RecordRental(ctx, bike, firstName, lastName); err != nil {
		s.logger.Error("Failed to record rental, reverting", map[string]interface{}{
			"bike_id": bike.ID,
			"error":   err.Error(),
		})
		if rerr := bike.Return(); rerr != nil {
			s.logger.Error("Failed to revert rental", map[string]interface{}{
				"bike_id": bike.ID,
				"error":   rerr.Error(),
			})
		}
		return fail(span, domain.NewRentalError(op, err))
	}

	s.logger.Info("Bike rented", map[string]interface{}{
		"bike_id":    bike.ID,
		"first_name": firstName,
		"last_name":  lastName,
	})

	return nil
}

// Return takes the bike identified by id back from the named customer.
func (s *RentalService) Return(ctx context.Context, id, firstName, lastName string) error {
	const op = "RentalService.Return"

	ctx, span := s.tracer.Start(ctx, "rental.return",
		trace.WithAttributes(attribute.String("bike.id", id)),
	)
	defer span.End()

	bike, ok := s.Lookup(id)
	if !ok {
		return fail(span, fmt.Errorf("%w: bike ID %s not found", domain.ErrBikeNotFound, id))
	}

	if err := bike.Return(); err != nil {
		s.logger.Warn("Attempt to return bike that is not rented", map[string]interface{}{
			"bike_id": bike.ID,
		})
		return fail(span, domain.NewRentalError(op, err))
	}

	if err := s.rentalLog.RecordReturn(ctx, bike, firstName, lastName); err != nil {
		s.logger.Error("Failed to record return, reverting", map[string]interface{}{
			"bike_id": bike.ID,
			"error":   err.Error(),
		})
		if rerr := bike.Rent(); rerr != nil {
			s.logger.Error("Failed to revert return", map[string]interface{}{
				"bike_id": bike.ID,
				"error":   rerr.Error(),
			})
		}
		return fail(span, domain.NewRentalError(op, err))
	}

	s.logger.Info("Bike returned", map[string]interface{}{
		"bike_id":    bike.ID,
		"first_name": firstName,
		"last_name":  lastName,
	})

	return nil
}

// Lookup returns the indexed bike for a trimmed id. Blank ids are never found.
func (s *RentalService) Lookup(id string) (*domain.Bike, bool) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, false
	}
	bike, ok := s.bikes[id]
	return bike, ok
}

// RegisterCatalog makes catalog visible in the inventory before it holds any bike.
func (s *RentalService) RegisterCatalog(catalog *domain.Catalog) error {
	added, err := s.inventory.Register(catalog)
	if err != nil {
		return err
	}
	if added {
		s.logger.Info("Catalog registered", map[string]interface{}{
			"catalog": catalog.String(),
		})
	}
	return nil
}

func (s *RentalService) Inventory() *domain.Inventory {
	return s.inventory
}

func asRentalError(op string, err error) error {
	if domain.IsRentalError(err) {
		return err
	}
	return domain.NewRentalError(op, err)
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

var _ ports.RentalService = (*RentalService)(nil)
