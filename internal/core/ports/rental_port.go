package ports

import (
	"context"

	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/domain"
)

type RentalService interface {
	Create(ctx context.Context, builder *domain.BikeBuilder, catalog *domain.Catalog, bikeType domain.BikeType) (*domain.Bike, error)
	Rent(ctx context.Context, id, firstName, lastName string) error
	Return(ctx context.Context, id, firstName, lastName string) error
	Lookup(id string) (*domain.Bike, bool)
	RegisterCatalog(catalog *domain.Catalog) error
	Inventory() *domain.Inventory
}
