package app

import (
	"context"

	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/domain"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/ports"
)

type seedBike struct {
	id, model string
	bikeType  domain.BikeType
	available bool
	lights    bool
	basket    bool
	gps       bool
}

var demoBikes = []seedBike{
	{id: "123abc", model: "GT3", bikeType: domain.Mountain, available: true, lights: true, gps: true},
	{id: "456def", model: "TT8", bikeType: domain.Electric, available: false, gps: true},
	{id: "789ghi", model: "SSR", bikeType: domain.Electric, available: true, lights: true, basket: true, gps: true},
	{id: "1011jkl", model: "ZV10", bikeType: domain.Road, available: false},
}

// seed files the demo bikes into the catalog conventionally holding their type.
func seed(ctx context.Context, svc ports.RentalService, catalogs map[domain.CatalogKind]*domain.Catalog) error {
	for _, sb := range demoBikes {
		builder, err := domain.NewBikeBuilder(sb.id, sb.model, sb.available)
		if err != nil {
			return err
		}
		builder.WithLights(sb.lights).WithBasket(sb.basket).WithGPS(sb.gps)
		if _, err := svc.Create(ctx, builder, catalogs[domain.CatalogKindFor(sb.bikeType)], sb.bikeType); err != nil {
			return err
		}
	}
	return nil
}
