package domain

import "fmt"

// Factory builds bikes of one type.
type Factory interface {
	Type() BikeType
	Create(b *BikeBuilder) (*Bike, error)
}

type constructor func(b *BikeBuilder) *Bike

// constructors maps each type to the function that assembles it.
// A new bike type is a new entry here.
var constructors = map[BikeType]constructor{
	Mountain: typedBike(Mountain),
	Electric: typedBike(Electric),
	Road:     typedBike(Road),
	Folding:  typedBike(Folding),
}

func typedBike(t BikeType) constructor {
	return func(b *BikeBuilder) *Bike {
		return &Bike{
			ID:        b.ID,
			Model:     b.Model,
			Type:      t,
			Lights:    b.lights,
			Basket:    b.basket,
			GPS:       b.gps,
			available: b.Available,
		}
	}
}

type bikeFactory struct {
	bikeType BikeType
	build    constructor
}

// NewFactory returns the factory registered for t.
func NewFactory(t BikeType) (Factory, error) {
	if t == "" {
		return nil, wrapf(ErrInvalidBikeType, "bike type cannot be empty")
	}
	build, ok := constructors[t]
	if !ok {
		return nil, wrapf(ErrInvalidBikeType, "unknown bike type: %s", t)
	}
	return &bikeFactory{bikeType: t, build: build}, nil
}

func (f *bikeFactory) Type() BikeType {
	return f.bikeType
}

// Create validates the builder and assembles the bike. Callers only ever
// see ErrInvalidBuilder or a *RentalError from here.
func (f *bikeFactory) Create(b *BikeBuilder) (bike *Bike, err error) {
	if err := b.validate(); err != nil {
		return nil, err
	}

	defer func() {
		if p := recover(); p != nil {
			bike = nil
			err = &RentalError{
				Op:  "factory.Create",
				Msg: fmt.Sprintf("unable to create %s bike", f.bikeType),
				Err: fmt.Errorf("recovered: %v", p),
			}
		}
	}()

	return f.build(b), nil
}
