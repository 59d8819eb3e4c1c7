package domain

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// BikeBuilder bundles the fields needed to construct a Bike.
// ID and Model are mandatory; the feature flags default to false.
type BikeBuilder struct {
	ID        string `validate:"required,notblank"`
	Model     string `validate:"required,notblank"`
	Available bool

	lights bool
	basket bool
	gps    bool
}

func NewBikeBuilder(id, model string, available bool) (*BikeBuilder, error) {
	b := &BikeBuilder{
		ID:        id,
		Model:     model,
		Available: available,
	}
	if err := b.validate(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *BikeBuilder) WithLights(lights bool) *BikeBuilder {
	b.lights = lights
	return b
}

func (b *BikeBuilder) WithBasket(basket bool) *BikeBuilder {
	b.basket = basket
	return b
}

func (b *BikeBuilder) WithGPS(gps bool) *BikeBuilder {
	b.gps = gps
	return b
}

func (b *BikeBuilder) Lights() bool { return b.lights }
func (b *BikeBuilder) Basket() bool { return b.basket }
func (b *BikeBuilder) GPS() bool    { return b.gps }

func (b *BikeBuilder) validate() error {
	if b == nil {
		return wrapf(ErrInvalidBuilder, "bike builder cannot be nil")
	}
	if err := validate.Struct(b); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			switch verrs[0].Field() {
			case "ID":
				return wrapf(ErrInvalidBuilder, "bike ID cannot be nil or blank")
			case "Model":
				return wrapf(ErrInvalidBuilder, "bike model cannot be nil or blank")
			}
		}
		return wrapf(ErrInvalidBuilder, "%v", err)
	}
	return nil
}
