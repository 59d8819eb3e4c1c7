package domain

import (
	"fmt"
	"strings"
)

type BikeType string

const (
	Mountain BikeType = "mountain"
	Electric BikeType = "electric"
	Road     BikeType = "road"
	Folding  BikeType = "folding"
)

// BikeTypes lists every supported type in display order.
var BikeTypes = []BikeType{Mountain, Electric, Road, Folding}

func (t BikeType) Valid() bool {
	switch t {
	case Mountain, Electric, Road, Folding:
		return true
	}
	return false
}

// ParseBikeType is case-insensitive and ignores surrounding spaces.
func ParseBikeType(s string) (BikeType, error) {
	t := BikeType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		if s == "" {
			return "", wrapf(ErrInvalidBikeType, "bike type cannot be empty")
		}
		return "", wrapf(ErrInvalidBikeType, "unknown bike type: %s", s)
	}
	return t, nil
}

// Bike is a rentable bike. Its type never changes after construction and
// its availability only moves through Rent and Return.
type Bike struct {
	ID     string   `json:"id"`
	Model  string   `json:"model"`
	Type   BikeType `json:"type"`
	Lights bool     `json:"lights"`
	Basket bool     `json:"basket"`
	GPS    bool     `json:"gps"`

	available bool
}

func (b *Bike) IsAvailable() bool {
	return b.available
}

// Rent moves the bike from available to rented.
func (b *Bike) Rent() error {
	if !b.available {
		return wrapf(ErrBikeUnavailable, "bike %s is not available for rent", b.ID)
	}
	b.available = false
	return nil
}

// Return moves the bike from rented back to available.
func (b *Bike) Return() error {
	if b.available {
		return wrapf(ErrBikeNotRented, "bike %s is not currently rented", b.ID)
	}
	b.available = true
	return nil
}

func (b *Bike) String() string {
	return b.Model
}

// Details renders the multi-line description shown to operators.
func (b *Bike) Details() string {
	var sb strings.Builder
	sb.WriteString("-------Bike details------\n")
	fmt.Fprintf(&sb, "Type: %s\n", b.Type)
	fmt.Fprintf(&sb, "ID: %s\n", b.ID)
	fmt.Fprintf(&sb, "Model: %s\n", b.Model)
	fmt.Fprintf(&sb, "Available: %t\n", b.available)
	fmt.Fprintf(&sb, "Lights: %t\n", b.Lights)
	fmt.Fprintf(&sb, "Basket: %t\n", b.Basket)
	fmt.Fprintf(&sb, "GPS: %t\n", b.GPS)
	return sb.String()
}
