package domain

import (
	"io"
	"iter"
)

type CatalogKind string

const (
	MountainCatalog CatalogKind = "mountain"
	ElectricCatalog CatalogKind = "electric"
	RoadCatalog     CatalogKind = "road"
	FoldingCatalog  CatalogKind = "folding"
)

var catalogLabels = map[CatalogKind]string{
	MountainCatalog: "Mountain Bike Catalog",
	ElectricCatalog: "Electric Bike Catalog",
	RoadCatalog:     "Road Bike Catalog",
	FoldingCatalog:  "Folding Bike Catalog",
}

// CatalogKinds lists every kind in display order.
var CatalogKinds = []CatalogKind{MountainCatalog, ElectricCatalog, RoadCatalog, FoldingCatalog}

func (k CatalogKind) Label() string {
	if label, ok := catalogLabels[k]; ok {
		return label
	}
	return "Bike Catalog"
}

func ParseCatalogKind(s string) (CatalogKind, error) {
	k := CatalogKind(s)
	if _, ok := catalogLabels[k]; !ok {
		return "", wrapf(ErrCatalogNotFound, "unknown catalog: %s", s)
	}
	return k, nil
}

// CatalogKindFor is the catalog kind that conventionally holds bikes of type t.
func CatalogKindFor(t BikeType) CatalogKind {
	return CatalogKind(t)
}

// Catalog is an ordered collection of bikes. The kind is a display tag only.
type Catalog struct {
	Kind  CatalogKind
	bikes Collection[*Bike]
}

func NewCatalog(kind CatalogKind) *Catalog {
	return &Catalog{
		Kind:  kind,
		bikes: newCollection[*Bike](ErrInvalidBike),
	}
}

func (c *Catalog) Add(bike *Bike) error {
	return c.bikes.Add(bike)
}

func (c *Catalog) Remove(bike *Bike) error {
	if bike == nil {
		return wrapf(ErrInvalidBike, "cannot remove nil bike from catalog")
	}
	return c.bikes.RemoveItem(bike, wrapf(ErrBikeNotFound, "bike %s not found in catalog", bike.ID))
}

func (c *Catalog) Contains(bike *Bike) bool {
	return c.bikes.Contains(bike)
}

func (c *Catalog) Get(index int) (*Bike, error) {
	return c.bikes.Get(index)
}

func (c *Catalog) Size() int {
	return c.bikes.Size()
}

func (c *Catalog) Bikes() []*Bike {
	return c.bikes.Items()
}

func (c *Catalog) Iterate() iter.Seq[*Bike] {
	return c.bikes.Iterate()
}

// List writes "<index>. <model>" for each bike yielded by seq.
func (c *Catalog) List(w io.Writer, seq iter.Seq[*Bike]) error {
	return c.bikes.list(w, seq, listing[*Bike]{
		noIterator: "Bike iterator not available.",
		empty:      "No bikes available.",
		label:      func(b *Bike) string { return b.Model },
	})
}

func (c *Catalog) String() string {
	return c.Kind.Label()
}
