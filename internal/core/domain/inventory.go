package domain

import (
	"io"
	"iter"
)

// Inventory is the ordered collection of catalogs.
// Unlike Catalog it removes by index.
type Inventory struct {
	catalogs Collection[*Catalog]
}

func NewInventory() *Inventory {
	return &Inventory{catalogs: newCollection[*Catalog](ErrInvalidCatalog)}
}

func (inv *Inventory) Add(catalog *Catalog) error {
	return inv.catalogs.Add(catalog)
}

// Register adds catalog unless the very same catalog is already present.
// It reports whether the catalog was added.
func (inv *Inventory) Register(catalog *Catalog) (bool, error) {
	if catalog != nil && inv.catalogs.Contains(catalog) {
		return false, nil
	}
	if err := inv.catalogs.Add(catalog); err != nil {
		return false, err
	}
	return true, nil
}

func (inv *Inventory) Remove(index int) (*Catalog, error) {
	return inv.catalogs.RemoveAt(index)
}

// Unregister removes catalog by identity; used to undo a Register.
func (inv *Inventory) Unregister(catalog *Catalog) error {
	return inv.catalogs.RemoveItem(catalog, wrapf(ErrCatalogNotFound, "catalog not in inventory"))
}

func (inv *Inventory) Contains(catalog *Catalog) bool {
	return inv.catalogs.Contains(catalog)
}

func (inv *Inventory) Get(index int) (*Catalog, error) {
	return inv.catalogs.Get(index)
}

func (inv *Inventory) Size() int {
	return inv.catalogs.Size()
}

func (inv *Inventory) Catalogs() []*Catalog {
	return inv.catalogs.Items()
}

func (inv *Inventory) Iterate() iter.Seq[*Catalog] {
	return inv.catalogs.Iterate()
}

// List writes "<index>. <label>" for each catalog yielded by seq.
func (inv *Inventory) List(w io.Writer, seq iter.Seq[*Catalog]) error {
	return inv.catalogs.list(w, seq, listing[*Catalog]{
		noIterator: "Catalog iterator not available.",
		empty:      "No catalogs available.",
		label:      func(c *Catalog) string { return c.String() },
	})
}
