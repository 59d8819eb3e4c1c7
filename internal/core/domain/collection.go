package domain

import (
	"fmt"
	"io"
	"iter"
	"slices"
)

// Collection is an ordered list of references with identity membership.
// It backs both catalogs and the inventory.
type Collection[T comparable] struct {
	items   []T
	invalid error
}

func newCollection[T comparable](invalid error) Collection[T] {
	return Collection[T]{invalid: invalid}
}

// Add appends item. The zero value (a nil reference) is rejected.
func (c *Collection[T]) Add(item T) error {
	var zero T
	if item == zero {
		return wrapf(c.invalid, "cannot add nil element")
	}
	c.items = append(c.items, item)
	return nil
}

// Contains reports whether item is held, compared by identity.
func (c *Collection[T]) Contains(item T) bool {
	return slices.Contains(c.items, item)
}

// RemoveItem removes the first element identical to item.
func (c *Collection[T]) RemoveItem(item T, notFound error) error {
	var zero T
	if item == zero {
		return wrapf(c.invalid, "cannot remove nil element")
	}
	i := slices.Index(c.items, item)
	if i < 0 {
		return notFound
	}
	c.items = slices.Delete(c.items, i, i+1)
	return nil
}

// RemoveAt removes and returns the element at index.
func (c *Collection[T]) RemoveAt(index int) (T, error) {
	item, err := c.Get(index)
	if err != nil {
		return item, err
	}
	c.items = slices.Delete(c.items, index, index+1)
	return item, nil
}

func (c *Collection[T]) Get(index int) (T, error) {
	if index < 0 || index >= len(c.items) {
		var zero T
		return zero, wrapf(ErrInvalidSelection, "invalid index: %d", index)
	}
	return c.items[index], nil
}

func (c *Collection[T]) Size() int {
	return len(c.items)
}

// Items returns a copy of the backing slice.
func (c *Collection[T]) Items() []T {
	return slices.Clone(c.items)
}

// Iterate snapshots the collection now. Ranging over the returned sequence
// never observes later mutations, and it can be ranged over again.
func (c *Collection[T]) Iterate() iter.Seq[T] {
	snapshot := slices.Clone(c.items)
	return func(yield func(T) bool) {
		for _, item := range snapshot {
			if !yield(item) {
				return
			}
		}
	}
}

// listing holds the messages printed by list for one element kind.
type listing[T any] struct {
	noIterator string
	empty      string
	label      func(T) string
}

func (c *Collection[T]) list(w io.Writer, seq iter.Seq[T], l listing[T]) error {
	if seq == nil {
		_, err := fmt.Fprintln(w, l.noIterator)
		return err
	}
	if len(c.items) == 0 {
		_, err := fmt.Fprintln(w, l.empty)
		return err
	}
	index := 0
	for item := range seq {
		if _, err := fmt.Fprintf(w, "%d. %s\n", index, l.label(item)); err != nil {
			return err
		}
		index++
	}
	return nil
}
