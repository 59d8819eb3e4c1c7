package domain

import (
	"bytes"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestInventoryAddGetRemove(t *testing.T) {
	inv := NewInventory()
	mountain := NewCatalog(MountainCatalog)
	electric := NewCatalog(ElectricCatalog)

	require.ErrorIs(t, inv.Add(nil), ErrInvalidCatalog)
	require.NoError(t, inv.Add(mountain))
	require.NoError(t, inv.Add(electric))
	assert.Equal(t, 2, inv.Size())

	got, err := inv.Get(1)
	require.NoError(t, err)
	assert.Same(t, electric, got)

	removed, err := inv.Remove(0)
	require.NoError(t, err)
	assert.Same(t, mountain, removed)
	assert.Equal(t, []*Catalog{electric}, inv.Catalogs())

	_, err = inv.Remove(5)
	require.ErrorIs(t, err, ErrInvalidSelection)
	_, err = inv.Get(-1)
	require.ErrorIs(t, err, ErrInvalidSelection)
}

func TestEmptyInventoryRejectsEveryIndex(t *testing.T) {
	inv := NewInventory()

	for _, index := range []int{-1, 0, 1} {
		_, err := inv.Get(index)
		require.ErrorIs(t, err, ErrInvalidSelection, "get %d", index)
		_, err = inv.Remove(index)
		require.ErrorIs(t, err, ErrInvalidSelection, "remove %d", index)
	}
	assert.Equal(t, 0, inv.Size())
}

func TestInventoryRegisterIsIdempotent(t *testing.T) {
	inv := NewInventory()
	catalog := NewCatalog(FoldingCatalog)

	added, err := inv.Register(catalog)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = inv.Register(catalog)
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, 1, inv.Size())

	// A distinct catalog of the same kind is a different catalog.
	added, err = inv.Register(NewCatalog(FoldingCatalog))
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, 2, inv.Size())

	_, err = inv.Register(nil)
	require.ErrorIs(t, err, ErrInvalidCatalog)

	require.NoError(t, inv.Unregister(catalog))
	assert.False(t, inv.Contains(catalog))
	require.ErrorIs(t, inv.Unregister(catalog), ErrCatalogNotFound)
}

func TestInventoryList(t *testing.T) {
	inv := NewInventory()

	var out bytes.Buffer
	require.NoError(t, inv.List(&out, nil))
	assert.Equal(t, "Catalog iterator not available.\n", out.String())

	out.Reset()
	require.NoError(t, inv.List(&out, inv.Iterate()))
	assert.Equal(t, "No catalogs available.\n", out.String())

	require.NoError(t, inv.Add(NewCatalog(MountainCatalog)))
	require.NoError(t, inv.Add(NewCatalog(ElectricCatalog)))
	require.NoError(t, inv.Add(NewCatalog(FoldingCatalog)))

	out.Reset()
	require.NoError(t, inv.List(&out, inv.Iterate()))
	assert.Equal(t, "0. Mountain Bike Catalog\n1. Electric Bike Catalog\n2. Folding Bike Catalog\n", out.String())
}

func TestInventoryIterateIsSnapshot(t *testing.T) {
	inv := NewInventory()
	first := NewCatalog(MountainCatalog)
	require.NoError(t, inv.Add(first))

	seq := inv.Iterate()
	_, err := inv.Remove(0)
	require.NoError(t, err)
	require.NoError(t, inv.Add(NewCatalog(RoadCatalog)))

	assert.Equal(t, []*Catalog{first}, slices.Collect(seq))
}

// Registering any catalog any number of times keeps at most one entry per catalog.
func TestInventoryRegisterNeverDuplicates(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		pool := []*Catalog{
			NewCatalog(MountainCatalog),
			NewCatalog(ElectricCatalog),
			NewCatalog(RoadCatalog),
		}
		inv := NewInventory()
		seen := map[*Catalog]bool{}

		picks := rapid.SliceOf(rapid.IntRange(0, len(pool)-1)).Draw(t, "picks")
		for _, i := range picks {
			added, err := inv.Register(pool[i])
			if err != nil {
				t.Fatalf("register: %v", err)
			}
			if added == seen[pool[i]] {
				t.Fatalf("added=%v for catalog already seen=%v", added, seen[pool[i]])
			}
			seen[pool[i]] = true
		}
		if inv.Size() != len(seen) {
			t.Fatalf("size %d, want %d", inv.Size(), len(seen))
		}
	})
}
