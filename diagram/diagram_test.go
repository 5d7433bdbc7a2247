package diagram_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/outfitforge/closet/diagram"
	"github.com/outfitforge/closet/item"
)

func TestLeaf_Singletons(t *testing.T) {
	tbl := diagram.NewTable()

	require.True(t, tbl.Leaf(true).IsAlways())
	require.True(t, tbl.Leaf(true).IsLeaf())
	require.False(t, tbl.Leaf(false).IsAlways())
	require.True(t, tbl.Leaf(false).IsLeaf())

	// Singletons: asking twice returns the identical Node.
	require.Equal(t, tbl.Leaf(true), tbl.Leaf(true))
	require.Equal(t, tbl.Leaf(false), tbl.Leaf(false))
}

func TestBranch_ReductionOnEqualChildren(t *testing.T) {
	tbl := diagram.NewTable()
	blue := item.New("blue")

	n := tbl.Branch(blue, tbl.Leaf(true), tbl.Leaf(true))
	// low == high: the branch is redundant; Branch must return that child,
	// never mint a node for blue.
	require.Equal(t, tbl.Leaf(true), n)
	require.True(t, n.IsLeaf())
}

func TestBranch_StructuralSharing(t *testing.T) {
	tbl := diagram.NewTable()
	blue := item.New("blue")

	a := tbl.Branch(blue, tbl.Leaf(false), tbl.Leaf(true))
	b := tbl.Branch(blue, tbl.Leaf(false), tbl.Leaf(true))

	// Same (item, low, high) triple: identical Node (pointer equality via
	// ==), not merely equal fields.
	require.True(t, a == b)

	it, ok := a.Item()
	require.True(t, ok)
	require.True(t, it.Equal(blue))

	low, high, ok := a.Children()
	require.True(t, ok)
	require.Equal(t, tbl.Leaf(false), low)
	require.Equal(t, tbl.Leaf(true), high)
}

func TestBranch_CanonicalEquality(t *testing.T) {
	// Two diagrams built from logically equivalent formulas must have the
	// identical root, not merely an equal-by-value one (property 3, §8).
	tbl := diagram.NewTable()
	blue := item.New("blue")
	red := item.New("red")

	build := func() diagram.Node {
		inner := tbl.Branch(red, tbl.Leaf(false), tbl.Leaf(true))
		return tbl.Branch(blue, tbl.Leaf(false), inner)
	}

	require.True(t, build() == build())
}

func TestBranch_PanicsOnOutOfOrderConstruction(t *testing.T) {
	tbl := diagram.NewTable()
	blue := item.New("blue")
	red := item.New("red")

	inner := tbl.Branch(blue, tbl.Leaf(false), tbl.Leaf(true))

	require.Panics(t, func() {
		// "blue" < "red" in variable order, so "blue" may only be decided
		// below "red", never above it; here we try to decide "red" at a
		// level above a child that decides "blue".
		tbl.Branch(red, inner, tbl.Leaf(true))
	})
}

func TestBranch_PanicsOnCrossTableOperands(t *testing.T) {
	a := diagram.NewTable()
	b := diagram.NewTable()
	blue := item.New("blue")

	require.Panics(t, func() {
		a.Branch(blue, b.Leaf(false), b.Leaf(true))
	})
}
