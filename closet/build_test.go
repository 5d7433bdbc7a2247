package closet_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/outfitforge/closet/closet"
	"github.com/outfitforge/closet/item"
)

func TestBuild_ConflictingFamilies(t *testing.T) {
	b := closet.NewBuilder().
		AddItem(item.NewFamily("shirts"), item.New("blue")).
		AddItem(item.NewFamily("hats"), item.New("blue"))

	_, err := b.Build()
	require.Error(t, err)
	require.True(t, errors.Is(err, closet.ErrConflictingFamilies))

	var conflictErr *closet.ConflictingFamiliesError
	require.True(t, errors.As(err, &conflictErr))
	require.Len(t, conflictErr.Conflicts, 1)
	require.Equal(t, "blue", conflictErr.Conflicts[0].Item.String())
}

func TestBuild_InclusionWithinSameFamily(t *testing.T) {
	shirts := item.NewFamily("shirts")
	b := closet.NewBuilder().
		AddItem(shirts, item.New("blue")).
		AddItem(shirts, item.New("red")).
		AddInclusionRule(item.New("blue"), item.New("red"))

	_, err := b.Build()
	require.True(t, errors.Is(err, closet.ErrInclusion))
}

func TestBuild_ExclusionWithinSameFamily(t *testing.T) {
	shirts := item.NewFamily("shirts")
	b := closet.NewBuilder().
		AddItem(shirts, item.New("blue")).
		AddItem(shirts, item.New("red")).
		AddExclusionRule(item.New("blue"), item.New("red"))

	_, err := b.Build()
	require.True(t, errors.Is(err, closet.ErrExclusion))
}

func TestBuild_ValidationOrderStopsAtFirstClass(t *testing.T) {
	shirts := item.NewFamily("shirts")
	hats := item.NewFamily("hats")
	b := closet.NewBuilder().
		AddItem(shirts, item.New("blue")).
		AddItem(hats, item.New("blue")). // conflicting family
		AddInclusionRule(item.New("blue"), item.New("blue"))

	_, err := b.Build()
	require.True(t, errors.Is(err, closet.ErrConflictingFamilies))
	require.False(t, errors.Is(err, closet.ErrInclusion))
}

func TestMustBuild_PanicsOnInvalidCloset(t *testing.T) {
	shirts := item.NewFamily("shirts")
	b := closet.NewBuilder().
		AddItem(shirts, item.New("blue")).
		AddItem(shirts, item.New("red")).
		AddExclusionRule(item.New("blue"), item.New("red"))

	require.Panics(t, func() { b.MustBuild() })
}

func TestBuild_ValidCatalogRoundTrip(t *testing.T) {
	shirts := item.NewFamily("shirts")
	pants := item.NewFamily("pants")
	b := closet.NewBuilder().
		AddItem(shirts, item.New("blue")).
		AddItem(shirts, item.New("red")).
		AddItem(pants, item.New("jeans")).
		AddItem(pants, item.New("slacks"))

	c, err := b.Build()
	require.NoError(t, err)
	require.True(t, c.HasItem(item.New("blue")))
	require.False(t, c.HasItem(item.New("black")))

	f, ok := c.Family(item.New("jeans"))
	require.True(t, ok)
	require.Equal(t, "pants", f.String())
}
