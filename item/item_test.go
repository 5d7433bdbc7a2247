package item_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/outfitforge/closet/item"
)

func TestItem_EqualAndLess(t *testing.T) {
	blue := item.New("blue")
	red := item.New("red")
	blue2 := item.New("blue")

	require.True(t, blue.Equal(blue2))
	require.False(t, blue.Equal(red))
	require.True(t, blue.Less(red))
	require.False(t, red.Less(blue))
	require.Equal(t, "blue", blue.String())
}

func TestFamily_EqualAndLess(t *testing.T) {
	shirts := item.NewFamily("shirts")
	pants := item.NewFamily("pants")

	require.True(t, shirts.Equal(item.NewFamily("shirts")))
	require.False(t, shirts.Equal(pants))
	require.True(t, pants.Less(shirts))
	require.Equal(t, "pants", pants.String())
}

func TestSortItems(t *testing.T) {
	items := []item.Item{item.New("slacks"), item.New("blue"), item.New("jeans"), item.New("red")}
	item.SortItems(items)

	got := make([]string, len(items))
	for i, it := range items {
		got[i] = it.String()
	}
	require.Equal(t, []string{"blue", "jeans", "red", "slacks"}, got)
}
