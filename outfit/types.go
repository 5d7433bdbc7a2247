// File: types.go
// Role: the Outfit result value.
package outfit

import "github.com/outfitforge/closet/item"

// Outfit is a satisfying assignment of a closet.Closet's root: at most one
// item per family, respecting every exclusion and inclusion rule, sorted
// by the variable order (item.Item.Less).
type Outfit struct {
	items []item.Item
}

// Items returns the outfit's items, sorted by variable order. The
// returned slice is owned by the caller; mutating it does not affect o.
func (o *Outfit) Items() []item.Item {
	out := make([]item.Item, len(o.items))
	copy(out, o.items)
	return out
}
