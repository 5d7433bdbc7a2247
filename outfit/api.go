// File: api.go
// Role: Complete — the restriction-driven completion walker. Grounded on
// bowtie-core/src/bdd/closet/complete_outfit.rs's validate/restrict/walk
// shape, and on dfs.DFS's walker-struct presentation style.
package outfit

import (
	"fmt"
	"sort"

	"github.com/outfitforge/closet/boolean"
	"github.com/outfitforge/closet/closet"
	"github.com/outfitforge/closet/item"
)

// Complete resolves a partial selection into a full Outfit against c,
// extending selections deterministically (property 5 & 7, §8).
//
// Validation runs in this order, returning the first failure:
//  1. UnknownItemsError — a selection is not in c's catalog.
//  2. MultipleItemsPerFamilyError — two selections share a family.
//  3. ConflictingItemsError — the selections are jointly unsatisfiable.
//
// Complexity: O(|selections| · |c.Root()|) for restriction, plus O(|c.Root()|)
// for the walk; both amortized via package boolean's per-Table caches.
func Complete(c *closet.Closet, selections []item.Item) (*Outfit, error) {
	if err := validateSelections(c, selections); err != nil {
		return nil, err
	}

	residual := c.Root()
	for _, s := range selections {
		residual = boolean.ApplySelection(residual, s, true)
	}

	if residual.IsLeaf() && !residual.IsAlways() {
		return nil, conflictingItemsError(selections)
	}

	outfitItems := append([]item.Item(nil), selections...)
	node := residual
	for {
		if node.IsLeaf() {
			break
		}
		it, _ := node.Item()
		low, high, _ := node.Children()
		if high.IsLeaf() && !high.IsAlways() {
			// Selecting it can never lead to a satisfying assignment;
			// descend into low without recording it.
			node = low
			continue
		}
		outfitItems = append(outfitItems, it)
		node = high
	}

	if !node.IsAlways() {
		// Unreachable given the ConflictingItems check above: residual was
		// satisfiable, and the walker only ever follows a non-false child.
		panic(fmt.Sprintf("outfit: walker reached %v instead of the true leaf", node))
	}

	item.SortItems(outfitItems)

	return &Outfit{items: outfitItems}, nil
}

func validateSelections(c *closet.Closet, selections []item.Item) error {
	var unknown []item.Item
	for _, s := range selections {
		if !c.HasItem(s) {
			unknown = append(unknown, s)
		}
	}
	if len(unknown) > 0 {
		item.SortItems(unknown)
		return &UnknownItemsError{Items: unknown}
	}

	byFamily := make(map[item.Family][]item.Item)
	var order []item.Family
	for _, s := range selections {
		f, _ := c.Family(s) // safe: unknown items already rejected above
		if _, seen := byFamily[f]; !seen {
			order = append(order, f)
		}
		byFamily[f] = append(byFamily[f], s)
	}

	var conflicts []FamilySelections
	sort.Slice(order, func(i, j int) bool { return order[i].Less(order[j]) })
	for _, f := range order {
		items := byFamily[f]
		if len(items) > 1 {
			item.SortItems(items)
			conflicts = append(conflicts, FamilySelections{Family: f, Items: items})
		}
	}
	if len(conflicts) > 0 {
		return &MultipleItemsPerFamilyError{Conflicts: conflicts}
	}

	return nil
}

func conflictingItemsError(selections []item.Item) error {
	items := append([]item.Item(nil), selections...)
	item.SortItems(items)
	return &ConflictingItemsError{Items: items}
}
