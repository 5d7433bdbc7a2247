// File: types.go
// Role: Builder accumulation state and the compiled Closet value.
package closet

import (
	"github.com/outfitforge/closet/diagram"
	"github.com/outfitforge/closet/item"
)

// itemPair is an unordered-at-use-site pair of items: (A, B) for a
// symmetric exclusion, or (selection, inclusion) for a directional
// inclusion rule.
type itemPair struct {
	A, B item.Item
}

// Builder accumulates a catalog's families, items, and rules before a
// single validate-then-compile pass in Build. It is not safe for
// concurrent use — build a Closet once, then share the immutable result.
type Builder struct {
	contents   map[item.Family][]item.Item
	itemIndex  map[item.Item]item.Family
	exclusions []itemPair
	inclusions []itemPair
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		contents:  make(map[item.Family][]item.Item),
		itemIndex: make(map[item.Item]item.Family),
	}
}

// Closet is the compiled, immutable catalog: an item-to-family index plus
// the root diagram.Node whose satisfying assignments are exactly the legal
// outfits. Closets are produced only by Builder.Build/MustBuild, never
// mutated, and are safe to share across goroutines for read-only queries.
type Closet struct {
	table     *diagram.Table
	root      diagram.Node
	itemIndex map[item.Item]item.Family
}

// Root returns the Closet's compiled root node.
func (c *Closet) Root() diagram.Node {
	return c.root
}

// Table returns the diagram.Table that owns c's root and every node
// reachable from it.
func (c *Closet) Table() *diagram.Table {
	return c.table
}

// Family returns the family it belongs to in c, and true. Returns the zero
// Family and false if it is not part of c's catalog.
func (c *Closet) Family(it item.Item) (item.Family, bool) {
	f, ok := c.itemIndex[it]
	return f, ok
}

// HasItem reports whether it is part of c's catalog.
func (c *Closet) HasItem(it item.Item) bool {
	_, ok := c.itemIndex[it]
	return ok
}
