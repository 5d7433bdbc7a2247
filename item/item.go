package item

import (
	"sort"
	"strings"
)

// Item is an opaque identity token for one concrete choice within a Family,
// e.g. "blue shirt". Two Items are Equal iff their names match exactly; the
// zero value is not a valid Item (use New).
type Item struct {
	name string
}

// New returns the Item identified by name.
//
// Complexity: O(1).
func New(name string) Item {
	return Item{name: name}
}

// String returns the Item's stable textual representation, used only for
// diagnostics (error messages, CLI output). It is never parsed back.
func (i Item) String() string {
	return i.name
}

// Equal reports whether i and other identify the same item.
func (i Item) Equal(other Item) bool {
	return i.name == other.name
}

// Less defines the total order used as the decision diagram's variable
// order: lexicographic by name. All diagrams built from a given set of
// items share this order.
func (i Item) Less(other Item) bool {
	return strings.Compare(i.name, other.name) < 0
}

// Family is an opaque identity token for a category of mutually exclusive
// items, e.g. "shirts". Two Families are Equal iff their names match.
type Family struct {
	name string
}

// NewFamily returns the Family identified by name.
func NewFamily(name string) Family {
	return Family{name: name}
}

// String returns the Family's stable textual representation.
func (f Family) String() string {
	return f.name
}

// Equal reports whether f and other identify the same family.
func (f Family) Equal(other Family) bool {
	return f.name == other.name
}

// Less defines a total order over families, used only to produce
// deterministic iteration order when compiling family constraints and when
// rendering diagnostics (map iteration in Go is intentionally randomized).
func (f Family) Less(other Family) bool {
	return strings.Compare(f.name, other.name) < 0
}

// SortItems sorts items in place by the variable order (Item.Less).
func SortItems(items []Item) {
	sort.Slice(items, func(i, j int) bool { return items[i].Less(items[j]) })
}
