// File: compile.go
// Role: translates a validated Builder's families, exclusions, and
// inclusions into a single root diagram.Node. Grounded on
// weave-lib/src/bdd/closet_builder.rs's build(), extended per §9's Open
// Question decision (see DESIGN.md): family constraints are compiled as
// "exactly one", not merely "an odd number", regardless of family size.
package closet

import (
	"github.com/outfitforge/closet/boolean"
	"github.com/outfitforge/closet/diagram"
	"github.com/outfitforge/closet/item"
)

// compile assumes b has already passed validate(); it never fails.
func (b *Builder) compile(table *diagram.Table) diagram.Node {
	root := table.Leaf(true)

	for _, f := range b.sortedFamilies() {
		items := append([]item.Item(nil), b.contents[f]...)
		item.SortItems(items)
		root = boolean.And(root, familyConstraint(table, items))
	}

	for _, p := range b.exclusions {
		a := variableNode(table, p.A)
		bn := variableNode(table, p.B)
		root = boolean.And(root, boolean.Not(boolean.And(a, bn)))
	}

	for _, p := range b.inclusions {
		selection := variableNode(table, p.A)
		inclusion := variableNode(table, p.B)
		implication := boolean.Or(boolean.Not(selection), inclusion)
		root = boolean.And(root, implication)
	}

	return root
}

// variableNode returns the raw Boolean-variable node for it: true when it
// is selected, false otherwise.
func variableNode(table *diagram.Table, it item.Item) diagram.Node {
	return table.Branch(it, table.Leaf(false), table.Leaf(true))
}

// familyConstraint compiles "exactly one of items is selected":
//
//   - the cascaded Xor the distilled spec names (odd parity), kept because
//     it's part of the documented algorithm and is a cheap correct
//     constraint on its own right for families of size <= 2;
//   - ANDed with an explicit all-pairs mutual exclusion, which is what
//     actually makes "odd parity" collapse to "exactly one" for every
//     family size, closing the §9 Open Question gap for size >= 3.
func familyConstraint(table *diagram.Table, items []item.Item) diagram.Node {
	parity := table.Leaf(false)
	for _, it := range items {
		parity = boolean.Xor(variableNode(table, it), parity)
	}

	pairwise := table.Leaf(true)
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			a := variableNode(table, items[i])
			c := variableNode(table, items[j])
			pairwise = boolean.And(pairwise, boolean.Not(boolean.And(a, c)))
		}
	}

	return boolean.And(parity, pairwise)
}
