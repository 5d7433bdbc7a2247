// File: api.go
// Role: Builder's accumulation methods — the only way to populate a
// catalog before Build. No validation or diagram construction happens
// here; that's Build's job, so bad input never costs a partial node build.
package closet

import (
	"fmt"

	"github.com/outfitforge/closet/diagram"
	"github.com/outfitforge/closet/item"
)

// AddItem declares it as a member of family f. If it was already declared
// under a different family in an earlier call, that earlier family wins
// for indexing purposes (first declaration is authoritative) but both
// declarations are retained for ConflictingFamilies reporting at Build
// time.
//
// Complexity: O(1) amortized.
func (b *Builder) AddItem(f item.Family, it item.Item) *Builder {
	b.contents[f] = append(b.contents[f], it)
	if _, seen := b.itemIndex[it]; !seen {
		b.itemIndex[it] = f
	}
	return b
}

// AddExclusionRule declares that a and b may never both be selected. The
// rule is symmetric by definition — Build compiles it as Not(a AND b),
// which doesn't distinguish argument order — so a single declaration
// suffices regardless of which item is passed first.
//
// Complexity: O(1).
func (b *Builder) AddExclusionRule(a, bItem item.Item) *Builder {
	b.exclusions = append(b.exclusions, itemPair{A: a, B: bItem})
	return b
}

// AddInclusionRule declares that selecting selection forces inclusion:
// selection => inclusion. Unlike AddExclusionRule this is directional;
// AddInclusionRule(a, b) does not imply AddInclusionRule(b, a).
//
// Complexity: O(1).
func (b *Builder) AddInclusionRule(selection, inclusion item.Item) *Builder {
	b.inclusions = append(b.inclusions, itemPair{A: selection, B: inclusion})
	return b
}

// Build validates the accumulated catalog and, if valid, compiles it into
// a Closet. Validation runs in a fixed order — ConflictingFamiliesError,
// then InclusionError, then ExclusionError — and returns the first class
// present; see package doc.
//
// Complexity: O(total items + total rules) for validation; compilation is
// documented per diagram.Table.Branch / package boolean's apply cost.
func (b *Builder) Build() (*Closet, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}

	table := diagram.NewTable()
	root := b.compile(table)

	itemIndex := make(map[item.Item]item.Family, len(b.itemIndex))
	for it, f := range b.itemIndex {
		itemIndex[it] = f
	}

	return &Closet{table: table, root: root, itemIndex: itemIndex}, nil
}

// MustBuild calls Build and panics if it returns an error. It exists for
// call sites — tests, fixtures, package closetcfg after its own YAML-level
// validation — that treat a build failure as a programmer error rather
// than a condition to report to an end user, mirroring
// ClosetBuilder::must_build in the Rust original.
func (b *Builder) MustBuild() *Closet {
	c, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("closet: MustBuild: %v", err))
	}
	return c
}
