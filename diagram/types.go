// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node and Table data structures, and the invariants they uphold.
// Concurrency:
//   - Table.mu guards the branch unique table; always/never leaves are
//     immutable after NewTable and need no lock.
// AI-HINT (file):
//   - Never construct a nodeData directly outside this package; every
//     nodeData must be reachable only via Table.Leaf/Table.Branch so that
//     the unique table's sharing guarantee holds.
package diagram

import (
	"sync"

	"github.com/outfitforge/closet/item"
)

// nodeKind distinguishes the three Node variants.
type nodeKind uint8

const (
	leafKind nodeKind = iota
	branchKind
)

// nodeData is the interned, immutable backing store for a Node. Only a
// Table ever allocates one, and only via Leaf/Branch below.
type nodeData struct {
	table *Table   // the Table that minted this node
	kind  nodeKind // leaf or branch
	value bool     // meaningful only when kind == leafKind
	item  item.Item
	low   *nodeData // meaningful only when kind == branchKind
	high  *nodeData // meaningful only when kind == branchKind
}

// Node is a handle to an interned diagram node. Node values are cheap to
// copy and compare: two Nodes are == iff they reference the identical
// interned nodeData, which — thanks to the Table's reduction and sharing
// guarantees — happens iff they denote the same Boolean function.
//
// The zero Node is not valid; obtain Nodes only from a Table's Leaf/Branch
// constructors or from combinators operating on such Nodes.
type Node struct {
	data *nodeData
}

// IsLeaf reports whether n is Always or Never.
func (n Node) IsLeaf() bool {
	return n.data.kind == leafKind
}

// IsAlways reports whether n is the constant-true leaf. Reports false for
// Never and for any Branch.
func (n Node) IsAlways() bool {
	return n.data.kind == leafKind && n.data.value
}

// Item returns the decision variable of a Branch node, and true. For a
// leaf, it returns the zero Item and false.
func (n Node) Item() (item.Item, bool) {
	if n.data.kind != branchKind {
		return item.Item{}, false
	}
	return n.data.item, true
}

// Children returns the low and high successors of a Branch node, and true.
// For a leaf, it returns the zero Node twice and false.
func (n Node) Children() (low, high Node, ok bool) {
	if n.data.kind != branchKind {
		return Node{}, Node{}, false
	}
	return Node{data: n.data.low}, Node{data: n.data.high}, true
}

// Table returns the Table that minted n. Every valid Node has one;
// combinators in package boolean use it to construct new nodes in the same
// unique table as their operands.
func (n Node) Table() *Table {
	return n.data.table
}

// branchKey identifies a branch by its canonical (item, low, high) triple
// for unique-table lookup. Two branches with equal keys are, by the
// reduction invariant, the same Node.
type branchKey struct {
	itemName string
	low      *nodeData
	high     *nodeData
}

// Table is a per-engine unique table: a content-addressed store that
// guarantees structural sharing (hash-consing) of branch nodes, and mints
// the two constant leaves used by every diagram built through it.
//
// A Table owns all Nodes it mints; Nodes from different Tables must never
// be mixed in a single Boolean combinator call (see package boolean), since
// their identities are not comparable across Tables even when they denote
// the same function.
type Table struct {
	mu       sync.RWMutex
	always   *nodeData
	never    *nodeData
	branches map[branchKey]*nodeData
}

// NewTable constructs a fresh, empty unique table with its own Always and
// Never leaves. Safe for concurrent use from the moment it is returned.
//
// Complexity: O(1).
func NewTable() *Table {
	t := &Table{branches: make(map[branchKey]*nodeData)}
	t.always = &nodeData{table: t, kind: leafKind, value: true}
	t.never = &nodeData{table: t, kind: leafKind, value: false}
	return t
}
