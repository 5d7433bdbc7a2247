// Package diagram implements the reduced, ordered decision-diagram node
// kernel: the canonical representation shared by the BDD view (constraint
// composition and completion) and the ZDD view (full enumeration) used
// throughout this module.
//
// A Node is one of three variants:
//
//	Never         — the constant-false leaf.
//	Always        — the constant-true leaf.
//	Branch(i,l,h) — a decision on item i; l is taken when i is unselected,
//	                h when i is selected.
//
// Two invariants make a Node canonical:
//
//	Reducedness — for every Branch(i, lo, hi), lo != hi, and any two
//	              branches sharing the same (item, lo, hi) triple are the
//	              same Node (structural sharing).
//	Orderedness — along any root-to-leaf path, Branch items strictly
//	              increase per item.Item.Less.
//
// Canonicity is load-bearing: two diagrams represent the same Boolean
// function iff their roots are the identical Node value. All queries in
// this package are O(1); construction costs are documented per function.
//
// Nodes are minted by a Table, which owns the unique (content-addressed)
// map enforcing structural sharing. Tables are per-engine: two independent
// Tables never share node identity, even if built from logically identical
// formulas — this mirrors core.Graph's per-instance state in the teacher
// library, generalized from a mutable graph catalog to an append-only,
// hash-consed node store. A Table is safe for concurrent use; once a Node
// is returned from a Table method it is immutable forever.
package diagram
