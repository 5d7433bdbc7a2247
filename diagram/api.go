// File: api.go
// Role: Table's two node constructors — the only way to obtain a Node.
// Policy:
//   - No algorithms here beyond reduction and interning.
//   - Ordering/reduction invariants are enforced here, once, so every other
//     package can rely on them unconditionally.
package diagram

import "github.com/outfitforge/closet/item"

// Leaf returns t's constant-true Node if v is true, or its constant-false
// Node otherwise. Both are singletons within t.
//
// Complexity: O(1).
func (t *Table) Leaf(v bool) Node {
	if v {
		return Node{data: t.always}
	}
	return Node{data: t.never}
}

// Branch returns the Node deciding on it, taking low when it is unselected
// and high when it is selected.
//
// If low == high, the decision is redundant and Branch returns low
// directly (the reduction invariant) — it never mints a node for a
// variable that can't change the outcome. Otherwise it returns the single
// interned Node for the (it, low, high) triple, minting one the first time
// that triple is requested.
//
// Contract: it must precede, in item.Item.Less order, every variable
// already decided along low and high (ordered construction). low and high
// must both have been minted by t. Violating either is a programmer error:
// Branch panics with a diagnostic rather than silently building an
// unordered or cross-table diagram.
//
// Complexity: O(1) amortized (map lookup/insert under t.mu).
func (t *Table) Branch(it item.Item, low, high Node) Node {
	if low.data == nil || high.data == nil {
		diagramBug("Branch(%v): low/high must come from a Table constructor", it)
	}
	if low.Table() != t || high.Table() != t {
		diagramBug("Branch(%v): low/high were minted by a different Table", it)
	}
	assertPrecedes(it, low.data, "low")
	assertPrecedes(it, high.data, "high")

	if low.data == high.data {
		// Reduction: deciding it can't change the outcome.
		return low
	}

	key := branchKey{itemName: it.String(), low: low.data, high: high.data}

	t.mu.RLock()
	if existing, ok := t.branches[key]; ok {
		t.mu.RUnlock()
		return Node{data: existing}
	}
	t.mu.RUnlock()

	t.mu.Lock()
	defer t.mu.Unlock()
	// Double-check: another goroutine may have inserted this triple while
	// we waited for the write lock.
	if existing, ok := t.branches[key]; ok {
		return Node{data: existing}
	}
	node := &nodeData{table: t, kind: branchKind, item: it, low: low.data, high: high.data}
	t.branches[key] = node

	return Node{data: node}
}

// assertPrecedes panics if child is a Branch whose item does not strictly
// follow it in variable order, i.e. the caller is building an unordered
// diagram.
func assertPrecedes(it item.Item, child *nodeData, side string) {
	if child.kind != branchKind {
		return
	}
	if !it.Less(child.item) {
		diagramBug("Branch(%v): %s child decides %v, which does not follow %v in variable order", it, side, child.item, it)
	}
}
