// File: methods.go
// Role: And, Or, Xor, Not, Restrict, ApplySelection — the combinator layer.
// Policy: every exported function here returns a reduced, ordered Node
// (diagram.Table.Branch enforces reduction on every construction) and is
// memoized on operand identity, per §4.B.
package boolean

import (
	"github.com/outfitforge/closet/diagram"
	"github.com/outfitforge/closet/item"
)

// And returns the conjunction of a and b.
//
// Edge policy: And(TrueLeaf, n) = n; And(FalseLeaf, _) = FalseLeaf,
// symmetrically in either operand position, short-circuiting before any
// recursion into the non-leaf operand.
//
// Complexity: O(|a|·|b|) amortized via the per-Table operation cache.
func And(a, b diagram.Node) diagram.Node {
	return applyOp(opAnd, a, b)
}

// Or returns the disjunction of a and b, with the symmetric short-circuits
// of And (TrueLeaf absorbs, FalseLeaf is the identity).
//
// Complexity: O(|a|·|b|) amortized.
func Or(a, b diagram.Node) diagram.Node {
	return applyOp(opOr, a, b)
}

// Xor returns the exclusive-or of a and b.
//
// Edge policy: Xor(x, FalseLeaf) = x (FalseLeaf is the identity); applied
// to a bare variable node this is exactly "Xor(x, FalseLeaf) introduces the
// variable" from §4.B, since x is already Branch(item, False, True).
//
// Complexity: O(|a|·|b|) amortized.
func Xor(a, b diagram.Node) diagram.Node {
	return applyOp(opXor, a, b)
}

// Not returns the negation of a, computed as Xor(a, TrueLeaf) so it shares
// the same memoized apply engine rather than duplicating recursion.
//
// Complexity: O(|a|).
func Not(a diagram.Node) diagram.Node {
	return Xor(a, a.Table().Leaf(true))
}

// Restrict specializes n by fixing it to value: every reachable
// Branch(it, lo, hi) is rewritten to hi when value is true, lo when value
// is false; every other branch is left in place (recursing into its
// children). The result contains it in no reachable branch (restriction
// soundness, property 4 of §8).
//
// Complexity: O(|n|) amortized via the per-Table restrict cache.
func Restrict(n diagram.Node, it item.Item, value bool) diagram.Node {
	t := n.Table()
	cache := cacheFor(t)
	return restrict(cache, t, n, it, value)
}

// ApplySelection is a documented alias of Restrict, used by package outfit
// at completion-walker call sites for readability: "apply the user's
// selection of it" reads more clearly than "restrict by it" there, even
// though the operation is identical.
func ApplySelection(n diagram.Node, it item.Item, value bool) diagram.Node {
	return Restrict(n, it, value)
}

func restrict(cache *engineCache, t *diagram.Table, n diagram.Node, it item.Item, value bool) diagram.Node {
	if n.IsLeaf() {
		return n
	}
	ni, _ := n.Item()
	low, high, _ := n.Children()
	if ni.Equal(it) {
		if value {
			return high
		}
		return low
	}

	key := restrictKey{itemName: it.String(), value: value, n: n}
	if cached, ok := cache.getRestrict(key); ok {
		return cached
	}

	newLow := restrict(cache, t, low, it, value)
	newHigh := restrict(cache, t, high, it, value)
	result := t.Branch(ni, newLow, newHigh)

	cache.putRestrict(key, result)

	return result
}

func applyOp(o op, a, b diagram.Node) diagram.Node {
	t := a.Table()
	if b.Table() != t {
		booleanBug("apply: operands were minted by different Tables")
	}

	return apply(cacheFor(t), t, o, a, b)
}

func leafResult(t *diagram.Table, o op, a, b diagram.Node) diagram.Node {
	switch o {
	case opAnd:
		return t.Leaf(a.IsAlways() && b.IsAlways())
	case opOr:
		return t.Leaf(a.IsAlways() || b.IsAlways())
	default: // opXor
		return t.Leaf(a.IsAlways() != b.IsAlways())
	}
}

// applyWithLeaf handles one branch operand and one leaf operand. branch is
// the non-leaf operand; leaf is Always or Never. Operations are
// commutative, so the caller may pass either original ordering.
func applyWithLeaf(cache *engineCache, t *diagram.Table, o op, branch, leaf diagram.Node) diagram.Node {
	switch o {
	case opAnd:
		if leaf.IsAlways() {
			return branch
		}
		return leaf // FalseLeaf absorbs
	case opOr:
		if leaf.IsAlways() {
			return leaf // TrueLeaf absorbs
		}
		return branch
	default: // opXor
		if !leaf.IsAlways() {
			return branch // FalseLeaf is the identity
		}
		// Xor(branch, TrueLeaf) = Not(branch): fall through to the general
		// recursive split rather than duplicate it here.
		return applyGeneral(cache, t, o, branch, leaf)
	}
}

func applyGeneral(cache *engineCache, t *diagram.Table, o op, a, b diagram.Node) diagram.Node {
	v, ok := topVariable(a, b)
	if !ok {
		// Both operands are leaves; leafResult above always handles that
		// case before we get here.
		booleanBug("applyGeneral: reached with two leaf operands")
	}

	aLow, aHigh := align(a, v)
	bLow, bHigh := align(b, v)

	low := apply(cache, t, o, aLow, bLow)
	high := apply(cache, t, o, aHigh, bHigh)

	return t.Branch(v, low, high)
}

// apply is applyOp's recursive core, reused directly (no cross-table check
// or top-level cache re-lookup needed) by applyGeneral's recursive calls.
func apply(cache *engineCache, t *diagram.Table, o op, a, b diagram.Node) diagram.Node {
	key := applyKey{op: o, a: a, b: b}
	if cached, ok := cache.getApply(key); ok {
		return cached
	}

	var result diagram.Node
	switch {
	case a.IsLeaf() && b.IsLeaf():
		result = leafResult(t, o, a, b)
	case b.IsLeaf():
		result = applyWithLeaf(cache, t, o, a, b)
	case a.IsLeaf():
		result = applyWithLeaf(cache, t, o, b, a)
	default:
		result = applyGeneral(cache, t, o, a, b)
	}

	cache.putApply(key, result)

	return result
}
