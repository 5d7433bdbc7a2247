// Package boolean implements the Boolean combinator layer over
// diagram.Node: And, Or, Xor, Not, and the Restrict specialization
// operator, plus ApplySelection as a documented alias of Restrict for the
// completion walker in package outfit.
//
// Every combinator returns a reduced, ordered Node (diagram.Table enforces
// that on construction) and is memoized on its operand identities via an
// operation cache keyed by (op, left, right) — standard BDD apply with
// O(|a|·|b|) amortized complexity, the shape and complexity budget the
// rudd reference implementation documents for the same algorithm family.
//
// All operands passed to a single call must have been minted by the same
// diagram.Table; mixing Tables is a programmer error (see errors.go).
package boolean
