// Package outfit implements restriction-driven completion and ZDD-style
// enumeration over a closet.Closet's compiled root.
//
// Complete(c, selections) restricts the root by every selection, then
// walks the residual deterministically: at each Branch, it descends into
// high (recording the item) unless high is the false leaf, in which case
// it descends into low without recording. This always prefers selecting
// an item when doing so remains satisfiable, which makes completion a
// canonical function of (c, selections) — the same inputs always produce
// the same Outfit (property 7, §8).
//
// Trees(root) enumerates every satisfying assignment as a sequence of item
// sequences, treating a Branch whose high child is the false leaf as
// ZDD-style suppression of that variable — the same diagram.Node type
// serves both the BDD view (Complete) and the ZDD view (Trees), per the
// distilled spec's closing design note.
//
// Validation errors (UnknownItemsError, MultipleItemsPerFamilyError,
// ConflictingItemsError) are returned, never panicked; an unreachable
// walker state after successful validation is a programming defect and
// panics with a diagnostic, per §7's failure semantics.
package outfit
