// Package closet compiles a catalog of families, items, and cross-family
// inclusion/exclusion rules into a single diagram.Node — the Closet root —
// whose satisfying assignments are exactly the legal outfits.
//
// Use NewBuilder to accumulate AddItem/AddExclusionRule/AddInclusionRule
// declarations, then Build (or MustBuild, for call sites that treat a
// build failure as a programmer error — mirroring
// ClosetBuilder::must_build in the original Rust implementation this
// module was distilled from) to validate and compile them into a Closet.
//
// Validation runs before any diagram.Node is built, in a fixed order —
// ConflictingFamiliesError, then InclusionError, then ExclusionError — and
// stops at the first class present, exactly as the distilled spec
// requires: subsequent classes are not reported in the same call.
//
// Compilation conjoins three groups of constraints per family/rule:
//
//   - Family constraints: "exactly one of the family's items is selected",
//     encoded as a cascaded Xor of the family's item variables *and* an
//     explicit all-pairs mutual exclusion among them. The Xor alone only
//     encodes odd-parity ("an odd number selected"), which coincides with
//     "exactly one" for families of size <= 2 but not for size >= 3 (see
//     DESIGN.md's Open Question decision); the pairwise exclusion closes
//     that gap unconditionally.
//   - Exclusion constraints: Not(a AND b) per declared pair.
//   - Inclusion constraints: (a => b), i.e. Or(Not(a), b), per declared
//     directional rule.
//
// A Closet, once built, is immutable: Root and Family are read-only, and
// there is no in-place mutation API. Building a derivative Closet (e.g.
// after adding one more rule) means building a new Builder from scratch.
package closet
