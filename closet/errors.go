// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: build-time validation error taxonomy (§7: ConflictingFamilies,
// InclusionError, ExclusionError), in the teacher's sentinel-plus-payload
// style (builder/errors.go): a package-level category sentinel for
// errors.Is, and a concrete struct type carrying the structured payload a
// caller or outfiterr.Format needs to report exactly what went wrong.
package closet

import (
	"errors"
	"fmt"

	"github.com/outfitforge/closet/item"
)

// Category sentinels. Branch on these with errors.Is; use the concrete
// error types below (via errors.As) for the structured payload.
var (
	// ErrConflictingFamilies categorizes ConflictingFamiliesError.
	ErrConflictingFamilies = errors.New("closet: item declared under conflicting families")
	// ErrInclusion categorizes InclusionError.
	ErrInclusion = errors.New("closet: inclusion rule within a single family")
	// ErrExclusion categorizes ExclusionError.
	ErrExclusion = errors.New("closet: exclusion rule within a single family")
)

// FamilyConflict records one item declared under two different families:
// Families holds exactly the two families involved, [first-seen,
// conflicting later declaration].
type FamilyConflict struct {
	Item     item.Item
	Families [2]item.Family
}

// ConflictingFamiliesError reports every item declared under more than one
// family. It is returned before any diagram.Node is built.
type ConflictingFamiliesError struct {
	Conflicts []FamilyConflict
}

func (e *ConflictingFamiliesError) Error() string {
	return fmt.Sprintf("closet: %d item(s) declared under conflicting families", len(e.Conflicts))
}

// Is reports whether target is ErrConflictingFamilies, so callers can
// branch with errors.Is(err, closet.ErrConflictingFamilies).
func (e *ConflictingFamiliesError) Is(target error) bool {
	return target == ErrConflictingFamilies
}

// SameFamilyRule records one inclusion or exclusion rule whose two items
// belong to the same Family — and are therefore unsatisfiable (inclusion)
// or redundant (exclusion) given the family's own mutual-exclusion
// constraint.
type SameFamilyRule struct {
	Family item.Family
	Items  [2]item.Item // sorted by item.Item.Less
}

// InclusionError reports every AddInclusionRule(a, b) where a and b share
// a family, deduplicated by the unordered (a, b) pair.
type InclusionError struct {
	Rules []SameFamilyRule
}

func (e *InclusionError) Error() string {
	return fmt.Sprintf("closet: %d same-family inclusion rule(s)", len(e.Rules))
}

// Is reports whether target is ErrInclusion.
func (e *InclusionError) Is(target error) bool {
	return target == ErrInclusion
}

// ExclusionError reports every AddExclusionRule(a, b) where a and b share
// a family, deduplicated by the unordered (a, b) pair.
type ExclusionError struct {
	Rules []SameFamilyRule
}

func (e *ExclusionError) Error() string {
	return fmt.Sprintf("closet: %d same-family exclusion rule(s)", len(e.Rules))
}

// Is reports whether target is ErrExclusion.
func (e *ExclusionError) Is(target error) bool {
	return target == ErrExclusion
}
