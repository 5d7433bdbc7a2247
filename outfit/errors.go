// File: errors.go
// Role: query-time validation error taxonomy (§7: UnknownItems,
// MultipleItemsPerFamily, ConflictingItems), in the same sentinel-plus-
// payload style as package closet's build-time taxonomy.
package outfit

import (
	"errors"
	"fmt"

	"github.com/outfitforge/closet/item"
)

// Category sentinels; branch with errors.Is, inspect payload via errors.As.
var (
	// ErrUnknownItems categorizes UnknownItemsError.
	ErrUnknownItems = errors.New("outfit: selection references unknown items")
	// ErrMultipleItemsPerFamily categorizes MultipleItemsPerFamilyError.
	ErrMultipleItemsPerFamily = errors.New("outfit: selection has multiple items from one family")
	// ErrConflictingItems categorizes ConflictingItemsError.
	ErrConflictingItems = errors.New("outfit: selection conflicts with the closet's rules")
)

// UnknownItemsError reports selections not present in the closet's
// catalog.
type UnknownItemsError struct {
	Items []item.Item
}

func (e *UnknownItemsError) Error() string {
	return fmt.Sprintf("outfit: %d unknown item(s) in selection", len(e.Items))
}

// Is reports whether target is ErrUnknownItems.
func (e *UnknownItemsError) Is(target error) bool { return target == ErrUnknownItems }

// FamilySelections groups the selected items that collide on one family.
type FamilySelections struct {
	Family item.Family
	Items  []item.Item
}

// MultipleItemsPerFamilyError reports every family for which the
// selection names two or more items.
type MultipleItemsPerFamilyError struct {
	Conflicts []FamilySelections
}

func (e *MultipleItemsPerFamilyError) Error() string {
	return fmt.Sprintf("outfit: %d famil(ies) with multiple selected items", len(e.Conflicts))
}

// Is reports whether target is ErrMultipleItemsPerFamily.
func (e *MultipleItemsPerFamilyError) Is(target error) bool {
	return target == ErrMultipleItemsPerFamily
}

// ConflictingItemsError reports that the selections, taken together,
// already violate the closet's rules (restricting the root by them
// yields the false leaf) — independent of any individual selection being
// unknown or duplicated per family.
type ConflictingItemsError struct {
	Items []item.Item
}

func (e *ConflictingItemsError) Error() string {
	return fmt.Sprintf("outfit: selection %v is inconsistent with the closet's rules", e.Items)
}

// Is reports whether target is ErrConflictingItems.
func (e *ConflictingItemsError) Is(target error) bool { return target == ErrConflictingItems }
