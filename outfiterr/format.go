// File: format.go
// Role: Format renders any closet/outfit taxonomy error as a multi-line,
// human-readable message. Grounded on the teacher's convention of keeping
// Error() terse (a count, for errors.Is/log-line use) while a separate,
// explicit presentation layer spells out the payload — mirrored here since
// the teacher itself has no single CLI-facing formatter to imitate
// directly; the shape follows builder/errors.go's sentinel-plus-payload
// split taken to its external-facing conclusion.
package outfiterr

import (
	"fmt"
	"strings"

	"github.com/outfitforge/closet/closet"
	"github.com/outfitforge/closet/outfit"
)

// Format renders err as a human-readable message. Unrecognized error types
// fall back to err.Error().
func Format(err error) string {
	if err == nil {
		return ""
	}

	switch e := err.(type) {
	case *closet.ConflictingFamiliesError:
		return formatConflictingFamilies(e)
	case *closet.InclusionError:
		return formatSameFamilyRules("inclusion", e.Rules)
	case *closet.ExclusionError:
		return formatSameFamilyRules("exclusion", e.Rules)
	case *outfit.UnknownItemsError:
		return formatUnknownItems(e)
	case *outfit.MultipleItemsPerFamilyError:
		return formatMultipleItemsPerFamily(e)
	case *outfit.ConflictingItemsError:
		return formatConflictingItems(e)
	default:
		return err.Error()
	}
}

func formatConflictingFamilies(e *closet.ConflictingFamiliesError) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d item(s) declared under conflicting families:\n", len(e.Conflicts))
	for _, c := range e.Conflicts {
		fmt.Fprintf(&b, "  - %s: %s vs %s\n", c.Item, c.Families[0], c.Families[1])
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatSameFamilyRules(kind string, rules []closet.SameFamilyRule) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d same-family %s rule(s):\n", len(rules), kind)
	for _, r := range rules {
		fmt.Fprintf(&b, "  - %s: %s, %s\n", r.Family, r.Items[0], r.Items[1])
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatUnknownItems(e *outfit.UnknownItemsError) string {
	var b strings.Builder
	b.WriteString("selection references unknown item(s):\n")
	for _, it := range e.Items {
		fmt.Fprintf(&b, "  - %s\n", it)
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatMultipleItemsPerFamily(e *outfit.MultipleItemsPerFamilyError) string {
	var b strings.Builder
	b.WriteString("selection names multiple items in one family:\n")
	for _, c := range e.Conflicts {
		fmt.Fprintf(&b, "  - %s: %v\n", c.Family, c.Items)
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatConflictingItems(e *outfit.ConflictingItemsError) string {
	return fmt.Sprintf("selection %v is inconsistent with the closet's rules", e.Items)
}
