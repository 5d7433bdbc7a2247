// File: validate.go
// Role: build-time validation, run before any diagram.Node is constructed.
// Grounded on weave-lib/src/bdd/closet_builder.rs's validate()/
// find_conflicting_families/find_illegal_*_rules.
package closet

import "github.com/outfitforge/closet/item"

func (b *Builder) validate() error {
	if conflicts := b.findConflictingFamilies(); len(conflicts) > 0 {
		return &ConflictingFamiliesError{Conflicts: conflicts}
	}
	if rules := b.findIllegalSameFamilyPairs(b.inclusions); len(rules) > 0 {
		return &InclusionError{Rules: rules}
	}
	if rules := b.findIllegalSameFamilyPairs(b.exclusions); len(rules) > 0 {
		return &ExclusionError{Rules: rules}
	}
	return nil
}

// findConflictingFamilies reports every (item, family) declaration whose
// family disagrees with the item's first-seen family in b.itemIndex. An
// item declared under three distinct families yields two conflicts (one
// per later declaration against the first), mirroring the original's
// per-occurrence reporting.
func (b *Builder) findConflictingFamilies() []FamilyConflict {
	var conflicts []FamilyConflict

	for _, f := range b.sortedFamilies() {
		for _, it := range b.contents[f] {
			indexed := b.itemIndex[it]
			if !indexed.Equal(f) {
				conflicts = append(conflicts, FamilyConflict{
					Item:     it,
					Families: [2]item.Family{indexed, f},
				})
			}
		}
	}

	return conflicts
}

// findIllegalSameFamilyPairs is the shared helper behind both
// InclusionError and ExclusionError detection, mirroring the original's
// single find_illegal_rules used for both inclusions and exclusions
// (§12's supplemented-feature note): for each declared pair whose items
// share a family, record a SameFamilyRule, sorted and deduplicated by the
// unordered pair.
func (b *Builder) findIllegalSameFamilyPairs(pairs []itemPair) []SameFamilyRule {
	seen := make(map[[2]string]bool)
	var rules []SameFamilyRule

	for _, p := range pairs {
		fa, okA := b.itemIndex[p.A]
		fb, okB := b.itemIndex[p.B]
		if !okA || !okB || !fa.Equal(fb) {
			continue
		}

		a, c := p.A, p.B
		if c.Less(a) {
			a, c = c, a
		}

		key := [2]string{a.String(), c.String()}
		if seen[key] {
			continue
		}
		seen[key] = true

		rules = append(rules, SameFamilyRule{Family: fa, Items: [2]item.Item{a, c}})
	}

	return rules
}

// sortedFamilies returns b's declared families in item.Family.Less order,
// for deterministic validation and compilation regardless of Go's
// randomized map iteration order.
func (b *Builder) sortedFamilies() []item.Family {
	families := make([]item.Family, 0, len(b.contents))
	for f := range b.contents {
		families = append(families, f)
	}
	sortFamilies(families)
	return families
}
