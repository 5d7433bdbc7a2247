// File: helpers.go
// Role: small deterministic-ordering helpers shared by validate.go and
// compile.go.
package closet

import (
	"sort"

	"github.com/outfitforge/closet/item"
)

func sortFamilies(families []item.Family) {
	sort.Slice(families, func(i, j int) bool { return families[i].Less(families[j]) })
}
