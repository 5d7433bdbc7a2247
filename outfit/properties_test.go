package outfit_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/outfitforge/closet/boolean"
	"github.com/outfitforge/closet/closet"
	"github.com/outfitforge/closet/item"
	"github.com/outfitforge/closet/outfit"
)

// threeFamilyCloset builds a slightly larger catalog (three families, two
// items each, one cross-family rule of each kind) so the property tests
// below exercise more than the two-family worked examples.
func threeFamilyCloset(t *testing.T) *closet.Closet {
	t.Helper()

	tops := item.NewFamily("tops")
	bottoms := item.NewFamily("bottoms")
	shoes := item.NewFamily("shoes")

	b := closet.NewBuilder().
		AddItem(tops, item.New("hoodie")).
		AddItem(tops, item.New("tee")).
		AddItem(bottoms, item.New("jeans")).
		AddItem(bottoms, item.New("shorts")).
		AddItem(shoes, item.New("boots")).
		AddItem(shoes, item.New("sandals")).
		AddExclusionRule(item.New("shorts"), item.New("boots")).
		AddInclusionRule(item.New("shorts"), item.New("sandals"))

	c, err := b.Build()
	require.NoError(t, err)
	return c
}

// TestCompletionExtends checks property 5: the selection is always a
// subset of the returned outfit.
func TestCompletionExtends(t *testing.T) {
	c := threeFamilyCloset(t)

	selections := []item.Item{item.New("tee")}
	out, err := outfit.Complete(c, selections)
	require.NoError(t, err)

	outSet := make(map[string]bool)
	for _, it := range out.Items() {
		outSet[it.String()] = true
	}
	for _, s := range selections {
		require.True(t, outSet[s.String()], "selection %s missing from outfit", s)
	}
}

// TestCompletionSatisfies checks property 6: restricting the closet root by
// every item of a successful outfit (true for members, false for every
// other catalog item) evaluates to Always.
func TestCompletionSatisfies(t *testing.T) {
	c := threeFamilyCloset(t)

	out, err := outfit.Complete(c, []item.Item{item.New("shorts")})
	require.NoError(t, err)

	inOutfit := make(map[string]bool)
	for _, it := range out.Items() {
		inOutfit[it.String()] = true
	}

	all := []item.Item{
		item.New("hoodie"), item.New("tee"),
		item.New("jeans"), item.New("shorts"),
		item.New("boots"), item.New("sandals"),
	}

	residual := c.Root()
	for _, it := range all {
		residual = boolean.Restrict(residual, it, inOutfit[it.String()])
	}

	require.True(t, residual.IsAlways())
}

// TestCompletionDeterminism checks property 7: repeated calls with the same
// inputs yield the same outfit.
func TestCompletionDeterminism(t *testing.T) {
	c := threeFamilyCloset(t)
	selections := []item.Item{item.New("jeans")}

	first, err := outfit.Complete(c, selections)
	require.NoError(t, err)
	second, err := outfit.Complete(c, selections)
	require.NoError(t, err)

	require.Equal(t, names(first.Items()), names(second.Items()))
}

// TestEnumerationCompleteness checks property 8: Trees visits every
// satisfying assignment exactly once. For the three-family catalog above,
// the model count is tops(2) * bottoms(2) * (shoes choices consistent with
// the shorts rules): shorts forces sandals and excludes boots, while jeans
// leaves both shoe choices open. That gives 2*(1 + 2) = 6 assignments.
//
// The expected set is compared with cmp.Diff rather than testify's
// require.Equal: both sides are slices of slices with no natural total
// order until sorted, and cmpopts.SortSlices lets the comparison ignore
// enumeration order at both nesting levels in one option, which would
// otherwise need a hand-rolled normalize-then-compare step.
func TestEnumerationCompleteness(t *testing.T) {
	c := threeFamilyCloset(t)

	trees := outfit.Trees(c.Root())
	require.Len(t, trees, 6)

	got := make([][]string, len(trees))
	for i, path := range trees {
		got[i] = names(path)
	}

	want := [][]string{
		{"boots", "hoodie", "jeans"},
		{"boots", "jeans", "tee"},
		{"hoodie", "jeans", "sandals"},
		{"jeans", "sandals", "tee"},
		{"hoodie", "sandals", "shorts"},
		{"sandals", "shorts", "tee"},
	}

	sliceLess := func(a, b []string) bool { return strings.Join(a, ",") < strings.Join(b, ",") }
	stringLess := func(a, b string) bool { return a < b }
	opts := cmp.Options{
		cmpopts.SortSlices(stringLess),
		cmpopts.SortSlices(sliceLess),
	}
	if diff := cmp.Diff(want, got, opts); diff != "" {
		t.Fatalf("enumerated outfits mismatch (-want +got):\n%s", diff)
	}

	seen := make(map[string]int)
	for _, path := range trees {
		seen[setKey(path)]++
	}
	for key, count := range seen {
		require.Equal(t, 1, count, "assignment %s enumerated more than once", key)
	}
}

func setKey(items []item.Item) string {
	ns := names(items)
	key := ""
	for _, n := range ns {
		key += n + ","
	}
	return key
}

// TestComplete_ConcurrentReads checks the concurrency claim: a built
// Closet supports concurrent Complete/Trees calls without a data race,
// since neither touches Builder state and package boolean's caches are
// RWMutex-guarded per Table.
func TestComplete_ConcurrentReads(t *testing.T) {
	c := threeFamilyCloset(t)

	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := outfit.Complete(c, []item.Item{item.New("tee")}); err != nil {
				errs <- err
			}
		}()
	}
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = outfit.Trees(c.Root())
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
}
