// File: loader.go
// Role: parses a YAML closet-definition document into a closet.Builder.
// Grounded on weave-lib/src/bdd/closet_builder.rs's builder-accumulation
// shape, with the document schema itself original to this package (the
// Rust source has no file-format counterpart).
package closetcfg

import (
	"io"

	"github.com/golang/glog"
	"gopkg.in/yaml.v3"

	"github.com/outfitforge/closet/closet"
	"github.com/outfitforge/closet/item"
)

// knownDocumentKeys lists the top-level keys Load understands. Anything
// else in the document is tolerated but logged.
var knownDocumentKeys = map[string]bool{
	"families":   true,
	"exclusions": true,
	"inclusions": true,
}

// Load parses the YAML closet definition read from r and accumulates it
// into a fresh closet.Builder. It does not call Build: the caller decides
// whether a subsequent validation failure is reportable (cmd/closetctl) or
// a programmer error (test fixtures, via Builder.MustBuild).
func Load(r io.Reader) (*closet.Builder, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, malformedf("reading document: %v", err)
	}
	if len(raw) == 0 {
		return closet.NewBuilder(), nil
	}

	warnUnknownKeys(raw)

	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, malformedf("parsing YAML: %v", err)
	}

	b := closet.NewBuilder()

	for _, f := range doc.Families {
		if f.Name == "" {
			return nil, malformedf("family entry missing \"name\"")
		}
		fam := item.NewFamily(f.Name)
		if len(f.Items) == 0 {
			glog.Warningf("closetcfg: family %q declares no items", f.Name)
		}
		for _, name := range f.Items {
			b.AddItem(fam, item.New(name))
		}
	}

	seenExclusions := make(map[[2]string]bool)
	for _, pair := range doc.Exclusions {
		if pair[0] == "" || pair[1] == "" {
			return nil, malformedf("exclusion entry must name two items")
		}
		key := normalizedPair(pair[0], pair[1])
		if seenExclusions[key] {
			glog.Warningf("closetcfg: duplicate exclusion rule (%s, %s)", pair[0], pair[1])
		}
		seenExclusions[key] = true
		b.AddExclusionRule(item.New(pair[0]), item.New(pair[1]))
	}

	seenInclusions := make(map[[2]string]bool)
	for _, inc := range doc.Inclusions {
		if inc.Selection == "" || inc.Inclusion == "" {
			return nil, malformedf("inclusion entry missing \"selection\" or \"inclusion\"")
		}
		key := [2]string{inc.Selection, inc.Inclusion}
		if seenInclusions[key] {
			glog.Warningf("closetcfg: duplicate inclusion rule (%s -> %s)", inc.Selection, inc.Inclusion)
		}
		seenInclusions[key] = true
		b.AddInclusionRule(item.New(inc.Selection), item.New(inc.Inclusion))
	}

	return b, nil
}

// warnUnknownKeys logs, rather than rejects, any top-level document key
// Load doesn't itself interpret — the same tolerate-and-report stance as
// Load's duplicate-rule checks.
func warnUnknownKeys(raw []byte) {
	var shallow map[string]yaml.Node
	if err := yaml.Unmarshal(raw, &shallow); err != nil {
		return // Load's own yaml.Unmarshal call reports the parse error
	}
	for key := range shallow {
		if !knownDocumentKeys[key] {
			glog.Warningf("closetcfg: ignoring unknown key %q", key)
		}
	}
}

// normalizedPair orders a and b so an exclusion between them is recognized
// as a duplicate regardless of declaration order.
func normalizedPair(a, b string) [2]string {
	if a > b {
		a, b = b, a
	}
	return [2]string{a, b}
}
