// File: errors.go
// Role: programmer-error diagnostics for the node kernel.
//
// Policy (mirrors builder/errors.go in the teacher library): construction
// contracts (ordering, single-table operands) are enforced at construction
// time and violating them is a programming defect, not a runtime condition
// callers are expected to recover from — so these surface as panics with a
// descriptive diagnostic, never as returned errors. Steady-state queries
// (IsLeaf, Children, ...) never panic.
package diagram

import "fmt"

// diagramBug panics with a diagnostic identifying the violated invariant.
// Used only for contract violations that indicate caller or engine bugs,
// per the distilled spec's "programming defect, abort with diagnostic"
// failure semantics.
func diagramBug(format string, args ...interface{}) {
	panic(fmt.Sprintf("diagram: invariant violation: "+format, args...))
}
