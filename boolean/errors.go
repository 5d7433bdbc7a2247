// File: errors.go
// Role: programmer-error diagnostics for cross-table misuse.
package boolean

import "fmt"

func booleanBug(format string, args ...interface{}) {
	panic(fmt.Sprintf("boolean: invariant violation: "+format, args...))
}
