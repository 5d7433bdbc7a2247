// File: trees.go
// Role: Trees — explicit work-stack enumeration of every satisfying
// assignment of a diagram.Node. Grounded on weave/src/zdd2/forest/trees.rs's
// suppressed-variable walk; the stack-frame shape follows dfs.DFS's
// dfsWalker struct style (explicit frames over recursion, so enumeration
// depth is bounded by heap, not goroutine stack).
package outfit

import (
	"github.com/outfitforge/closet/diagram"
	"github.com/outfitforge/closet/item"
)

// treeFrame is one pending work-stack entry: visit node next, having
// already recorded path on the way there.
type treeFrame struct {
	node diagram.Node
	path []item.Item
}

// Trees enumerates every satisfying assignment reachable from root as a
// sequence of item sequences, each sorted by variable order. The zero-value
// convention of a ZDD applies here even though root is a Node shared with
// package boolean's BDD view: a Branch whose high child is the false leaf
// suppresses that variable from every path through it, exactly as a ZDD's
// family-of-sets node would (property 8, §8).
//
// The returned order is deterministic but unspecified beyond "every
// satisfying assignment appears exactly once"; callers that need a total
// order over outfits should sort the result themselves.
//
// Complexity: O(|root| + number of satisfying assignments).
func Trees(root diagram.Node) [][]item.Item {
	var results [][]item.Item
	stack := []treeFrame{{node: root}}

	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if frame.node.IsLeaf() {
			if frame.node.IsAlways() {
				results = append(results, frame.path)
			}
			continue
		}

		it, _ := frame.node.Item()
		low, high, _ := frame.node.Children()

		// Push low first so high (with it appended) is popped first; the
		// resulting order is depth-first, preferring selection of it, which
		// mirrors Complete's own preference without requiring it.
		stack = append(stack, treeFrame{node: low, path: frame.path})

		if !(high.IsLeaf() && !high.IsAlways()) {
			extended := make([]item.Item, len(frame.path)+1)
			copy(extended, frame.path)
			extended[len(frame.path)] = it
			stack = append(stack, treeFrame{node: high, path: extended})
		}
	}

	return results
}
