// File: types.go
// Role: the memoization tables backing the combinator layer.
// Concurrency:
//   - Exactly one engineCache (apply and restrict memo tables) exists per
//     diagram.Table, created
//     lazily and looked up by Table identity in a process-wide sync.Map —
//     policy 2 from the distilled spec's §5 ("process-wide tables, shared,
//     mutating access serialized"), chosen here because combinators have
//     no natural owner of their own the way diagram.Table owns node
//     interning; the sync.Map gives each engine (each diagram.Table) an
//     independently-locked cache without any global single lock.
package boolean

import (
	"sync"

	"github.com/outfitforge/closet/diagram"
	"github.com/outfitforge/closet/item"
)

type op uint8

const (
	opAnd op = iota
	opOr
	opXor
)

type applyKey struct {
	op   op
	a, b diagram.Node
}

type restrictKey struct {
	itemName string
	value    bool
	n        diagram.Node
}

// engineCache holds the apply and restrict memoization tables for one
// diagram.Table.
type engineCache struct {
	mu        sync.RWMutex
	applyMemo map[applyKey]diagram.Node
	restrict  map[restrictKey]diagram.Node
}

var engineCaches sync.Map // *diagram.Table -> *engineCache

func cacheFor(t *diagram.Table) *engineCache {
	if v, ok := engineCaches.Load(t); ok {
		return v.(*engineCache)
	}
	c := &engineCache{
		applyMemo: make(map[applyKey]diagram.Node),
		restrict:  make(map[restrictKey]diagram.Node),
	}
	actual, _ := engineCaches.LoadOrStore(t, c)
	return actual.(*engineCache)
}

func (c *engineCache) getApply(k applyKey) (diagram.Node, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n, ok := c.applyMemo[k]
	return n, ok
}

func (c *engineCache) putApply(k applyKey, n diagram.Node) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.applyMemo[k] = n
}

func (c *engineCache) getRestrict(k restrictKey) (diagram.Node, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n, ok := c.restrict[k]
	return n, ok
}

func (c *engineCache) putRestrict(k restrictKey, n diagram.Node) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.restrict[k] = n
}

// topVariable returns the lesser (per item.Item.Less) of a's and b's
// decision variables, considering only operands that are Branch nodes.
// ok is false if neither operand is a Branch (both are leaves).
func topVariable(a, b diagram.Node) (it item.Item, ok bool) {
	ai, aok := a.Item()
	bi, bok := b.Item()
	switch {
	case aok && bok:
		if ai.Less(bi) {
			return ai, true
		}
		return bi, true
	case aok:
		return ai, true
	case bok:
		return bi, true
	default:
		return item.Item{}, false
	}
}

// align splits n into (low, high) with respect to variable v: if n decides
// v, that's n's actual children; otherwise n doesn't depend on v, so both
// branches are n itself.
func align(n diagram.Node, v item.Item) (low, high diagram.Node) {
	ni, ok := n.Item()
	if ok && ni.Equal(v) {
		low, high, _ = n.Children()
		return low, high
	}
	return n, n
}
