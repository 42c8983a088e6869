package swen

import "fmt"

// globalDebug gates expensive invariant checks, matching willow's
// globalDebug switch: off by default so release builds skip them entirely.
var globalDebug = false

// SetDebug enables or disables invariant assertions for the whole package.
func SetDebug(enabled bool) {
	globalDebug = enabled
}

const maxTreeDepth = 64

// assertTreeDepth panics if n's ancestor chain exceeds maxTreeDepth. Only
// called when globalDebug is set; a pathologically deep scene tree usually
// indicates a cycle in the Parent() backlinks.
func assertTreeDepth(n Node) {
	if !globalDebug {
		return
	}
	depth := 0
	for p := n; p != nil; p = p.Parent() {
		depth++
		if depth > maxTreeDepth {
			panic(fmt.Sprintf("swen debug: tree depth exceeds %d at node %s", maxTreeDepth, n.NodeID()))
		}
	}
}

const maxChildCount = 4096

// assertChildCount panics if children exceeds maxChildCount, the default
// root-filtering bitset capacity (§4.3).
func assertChildCount(n int) {
	if !globalDebug {
		return
	}
	if n > maxChildCount {
		panic(fmt.Sprintf("swen debug: child count %d exceeds bitset capacity %d", n, maxChildCount))
	}
}
