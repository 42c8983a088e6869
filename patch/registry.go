package patch

import swen "github.com/mirror-shades/swen"

// Registry indexes the live App subtrees a patch batch may target, for
// node lookup and cycle detection (§4.7 invariants 1-3).
type Registry struct {
	apps map[string]*swen.App
}

// NewRegistry builds a Registry over apps, keyed by App.ID.
func NewRegistry(apps []*swen.App) *Registry {
	r := &Registry{apps: make(map[string]*swen.App, len(apps))}
	for _, a := range apps {
		r.apps[a.ID] = a
	}
	return r
}

// App returns the App registered under id, if any.
func (r *Registry) App(id string) (*swen.App, bool) {
	a, ok := r.apps[id]
	return a, ok
}

// findNode searches appID's subtree for a node with the given id.
func (r *Registry) findNode(appID string, id swen.NodeId) (swen.Node, bool) {
	app, ok := r.apps[appID]
	if !ok {
		return nil, false
	}
	for _, n := range app.Children {
		if found := findInSubtree(n, id); found != nil {
			return found, true
		}
	}
	return nil, false
}

func findInSubtree(n swen.Node, id swen.NodeId) swen.Node {
	if n.NodeID() == id {
		return n
	}
	for _, c := range n.Children() {
		if found := findInSubtree(c, id); found != nil {
			return found
		}
	}
	return nil
}

// containsNodeID reports whether id appears anywhere in n's subtree
// (inclusive), used to reject InsertChild/ReplaceChildren ops that would
// introduce a node as its own descendant.
func containsNodeID(n swen.Node, id swen.NodeId) bool {
	if n.NodeID() == id {
		return true
	}
	for _, c := range n.Children() {
		if containsNodeID(c, id) {
			return true
		}
	}
	return false
}
