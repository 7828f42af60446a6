// internal/dependency/graph.go
package dependency

import "sort"

// NodeID is the unique identifier for a node inside a dependency graph.
// We purposely keep it as a string alias so that callers can freely choose an
// encoding scheme (e.g. a package layer name or a service unit name).
type NodeID string

// Node represents an orderable unit (package layer, service unit, ...)
// together with its dependency list.
//
// A node can depend on zero or more other nodes. The graph should therefore
// be a Directed Acyclic Graph (DAG). Dependencies on IDs that were never
// added are tolerated and simply ignored during ordering; validation reports
// them separately.
type Node struct {
	ID        NodeID
	DependsOn []NodeID
}

// Graph is a small helper to answer dependency queries. It is *not*
// thread-safe by itself; callers must synchronise if they write concurrently.
type Graph struct {
	nodes map[NodeID]*Node
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{nodes: make(map[NodeID]*Node)}
}

// AddNode adds (or replaces) a node in the graph.
func (g *Graph) AddNode(n Node) {
	if g.nodes == nil {
		g.nodes = make(map[NodeID]*Node)
	}
	// Copy to avoid external mutations
	copied := n
	g.nodes[n.ID] = &copied
}

// Get returns a pointer to the stored node or nil if it does not exist.
func (g *Graph) Get(id NodeID) *Node {
	return g.nodes[id]
}

// Dependencies returns a slice of immediate dependency IDs for the given node.
func (g *Graph) Dependencies(id NodeID) []NodeID {
	if n, ok := g.nodes[id]; ok {
		// Return a copy to avoid callers modifying internal slice.
		depsCopy := make([]NodeID, len(n.DependsOn))
		copy(depsCopy, n.DependsOn)
		return depsCopy
	}
	return nil
}

// Dependents returns all node IDs that have a direct dependency on the given
// node. This is an O(n) walk but the graphs we build are tiny, so fine.
func (g *Graph) Dependents(id NodeID) []NodeID {
	var res []NodeID
	for _, n := range g.nodes {
		for _, dep := range n.DependsOn {
			if dep == id {
				res = append(res, n.ID)
				break
			}
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}

// TopologicalSort returns every node ID so that a node appears after all of
// its declared dependencies. Among the nodes that are ready at each step the
// lexicographically smallest ID is picked first, so the result is stable for
// a given graph. Nodes stuck in a dependency cycle, or depending only on
// undeclared IDs that never become placeable, are appended in ID order at
// the end rather than dropped.
func (g *Graph) TopologicalSort() []NodeID {
	ids := make([]NodeID, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	placed := make(map[NodeID]bool, len(g.nodes))
	ordered := make([]NodeID, 0, len(g.nodes))

	for len(ordered) < len(ids) {
		progressed := false
		for _, id := range ids {
			if placed[id] {
				continue
			}
			ready := true
			for _, dep := range g.nodes[id].DependsOn {
				if _, declared := g.nodes[dep]; declared && !placed[dep] {
					ready = false
					break
				}
			}
			if ready {
				ordered = append(ordered, id)
				placed[id] = true
				progressed = true
			}
		}
		if !progressed {
			// Cycle: flush the remainder deterministically.
			for _, id := range ids {
				if !placed[id] {
					ordered = append(ordered, id)
					placed[id] = true
				}
			}
		}
	}

	return ordered
}
