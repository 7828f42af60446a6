// Package dependency provides a directed acyclic graph (DAG) implementation
// for ordering dependent units in sysforge.
//
// The generator uses it to order package layers so that a layer's
// dependencies are installed before the layer itself. Nodes are identified
// by plain string IDs, so the graph is equally usable for any other
// before/after ordering problem (service units, provisioning phases).
//
// # Core Concepts
//
// Graph: A directed acyclic graph. Each node is a unit, and edges represent
// "must come after" dependencies.
//
// Node: A unit in the graph with:
//   - ID: unique identifier (e.g. a package layer name)
//   - DependsOn: list of IDs this node must be placed after
//
// # Ordering Rules
//
//  1. A node never appears before any of its declared dependencies.
//  2. Ties are broken by ID order, so the result is deterministic.
//  3. Dependencies on IDs that were never added are ignored here;
//     validation reports them as errors separately.
//  4. Nodes caught in a cycle are appended in ID order at the end instead
//     of being dropped, so generation still produces every unit.
//
// # Usage Example
//
//	g := dependency.New()
//	g.AddNode(dependency.Node{ID: "base"})
//	g.AddNode(dependency.Node{ID: "web", DependsOn: []dependency.NodeID{"base"}})
//	g.AddNode(dependency.Node{ID: "app", DependsOn: []dependency.NodeID{"web"}})
//
//	order := g.TopologicalSort()
//	// Returns: ["base", "web", "app"]
//
// # Thread Safety
//
// Graph is not thread-safe by itself; callers must synchronise if they
// write concurrently. In practice the generator builds one graph per run
// from a single goroutine.
package dependency
