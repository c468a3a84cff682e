// The graph package defines the immutable link graph consumed by the estimators.
package graph

import (
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/vertex-lab/linkrank/pkg/models"
)

// NodeSet is a set of node identifiers.
type NodeSet mapset.Set[string]

// Graph maps each node to the set of nodes it links to. It can only be built
// with New(), which guarantees that:
//
// - no node links to itself
//
// - every successor is also a node of the graph
//
// A Graph is never modified after construction, so it can be shared between
// goroutines without coordination.
type Graph struct {
	// the sorted slice of all nodes; fixes the iteration order
	nodes []string

	// a map that associates each node with the set of its successors
	successors map[string]NodeSet
}

// New() returns a Graph built from a map node --> linked nodes. Self-links
// and links to nodes that are not keys of links are dropped.
func New(links map[string][]string) *Graph {
	G := &Graph{
		nodes:      make([]string, 0, len(links)),
		successors: make(map[string]NodeSet, len(links)),
	}

	for node := range links {
		G.nodes = append(G.nodes, node)
	}
	slices.Sort(G.nodes)

	for node, targets := range links {
		succ := mapset.NewThreadUnsafeSetWithSize[string](len(targets))
		for _, target := range targets {
			if target == node {
				continue
			}

			if _, exists := links[target]; !exists {
				continue
			}

			succ.Add(target)
		}

		G.successors[node] = succ
	}

	return G
}

// Validate() returns the appropriate error if the graph is nil or has no nodes.
func (G *Graph) Validate() error {
	if G == nil {
		return models.ErrNilGraph
	}

	if len(G.nodes) == 0 {
		return models.ErrEmptyGraph
	}

	return nil
}

// Size() returns the number of nodes in the graph.
func (G *Graph) Size() int {
	if G == nil {
		return 0
	}
	return len(G.nodes)
}

// Nodes() returns all the nodes of the graph, sorted.
func (G *Graph) Nodes() []string {
	if G == nil {
		return nil
	}
	return slices.Clone(G.nodes)
}

// Contains() returns whether node is in the graph.
func (G *Graph) Contains(node string) bool {
	if G == nil {
		return false
	}

	_, exists := G.successors[node]
	return exists
}

// Successors() returns the sorted successors of node, or ErrNodeNotFound.
func (G *Graph) Successors(node string) ([]string, error) {
	if err := G.Validate(); err != nil {
		return nil, err
	}

	succ, exists := G.successors[node]
	if !exists {
		return nil, models.ErrNodeNotFound
	}

	successors := succ.ToSlice()
	slices.Sort(successors)
	return successors, nil
}

// OutDegree() returns the number of successors of node (zero for dead ends and
// for nodes not in the graph).
func (G *Graph) OutDegree(node string) int {
	if G == nil {
		return 0
	}

	succ, exists := G.successors[node]
	if !exists {
		return 0
	}
	return succ.Cardinality()
}

// Links() returns a copy of the graph as a plain map node --> sorted successors.
func (G *Graph) Links() map[string][]string {
	if G == nil {
		return nil
	}

	links := make(map[string][]string, len(G.nodes))
	for _, node := range G.nodes {
		links[node], _ = G.Successors(node)
	}
	return links
}

// SetupGraph() returns a Graph based on the provided type. It's used as a test fixture.
func SetupGraph(graphType string) *Graph {
	switch graphType {
	case "nil":
		return nil

	case "empty":
		return New(map[string][]string{})

	case "one-node":
		return New(map[string][]string{"0": {}})

	case "self-loop":
		return New(map[string][]string{"0": {"0"}, "1": {"0"}})

	case "dandlings":
		return New(map[string][]string{"0": {}, "1": {}, "2": {}, "3": {}, "4": {}})

	case "dead-end":
		return New(map[string][]string{"A": {"B"}, "B": {}})

	case "triangle":
		return New(map[string][]string{"0": {"1"}, "1": {"2"}, "2": {"0"}})

	case "corpus0":
		return New(map[string][]string{
			"1.html": {"2.html"},
			"2.html": {"1.html", "3.html"},
			"3.html": {"2.html"},
		})

	case "acyclic1":
		return New(map[string][]string{
			"0": {"1", "2"},
			"1": {},
			"2": {"3"},
			"3": {"1"},
			"4": {},
		})

	case "cyclic1":
		return New(map[string][]string{
			"0": {"1", "3"},
			"1": {"2"},
			"2": {"0"},
			"3": {},
		})

	default:
		return nil
	}
}
