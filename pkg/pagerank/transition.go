package pagerank

import (
	"github.com/vertex-lab/linkrank/pkg/graph"
	"github.com/vertex-lab/linkrank/pkg/models"
)

/*
TransitionModel returns the probability distribution over which node to visit
next, given that the walk is currently at node.

With probability damping the walk follows one of the successors of node, chosen
uniformly. With probability 1-damping it jumps to any node of the graph, so that:

P(p) = (1-damping)/N + damping/|successors| if p is a successor of node

P(p) = (1-damping)/N otherwise

A dead end (a node without successors, self-links excluded) is treated as
linking to every node of the graph, itself included, hence the uniform distribution.
*/
func TransitionModel(G *graph.Graph, node string, damping float64) (models.Distribution, error) {
	if err := G.Validate(); err != nil {
		return nil, err
	}

	if err := validateDamping(damping); err != nil {
		return nil, err
	}

	if !G.Contains(node) {
		return nil, models.ErrNodeNotFound
	}

	successors, _ := G.Successors(node)
	return transition(G.Nodes(), node, successors, damping), nil
}

// transition computes the distribution without checking the inputs.
func transition(nodes []string, node string, successors []string, damping float64) models.Distribution {
	successors = withoutSelf(successors, node)
	if len(successors) == 0 {
		return models.Uniform(nodes)
	}

	jump := (1 - damping) / float64(len(nodes))
	follow := damping / float64(len(successors))

	dist := make(models.Distribution, len(nodes))
	for _, p := range nodes {
		dist[p] = jump
	}

	for _, succ := range successors {
		dist[succ] += follow
	}
	return dist
}

// withoutSelf returns successors without node.
func withoutSelf(successors []string, node string) []string {
	for i, succ := range successors {
		if succ == node {
			filtered := make([]string, 0, len(successors)-1)
			filtered = append(filtered, successors[:i]...)
			return append(filtered, successors[i+1:]...)
		}
	}
	return successors
}
