package pagerank

import (
	"fmt"
	"math/rand/v2"

	"github.com/vertex-lab/linkrank/pkg/graph"
	"github.com/vertex-lab/linkrank/pkg/models"
	"gonum.org/v1/gonum/stat/distuv"
)

/*
Sample estimates the pagerank of every node of the graph with a single random
walk of cfg.Samples steps. The first node is drawn uniformly; at each step
the current node is counted and the next one is drawn from the TransitionModel of
the current node. The visit counts are then normalized by the number of steps.

Every value is a multiple of 1/cfg.Samples and the values sum to 1. Nodes never
visited have pagerank 0.

The rng is used for every draw, so a seeded rng makes the result reproducible.
*/
func Sample(G *graph.Graph, cfg Config, rng *rand.Rand) (models.Distribution, error) {
	if err := G.Validate(); err != nil {
		return nil, err
	}

	if err := validateDamping(cfg.Damping); err != nil {
		return nil, err
	}

	if cfg.Samples <= 0 {
		return nil, fmt.Errorf("%w: got %d", models.ErrInvalidSamples, cfg.Samples)
	}

	if rng == nil {
		return nil, models.ErrNilRNG
	}

	W := newWalker(G, cfg.Damping, rng)
	visits := make([]int, len(W.nodes))

	current := W.first()
	for i := 0; i < cfg.Samples; i++ {
		visits[current]++
		current = W.step(current)
	}

	pagerank := make(models.Distribution, len(W.nodes))
	for i, node := range W.nodes {
		pagerank[node] = float64(visits[i]) / float64(cfg.Samples)
	}

	cfg.Log.Info("sampled pagerank of %d nodes with %d steps", len(W.nodes), cfg.Samples)
	return pagerank, nil
}

// walker performs the steps of the random walk on the indices of the sorted nodes.
type walker struct {
	G       *graph.Graph
	nodes   []string
	damping float64
	rng     *rand.Rand

	// the categorical distribution of the next node, for each node already visited
	next map[int]distuv.Categorical
}

func newWalker(G *graph.Graph, damping float64, rng *rand.Rand) *walker {
	return &walker{
		G:       G,
		nodes:   G.Nodes(),
		damping: damping,
		rng:     rng,
		next:    make(map[int]distuv.Categorical),
	}
}

// first draws the starting node from the uniform distribution.
func (W *walker) first() int {
	return W.draw(models.Uniform(W.nodes))
}

// step draws the node that follows current.
func (W *walker) step(current int) int {
	C, exists := W.next[current]
	if !exists {
		node := W.nodes[current]
		successors, _ := W.G.Successors(node)
		C = W.categorical(transition(W.nodes, node, successors, W.damping))
		W.next[current] = C
	}

	return int(C.Rand())
}

// draw returns the index of a node chosen with probability dist[node].
func (W *walker) draw(dist models.Distribution) int {
	C := W.categorical(dist)
	return int(C.Rand())
}

func (W *walker) categorical(dist models.Distribution) distuv.Categorical {
	weights := make([]float64, len(W.nodes))
	for i, node := range W.nodes {
		weights[i] = dist[node]
	}
	return distuv.NewCategorical(weights, W.rng)
}
