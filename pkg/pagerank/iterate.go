package pagerank

import (
	"fmt"
	"math"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/vertex-lab/linkrank/pkg/graph"
	"github.com/vertex-lab/linkrank/pkg/models"
)

/*
Iterate computes the pagerank of every node of the graph by repeatedly applying
the update rule

new(p) = (1-damping)/N + damping * sum_{s in inbound(p)} old(s) / outDegree(s)

to all nodes at once, starting from 1/N, until no node changes by more than
cfg.Tolerance in a round. Dead ends are treated as linking to every node,
themselves included.

If the ranks haven't converged after cfg.MaxRounds rounds, ErrNotConverged is
returned and no pagerank.
*/
func Iterate(G *graph.Graph, cfg Config) (models.Distribution, error) {
	if err := G.Validate(); err != nil {
		return nil, err
	}

	if err := validateDamping(cfg.Damping); err != nil {
		return nil, err
	}

	if !(cfg.Tolerance > 0) {
		return nil, fmt.Errorf("%w: got %v", models.ErrInvalidTolerance, cfg.Tolerance)
	}

	if cfg.MaxRounds <= 0 {
		return nil, fmt.Errorf("%w: got %d", models.ErrInvalidMaxRounds, cfg.MaxRounds)
	}

	nodes := G.Nodes()
	N := float64(len(nodes))
	inbound, outDegree := reverse(G, nodes)

	rank := make([]float64, len(nodes))
	for i := range rank {
		rank[i] = 1 / N
	}

	newRank := make([]float64, len(nodes))
	jump := (1 - cfg.Damping) / N

	for round := 1; round <= cfg.MaxRounds; round++ {
		converged := true

		for p := range nodes {
			sum := 0.0
			for _, s := range inbound[p] {
				sum += rank[s] / outDegree[s]
			}

			newRank[p] = jump + cfg.Damping*sum
			if math.Abs(newRank[p]-rank[p]) > cfg.Tolerance {
				converged = false
			}
		}

		rank, newRank = newRank, rank
		if converged {
			cfg.Log.Info("iterated pagerank of %d nodes converged in %d rounds", len(nodes), round)
			return toDistribution(nodes, rank), nil
		}
	}

	cfg.Log.Warn("iterated pagerank of %d nodes did not converge in %d rounds", len(nodes), cfg.MaxRounds)
	return nil, fmt.Errorf("%w after %d rounds", models.ErrNotConverged, cfg.MaxRounds)
}

/*
reverse builds the inbound adjacency of the graph in which every dead end links to
all nodes (itself included). It returns, for each node index, the sorted indices of
the nodes linking to it, and the out-degree of each node in that graph.
*/
func reverse(G *graph.Graph, nodes []string) ([][]int, []float64) {
	index := make(map[string]int, len(nodes))
	for i, node := range nodes {
		index[node] = i
	}

	sources := make([]mapset.Set[int], len(nodes))
	for i := range sources {
		sources[i] = mapset.NewThreadUnsafeSet[int]()
	}

	outDegree := make([]float64, len(nodes))
	var deadEnds []int

	for i, node := range nodes {
		if G.OutDegree(node) == 0 {
			deadEnds = append(deadEnds, i)
			outDegree[i] = float64(len(nodes))
			continue
		}

		outDegree[i] = float64(G.OutDegree(node))
		successors, _ := G.Successors(node)
		for _, succ := range successors {
			sources[index[succ]].Add(i)
		}
	}

	inbound := make([][]int, len(nodes))
	for p := range nodes {
		sources[p].Append(deadEnds...)
		inbound[p] = sources[p].ToSlice()
		slices.Sort(inbound[p])
	}

	return inbound, outDegree
}

func toDistribution(nodes []string, values []float64) models.Distribution {
	dist := make(models.Distribution, len(nodes))
	for i, node := range nodes {
		dist[node] = values[i]
	}
	return dist
}
