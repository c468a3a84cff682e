/*
The models package defines the fundamental structures and interfaces used in this project.

Distribution:
A Distribution maps each node of a link graph to a non-negative score. Transition
probabilities and the final pagerank produced by the estimators share this shape.

RankStore:
The RankStore interface abstracts saving and loading final rank distributions,
allowing for multiple implementations.
*/
package models

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// Distribution associates each node with its probability (or pagerank) value.
type Distribution map[string]float64

// Uniform() returns the distribution that assigns 1/N to each of the N nodes.
func Uniform(nodes []string) Distribution {
	dist := make(Distribution, len(nodes))
	if len(nodes) == 0 {
		return dist
	}

	p := 1.0 / float64(len(nodes))
	for _, node := range nodes {
		dist[node] = p
	}
	return dist
}

// Sum() returns the total mass of the distribution. Values are summed in node
// order so that the result doesn't depend on the map iteration order.
func Sum(dist Distribution) float64 {
	nodes := make([]string, 0, len(dist))
	for node := range dist {
		nodes = append(nodes, node)
	}
	slices.Sort(nodes)

	values := make([]float64, len(nodes))
	for i, node := range nodes {
		values[i] = dist[node]
	}
	return floats.Sum(values)
}

// computes the L1 distance between two maps who are supposed to have the same keys.
// Keys missing from one of the two maps count as zero.
func Distance(map1, map2 Distribution) float64 {
	distance := 0.0
	for key, val1 := range map1 {
		distance += math.Abs(val1 - map2[key])
	}

	for key, val2 := range map2 {
		if _, exists := map1[key]; !exists {
			distance += math.Abs(val2)
		}
	}
	return distance
}

// Validate() returns an error if dist is not a probability distribution over
// exactly the given nodes, with total mass within tolerance of 1.
func Validate(dist Distribution, nodes []string, tolerance float64) error {
	if len(dist) != len(nodes) {
		return fmt.Errorf("%w: expected %d nodes, got %d", ErrInvalidDistribution, len(nodes), len(dist))
	}

	for _, node := range nodes {
		p, exists := dist[node]
		if !exists {
			return fmt.Errorf("%w: node %q is missing", ErrInvalidDistribution, node)
		}

		if p < 0 || math.IsNaN(p) {
			return fmt.Errorf("%w: node %q has value %v", ErrInvalidDistribution, node, p)
		}
	}

	if sum := Sum(dist); math.Abs(sum-1) > tolerance {
		return fmt.Errorf("%w: values sum to %v", ErrInvalidDistribution, sum)
	}
	return nil
}

//--------------------------ERROR-CODES--------------------------

// graph errors
var ErrNilGraph = errors.New("graph pointer is nil")
var ErrEmptyGraph = errors.New("graph is empty")
var ErrNodeNotFound = errors.New("node not found in the graph")

// estimator errors
var ErrInvalidDamping = errors.New("damping should be a number between 0 and 1 (excluded)")
var ErrInvalidSamples = errors.New("samples should be greater than zero")
var ErrInvalidTolerance = errors.New("tolerance should be greater than zero")
var ErrInvalidMaxRounds = errors.New("maxRounds should be greater than zero")
var ErrNilRNG = errors.New("nil random number generator")
var ErrNotConverged = errors.New("pagerank did not converge")

var ErrInvalidDistribution = errors.New("invalid probability distribution")
