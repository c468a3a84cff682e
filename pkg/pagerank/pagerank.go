/*
The pagerank package estimates the importance of the nodes of a link graph with
the PageRank model.

Two independent estimators are provided:

Sample():
a Monte-Carlo estimator that counts the visits of a long random walk driven by
the TransitionModel.

Iterate():
a deterministic estimator that solves the PageRank fixed-point equations with a
synchronous relaxation.

Both are pure functions of an immutable graph.Graph, so they can run concurrently.
*/
package pagerank

import (
	"errors"
	"fmt"

	"github.com/vertex-lab/linkrank/pkg/graph"
	"github.com/vertex-lab/linkrank/pkg/models"
)

const (
	MethodSample  string = "sample"
	MethodIterate string = "iterate"
)

// Methods returns the names of the available estimators.
func Methods() []string {
	return []string{MethodSample, MethodIterate}
}

// Compute() runs the estimator named by method. The sampler uses a generator
// seeded with cfg.Seed.
func Compute(G *graph.Graph, cfg Config, method string) (models.Distribution, error) {
	switch method {
	case MethodSample:
		return Sample(G, cfg, NewRand(cfg.Seed))

	case MethodIterate:
		return Iterate(G, cfg)

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
}

// ---------------------------------ERROR-CODES--------------------------------

var ErrUnknownMethod = errors.New("unknown pagerank method")
