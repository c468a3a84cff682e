package pagerank

import (
	"errors"
	"math"
	"testing"

	"github.com/vertex-lab/linkrank/pkg/graph"
	"github.com/vertex-lab/linkrank/pkg/models"
)

func TestTransitionModel(t *testing.T) {
	t.Run("negative TransitionModel", func(t *testing.T) {
		testCases := []struct {
			name          string
			graphType     string
			node          string
			damping       float64
			expectedError error
		}{
			{
				name:          "nil graph",
				graphType:     "nil",
				node:          "0",
				damping:       0.85,
				expectedError: models.ErrNilGraph,
			},
			{
				name:          "empty graph",
				graphType:     "empty",
				node:          "0",
				damping:       0.85,
				expectedError: models.ErrEmptyGraph,
			},
			{
				name:          "node not found",
				graphType:     "triangle",
				node:          "69",
				damping:       0.85,
				expectedError: models.ErrNodeNotFound,
			},
			{
				name:          "damping equal to one",
				graphType:     "triangle",
				node:          "0",
				damping:       1,
				expectedError: models.ErrInvalidDamping,
			},
			{
				name:          "negative damping",
				graphType:     "triangle",
				node:          "0",
				damping:       -0.1,
				expectedError: models.ErrInvalidDamping,
			},
			{
				name:          "NaN damping",
				graphType:     "triangle",
				node:          "0",
				damping:       math.NaN(),
				expectedError: models.ErrInvalidDamping,
			},
		}

		for _, test := range testCases {
			t.Run(test.name, func(t *testing.T) {
				G := graph.SetupGraph(test.graphType)
				dist, err := TransitionModel(G, test.node, test.damping)

				if !errors.Is(err, test.expectedError) {
					t.Fatalf("TransitionModel(): expected %v, got %v", test.expectedError, err)
				}

				if dist != nil {
					t.Errorf("TransitionModel(): expected nil, got %v", dist)
				}
			})
		}
	})

	t.Run("positive TransitionModel", func(t *testing.T) {
		testCases := []struct {
			name         string
			graphType    string
			node         string
			damping      float64
			expectedDist models.Distribution
		}{
			{
				name:         "dead end",
				graphType:    "dead-end",
				node:         "B",
				damping:      0.85,
				expectedDist: models.Distribution{"A": 0.5, "B": 0.5},
			},
			{
				name:         "self-loop only is a dead end",
				graphType:    "self-loop",
				node:         "0",
				damping:      0.85,
				expectedDist: models.Distribution{"0": 0.5, "1": 0.5},
			},
			{
				name:         "one successor",
				graphType:    "dead-end",
				node:         "A",
				damping:      0.85,
				expectedDist: models.Distribution{"A": 0.075, "B": 0.925},
			},
			{
				name:      "two successors",
				graphType: "corpus0",
				node:      "2.html",
				damping:   0.85,
				expectedDist: models.Distribution{
					"1.html": 0.05 + 0.425,
					"2.html": 0.05,
					"3.html": 0.05 + 0.425,
				},
			},
			{
				name:      "low damping",
				graphType: "corpus0",
				node:      "1.html",
				damping:   0.4,
				expectedDist: models.Distribution{
					"1.html": 0.2,
					"2.html": 0.2 + 0.4,
					"3.html": 0.2,
				},
			},
		}

		for _, test := range testCases {
			t.Run(test.name, func(t *testing.T) {
				G := graph.SetupGraph(test.graphType)
				dist, err := TransitionModel(G, test.node, test.damping)
				if err != nil {
					t.Fatalf("TransitionModel(): expected nil, got %v", err)
				}

				if distance := models.Distance(dist, test.expectedDist); distance > 1e-12 {
					t.Errorf("TransitionModel(): expected %v, got %v", test.expectedDist, dist)
				}
			})
		}
	})
}

func TestTransitionModelIsDistribution(t *testing.T) {
	graphTypes := []string{"one-node", "self-loop", "dandlings", "dead-end", "triangle", "corpus0", "acyclic1", "cyclic1"}
	dampings := []float64{0.0001, 0.15, 0.5, 0.85, 0.9999}

	for _, graphType := range graphTypes {
		G := graph.SetupGraph(graphType)

		for _, damping := range dampings {
			for _, node := range G.Nodes() {
				dist, err := TransitionModel(G, node, damping)
				if err != nil {
					t.Fatalf("TransitionModel(%s, %s, %v): expected nil, got %v", graphType, node, damping, err)
				}

				if err := models.Validate(dist, G.Nodes(), 1e-9); err != nil {
					t.Errorf("TransitionModel(%s, %s, %v): %v", graphType, node, damping, err)
				}
			}
		}
	}
}

func TestWithoutSelf(t *testing.T) {
	successors := []string{"a", "b", "c"}

	filtered := withoutSelf(successors, "b")
	if len(filtered) != 2 || filtered[0] != "a" || filtered[1] != "c" {
		t.Errorf("withoutSelf(): expected [a c], got %v", filtered)
	}

	if len(successors) != 3 || successors[1] != "b" {
		t.Errorf("withoutSelf(): the input was modified: %v", successors)
	}

	if untouched := withoutSelf(successors, "z"); len(untouched) != 3 {
		t.Errorf("withoutSelf(): expected %v, got %v", successors, untouched)
	}
}

func TestTransitionWithSelfLoop(t *testing.T) {
	// transition() must ignore self-links even if they are passed in
	nodes := []string{"0", "1"}

	dist := transition(nodes, "0", []string{"0"}, 0.85)
	expected := models.Distribution{"0": 0.5, "1": 0.5}

	if models.Distance(dist, expected) > 1e-12 {
		t.Errorf("transition(): expected %v, got %v", expected, dist)
	}
}
