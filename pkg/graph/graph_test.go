package graph

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vertex-lab/linkrank/pkg/models"
)

func TestNew(t *testing.T) {
	links := map[string][]string{
		"a": {"a", "b", "b", "zzz"}, // self-link, duplicate and dangling link
		"b": {"c"},
		"c": {},
	}

	G := New(links)

	if !reflect.DeepEqual(G.Nodes(), []string{"a", "b", "c"}) {
		t.Errorf("Nodes(): expected [a b c], got %v", G.Nodes())
	}

	expected := map[string][]string{
		"a": {"b"},
		"b": {"c"},
		"c": {},
	}
	if !reflect.DeepEqual(G.Links(), expected) {
		t.Errorf("Links(): expected %v, got %v", expected, G.Links())
	}

	// the graph doesn't share memory with the input
	links["c"] = append(links["c"], "a")
	if G.OutDegree("c") != 0 {
		t.Errorf("OutDegree(): expected 0, got %d", G.OutDegree("c"))
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name          string
		graphType     string
		expectedError error
	}{
		{
			name:          "nil graph",
			graphType:     "nil",
			expectedError: models.ErrNilGraph,
		},
		{
			name:          "empty graph",
			graphType:     "empty",
			expectedError: models.ErrEmptyGraph,
		},
		{
			name:          "valid graph",
			graphType:     "triangle",
			expectedError: nil,
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			G := SetupGraph(test.graphType)
			if err := G.Validate(); !errors.Is(err, test.expectedError) {
				t.Errorf("Validate(): expected %v, got %v", test.expectedError, err)
			}
		})
	}
}

func TestSuccessors(t *testing.T) {
	testCases := []struct {
		name          string
		graphType     string
		node          string
		expectedSucc  []string
		expectedError error
	}{
		{
			name:          "nil graph",
			graphType:     "nil",
			node:          "0",
			expectedError: models.ErrNilGraph,
		},
		{
			name:          "node not found",
			graphType:     "triangle",
			node:          "69",
			expectedError: models.ErrNodeNotFound,
		},
		{
			name:          "self-loop removed",
			graphType:     "self-loop",
			node:          "0",
			expectedSucc:  []string{},
			expectedError: nil,
		},
		{
			name:          "sorted successors",
			graphType:     "corpus0",
			node:          "2.html",
			expectedSucc:  []string{"1.html", "3.html"},
			expectedError: nil,
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			G := SetupGraph(test.graphType)
			succ, err := G.Successors(test.node)

			if !errors.Is(err, test.expectedError) {
				t.Fatalf("Successors(): expected %v, got %v", test.expectedError, err)
			}

			if !reflect.DeepEqual(succ, test.expectedSucc) {
				t.Errorf("Successors(): expected %v, got %v", test.expectedSucc, succ)
			}
		})
	}
}

func TestNilGraph(t *testing.T) {
	var G *Graph
	if G.Size() != 0 || G.Contains("0") || G.OutDegree("0") != 0 || G.Nodes() != nil || G.Links() != nil {
		t.Errorf("expected a nil graph to behave as empty")
	}
}

func TestContains(t *testing.T) {
	G := SetupGraph("dead-end")
	if !G.Contains("A") || !G.Contains("B") {
		t.Errorf("Contains(): expected true")
	}

	if G.Contains("C") {
		t.Errorf("Contains(): expected false")
	}

	if G.Size() != 2 {
		t.Errorf("Size(): expected 2, got %d", G.Size())
	}
}
