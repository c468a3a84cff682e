package report

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/vertex-lab/linkrank/pkg/models"
)

func TestPrint(t *testing.T) {
	dist := models.Distribution{"3.html": 0.25676, "1.html": 0.25676, "2.html": 0.48648}

	buf := &bytes.Buffer{}
	if err := Print(buf, "PageRank Results from Iteration", dist); err != nil {
		t.Fatalf("Print(): expected nil, got %v", err)
	}

	expected := "PageRank Results from Iteration\n" +
		"  1.html: 0.2568\n" +
		"  2.html: 0.4865\n" +
		"  3.html: 0.2568\n"

	if buf.String() != expected {
		t.Errorf("Print(): expected %q, got %q", expected, buf.String())
	}
}

func TestRanked(t *testing.T) {
	dist := models.Distribution{"a": 0.2, "b": 0.5, "c": 0.2, "d": 0.1}
	expected := []Entry{{"b", 0.5}, {"a", 0.2}, {"c", 0.2}, {"d", 0.1}}

	if ranked := Ranked(dist); !reflect.DeepEqual(ranked, expected) {
		t.Errorf("Ranked(): expected %v, got %v", expected, ranked)
	}
}

func TestPrintTop(t *testing.T) {
	dist := models.Distribution{"a": 0.2, "b": 0.5, "c": 0.3}

	testCases := []struct {
		name     string
		k        int
		expected string
	}{
		{
			name:     "top 2",
			k:        2,
			expected: "top\n  b: 0.5000\n  c: 0.3000\n",
		},
		{
			name:     "all",
			k:        0,
			expected: "top\n  b: 0.5000\n  c: 0.3000\n  a: 0.2000\n",
		},
		{
			name:     "k bigger than size",
			k:        10,
			expected: "top\n  b: 0.5000\n  c: 0.3000\n  a: 0.2000\n",
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			if err := PrintTop(buf, "top", dist, test.k); err != nil {
				t.Fatalf("PrintTop(): expected nil, got %v", err)
			}

			if buf.String() != test.expected {
				t.Errorf("PrintTop(): expected %q, got %q", test.expected, buf.String())
			}
		})
	}
}
