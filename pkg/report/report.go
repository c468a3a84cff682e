// The report package formats rank distributions for people to read.
package report

import (
	"cmp"
	"fmt"
	"io"
	"slices"

	"github.com/vertex-lab/linkrank/pkg/models"
)

// Entry is a node with its pagerank.
type Entry struct {
	Node     string
	Pagerank float64
}

// Print() writes the title followed by one line per node, sorted by node name,
// with the pagerank rounded to 4 decimals.
func Print(w io.Writer, title string, dist models.Distribution) error {
	entries := make([]Entry, 0, len(dist))
	for node, pagerank := range dist {
		entries = append(entries, Entry{Node: node, Pagerank: pagerank})
	}

	slices.SortFunc(entries, func(a, b Entry) int {
		return cmp.Compare(a.Node, b.Node)
	})

	return write(w, title, entries)
}

// PrintTop() writes the title followed by the k nodes with the highest pagerank.
// A non-positive k writes all the nodes.
func PrintTop(w io.Writer, title string, dist models.Distribution, k int) error {
	entries := Ranked(dist)
	if k > 0 && k < len(entries) {
		entries = entries[:k]
	}
	return write(w, title, entries)
}

// Ranked() returns the entries sorted by pagerank (highest first); ties are
// broken by node name.
func Ranked(dist models.Distribution) []Entry {
	entries := make([]Entry, 0, len(dist))
	for node, pagerank := range dist {
		entries = append(entries, Entry{Node: node, Pagerank: pagerank})
	}

	slices.SortFunc(entries, func(a, b Entry) int {
		if c := cmp.Compare(b.Pagerank, a.Pagerank); c != 0 {
			return c
		}
		return cmp.Compare(a.Node, b.Node)
	})
	return entries
}

func write(w io.Writer, title string, entries []Entry) error {
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}

	for _, entry := range entries {
		if _, err := fmt.Fprintf(w, "  %s: %.4f\n", entry.Node, entry.Pagerank); err != nil {
			return err
		}
	}
	return nil
}
