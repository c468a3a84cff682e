package main

import (
	"context"
	"fmt"
	"io"

	"github.com/vertex-lab/linkrank/pkg/corpus"
	"github.com/vertex-lab/linkrank/pkg/models"
	"github.com/vertex-lab/linkrank/pkg/pagerank"
	"github.com/vertex-lab/linkrank/pkg/report"
	"golang.org/x/sync/errgroup"
)

// Run() loads the corpus at path, computes the pagerank with the configured
// methods and prints the results to out. When RS is not nil, every result is
// also saved in it under the name of its method.
func Run(ctx context.Context, config *Config, path string, RS models.RankStore, out io.Writer) error {
	G, err := corpus.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load the corpus: %w", err)
	}
	config.Log.Info("loaded %d nodes from %s", G.Size(), path)

	methods := []string{config.Method}
	if config.Method == MethodBoth {
		methods = pagerank.Methods()
	}

	// the graph is immutable, so the estimators can run concurrently
	results := make([]models.Distribution, len(methods))
	eg, ctx := errgroup.WithContext(ctx)

	for i, method := range methods {
		eg.Go(func() error {
			dist, err := pagerank.Compute(G, config.Pagerank, method)
			if err != nil {
				return fmt.Errorf("%s failed: %w", method, err)
			}

			results[i] = dist
			if RS == nil {
				return nil
			}
			return RS.Save(ctx, method, dist)
		})
	}

	if err := eg.Wait(); err != nil {
		config.Log.Error("%v", err)
		return err
	}

	for i, method := range methods {
		title := Title(method, config.Pagerank)
		if config.Top > 0 {
			err = report.PrintTop(out, title, results[i], config.Top)
		} else {
			err = report.Print(out, title, results[i])
		}

		if err != nil {
			return err
		}
	}

	return nil
}

// Title() returns the heading printed above the results of method.
func Title(method string, cfg pagerank.Config) string {
	switch method {
	case pagerank.MethodSample:
		return fmt.Sprintf("PageRank Results from Sampling (n = %d)", cfg.Samples)

	case pagerank.MethodIterate:
		return "PageRank Results from Iteration"

	default:
		return "PageRank Results"
	}
}
