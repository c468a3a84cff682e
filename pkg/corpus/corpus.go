// The corpus package builds link graphs from a corpus of documents: a directory of
// HTML pages, or a YAML/JSON file that maps each node to the nodes it links to.
package corpus

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vertex-lab/linkrank/pkg/graph"
	"golang.org/x/net/html"
	"gopkg.in/yaml.v3"
)

const htmlExtension = ".html"

// Load() returns the graph of the corpus at path. Directories are crawled for HTML
// pages, while .yaml, .yml and .json files are decoded as link lists.
func Load(path string) (*graph.Graph, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if info.IsDir() {
		return Crawl(path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		return Decode(file)

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

/*
Crawl() parses every .html file in dir (not recursively) and returns the graph
whose nodes are the file names, and whose links are the href of the <a> elements.

Self-links and links to pages outside the corpus are dropped.
*/
func Crawl(dir string) (*graph.Graph, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	links := make(map[string][]string)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), htmlExtension) {
			continue
		}

		file, err := os.Open(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}

		hrefs, err := Links(file)
		file.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", entry.Name(), err)
		}

		links[entry.Name()] = hrefs
	}

	if len(links) == 0 {
		return nil, fmt.Errorf("%w: no %s files in %s", ErrEmptyCorpus, htmlExtension, dir)
	}

	return graph.New(links), nil
}

// Links() returns the href values of all the <a> elements in the HTML document.
func Links(r io.Reader) ([]string, error) {
	var hrefs []string
	tokenizer := html.NewTokenizer(r)

	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			if errors.Is(tokenizer.Err(), io.EOF) {
				return hrefs, nil
			}
			return nil, tokenizer.Err()

		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := tokenizer.TagName()
			if string(name) != "a" || !hasAttr {
				continue
			}

			for {
				key, val, more := tokenizer.TagAttr()
				if string(key) == "href" {
					hrefs = append(hrefs, string(val))
					break
				}

				if !more {
					break
				}
			}
		}
	}
}

// Decode() reads a YAML (or JSON) mapping node --> list of linked nodes.
func Decode(r io.Reader) (*graph.Graph, error) {
	var links map[string][]string
	if err := yaml.NewDecoder(r).Decode(&links); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyCorpus
		}
		return nil, fmt.Errorf("failed to decode the corpus: %w", err)
	}

	if len(links) == 0 {
		return nil, ErrEmptyCorpus
	}

	return graph.New(links), nil
}

//--------------------------ERROR-CODES--------------------------

var ErrEmptyCorpus = errors.New("corpus is empty")
var ErrUnsupportedFormat = errors.New("unsupported corpus format")
