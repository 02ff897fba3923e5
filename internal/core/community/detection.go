// Package community groups modules into communities over their SIMILAR
// relations. Content-based recommendations only pair modules from the same
// community.
package community

import (
	"fmt"
	"sort"

	"github.com/agenthands/curriculum/internal/core/model"
)

// Detector assigns a community id to every code. Codes without any similarity
// become singleton communities.
type Detector interface {
	Detect(codes []string, edges []model.Similarity) map[string]int64
}

// ForAlgorithm returns the detector configured by name.
func ForAlgorithm(name string, maxIterations int) (Detector, error) {
	switch name {
	case "label_propagation", "":
		return NewLabelPropagation(maxIterations), nil
	case "components":
		return Components{}, nil
	default:
		return nil, fmt.Errorf("unknown community algorithm %q", name)
	}
}

// graph is an undirected weighted adjacency list over the given codes. Edges
// touching unknown codes and self loops are dropped.
type graph struct {
	codes []string
	adj   map[string]map[string]float64
}

func newGraph(codes []string, edges []model.Similarity) *graph {
	g := &graph{adj: make(map[string]map[string]float64, len(codes))}
	for _, c := range codes {
		if _, ok := g.adj[c]; ok {
			continue
		}
		g.adj[c] = make(map[string]float64)
		g.codes = append(g.codes, c)
	}
	sort.Strings(g.codes)

	for _, e := range edges {
		if e.Source == e.Target {
			continue
		}
		if _, ok := g.adj[e.Source]; !ok {
			continue
		}
		if _, ok := g.adj[e.Target]; !ok {
			continue
		}
		w := e.Score
		if w <= 0 {
			w = 1
		}
		g.adj[e.Source][e.Target] += w
		g.adj[e.Target][e.Source] += w
	}
	return g
}

// assignIDs numbers clusters by their smallest member so ids are stable
// across runs over the same graph.
func assignIDs(labels map[string]string) map[string]int64 {
	first := make(map[string]string)
	for code, label := range labels {
		if cur, ok := first[label]; !ok || code < cur {
			first[label] = code
		}
	}

	keys := make([]string, 0, len(first))
	for label := range first {
		keys = append(keys, label)
	}
	sort.Slice(keys, func(i, j int) bool { return first[keys[i]] < first[keys[j]] })

	ids := make(map[string]int64, len(keys))
	for i, label := range keys {
		ids[label] = int64(i)
	}

	out := make(map[string]int64, len(labels))
	for code, label := range labels {
		out[code] = ids[label]
	}
	return out
}

// Count returns the number of distinct communities in an assignment.
func Count(assignment map[string]int64) int {
	seen := make(map[int64]struct{})
	for _, id := range assignment {
		seen[id] = struct{}{}
	}
	return len(seen)
}

// Components treats every connected component as one community.
type Components struct{}

func (Components) Detect(codes []string, edges []model.Similarity) map[string]int64 {
	g := newGraph(codes, edges)

	labels := make(map[string]string, len(g.codes))
	for _, c := range g.codes {
		if _, ok := labels[c]; !ok {
			g.dfs(c, c, labels)
		}
	}
	return assignIDs(labels)
}

func (g *graph) dfs(u, root string, labels map[string]string) {
	labels[u] = root
	for v := range g.adj[u] {
		if _, ok := labels[v]; !ok {
			g.dfs(v, root, labels)
		}
	}
}
