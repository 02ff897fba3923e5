package community

import (
	"sort"

	"github.com/agenthands/curriculum/internal/core/model"
)

// LabelPropagation detects communities with weighted label propagation.
// Similarity scores are the edge weights.
type LabelPropagation struct {
	MaxIterations int
}

func NewLabelPropagation(maxIterations int) *LabelPropagation {
	if maxIterations <= 0 {
		maxIterations = 20
	}
	return &LabelPropagation{MaxIterations: maxIterations}
}

func (d *LabelPropagation) Detect(codes []string, edges []model.Similarity) map[string]int64 {
	g := newGraph(codes, edges)

	labels := make(map[string]string, len(g.codes))
	for _, c := range g.codes {
		labels[c] = c
	}

	// Nodes are visited in sorted order and ties keep the current label,
	// otherwise the largest label wins, so the result is deterministic.
	for iter := 0; iter < d.MaxIterations; iter++ {
		changed := 0

		for _, u := range g.codes {
			neighbors := g.adj[u]
			if len(neighbors) == 0 {
				continue
			}

			weights := make(map[string]float64)
			best := 0.0
			for v, w := range neighbors {
				l := labels[v]
				weights[l] += w
				if weights[l] > best {
					best = weights[l]
				}
			}

			if weights[labels[u]] == best {
				continue
			}

			var candidates []string
			for l, w := range weights {
				if w == best {
					candidates = append(candidates, l)
				}
			}
			sort.Strings(candidates)
			labels[u] = candidates[len(candidates)-1]
			changed++
		}

		if changed == 0 {
			break
		}
	}

	return assignIDs(labels)
}
