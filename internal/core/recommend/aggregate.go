// Package recommend merges recommendation candidate streams into bounded,
// ranked lists, one per family.
package recommend

import (
	"sort"

	"github.com/agenthands/curriculum/internal/core/model"
)

// DefaultLimit is the number of modules kept per family.
const DefaultLimit = 10

// Aggregator ranks candidates within each family and keeps the top Limit.
type Aggregator struct {
	Limit int
}

func NewAggregator(limit int) *Aggregator {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Aggregator{Limit: limit}
}

// Aggregate concatenates the fulfilled and no-prerequisite lists of each
// family, sorts them by descending score (ties keep concatenation order) and
// truncates. The families are ranked independently and never mixed.
func (a *Aggregator) Aggregate(cbFulfilled, cbNone, cfFulfilled, cfNone []model.Module) model.Recommendations {
	return model.Recommendations{
		ContentBased:  a.rank(cbFulfilled, cbNone),
		Collaborative: a.rank(cfFulfilled, cfNone),
	}
}

// AggregateCandidates routes tagged candidates into their family and status
// lists, then aggregates them.
func (a *Aggregator) AggregateCandidates(candidates []model.Candidate) model.Recommendations {
	var lists [2][2][]model.Module
	for _, c := range candidates {
		if c.Family < 0 || int(c.Family) > 1 || c.Status < 0 || int(c.Status) > 1 {
			continue
		}
		lists[c.Family][c.Status] = append(lists[c.Family][c.Status], c.Module)
	}
	return a.Aggregate(
		lists[model.FamilyContentBased][model.PrereqFulfilled],
		lists[model.FamilyContentBased][model.PrereqNoneRequired],
		lists[model.FamilyCollaborative][model.PrereqFulfilled],
		lists[model.FamilyCollaborative][model.PrereqNoneRequired],
	)
}

func (a *Aggregator) rank(lists ...[]model.Module) []model.Module {
	n := 0
	for _, l := range lists {
		n += len(l)
	}
	merged := make([]model.Module, 0, n)
	for _, l := range lists {
		merged = append(merged, l...)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Score > merged[j].Score
	})

	if len(merged) > a.Limit {
		merged = merged[:a.Limit]
	}
	return merged
}

// Aggregate ranks with DefaultLimit.
func Aggregate(cbFulfilled, cbNone, cfFulfilled, cfNone []model.Module) model.Recommendations {
	return NewAggregator(DefaultLimit).Aggregate(cbFulfilled, cbNone, cfFulfilled, cfNone)
}
