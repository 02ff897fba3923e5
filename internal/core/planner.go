package core

import (
	"context"

	"go.uber.org/zap"

	"github.com/agenthands/curriculum/internal/core/recommend"
	"github.com/agenthands/curriculum/internal/driver"
)

// Planner ties the pure planning algorithms to the graph store.
type Planner struct {
	Driver     driver.GraphDriver
	Aggregator *recommend.Aggregator
	Log        *zap.Logger

	// Recommendation query tuning.
	CandidateLimit      int
	MaxSimilarity       float64
	ExcludedDisciplines []string
}

// Disciplines that are open to every student and so never recommended.
var DefaultExcludedDisciplines = []string{
	"Interdisciplinary Collaborative Core",
	"CN Yang Scholars Programme",
	"University Scholars Programme",
	"Renaissance Engineering",
}

func NewPlanner(d driver.GraphDriver, recommendationLimit int, log *zap.Logger) *Planner {
	if log == nil {
		log = zap.NewNop()
	}
	// each candidate query can fill a whole family on its own
	agg := recommend.NewAggregator(recommendationLimit)
	return &Planner{
		Driver:              d,
		Aggregator:          agg,
		Log:                 log,
		CandidateLimit:      agg.Limit,
		MaxSimilarity:       0.85,
		ExcludedDisciplines: DefaultExcludedDisciplines,
	}
}

func (p *Planner) BuildIndices(ctx context.Context) error {
	return p.Driver.BuildIndices(ctx)
}
