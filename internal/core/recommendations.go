package core

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/agenthands/curriculum/internal/core/model"
	"github.com/agenthands/curriculum/internal/driver"
	"github.com/agenthands/curriculum/internal/metrics"
)

type candidateSource struct {
	query  string
	family model.Family
	status model.PrereqStatus
}

var candidateSources = []candidateSource{
	{driver.GetContentBasedFulfilledQuery, model.FamilyContentBased, model.PrereqFulfilled},
	{driver.GetContentBasedNoPrereqQuery, model.FamilyContentBased, model.PrereqNoneRequired},
	{driver.GetCollaborativeFulfilledQuery, model.FamilyCollaborative, model.PrereqFulfilled},
	{driver.GetCollaborativeNoPrereqQuery, model.FamilyCollaborative, model.PrereqNoneRequired},
}

// Candidates runs the four candidate queries for a student and tags each
// result with its family and prerequisite status.
func (p *Planner) Candidates(ctx context.Context, studentID string) ([]model.Candidate, error) {
	results := make([][]model.Module, len(candidateSources))

	g, gctx := errgroup.WithContext(ctx)
	for i, src := range candidateSources {
		i, src := i, src
		params := map[string]any{
			"student_id":           studentID,
			"limit":                p.CandidateLimit,
			"excluded_disciplines": p.ExcludedDisciplines,
		}
		if src.family == model.FamilyContentBased {
			params["max_similarity"] = p.MaxSimilarity
		}
		g.Go(func() error {
			modules, err := p.queryModules(gctx, src.query, params)
			if err != nil {
				return fmt.Errorf("failed to fetch %s candidates: %w", src.family, err)
			}
			results[i] = modules
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []model.Candidate
	for i, src := range candidateSources {
		for _, m := range results[i] {
			out = append(out, model.Candidate{Module: m, Family: src.family, Status: src.status})
		}
	}
	return out, nil
}

func (p *Planner) Recommend(ctx context.Context, studentID string) (*model.Recommendations, error) {
	if _, err := p.GetStudentRecord(ctx, studentID); err != nil {
		return nil, err
	}

	candidates, err := p.Candidates(ctx, studentID)
	if err != nil {
		return nil, err
	}

	recs := p.Aggregator.AggregateCandidates(candidates)
	metrics.RecommendationsReturned.WithLabelValues(model.FamilyContentBased.String()).Observe(float64(len(recs.ContentBased)))
	metrics.RecommendationsReturned.WithLabelValues(model.FamilyCollaborative.String()).Observe(float64(len(recs.Collaborative)))

	p.Log.Debug("recommendations",
		zap.String("student_id", studentID),
		zap.Int("candidates", len(candidates)),
		zap.Int("content_based", len(recs.ContentBased)),
		zap.Int("collaborative", len(recs.Collaborative)),
	)
	return &recs, nil
}
