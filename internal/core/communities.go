package core

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/agenthands/curriculum/internal/core/community"
	"github.com/agenthands/curriculum/internal/core/model"
	"github.com/agenthands/curriculum/internal/driver"
)

// RefreshCommunities recomputes the community of every module from the
// SIMILAR graph and writes it back. It returns the number of communities.
func (p *Planner) RefreshCommunities(ctx context.Context, detector community.Detector) (int, error) {
	codes, err := p.CourseCodes(ctx)
	if err != nil {
		return 0, err
	}

	res, err := p.Driver.ExecuteQuery(ctx, driver.GetModuleSimilaritiesQuery, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to get module similarities: %w", err)
	}
	edges := make([]model.Similarity, 0, len(res.Records))
	for _, rec := range res.Records {
		edges = append(edges, model.Similarity{
			Source: recString(rec, "source"),
			Target: recString(rec, "target"),
			Score:  recFloat(rec, "score"),
		})
	}

	assignment := detector.Detect(codes, edges)
	rows := make([]any, 0, len(assignment))
	for _, code := range codes {
		id, ok := assignment[code]
		if !ok {
			continue
		}
		rows = append(rows, map[string]any{"course_code": code, "community": id})
	}

	if _, err := p.Driver.ExecuteQuery(ctx, driver.SetModuleCommunitiesQuery, map[string]any{
		"assignments": rows,
	}); err != nil {
		return 0, fmt.Errorf("failed to write communities: %w", err)
	}

	n := community.Count(assignment)
	p.Log.Info("refreshed module communities",
		zap.Int("modules", len(codes)),
		zap.Int("similarities", len(edges)),
		zap.Int("communities", n),
	)
	return n, nil
}
