package core

import (
	"context"
	"fmt"

	"github.com/agenthands/curriculum/internal/core/common"
	"github.com/agenthands/curriculum/internal/core/model"
	"github.com/agenthands/curriculum/internal/driver"
)

func (p *Planner) queryModules(ctx context.Context, query string, params map[string]any) ([]model.Module, error) {
	res, err := p.Driver.ExecuteQuery(ctx, query, params)
	if err != nil {
		return nil, err
	}

	modules := make([]model.Module, 0, len(res.Records))
	for _, rec := range res.Records {
		modules = append(modules, moduleFromRecord(rec))
	}
	return modules, nil
}

func (p *Planner) ListModules(ctx context.Context, skip, limit int) ([]model.Module, error) {
	modules, err := p.queryModules(ctx, driver.ListModulesQuery, map[string]any{
		"skip":  skip,
		"limit": limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list modules: %w", err)
	}
	return modules, nil
}

func (p *Planner) GetModule(ctx context.Context, courseCode string) (*model.Module, error) {
	modules, err := p.queryModules(ctx, driver.GetModuleQuery, map[string]any{
		"course_code": courseCode,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get module %s: %w", courseCode, err)
	}
	if len(modules) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrModuleNotFound, courseCode)
	}
	return &modules[0], nil
}

// LookupByCourseCodes returns the catalog records for the given codes. Unknown
// codes are skipped, so the result can be shorter than the input.
func (p *Planner) LookupByCourseCodes(ctx context.Context, codes []string) ([]model.Module, error) {
	codes = common.Unique(codes)
	if len(codes) == 0 {
		return []model.Module{}, nil
	}
	modules, err := p.queryModules(ctx, driver.GetModulesByCourseCodesQuery, map[string]any{
		"course_codes": codes,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to look up modules: %w", err)
	}
	return modules, nil
}

func (p *Planner) SearchModules(ctx context.Context, term string, skip, limit int) ([]model.Module, error) {
	modules, err := p.queryModules(ctx, driver.SearchModulesQuery, map[string]any{
		"search_term": "*" + term + "*",
		"skip":        skip,
		"limit":       limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search modules: %w", err)
	}
	return modules, nil
}

func (p *Planner) queryColumn(ctx context.Context, query, column string, params map[string]any) ([]string, error) {
	res, err := p.Driver.ExecuteQuery(ctx, query, params)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(res.Records))
	for _, rec := range res.Records {
		out = append(out, recString(rec, column))
	}
	return out, nil
}

func (p *Planner) CourseCodes(ctx context.Context) ([]string, error) {
	codes, err := p.queryColumn(ctx, driver.GetCourseCodesQuery, "course_code", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get course codes: %w", err)
	}
	return codes, nil
}

func (p *Planner) Faculties(ctx context.Context) ([]string, error) {
	faculties, err := p.queryColumn(ctx, driver.GetFacultiesQuery, "faculty", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get faculties: %w", err)
	}
	return faculties, nil
}

func (p *Planner) ModulesInFaculty(ctx context.Context, faculty string) ([]model.ModuleSummary, error) {
	res, err := p.Driver.ExecuteQuery(ctx, driver.GetModulesForFacultyQuery, map[string]any{"faculty": faculty})
	if err != nil {
		return nil, fmt.Errorf("failed to get modules for faculty %s: %w", faculty, err)
	}
	out := make([]model.ModuleSummary, 0, len(res.Records))
	for _, rec := range res.Records {
		out = append(out, model.ModuleSummary{
			CourseCode: recString(rec, "course_code"),
			CourseName: recString(rec, "course_name"),
		})
	}
	return out, nil
}

func (p *Planner) CountModules(ctx context.Context) (int64, error) {
	res, err := p.Driver.ExecuteQuery(ctx, driver.CountModulesQuery, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to count modules: %w", err)
	}
	if len(res.Records) == 0 {
		return 0, nil
	}
	return recInt(res.Records[0], "total"), nil
}
