package core

import (
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/agenthands/curriculum/internal/core/model"
)

// Record accessors tolerate missing keys and NULLs by returning zero values.

func recString(rec *neo4j.Record, key string) string {
	v, _ := rec.Get(key)
	s, _ := v.(string)
	return s
}

func recInt(rec *neo4j.Record, key string) int64 {
	v, _ := rec.Get(key)
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	}
	return 0
}

func recFloat(rec *neo4j.Record, key string) float64 {
	v, _ := rec.Get(key)
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	}
	return 0
}

func recBool(rec *neo4j.Record, key string) bool {
	v, _ := rec.Get(key)
	b, _ := v.(bool)
	return b
}

func toStrings(v any) []string {
	switch list := v.(type) {
	case []string:
		return append([]string(nil), list...)
	case []any:
		out := make([]string, 0, len(list))
		for _, it := range list {
			if s, ok := it.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func recStrings(rec *neo4j.Record, key string) []string {
	v, _ := rec.Get(key)
	return toStrings(v)
}

func recRequirement(rec *neo4j.Record, key string) model.Requirement {
	v, _ := rec.Get(key)
	var groups []any
	switch list := v.(type) {
	case []any:
		groups = list
	case [][]string:
		return model.NewRequirement(list...)
	default:
		return model.Requirement{}
	}

	req := make(model.Requirement, 0, len(groups))
	for _, g := range groups {
		req = append(req, model.PrerequisiteGroup(toStrings(g)))
	}
	return req
}

func moduleFromRecord(rec *neo4j.Record) model.Module {
	m := model.Module{
		CourseCode:             recString(rec, "course_code"),
		CourseName:             recString(rec, "course_name"),
		CourseInfo:             recString(rec, "course_info"),
		AcademicUnits:          recInt(rec, "academic_units"),
		BroadeningAndDeepening: recBool(rec, "broadening_and_deepening"),
		Faculty:                recString(rec, "faculty"),
		GradeType:              recString(rec, "grade_type"),
		Prerequisites:          recRequirement(rec, "prerequisites"),
		MutuallyExclusives:     recStrings(rec, "mutually_exclusives"),
		Score:                  recFloat(rec, "score"),
	}
	if m.MutuallyExclusives == nil {
		m.MutuallyExclusives = []string{}
	}
	if _, ok := rec.Get("total"); ok {
		total := recInt(rec, "total")
		m.Total = &total
	}
	return m
}

func studentFromRecord(rec *neo4j.Record) model.StudentRecord {
	s := model.StudentRecord{
		Student: model.Student{
			StudentID:   recString(rec, "student_id"),
			Email:       recString(rec, "email"),
			Major:       recString(rec, "major"),
			FirstName:   recString(rec, "first_name"),
			LastName:    recString(rec, "last_name"),
			YearOfStudy: recInt(rec, "year_of_study"),
			Disciplines: recStrings(rec, "disciplines"),
			CourseCodes: recStrings(rec, "course_codes"),
		},
		PasswordHash: recString(rec, "password"),
	}
	if s.Disciplines == nil {
		s.Disciplines = []string{}
	}
	if s.CourseCodes == nil {
		s.CourseCodes = []string{}
	}
	return s
}
