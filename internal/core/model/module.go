package model

// Module is a catalog entry. Prerequisites and MutuallyExclusives are hydrated
// from graph relations; Score is only set on recommendation candidates.
type Module struct {
	CourseCode             string      `json:"course_code"`
	CourseName             string      `json:"course_name"`
	CourseInfo             string      `json:"course_info,omitempty"`
	AcademicUnits          int64       `json:"academic_units,omitempty"`
	BroadeningAndDeepening bool        `json:"broadening_and_deepening"`
	Faculty                string      `json:"faculty,omitempty"`
	GradeType              string      `json:"grade_type,omitempty"`
	Total                  *int64      `json:"total,omitempty"` // pagination total
	Prerequisites          Requirement `json:"prerequisites"`
	MutuallyExclusives     []string    `json:"mutually_exclusives"`
	Score                  float64     `json:"score"`
}

type ModuleSummary struct {
	CourseCode string `json:"course_code"`
	CourseName string `json:"course_name"`
}

// Similarity is a SIMILAR relation between two modules.
type Similarity struct {
	Source string
	Target string
	Score  float64
}
