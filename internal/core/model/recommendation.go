package model

// Family is the origin of a recommendation candidate.
type Family int

const (
	FamilyContentBased Family = iota
	FamilyCollaborative
)

func (f Family) String() string {
	switch f {
	case FamilyContentBased:
		return "content_based"
	case FamilyCollaborative:
		return "collaborative"
	default:
		return "unknown"
	}
}

// PrereqStatus records why a candidate is takeable at ingestion time.
type PrereqStatus int

const (
	PrereqFulfilled PrereqStatus = iota
	PrereqNoneRequired
)

func (s PrereqStatus) String() string {
	switch s {
	case PrereqFulfilled:
		return "fulfilled"
	case PrereqNoneRequired:
		return "none_required"
	default:
		return "unknown"
	}
}

type Candidate struct {
	Module Module
	Family Family
	Status PrereqStatus
}

// Recommendations holds the two independently ranked families.
type Recommendations struct {
	ContentBased  []Module `json:"cbf_recommendations"`
	Collaborative []Module `json:"cf_recommendations"`
}
