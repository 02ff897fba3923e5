package model

import "sort"

// PrerequisiteGroup is one alternative path to a module: every course code in
// the group must be satisfied.
type PrerequisiteGroup []string

// Requirement is the prerequisite constraint of a module. It is satisfied when
// any one of its groups is fully satisfied. A requirement with no groups is
// always satisfied; an empty group never is.
//
// On the wire it is the nested [][]string list of course codes.
type Requirement []PrerequisiteGroup

func NewRequirement(groups ...[]string) Requirement {
	req := make(Requirement, 0, len(groups))
	for _, g := range groups {
		req = append(req, PrerequisiteGroup(g))
	}
	return req
}

func (r Requirement) IsEmpty() bool {
	return len(r) == 0
}

// Codes returns every course code referenced by any group, sorted and unique.
func (r Requirement) Codes() []string {
	seen := make(map[string]struct{})
	var codes []string
	for _, g := range r {
		for _, c := range g {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			codes = append(codes, c)
		}
	}
	sort.Strings(codes)
	return codes
}

// SatisfiedBy reports whether the requirement holds given a predicate telling
// which course codes are already satisfied.
func (r Requirement) SatisfiedBy(has func(code string) bool) bool {
	if r.IsEmpty() {
		return true
	}
	for _, g := range r {
		if g.SatisfiedBy(has) {
			return true
		}
	}
	return false
}

func (g PrerequisiteGroup) SatisfiedBy(has func(code string) bool) bool {
	if len(g) == 0 {
		return false
	}
	for _, c := range g {
		if !has(c) {
			return false
		}
	}
	return true
}
