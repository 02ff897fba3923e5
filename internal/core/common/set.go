package common

import "sort"

// Set is a set of course codes.
type Set map[string]struct{}

func NewSet(items ...string) Set {
	s := make(Set, len(items))
	for _, it := range items {
		s[it] = struct{}{}
	}
	return s
}

func (s Set) Has(item string) bool {
	_, ok := s[item]
	return ok
}

func (s Set) Add(item string) {
	s[item] = struct{}{}
}

// Difference returns the members of s that are not in other.
func (s Set) Difference(other Set) Set {
	out := make(Set)
	for it := range s {
		if !other.Has(it) {
			out[it] = struct{}{}
		}
	}
	return out
}

// Sorted returns the members in ascending order. The result is never nil.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for it := range s {
		out = append(out, it)
	}
	sort.Strings(out)
	return out
}

// Unique drops repeated items, keeping the first occurrence.
func Unique(items []string) []string {
	seen := make(Set, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		if seen.Has(it) {
			continue
		}
		seen.Add(it)
		out = append(out, it)
	}
	return out
}
