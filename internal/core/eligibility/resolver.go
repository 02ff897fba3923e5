package eligibility

import (
	"github.com/agenthands/curriculum/internal/core/model"
)

// group is the set of course handles still missing from one prerequisite group.
type group map[int]struct{}

type graph struct {
	codes *interner
	order []int // batch modules in input order

	pending    [][]group // per module handle, unsatisfied alternative groups
	dependents [][]int   // per course handle, modules that list it in a group
}

func build(modules []model.Module) *graph {
	g := &graph{codes: newInterner(len(modules))}

	pending := make(map[int][]group, len(modules))
	dependents := make(map[int][]int)

	for _, m := range modules {
		h := g.codes.id(m.CourseCode)
		if _, dup := pending[h]; dup {
			// course codes are unique per batch; keep the first definition
			continue
		}
		g.order = append(g.order, h)

		groups := make([]group, 0, len(m.Prerequisites))
		listed := make(map[int]struct{})
		for _, pg := range m.Prerequisites {
			set := make(group, len(pg))
			for _, code := range pg {
				ch := g.codes.id(code)
				set[ch] = struct{}{}
				if _, ok := listed[ch]; !ok {
					listed[ch] = struct{}{}
					dependents[ch] = append(dependents[ch], h)
				}
			}
			// an empty group stays pending forever; it is never completed by a dequeue
			groups = append(groups, set)
		}
		pending[h] = groups
	}

	n := g.codes.len()
	g.pending = make([][]group, n)
	g.dependents = make([][]int, n)
	for h, groups := range pending {
		g.pending[h] = groups
	}
	for h, deps := range dependents {
		g.dependents[h] = deps
	}
	return g
}

// Resolve returns the course codes of every module in the batch that is
// eligible: it has no prerequisite groups, or at least one of its groups is
// made up entirely of modules that are themselves eligible in this batch.
//
// Results are in resolution order. Modules caught in a cycle, or whose every
// group references a course outside the batch, are left out. Resolve never
// fails and does not modify its input.
func Resolve(modules []model.Module) []string {
	g := build(modules)

	n := g.codes.len()
	queued := make([]bool, n)
	eligible := make([]bool, n)

	queue := make([]int, 0, len(g.order))
	for _, h := range g.order {
		if len(g.pending[h]) == 0 {
			queue = append(queue, h)
			queued[h] = true
		}
	}

	result := make([]string, 0, len(g.order))
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if eligible[c] {
			continue
		}
		eligible[c] = true
		result = append(result, g.codes.code(c))

		for _, d := range g.dependents[c] {
			satisfied := false
			for _, grp := range g.pending[d] {
				if _, ok := grp[c]; !ok {
					continue
				}
				delete(grp, c)
				if len(grp) == 0 {
					satisfied = true
				}
			}
			if !satisfied {
				continue
			}
			// one group is enough; drop the other alternatives
			g.pending[d] = nil
			if !queued[d] {
				queued[d] = true
				queue = append(queue, d)
			}
		}
	}

	return result
}

// Partition splits the batch into eligible and ineligible course codes. The
// ineligible list follows input order.
func Partition(modules []model.Module) (eligible, ineligible []string) {
	eligible = Resolve(modules)

	ok := make(map[string]struct{}, len(eligible))
	for _, c := range eligible {
		ok[c] = struct{}{}
	}
	seen := make(map[string]struct{}, len(modules))
	for _, m := range modules {
		if _, dup := seen[m.CourseCode]; dup {
			continue
		}
		seen[m.CourseCode] = struct{}{}
		if _, isEligible := ok[m.CourseCode]; !isEligible {
			ineligible = append(ineligible, m.CourseCode)
		}
	}
	return eligible, ineligible
}
