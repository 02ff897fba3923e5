// Package enrollment turns a desired set of modules into the minimal changes
// needed against a student's current enrollment.
//
// Codes are not checked against the catalog here. Callers must confirm every
// desired code exists before reconciling; an unknown code in ToAdd surfaces as
// an error from the store when the delta is applied, not from this package.
package enrollment

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/agenthands/curriculum/internal/core/common"
)

// Delta is the pair of changes that turns current into desired. ToAdd and
// ToRemove never share a code.
type Delta struct {
	ToAdd    []string `json:"to_add"`
	ToRemove []string `json:"to_remove"`
}

func (d Delta) IsEmpty() bool {
	return len(d.ToAdd) == 0 && len(d.ToRemove) == 0
}

// Reconcile computes ToRemove = current - desired and ToAdd = desired - current.
// Both lists are sorted.
func Reconcile(current, desired []string) Delta {
	cur := common.NewSet(current...)
	want := common.NewSet(desired...)

	return Delta{
		ToAdd:    want.Difference(cur).Sorted(),
		ToRemove: cur.Difference(want).Sorted(),
	}
}

// Writer applies enrollment changes for one student.
type Writer interface {
	AddModules(ctx context.Context, studentID string, codes []string) error
	RemoveModules(ctx context.Context, studentID string, codes []string) error
}

// Apply issues both halves of the delta concurrently. The halves touch
// disjoint relations so order does not matter. Nothing is retried or rolled
// back; the first error is returned.
func Apply(ctx context.Context, w Writer, studentID string, d Delta) error {
	g, ctx := errgroup.WithContext(ctx)

	if len(d.ToRemove) > 0 {
		g.Go(func() error {
			if err := w.RemoveModules(ctx, studentID, d.ToRemove); err != nil {
				return fmt.Errorf("failed to remove modules: %w", err)
			}
			return nil
		})
	}
	if len(d.ToAdd) > 0 {
		g.Go(func() error {
			if err := w.AddModules(ctx, studentID, d.ToAdd); err != nil {
				return fmt.Errorf("failed to add modules: %w", err)
			}
			return nil
		})
	}

	return g.Wait()
}
