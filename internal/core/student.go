package core

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/agenthands/curriculum/internal/core/common"
	"github.com/agenthands/curriculum/internal/core/eligibility"
	"github.com/agenthands/curriculum/internal/core/enrollment"
	"github.com/agenthands/curriculum/internal/core/model"
	"github.com/agenthands/curriculum/internal/driver"
	"github.com/agenthands/curriculum/internal/metrics"
)

// GetStudentRecord returns the stored student including the password hash.
func (p *Planner) GetStudentRecord(ctx context.Context, studentID string) (*model.StudentRecord, error) {
	res, err := p.Driver.ExecuteQuery(ctx, driver.GetStudentQuery, map[string]any{
		"student_id": studentID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get student %s: %w", studentID, err)
	}
	if len(res.Records) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrStudentNotFound, studentID)
	}
	rec := studentFromRecord(res.Records[0])
	return &rec, nil
}

func (p *Planner) GetStudent(ctx context.Context, studentID string) (*model.Student, error) {
	rec, err := p.GetStudentRecord(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return &rec.Student, nil
}

// LookupCurrentEnrollment returns the sorted codes the student takes. An
// unknown student has no enrollment.
func (p *Planner) LookupCurrentEnrollment(ctx context.Context, studentID string) ([]string, error) {
	codes, err := p.queryColumn(ctx, driver.GetStudentModulesQuery, "course_code", map[string]any{
		"student_id": studentID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get enrollment for %s: %w", studentID, err)
	}
	return codes, nil
}

// UpdateStudentDetails writes the profile fields. Enrollment is untouched.
func (p *Planner) UpdateStudentDetails(ctx context.Context, s model.Student) error {
	disciplines := s.Disciplines
	if disciplines == nil {
		disciplines = []string{}
	}
	res, err := p.Driver.ExecuteQuery(ctx, driver.UpdateStudentQuery, map[string]any{
		"student_id":    s.StudentID,
		"email":         s.Email,
		"major":         s.Major,
		"first_name":    s.FirstName,
		"last_name":     s.LastName,
		"year_of_study": s.YearOfStudy,
		"disciplines":   disciplines,
	})
	if err != nil {
		return fmt.Errorf("failed to update student %s: %w", s.StudentID, err)
	}
	if len(res.Records) == 0 {
		return fmt.Errorf("%w: %s", ErrStudentNotFound, s.StudentID)
	}
	return nil
}

func (p *Planner) AddModules(ctx context.Context, studentID string, codes []string) error {
	res, err := p.Driver.ExecuteQuery(ctx, driver.AddModulesTakenQuery, map[string]any{
		"student_id":   studentID,
		"course_codes": codes,
	})
	if err != nil {
		return err
	}
	metrics.EnrollmentChangesTotal.WithLabelValues("add").Add(float64(len(res.Records)))
	return nil
}

func (p *Planner) RemoveModules(ctx context.Context, studentID string, codes []string) error {
	res, err := p.Driver.ExecuteQuery(ctx, driver.RemoveModulesTakenQuery, map[string]any{
		"student_id":   studentID,
		"course_codes": codes,
	})
	if err != nil {
		return err
	}
	metrics.EnrollmentChangesTotal.WithLabelValues("remove").Add(float64(len(res.Records)))
	return nil
}

// RegisterStudent stores a new student. passwordHash must already be hashed.
func (p *Planner) RegisterStudent(ctx context.Context, s model.Student, passwordHash string) error {
	_, err := p.GetStudentRecord(ctx, s.StudentID)
	if err == nil {
		return fmt.Errorf("%w: %s", ErrStudentExists, s.StudentID)
	}
	if !isNotFound(err) {
		return err
	}

	disciplines := s.Disciplines
	if disciplines == nil {
		disciplines = []string{}
	}
	_, err = p.Driver.ExecuteQuery(ctx, driver.RegisterStudentQuery, map[string]any{
		"student_id":    s.StudentID,
		"email":         s.Email,
		"password":      passwordHash,
		"major":         s.Major,
		"first_name":    s.FirstName,
		"last_name":     s.LastName,
		"year_of_study": s.YearOfStudy,
		"disciplines":   disciplines,
	})
	if err != nil {
		if driver.IsConstraintViolation(err) {
			// lost a race with a concurrent registration of the same id
			return fmt.Errorf("%w: %s", ErrStudentExists, s.StudentID)
		}
		return fmt.Errorf("failed to register student %s: %w", s.StudentID, err)
	}
	return nil
}

// CheckEligibility confirms every code exists in the catalog and that the set
// is closed under prerequisites. It returns the catalog records on success.
func (p *Planner) CheckEligibility(ctx context.Context, codes []string) ([]model.Module, error) {
	desired := common.Unique(codes)

	modules, err := p.LookupByCourseCodes(ctx, desired)
	if err != nil {
		return nil, err
	}
	if len(modules) != len(desired) {
		found := common.NewSet()
		for _, m := range modules {
			found.Add(m.CourseCode)
		}
		missing := common.NewSet(desired...).Difference(found).Sorted()
		return nil, fmt.Errorf("%w: %s", ErrInvalidCourseCodes, strings.Join(missing, ", "))
	}

	_, ineligible := eligibility.Partition(modules)
	metrics.EligibilityModulesTotal.Add(float64(len(modules)))
	metrics.EligibilityIneligibleTotal.Add(float64(len(ineligible)))
	if len(ineligible) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrPrerequisitesUnfulfilled, strings.Join(ineligible, ", "))
	}
	return modules, nil
}

// UpdateStudent replaces the profile and enrollment of the student named in
// update. subject is the authenticated student id.
func (p *Planner) UpdateStudent(ctx context.Context, subject string, update model.Student) (*model.Student, error) {
	if subject != update.StudentID {
		return nil, ErrForbidden
	}

	current, err := p.GetStudentRecord(ctx, update.StudentID)
	if err != nil {
		return nil, err
	}

	desired := common.Unique(update.CourseCodes)
	if _, err := p.CheckEligibility(ctx, desired); err != nil {
		return nil, err
	}

	if err := p.UpdateStudentDetails(ctx, update); err != nil {
		return nil, err
	}

	delta := enrollment.Reconcile(current.CourseCodes, desired)
	if err := enrollment.Apply(ctx, p, update.StudentID, delta); err != nil {
		return nil, err
	}
	p.Log.Info("updated enrollment",
		zap.String("student_id", update.StudentID),
		zap.Strings("added", delta.ToAdd),
		zap.Strings("removed", delta.ToRemove),
	)

	out := update
	out.CourseCodes = common.NewSet(desired...).Sorted()
	if out.Disciplines == nil {
		out.Disciplines = []string{}
	}
	return &out, nil
}
