package core

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/curriculum/internal/core/model"
	"github.com/agenthands/curriculum/internal/driver"
)

func TestGetStudent(t *testing.T) {
	d := (&MockDriver{}).On(driver.GetStudentQuery, studentRec("A0001", "CS1010"))
	p := newTestPlanner(d)

	rec, err := p.GetStudentRecord(context.Background(), "A0001")
	require.NoError(t, err)
	assert.Equal(t, "hash", rec.PasswordHash)
	assert.Equal(t, []string{"CS1010"}, rec.CourseCodes)
	assert.Equal(t, int64(2), rec.YearOfStudy)

	_, err = newTestPlanner(&MockDriver{}).GetStudent(context.Background(), "A0001")
	assert.ErrorIs(t, err, ErrStudentNotFound)
}

func TestRegisterStudent(t *testing.T) {
	d := &MockDriver{}
	p := newTestPlanner(d)

	err := p.RegisterStudent(context.Background(), model.Student{StudentID: "A0002", Email: "a@b.c"}, "$2a$hash")
	require.NoError(t, err)

	calls := d.CallsTo(driver.RegisterStudentQuery)
	require.Len(t, calls, 1)
	assert.Equal(t, "$2a$hash", calls[0].Params["password"])
	assert.Equal(t, []string{}, calls[0].Params["disciplines"])
}

func TestRegisterStudent_Exists(t *testing.T) {
	d := (&MockDriver{}).On(driver.GetStudentQuery, studentRec("A0001"))
	p := newTestPlanner(d)

	err := p.RegisterStudent(context.Background(), model.Student{StudentID: "A0001"}, "x")
	assert.ErrorIs(t, err, ErrStudentExists)
	assert.Empty(t, d.CallsTo(driver.RegisterStudentQuery))
}

func TestRegisterStudent_ConcurrentDuplicate(t *testing.T) {
	// The existence check passes but the CREATE trips the uniqueness constraint.
	violation := fmt.Errorf("failed to execute query: %w", &neo4j.Neo4jError{
		Code: "Neo.ClientError.Schema.ConstraintValidationFailed",
		Msg:  "Node already exists with label `Student` and property `student_id` = 'A0002'",
	})
	d := (&MockDriver{}).Fail(driver.RegisterStudentQuery, violation)
	p := newTestPlanner(d)

	err := p.RegisterStudent(context.Background(), model.Student{StudentID: "A0002"}, "x")
	assert.ErrorIs(t, err, ErrStudentExists)
}

func TestRegisterStudent_OtherDriverError(t *testing.T) {
	boom := errors.New("connection reset")
	d := (&MockDriver{}).Fail(driver.RegisterStudentQuery, boom)
	p := newTestPlanner(d)

	err := p.RegisterStudent(context.Background(), model.Student{StudentID: "A0002"}, "x")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrStudentExists)
}

func TestUpdateStudent_EmptyPrerequisiteGroup(t *testing.T) {
	// A PrerequisiteGroup node without members hydrates as an empty group.
	d := (&MockDriver{}).
		On(driver.GetStudentQuery, studentRec("A0001")).
		On(driver.GetModulesByCourseCodesQuery, moduleRec("CS3230", []any{}))
	p := newTestPlanner(d)

	_, err := p.UpdateStudent(context.Background(), "A0001", model.Student{
		StudentID:   "A0001",
		CourseCodes: []string{"CS3230"},
	})
	assert.ErrorIs(t, err, ErrPrerequisitesUnfulfilled)
	assert.Empty(t, d.CallsTo(driver.AddModulesTakenQuery))
}

func TestCheckEligibility_UnknownCodes(t *testing.T) {
	d := (&MockDriver{}).On(driver.GetModulesByCourseCodesQuery, moduleRec("CS1010"))
	p := newTestPlanner(d)

	_, err := p.CheckEligibility(context.Background(), []string{"CS1010", "ZZ9999"})
	assert.ErrorIs(t, err, ErrInvalidCourseCodes)
	assert.Contains(t, err.Error(), "ZZ9999")
}

func TestCheckEligibility_Unfulfilled(t *testing.T) {
	d := (&MockDriver{}).On(driver.GetModulesByCourseCodesQuery,
		moduleRec("CS1010"),
		moduleRec("CS2040", []any{"CS1010", "CS1231"}),
	)
	p := newTestPlanner(d)

	_, err := p.CheckEligibility(context.Background(), []string{"CS1010", "CS2040"})
	assert.ErrorIs(t, err, ErrPrerequisitesUnfulfilled)
	assert.Contains(t, err.Error(), "CS2040")
}

func updateFixture() *MockDriver {
	return (&MockDriver{}).
		On(driver.GetStudentQuery, studentRec("A0001", "CS1010", "MA1521")).
		On(driver.GetModulesByCourseCodesQuery, moduleRec("CS1010"), moduleRec("CS2030", []any{"CS1010"})).
		On(driver.UpdateStudentQuery, rec("student_id", "A0001"))
}

func TestUpdateStudent(t *testing.T) {
	d := updateFixture()
	p := newTestPlanner(d)

	update := model.Student{
		StudentID:   "A0001",
		Email:       "new@example.com",
		CourseCodes: []string{"CS2030", "CS1010", "CS2030"},
	}
	out, err := p.UpdateStudent(context.Background(), "A0001", update)
	require.NoError(t, err)
	assert.Equal(t, []string{"CS1010", "CS2030"}, out.CourseCodes)
	assert.Equal(t, "new@example.com", out.Email)

	add := d.CallsTo(driver.AddModulesTakenQuery)
	require.Len(t, add, 1)
	assert.Equal(t, []string{"CS2030"}, add[0].Params["course_codes"])

	remove := d.CallsTo(driver.RemoveModulesTakenQuery)
	require.Len(t, remove, 1)
	assert.Equal(t, []string{"MA1521"}, remove[0].Params["course_codes"])

	assert.Len(t, d.CallsTo(driver.UpdateStudentQuery), 1)
}

func TestUpdateStudent_OtherSubject(t *testing.T) {
	d := updateFixture()
	p := newTestPlanner(d)

	_, err := p.UpdateStudent(context.Background(), "A9999", model.Student{StudentID: "A0001"})
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Empty(t, d.Calls)
}

func TestUpdateStudent_IneligibleWritesNothing(t *testing.T) {
	d := (&MockDriver{}).
		On(driver.GetStudentQuery, studentRec("A0001")).
		On(driver.GetModulesByCourseCodesQuery, moduleRec("CS2030", []any{"CS1010"}))
	p := newTestPlanner(d)

	_, err := p.UpdateStudent(context.Background(), "A0001", model.Student{
		StudentID:   "A0001",
		CourseCodes: []string{"CS2030"},
	})
	assert.ErrorIs(t, err, ErrPrerequisitesUnfulfilled)
	assert.Empty(t, d.CallsTo(driver.UpdateStudentQuery))
	assert.Empty(t, d.CallsTo(driver.AddModulesTakenQuery))
}

func TestUpdateStudent_ApplyFailure(t *testing.T) {
	boom := errors.New("write failed")
	d := updateFixture().Fail(driver.AddModulesTakenQuery, boom)
	p := newTestPlanner(d)

	_, err := p.UpdateStudent(context.Background(), "A0001", model.Student{
		StudentID:   "A0001",
		CourseCodes: []string{"CS1010", "CS2030"},
	})
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "failed to add modules")
}

func TestUpdateStudent_UnchangedEnrollment(t *testing.T) {
	d := (&MockDriver{}).
		On(driver.GetStudentQuery, studentRec("A0001", "CS1010")).
		On(driver.GetModulesByCourseCodesQuery, moduleRec("CS1010")).
		On(driver.UpdateStudentQuery, rec("student_id", "A0001"))
	p := newTestPlanner(d)

	_, err := p.UpdateStudent(context.Background(), "A0001", model.Student{
		StudentID:   "A0001",
		CourseCodes: []string{"CS1010"},
	})
	require.NoError(t, err)
	assert.Empty(t, d.CallsTo(driver.AddModulesTakenQuery))
	assert.Empty(t, d.CallsTo(driver.RemoveModulesTakenQuery))
}
