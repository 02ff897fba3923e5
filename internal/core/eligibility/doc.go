// Package eligibility decides which modules in a proposed batch can be taken,
// given prerequisite requirements expressed as alternative groups of courses.
//
// The resolver only looks inside the batch it is given. A prerequisite that is
// not itself part of the batch never counts as satisfied, even if the student
// completed it in an earlier term. Callers that want historical completions to
// count must include those modules in the batch.
package eligibility
