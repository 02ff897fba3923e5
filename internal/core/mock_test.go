package core

import (
	"context"
	"sync"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

type MockCall struct {
	Query  string
	Params map[string]any
}

// MockDriver answers each query from Results (keyed by the exact query text),
// falling back to MockResult. Errors in Errs take precedence.
type MockDriver struct {
	mu sync.Mutex

	Results    map[string]neo4j.EagerResult
	Errs       map[string]error
	MockResult neo4j.EagerResult
	Err        error

	Calls []MockCall
}

func (m *MockDriver) ExecuteQuery(ctx context.Context, query string, params map[string]any) (neo4j.EagerResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, MockCall{Query: query, Params: params})
	if err, ok := m.Errs[query]; ok {
		return neo4j.EagerResult{}, err
	}
	if m.Err != nil {
		return neo4j.EagerResult{}, m.Err
	}
	if res, ok := m.Results[query]; ok {
		return res, nil
	}
	return m.MockResult, nil
}

func (m *MockDriver) BuildIndices(ctx context.Context) error {
	return nil
}

func (m *MockDriver) Close(ctx context.Context) error {
	return nil
}

func (m *MockDriver) On(query string, records ...*neo4j.Record) *MockDriver {
	if m.Results == nil {
		m.Results = make(map[string]neo4j.EagerResult)
	}
	m.Results[query] = neo4j.EagerResult{Records: records}
	return m
}

func (m *MockDriver) Fail(query string, err error) *MockDriver {
	if m.Errs == nil {
		m.Errs = make(map[string]error)
	}
	m.Errs[query] = err
	return m
}

// CallsTo returns the recorded calls for one query.
func (m *MockDriver) CallsTo(query string) []MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []MockCall
	for _, c := range m.Calls {
		if c.Query == query {
			out = append(out, c)
		}
	}
	return out
}

// rec builds a record from alternating key, value pairs.
func rec(kv ...any) *neo4j.Record {
	r := &neo4j.Record{}
	for i := 0; i+1 < len(kv); i += 2 {
		r.Keys = append(r.Keys, kv[i].(string))
		r.Values = append(r.Values, kv[i+1])
	}
	return r
}

func moduleRec(code string, prereqs ...[]any) *neo4j.Record {
	groups := make([]any, 0, len(prereqs))
	for _, g := range prereqs {
		groups = append(groups, g)
	}
	return rec(
		"course_code", code,
		"course_name", "Course "+code,
		"academic_units", int64(4),
		"faculty", "Computing",
		"prerequisites", groups,
		"mutually_exclusives", []any{},
	)
}

func studentRec(id string, codes ...string) *neo4j.Record {
	cc := make([]any, 0, len(codes))
	for _, c := range codes {
		cc = append(cc, c)
	}
	return rec(
		"student_id", id,
		"email", id+"@example.com",
		"password", "hash",
		"year_of_study", int64(2),
		"disciplines", []any{"Computer Science"},
		"course_codes", cc,
	)
}
