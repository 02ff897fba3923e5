//go:build integration

package integration

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/agenthands/curriculum/internal/config"
	"github.com/agenthands/curriculum/internal/core"
	"github.com/agenthands/curriculum/internal/driver"
)

func newPlanner(t *testing.T) (*core.Planner, *driver.Neo4jDriver) {
	t.Helper()
	_ = godotenv.Load("../../.env")

	cfg := config.Default()
	cfg.ApplyEnv(os.Getenv)
	if os.Getenv("NEO4J_URI") == "" {
		t.Skip("Skipping integration test: NEO4J_URI not set")
	}

	ctx := context.Background()
	log := zaptest.NewLogger(t)
	d, err := driver.NewNeo4jDriver(ctx, cfg.Neo4j, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close(context.Background()) })

	p := core.NewPlanner(d, cfg.Recommendation.Limit, log)
	require.NoError(t, p.BuildIndices(ctx))
	return p, d
}

// prefix returns a per-test code prefix so runs do not collide.
func prefix() string {
	return "T" + strings.ToUpper(uuid.NewString()[:6]) + "-"
}

const seedModuleQuery = `
	CREATE (m:Module {
		course_code: $code,
		course_name: $name,
		faculty: $faculty,
		academic_units: 4,
		broadening_and_deepening: $bde,
		discipline: $discipline,
		community: 1
	})
`

const seedGroupQuery = `
	MATCH (m:Module {course_code: $code})
	CREATE (g:PrerequisiteGroup)
	CREATE (g)-[:ARE_PREREQUISITES]->(m)
	WITH g
	UNWIND $members AS member
	MATCH (p:Module {course_code: member})
	CREATE (p)-[:INSIDE]->(g)
`

const cleanupQuery = `
	MATCH (n)
	WHERE (n:Module AND n.course_code STARTS WITH $prefix)
		OR (n:Student AND n.student_id STARTS WITH $prefix)
	OPTIONAL MATCH (n)-[:ARE_PREREQUISITES|INSIDE]-(g:PrerequisiteGroup)
	DETACH DELETE n, g
`

type seedModule struct {
	code       string
	discipline string
	bde        bool
	groups     [][]string
}

func seed(t *testing.T, d driver.GraphDriver, p string, modules []seedModule) {
	t.Helper()
	ctx := context.Background()

	for _, m := range modules {
		_, err := d.ExecuteQuery(ctx, seedModuleQuery, map[string]any{
			"code":       p + m.code,
			"name":       "Module " + m.code,
			"faculty":    p + "Faculty",
			"bde":        m.bde,
			"discipline": m.discipline,
		})
		require.NoError(t, err)
	}
	for _, m := range modules {
		for _, g := range m.groups {
			members := make([]string, 0, len(g))
			for _, c := range g {
				members = append(members, p+c)
			}
			_, err := d.ExecuteQuery(ctx, seedGroupQuery, map[string]any{"code": p + m.code, "members": members})
			require.NoError(t, err)
		}
	}

	t.Cleanup(func() {
		_, _ = d.ExecuteQuery(context.Background(), cleanupQuery, map[string]any{"prefix": p})
	})
}

func codes(p string, cs ...string) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, p+c)
	}
	return out
}
