package driver

import (
	"context"
	"errors"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"github.com/agenthands/curriculum/internal/config"
)

type Neo4jDriver struct {
	Driver   neo4j.DriverWithContext
	Database string
	log      *zap.Logger
}

func NewNeo4jDriver(ctx context.Context, cfg config.Neo4jConfig, log *zap.Logger) (*Neo4jDriver, error) {
	driver, err := neo4j.NewDriverWithContext(cfg.URI, neo4j.BasicAuth(cfg.User, cfg.Password, ""))
	if err != nil {
		return nil, fmt.Errorf("failed to create neo4j driver: %w", err)
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("failed to reach neo4j at %s: %w", cfg.URI, err)
	}

	log.Info("connected to neo4j", zap.String("uri", cfg.URI), zap.String("database", cfg.Database))
	return &Neo4jDriver{Driver: driver, Database: cfg.Database, log: log}, nil
}

func (d *Neo4jDriver) Close(ctx context.Context) error {
	return d.Driver.Close(ctx)
}

func (d *Neo4jDriver) ExecuteQuery(ctx context.Context, query string, params map[string]any) (neo4j.EagerResult, error) {
	result, err := neo4j.ExecuteQuery(ctx, d.Driver, query, params, neo4j.EagerResultTransformer,
		neo4j.ExecuteQueryWithDatabase(d.Database))
	if err != nil {
		return neo4j.EagerResult{}, fmt.Errorf("failed to execute query: %w", err)
	}
	return *result, nil
}

func (d *Neo4jDriver) BuildIndices(ctx context.Context) error {
	for _, q := range IndexQueries {
		if _, err := d.ExecuteQuery(ctx, q, nil); err != nil {
			// IF NOT EXISTS covers reruns; anything else is worth a look but not fatal
			d.log.Warn("failed to create index", zap.String("query", q), zap.Error(err))
		}
	}
	return nil
}

// IsConstraintViolation reports whether err is a schema constraint failure,
// such as a duplicate key on a unique property.
func IsConstraintViolation(err error) bool {
	var neoErr *neo4j.Neo4jError
	if !errors.As(err, &neoErr) {
		return false
	}
	return neoErr.Code == "Neo.ClientError.Schema.ConstraintValidationFailed"
}
