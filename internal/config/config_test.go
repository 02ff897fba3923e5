package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "neo4j", cfg.Neo4j.Database)
	assert.Equal(t, 30, cfg.Auth.TokenTTLMinutes)
	assert.Equal(t, 10, cfg.Recommendation.Limit)
	assert.Equal(t, "label_propagation", cfg.Community.Algorithm)
}

func TestLoad_OverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[server]
port = "9090"

[neo4j]
uri = "bolt://graph:7687"
user = "planner"

[auth]
secret_key = "s3cret"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "bolt://graph:7687", cfg.Neo4j.URI)
	assert.Equal(t, "planner", cfg.Neo4j.User)
	assert.Equal(t, "neo4j", cfg.Neo4j.Database) // untouched default
	assert.Equal(t, "s3cret", cfg.Auth.SecretKey)
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[server\nport="), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse TOML")
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"NEO4J_URI":         "neo4j://remote:7687",
		"NEO4J_PASSWORD":    "pw",
		"SECRET_KEY":        "from-env",
		"TOKEN_TTL_MINUTES": "5",
		"PORT":              "1234",
	}
	cfg := Default()
	cfg.ApplyEnv(func(k string) string { return env[k] })

	assert.Equal(t, "neo4j://remote:7687", cfg.Neo4j.URI)
	assert.Equal(t, "pw", cfg.Neo4j.Password)
	assert.Equal(t, "from-env", cfg.Auth.SecretKey)
	assert.Equal(t, 5, cfg.Auth.TokenTTLMinutes)
	assert.Equal(t, "1234", cfg.Server.Port)
	assert.Equal(t, "neo4j", cfg.Neo4j.User)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	assert.Error(t, cfg.Validate(), "missing secret key")

	cfg.Auth.SecretKey = "k"
	assert.NoError(t, cfg.Validate())

	cfg.Recommendation.Limit = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Auth.SecretKey = "k"
	cfg.Community.Algorithm = "louvain"
	assert.Error(t, cfg.Validate())
}
