package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

type ServerConfig struct {
	Port string `toml:"port"`
	Mode string `toml:"mode"` // debug | release | test
}

type Neo4jConfig struct {
	URI      string `toml:"uri"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	Database string `toml:"database"`
}

type AuthConfig struct {
	SecretKey       string `toml:"secret_key"`
	TokenTTLMinutes int    `toml:"token_ttl_minutes"`
}

type RecommendationConfig struct {
	Limit int `toml:"limit"`
}

type CommunityConfig struct {
	Algorithm     string `toml:"algorithm"` // label_propagation | components
	MaxIterations int    `toml:"max_iterations"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

type Config struct {
	Server         ServerConfig         `toml:"server"`
	Neo4j          Neo4jConfig          `toml:"neo4j"`
	Auth           AuthConfig           `toml:"auth"`
	Recommendation RecommendationConfig `toml:"recommendation"`
	Community      CommunityConfig      `toml:"community"`
	Log            LogConfig            `toml:"log"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8080",
			Mode: "release",
		},
		Neo4j: Neo4jConfig{
			URI:      "bolt://localhost:7687",
			User:     "neo4j",
			Database: "neo4j",
		},
		Auth: AuthConfig{
			TokenTTLMinutes: 30,
		},
		Recommendation: RecommendationConfig{
			Limit: 10,
		},
		Community: CommunityConfig{
			Algorithm:     "label_propagation",
			MaxIterations: 20,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads a TOML file on top of Default. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return cfg, nil
}

// ApplyEnv overrides file values with environment variables when they are set.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv("PORT"); v != "" {
		c.Server.Port = v
	}
	if v := getenv("GIN_MODE"); v != "" {
		c.Server.Mode = v
	}
	if v := getenv("NEO4J_URI"); v != "" {
		c.Neo4j.URI = v
	}
	if v := getenv("NEO4J_USER"); v != "" {
		c.Neo4j.User = v
	}
	if v := getenv("NEO4J_PASSWORD"); v != "" {
		c.Neo4j.Password = v
	}
	if v := getenv("NEO4J_DATABASE"); v != "" {
		c.Neo4j.Database = v
	}
	if v := getenv("SECRET_KEY"); v != "" {
		c.Auth.SecretKey = v
	}
	if v := getenv("TOKEN_TTL_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Auth.TokenTTLMinutes = n
		}
	}
	if v := getenv("COMMUNITY_ALGORITHM"); v != "" {
		c.Community.Algorithm = v
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

func (c *Config) Validate() error {
	if c.Neo4j.URI == "" {
		return errors.New("neo4j uri is required")
	}
	if c.Auth.SecretKey == "" {
		return errors.New("auth secret key is required")
	}
	if c.Auth.TokenTTLMinutes <= 0 {
		return fmt.Errorf("token ttl must be positive, got %d", c.Auth.TokenTTLMinutes)
	}
	if c.Recommendation.Limit <= 0 {
		return fmt.Errorf("recommendation limit must be positive, got %d", c.Recommendation.Limit)
	}
	switch c.Community.Algorithm {
	case "label_propagation", "components":
	default:
		return fmt.Errorf("unknown community algorithm %q", c.Community.Algorithm)
	}
	return nil
}
