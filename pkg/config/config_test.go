package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  listen: ":9090"
  timeout: 15s
database:
  dsn: "file:test.db?mode=rwc"
auth:
  secret: "test-secret"
  token_ttl: 2h
llm:
  api_key: "sk-test"
  model: "gpt-4o"
  temperature: 0.5
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Listen)
	assert.Equal(t, 15*time.Second, cfg.Server.Timeout)
	assert.Equal(t, "file:test.db?mode=rwc", cfg.Database.DSN)
	assert.Equal(t, "test-secret", cfg.Auth.Secret)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "sk-test", cfg.LLM.APIKey)
	assert.Equal(t, "gpt-4o", cfg.LLM.Model)
	assert.InEpsilon(t, 0.5, cfg.LLM.Temperature, 0.001)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
auth:
  secret: "test-secret"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Listen)
	assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.InEpsilon(t, 0.7, cfg.LLM.Temperature, 0.001)
	assert.Equal(t, 1000, cfg.LLM.MaxTokens)
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("TEST_JWT_SECRET", "from-env")
	t.Setenv("TEST_API_KEY", "sk-env")

	path := writeConfig(t, `
auth:
  secret: "${TEST_JWT_SECRET}"
llm:
  api_key: "${TEST_API_KEY}"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Auth.Secret)
	assert.Equal(t, "sk-env", cfg.LLM.APIKey)
}

func TestLoad_MissingSecret(t *testing.T) {
	path := writeConfig(t, `
server:
  listen: ":8080"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "auth.secret is required")
}

func TestLoad_InvalidTemperature(t *testing.T) {
	path := writeConfig(t, `
auth:
  secret: "s"
llm:
  temperature: 3.5
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "llm.temperature must be between 0 and 2")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("no-such-config.yml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestLoad_BadYAML(t *testing.T) {
	path := writeConfig(t, "auth: [broken")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestGetters(t *testing.T) {
	path := writeConfig(t, `
server:
  listen: ":7070"
  timeout: 10s
auth:
  secret: "s"
llm:
  model: "llama3"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	listen, timeout := cfg.GetServerConfig()
	assert.Equal(t, ":7070", listen)
	assert.Equal(t, 10*time.Second, timeout)
	assert.Equal(t, "s", cfg.GetAuthConfig().Secret)
	assert.Equal(t, "llama3", cfg.GetLLMConfig().Model)
}

func TestGenerateSchema(t *testing.T) {
	schema, err := GenerateSchema()
	require.NoError(t, err)
	assert.NotNil(t, schema)
}
