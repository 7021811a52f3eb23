package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
env:
  serviceName: accounts-test
  log:
    level: debug
http:
  port: 8080
secretKey:
  access: from-file
auth:
  tokenTTL: 2h
`

func writeTestConfig(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(testYAML), 0o600))

	return dir
}

func TestLoadWithEnv_ReadsYAML(t *testing.T) {
	dir := writeTestConfig(t)

	cfg, err := LoadWithEnv[Config]("test", dir)
	require.NoError(t, err)

	assert.Equal(t, "accounts-test", cfg.Env.ServiceName)
	assert.Equal(t, "debug", cfg.Env.Log.Level)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "from-file", cfg.SecretKey.Access)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := writeTestConfig(t)
	t.Setenv("SECRETKEY_ACCESS", "from-env")
	t.Setenv("AUTH_TOKENTTL", "30m")

	cfg, err := LoadWithEnv[Config]("test", dir)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.SecretKey.Access)
	assert.Equal(t, 30*time.Minute, cfg.Auth.TokenTTL)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found in any search path")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, DefaultBcryptCost, cfg.Auth.BcryptCost)
	assert.Positive(t, cfg.Auth.HashWorkers)
	assert.Equal(t, DefaultTokenTTL, cfg.Auth.TokenTTL)
	assert.Equal(t, DefaultTokenIssuer, cfg.Auth.TokenIssuer)
	require.NotNil(t, cfg.Migration)
	assert.False(t, cfg.Migration.OnStart)
	require.NotNil(t, cfg.Persistence)
	assert.Equal(t, DefaultSlowQueryThreshold, cfg.Persistence.SlowQueryThreshold)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Auth:        &AuthConfig{BcryptCost: 10, HashWorkers: 3, TokenTTL: time.Hour, TokenIssuer: "svc"},
		Persistence: &PersistenceConfig{SlowQueryThreshold: -1},
	}
	cfg.applyDefaults()

	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, 3, cfg.Auth.HashWorkers)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "svc", cfg.Auth.TokenIssuer)
	assert.Equal(t, time.Duration(-1), cfg.Persistence.SlowQueryThreshold)
}
