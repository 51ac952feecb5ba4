package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testConfigYAML = `
env:
  serviceName: pos-test
  log:
    level: info
http:
  port: 9090
  timeouts:
    readTimeout: 3s
auth:
  secretKey: file-secret
  accessTokenExpireHours: 2
`

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))

	return dir
}

func TestLoadWithEnv_ReadsYAML(t *testing.T) {
	dir := writeTestConfig(t, testConfigYAML)

	cfg, err := LoadWithEnv[Config]("config", dir)
	require.NoError(t, err)

	assert.Equal(t, "pos-test", cfg.Env.ServiceName)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 3*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, "file-secret", cfg.Auth.SecretKey)
	assert.Equal(t, 2*time.Hour, cfg.Auth.AccessTokenTTL())
}

func TestLoadWithEnv_EnvOverridesFile(t *testing.T) {
	dir := writeTestConfig(t, testConfigYAML)
	t.Setenv("AUTH_SECRETKEY", "env-secret")
	t.Setenv("AUTH_ACCESSTOKENEXPIREHOURS", "6")

	cfg, err := LoadWithEnv[Config]("config", dir)
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.Auth.SecretKey)
	assert.Equal(t, 6, cfg.Auth.AccessTokenExpireHours)
}

func TestLoadWithEnv_ExplicitPathBeatsWorkingDir(t *testing.T) {
	explicitDir := writeTestConfig(t, testConfigYAML)
	workingDir := writeTestConfig(t, "env:\n  serviceName: from-cwd\nauth:\n  secretKey: cwd-secret\n")
	t.Chdir(workingDir)

	cfg, err := LoadWithEnv[Config]("config", explicitDir)
	require.NoError(t, err)
	assert.Equal(t, "pos-test", cfg.Env.ServiceName)

	cfg, err = LoadWithEnv[Config]("config", filepath.Join(explicitDir, "missing"))
	require.NoError(t, err)
	assert.Equal(t, "from-cwd", cfg.Env.ServiceName)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found in any search path")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{Auth: &AuthConfig{SecretKey: "secret"}}

	require.NoError(t, cfg.applyDefaults())

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "HS256", cfg.Auth.Algorithm)
	assert.Equal(t, 24, cfg.Auth.AccessTokenExpireHours)
	assert.Equal(t, bcrypt.DefaultCost, cfg.Auth.BcryptCost)
	assert.Equal(t, "access_token", cfg.Auth.CookieName)
	assert.True(t, cfg.Auth.SecureCookie())
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowOrigins)
}

func TestApplyDefaults_RequiresSecret(t *testing.T) {
	cfg := &Config{}

	err := cfg.applyDefaults()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "auth.secretKey")
}

func TestAuthConfig_SecureCookieCanBeDisabled(t *testing.T) {
	insecure := false
	auth := &AuthConfig{CookieSecure: &insecure}

	assert.False(t, auth.SecureCookie())
}
