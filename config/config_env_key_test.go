package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"identity": map[string]any{
			"supabase": map[string]any{
				"anonKey": "",
			},
		},
		"secretKey": map[string]any{
			"token": "",
		},
		"dashboard": map[string]any{
			"apiBaseUrl": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "IDENTITY_SUPABASE_ANONKEY", want: "identity.supabase.anonKey"},
		{envKey: "SECRETKEY_TOKEN", want: "secretKey.token"},
		{envKey: "DASHBOARD_APIBASEURL", want: "dashboard.apiBaseUrl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

const testConfigYAML = `
env:
  env: test
  appName: LabGas Manager
  log:
    level: debug
http:
  port: 8080
secretKey:
  token: from-file
  ttl: 12h
identity:
  provider: supabase
  supabase:
    url: http://localhost:54321
    anonKey: anon
dashboard:
  port: 8501
  apiBaseUrl: http://localhost:8080/api
`

func TestLoadWithEnv_FileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testConfigYAML), 0o600))
	t.Chdir(dir)
	t.Setenv("SECRETKEY_TOKEN", "from-env")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Env.Env)
	assert.Equal(t, "LabGas Manager", cfg.Env.AppName)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "from-env", cfg.SecretKey.Token)
	assert.Equal(t, 12*time.Hour, cfg.SecretKey.TTL)
	require.NotNil(t, cfg.Identity)
	require.NotNil(t, cfg.Identity.Supabase)
	assert.Equal(t, "supabase", cfg.Identity.Provider)
	assert.Equal(t, "anon", cfg.Identity.Supabase.AnonKey)
	require.NotNil(t, cfg.Dashboard)
	assert.Equal(t, "http://localhost:8080/api", cfg.Dashboard.APIBaseURL)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{
		Identity:  &IdentityConfig{Provider: "supabase", Supabase: &SupabaseConfig{URL: "http://x"}},
		Dashboard: &DashboardConfig{},
		Metrics:   &MetricsConfig{Enabled: true},
	}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultSupabaseTimeout, cfg.Identity.Supabase.Timeout)
	assert.Equal(t, defaultDashboardCookie, cfg.Dashboard.CookieName)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)

	empty := &Config{}
	applyDefaults(empty)
	require.NotNil(t, empty.Identity)
	assert.Equal(t, "local", empty.Identity.Provider)
}
