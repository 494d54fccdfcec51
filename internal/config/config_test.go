package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"HELIX_WEB_PORT", "PORT", "HELIX_WEB_DEV", "DEV", "HELIX_WEB_FORM_ENDPOINT", "HELIX_WEB_FORM_TIMEOUT", "HELIX_WEB_BASE_URL"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(Options{EnvFiles: []string{}})
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.Addr)
	require.False(t, cfg.Dev)
	require.Equal(t, 8*time.Second, cfg.FormTimeout)
	require.Empty(t, cfg.FormEndpoint)
	require.Equal(t, "116136023", cfg.EcwidStoreID)
	require.True(t, cfg.Secure())
}

func TestLoadPortPrecedence(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	cfg, err := Load(Options{EnvFiles: []string{}})
	require.NoError(t, err)
	require.Equal(t, ":9000", cfg.Addr)

	t.Setenv("HELIX_WEB_PORT", "9100")
	cfg, err = Load(Options{EnvFiles: []string{}})
	require.NoError(t, err)
	require.Equal(t, ":9100", cfg.Addr)
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DEV", "1")
	t.Setenv("HELIX_WEB_FORM_TIMEOUT", "3s")
	t.Setenv("HELIX_WEB_FORM_ENDPOINT", " https://forms.example.com/submit ")
	cfg, err := Load(Options{EnvFiles: []string{}})
	require.NoError(t, err)
	require.True(t, cfg.Dev)
	require.False(t, cfg.Secure())
	require.Equal(t, 3*time.Second, cfg.FormTimeout)
	require.Equal(t, "https://forms.example.com/submit", cfg.FormEndpoint)
}

func TestLoadDotenvAndFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("HELIX_WEB_FORM_ENDPOINT=https://dotenv.example.com\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("HELIX_WEB_FORM_ENDPOINT") })

	cfgFile := filepath.Join(dir, "helix-web.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("h2c: true\nform_timeout: 5s\nbase_url: http://localhost:8080/\n"), 0o600))

	cfg, err := Load(Options{ConfigFile: cfgFile, EnvFiles: []string{envFile, filepath.Join(dir, "missing.env")}})
	require.NoError(t, err)
	require.Equal(t, "https://dotenv.example.com", cfg.FormEndpoint)
	require.True(t, cfg.H2C)
	require.Equal(t, 5*time.Second, cfg.FormTimeout)
	require.Equal(t, "http://localhost:8080", cfg.BaseURL)
	require.False(t, cfg.Secure())
}

func TestLoadRejectsBadBaseURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("HELIX_WEB_BASE_URL", "helixcraftworks.com")
	_, err := Load(Options{EnvFiles: []string{}})
	require.ErrorIs(t, err, errBadURL)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(Options{ConfigFile: filepath.Join(t.TempDir(), "nope.yaml"), EnvFiles: []string{}})
	require.Error(t, err)
}
