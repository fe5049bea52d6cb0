package config

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvConfigPath, EnvDefaultRegion, EnvMaxInputLength, EnvLogLevel, EnvLogFormat} {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "drphonenumber.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "", cfg.Engine.DefaultRegion)
	assert.Equal(t, 250, cfg.Engine.MaxInputLength)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.NoError(t, cfg.Validate())
}

func TestLoadWithoutFile(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("", Overrides{})
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
[engine]
default_region = "my"
max_input_length = 64

[logging]
level = "debug"
format = "json"
`)

	cfg, err := Load(path, Overrides{})
	require.NoError(t, err)
	assert.Equal(t, "my", cfg.Engine.DefaultRegion)
	assert.Equal(t, 64, cfg.Engine.MaxInputLength)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadFileFromEnvPath(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvConfigPath, writeConfig(t, "[engine]\ndefault_region = \"US\"\n"))

	cfg, err := Load("", Overrides{})
	require.NoError(t, err)
	assert.Equal(t, "US", cfg.Engine.DefaultRegion)
	assert.Equal(t, 250, cfg.Engine.MaxInputLength)
}

func TestLoadPriority(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "[engine]\ndefault_region = \"US\"\n[logging]\nlevel = \"info\"\n")
	t.Setenv(EnvDefaultRegion, "GB")
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvMaxInputLength, "100")

	cfg, err := Load(path, Overrides{DefaultRegion: "MY"})
	require.NoError(t, err)
	assert.Equal(t, "MY", cfg.Engine.DefaultRegion)
	assert.Equal(t, "error", cfg.Logging.Level)
	assert.Equal(t, 100, cfg.Engine.MaxInputLength)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		env  map[string]string
	}{
		{name: "malformed toml", body: "[engine\n"},
		{name: "bad region", body: "[engine]\ndefault_region = \"Atlantis\"\n"},
		{name: "zero length", body: "[engine]\nmax_input_length = 0\n"},
		{name: "bad level", body: "[logging]\nlevel = \"chatty\"\n"},
		{name: "bad format", body: "[logging]\nformat = \"xml\"\n"},
		{name: "non-integer env", env: map[string]string{EnvMaxInputLength: "lots"}},
		{name: "length above limit", body: "[engine]\nmax_input_length = 65537\n"},
		{name: "huge env length", env: map[string]string{EnvMaxInputLength: "9223372036854775807"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := ""
			if tt.body != "" {
				path = writeConfig(t, tt.body)
			}
			_, err := Load(path, Overrides{})
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingNamedFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"), Overrides{})
	assert.ErrorContains(t, err, "not found")
}

func TestToTOMLRoundTrip(t *testing.T) {
	clearEnv(t)
	cfg := Default()
	cfg.Engine.DefaultRegion = "MY"

	s, err := cfg.ToTOML()
	require.NoError(t, err)
	assert.Regexp(t, `default_region = ['"]MY['"]`, s)

	loaded, err := Load(writeConfig(t, s), Overrides{})
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestEngineConfigAndLogger(t *testing.T) {
	cfg := Default()
	cfg.Engine.DefaultRegion = "MY"
	cfg.Logging.Format = "json"

	var buf bytes.Buffer
	log, err := cfg.NewLogger(&buf)
	require.NoError(t, err)
	log.Info(context.Background(), "hidden")
	log.Warn(context.Background(), "shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	ec := cfg.EngineConfig(log)
	assert.Equal(t, "MY", ec.DefaultRegion)
	assert.Equal(t, 250, ec.MaxInputLength)
	assert.NotNil(t, ec.Logger)
}
