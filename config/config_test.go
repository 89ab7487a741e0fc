package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Karol03/mesh/config"
)

func write(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}

func TestLoad_Files(t *testing.T) {
	want := config.Config{
		LogLevel:        "debug",
		LogFormat:       "json",
		Format:          "binary",
		MetricsEnabled:  true,
		MetricsTextfile: "/tmp/mesh.prom",
		MaxDepth:        4,
	}

	cases := map[string]string{
		"mesh.yaml": "log_level: debug\nlog_format: json\nformat: binary\nmetrics_enabled: true\nmetrics_textfile: /tmp/mesh.prom\nmax_depth: 4\n",
		"mesh.toml": "log_level = \"debug\"\nlog_format = \"json\"\nformat = \"binary\"\nmetrics_enabled = true\nmetrics_textfile = \"/tmp/mesh.prom\"\nmax_depth = 4\n",
		"mesh.hcl":  "log_level = \"debug\"\nlog_format = \"json\"\nformat = \"binary\"\nmetrics_enabled = true\nmetrics_textfile = \"/tmp/mesh.prom\"\nmax_depth = 4\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			cfg, err := config.Load(write(t, name, body))
			require.NoError(t, err)
			require.Equal(t, want, cfg)
		})
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	cfg, err := config.Load(write(t, "mesh.yml", "format: dot\n"))
	require.NoError(t, err)
	require.Equal(t, "dot", cfg.Format)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "console", cfg.LogFormat)

	cfg, err = config.Load(write(t, "mesh.hcl", "max_depth = 2\n"))
	require.NoError(t, err)
	require.Equal(t, 2, cfg.MaxDepth)
	require.Equal(t, "text", cfg.Format)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := write(t, "mesh.toml", "log_level = \"warn\"\nformat = \"binary\"\n")
	t.Setenv(config.EnvLogLevel, "error")
	t.Setenv(config.EnvMetrics, "true")
	t.Setenv(config.EnvMetricsTextfile, "out.prom")
	t.Setenv(config.EnvMaxDepth, "7")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "error", cfg.LogLevel)
	require.Equal(t, "binary", cfg.Format)
	require.True(t, cfg.MetricsEnabled)
	require.Equal(t, "out.prom", cfg.MetricsTextfile)
	require.Equal(t, 7, cfg.MaxDepth)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(write(t, "mesh.json", "{}"))
	require.ErrorIs(t, err, config.ErrUnsupportedFile)

	_, err = config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(write(t, "mesh.yaml", "log_level: [\n"))
	require.Error(t, err)

	_, err = config.Load(write(t, "mesh.yaml", "log_level: loud\n"))
	require.ErrorIs(t, err, config.ErrInvalid)
	require.ErrorContains(t, err, "loglevel")

	_, err = config.Load(write(t, "mesh.yaml", "metrics_enabled: true\n"))
	require.ErrorIs(t, err, config.ErrInvalid)
	require.ErrorContains(t, err, "metricstextfile")

	_, err = config.Load(write(t, "mesh.yaml", "max_depth: -1\n"))
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestLoad_BadEnv(t *testing.T) {
	t.Setenv(config.EnvMetrics, "maybe")
	_, err := config.Load("")
	require.ErrorIs(t, err, config.ErrInvalid)
}
