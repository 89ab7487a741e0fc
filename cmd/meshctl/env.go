package main

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/Karol03/mesh/config"
	"github.com/Karol03/mesh/core"
	"github.com/Karol03/mesh/metrics"
)

type desc = core.Description

// env is what every command gets: output, configuration, logger and the
// optional metrics registry.
type env struct {
	out     io.Writer
	cfg     config.Config
	log     *zap.Logger
	name    string
	reg     *prometheus.Registry
	metrics *metrics.Collector
}

func newEnv(out io.Writer, configPath, name string) (*env, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}

	e := &env{out: out, cfg: cfg, log: log, name: name}
	if cfg.MetricsEnabled {
		e.reg = prometheus.NewRegistry()
		if e.metrics, err = metrics.New(e.reg, metrics.DefaultNamespace); err != nil {
			return nil, fmt.Errorf("meshctl: metrics: %w", err)
		}
	}

	return e, nil
}

// newLogger builds zap's production (json) or development (console) logger
// at the configured level, writing to stderr.
func newLogger(cfg config.Config) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("meshctl: log level: %w", err)
	}

	zc := zap.NewDevelopmentConfig()
	if cfg.LogFormat == "json" {
		zc = zap.NewProductionConfig()
	}
	zc.Level = level
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	log, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("meshctl: logger: %w", err)
	}

	return log, nil
}

// newMesh returns an empty mesh wired to the command's logger and metrics.
func (e *env) newMesh() *core.Mesh[desc, desc] {
	return core.NewMesh[desc, desc](
		core.WithName(e.name),
		core.WithLogger(e.log),
		core.WithMetrics(e.metrics),
	)
}

// flushMetrics writes the registry to the configured textfile.
func (e *env) flushMetrics() error {
	if e.reg == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(e.cfg.MetricsTextfile, e.reg); err != nil {
		return fmt.Errorf("meshctl: write metrics: %w", err)
	}
	e.log.Debug("metrics written", zap.String("path", e.cfg.MetricsTextfile))

	return nil
}
