package engine

import (
	"context"
	"fmt"

	"kbridge/bridge"
	"kbridge/internal/config"
	"kbridge/internal/executor"
	"kbridge/internal/logging"
	"kbridge/internal/telemetry"
	"kbridge/internal/transport"
	"kbridge/smartmodule"
)

// Bootstrap wires the bridge from cfg. Nothing is served until Run. A ctx
// cancelled before the listener binds aborts startup and releases what was built.
func Bootstrap(ctx context.Context, cfg config.Config) (*Engine, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}
	logs := logging.Configure(logging.Options{
		Level:      cfg.Log.Level,
		JSON:       cfg.Log.JSON,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	e := &Engine{logs: logs}

	// 1. smart-module engine (optional)
	var sm smartmodule.Engine
	if cfg.SmartModule.EngineAddr != "" {
		r, err := smartmodule.Dial(cfg.SmartModule.EngineAddr, cfg.SmartModule.Timeout)
		if err != nil {
			e.abort()
			return nil, fmt.Errorf("smartmodule engine: %w", err)
		}
		sm = r
	}

	// 2. bridge
	e.bridge = bridge.New(bridge.Options{
		Profile:  cfg.Kafka,
		Engine:   sm,
		Executor: executor.New(cfg.Executor.GeneralWorkers, cfg.Executor.IOWorkers),
	})

	// 3. transport server
	if err := ctx.Err(); err != nil {
		e.abort()
		return nil, fmt.Errorf("bootstrap: %w", err)
	}
	srv, err := transport.StartServer(cfg.Transport.Listen, e.bridge)
	if err != nil {
		e.abort()
		return nil, fmt.Errorf("transport: %w", err)
	}
	e.transport = srv

	// 4. metrics
	if cfg.Telemetry.MetricsAddr != "" {
		m, err := telemetry.Expose(cfg.Telemetry.MetricsAddr)
		if err != nil {
			srv.Stop()
			e.abort()
			return nil, fmt.Errorf("metrics: %w", err)
		}
		e.metrics = m
	}

	logging.L().Info("bridge ready",
		"listen", srv.Addr().String(),
		"brokers", cfg.Kafka.Brokers,
		"smartmodules", cfg.SmartModule.EngineAddr != "",
	)
	return e, nil
}

func (e *Engine) abort() {
	if e.bridge != nil {
		_ = e.bridge.Close()
	}
	_ = e.logs.Close()
}
