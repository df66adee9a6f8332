package engine

import (
	"context"
	"io"
	"time"

	"golang.org/x/sync/errgroup"

	"kbridge/bridge"
	"kbridge/internal/logging"
	"kbridge/internal/telemetry"
	"kbridge/internal/transport"
)

const shutdownGrace = 5 * time.Second

type Engine struct {
	bridge    *bridge.Bridge
	transport *transport.Server
	metrics   *telemetry.Server
	logs      io.Closer
}

func (e *Engine) Bridge() *bridge.Bridge { return e.bridge }

// Run serves until ctx is cancelled or the transport fails, then finalizes every
// live handle.
func (e *Engine) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(e.transport.Serve)

	g.Go(func() error {
		<-ctx.Done()
		e.transport.Stop()
		if e.metrics != nil {
			sctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
			defer cancel()
			if err := e.metrics.Shutdown(sctx); err != nil {
				logging.L().Warn("metrics shutdown", "err", err)
			}
		}
		return nil
	})

	err := g.Wait()
	logging.L().Info("bridge stopping", "handles", e.bridge.Handles())
	if cerr := e.bridge.Close(); cerr != nil && err == nil {
		err = cerr
	}
	_ = e.logs.Close()
	return err
}
