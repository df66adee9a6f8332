// Package executor runs boundary calls to completion on behalf of a synchronous
// caller. Long-running data-plane calls take a slot from the I/O pool, everything
// else from the general pool, so a burst of blocked consumers cannot starve
// control-plane calls.
package executor

import (
	"context"
	"runtime/debug"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/semaphore"

	"kbridge/internal/failure"
	"kbridge/internal/logging"
	"kbridge/internal/symbol"
	"kbridge/internal/telemetry"
)

type Pool int

const (
	General Pool = iota
	IO
)

func (p Pool) String() string {
	if p == IO {
		return "io"
	}
	return "general"
}

var tracer = otel.Tracer("kbridge/executor")

type Executor struct {
	general *semaphore.Weighted
	io      *semaphore.Weighted
}

func New(generalWorkers, ioWorkers int64) *Executor {
	if generalWorkers <= 0 {
		generalWorkers = 1
	}
	if ioWorkers <= 0 {
		ioWorkers = 1
	}
	return &Executor{
		general: semaphore.NewWeighted(generalWorkers),
		io:      semaphore.NewWeighted(ioWorkers),
	}
}

// Do blocks until fn has run on pool p. Panics inside fn come back as Internal
// failures; every other error is returned as produced.
func (e *Executor) Do(ctx context.Context, p Pool, op string, fn func(context.Context) error) (err error) {
	ctx, span := tracer.Start(ctx, "kbridge."+op,
		trace.WithAttributes(attribute.String("kbridge.pool", p.String())))
	start := time.Now()
	status := symbol.OK
	defer func() {
		if err != nil {
			status = symbol.Error
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			span.SetAttributes(attribute.String("kbridge.failure", string(failure.KindOf(err))))
		}
		telemetry.Calls.WithLabelValues(op, status).Inc()
		telemetry.CallDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
		span.End()
	}()

	sem := e.general
	if p == IO {
		sem = e.io
	}
	waiting := telemetry.PoolWaiting.WithLabelValues(p.String())
	waiting.Inc()
	err = sem.Acquire(ctx, 1)
	waiting.Dec()
	if err != nil {
		return failure.Wrap(failure.Timeout, err, "%s: waiting for %s pool", op, p)
	}
	defer sem.Release(1)

	defer func() {
		if r := recover(); r != nil {
			logging.L().Error("panic in boundary call", "op", op, "panic", r, "stack", string(debug.Stack()))
			err = failure.New(failure.Internal, "%s: panic: %v", op, r)
		}
	}()
	return fn(ctx)
}

// Value is Do for functions that produce a result.
func Value[T any](ctx context.Context, e *Executor, p Pool, op string, fn func(context.Context) (T, error)) (T, error) {
	var out T
	err := e.Do(ctx, p, op, func(ctx context.Context) error {
		v, err := fn(ctx)
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	return out, err
}
