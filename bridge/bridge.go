// Package bridge is the synchronous call surface offered to the host. Every
// method blocks until its operation completes, validates host symbols before any
// broker I/O and hands long-lived objects back as opaque handle references.
package bridge

import (
	"context"
	"math"
	"time"

	"kbridge/admin"
	"kbridge/client"
	"kbridge/consumer"
	"kbridge/internal/config"
	"kbridge/internal/executor"
	"kbridge/internal/failure"
	"kbridge/internal/resource"
	"kbridge/internal/symbol"
	"kbridge/internal/telemetry"
	"kbridge/producer"
	"kbridge/smartmodule"
)

// Handle kinds, as reported in metrics and wrong-kind failures.
const (
	KindClient   = "client"
	KindAdmin    = "admin"
	KindProducer = "producer"
	KindConsumer = "consumer"
)

type Options struct {
	Profile config.Kafka
	Dialer  client.Dialer
	// Engine runs smart modules; nil rejects consumers that ask for one.
	Engine   smartmodule.Engine
	Executor *executor.Executor
}

type Bridge struct {
	profile config.Kafka
	dialer  client.Dialer
	engine  smartmodule.Engine
	exec    *executor.Executor
	handles *resource.Registry
}

func New(o Options) *Bridge {
	if o.Dialer == nil {
		o.Dialer = client.SaramaDialer{}
	}
	if o.Executor == nil {
		o.Executor = executor.New(16, 64)
	}
	return &Bridge{
		profile: o.Profile,
		dialer:  o.Dialer,
		engine:  o.Engine,
		exec:    o.Executor,
		handles: resource.NewRegistry(resource.Hooks{
			Opened: func(kind string) { telemetry.HandlesOpen.WithLabelValues(kind).Inc() },
			Closed: func(kind string) { telemetry.HandlesOpen.WithLabelValues(kind).Dec() },
		}),
	}
}

/* ───────────────────────── client ───────────────────────── */

func (b *Bridge) Connect(ctx context.Context) (resource.Ref, error) {
	return executor.Value(ctx, b.exec, executor.General, "connect", func(ctx context.Context) (resource.Ref, error) {
		c, err := client.Connect(ctx, b.profile, b.dialer)
		if err != nil {
			return "", err
		}
		return b.handles.Register(KindClient, c)
	})
}

func (b *Bridge) PlatformVersion(ctx context.Context, ref resource.Ref) (string, error) {
	return executor.Value(ctx, b.exec, executor.General, "platform_version", func(ctx context.Context) (v string, err error) {
		err = resource.With(ctx, b.handles, ref, func(c *client.Client) error {
			v = c.PlatformVersion()
			return nil
		})
		return v, err
	})
}

/* ───────────────────────── admin ────────────────────────── */

func (b *Bridge) AdminConnect(ctx context.Context) (resource.Ref, error) {
	return executor.Value(ctx, b.exec, executor.General, "admin_connect", func(ctx context.Context) (resource.Ref, error) {
		a, err := admin.Connect(ctx, b.profile, b.dialer)
		if err != nil {
			return "", err
		}
		return b.handles.Register(KindAdmin, a)
	})
}

func (b *Bridge) CreateTopic(ctx context.Context, ref resource.Ref, spec admin.TopicSpec) error {
	return b.exec.Do(ctx, executor.General, "create_topic", func(ctx context.Context) error {
		return resource.With(ctx, b.handles, ref, func(a *admin.Admin) error {
			return a.CreateTopic(spec)
		})
	})
}

func (b *Bridge) DeleteTopic(ctx context.Context, ref resource.Ref, name string) error {
	return b.exec.Do(ctx, executor.General, "delete_topic", func(ctx context.Context) error {
		return resource.With(ctx, b.handles, ref, func(a *admin.Admin) error {
			return a.DeleteTopic(name)
		})
	})
}

/* ───────────────────────── producer ─────────────────────── */

// ProducerRequest mirrors new-producer; nil fields take the producer defaults.
type ProducerRequest struct {
	Topic       string
	LingerMs    *uint64
	BatchBytes  *uint64
	Compression string
	TimeoutMs   *uint64
}

func (r ProducerRequest) options() (producer.Options, error) {
	opts := producer.DefaultOptions(r.Topic)
	comp, err := symbol.ParseCompression(r.Compression)
	if err != nil {
		return opts, err
	}
	opts.Compression = comp
	if r.LingerMs != nil {
		if opts.Linger, err = millis("linger", *r.LingerMs); err != nil {
			return opts, err
		}
	}
	if r.TimeoutMs != nil {
		if opts.Timeout, err = millis("timeout", *r.TimeoutMs); err != nil {
			return opts, err
		}
	}
	if r.BatchBytes != nil {
		if *r.BatchBytes > math.MaxInt32 {
			return opts, failure.New(failure.InvalidArgument, "batch size %d too large", *r.BatchBytes)
		}
		opts.BatchBytes = int(*r.BatchBytes)
	}
	return opts, nil
}

func (b *Bridge) NewProducer(ctx context.Context, ref resource.Ref, req ProducerRequest) (resource.Ref, error) {
	opts, err := req.options()
	if err != nil {
		return "", err
	}
	return executor.Value(ctx, b.exec, executor.General, "new_producer", func(ctx context.Context) (resource.Ref, error) {
		var p *producer.Producer
		err := resource.With(ctx, b.handles, ref, func(c *client.Client) (err error) {
			p, err = producer.New(c, opts)
			return err
		})
		if err != nil {
			return "", err
		}
		return b.handles.Register(KindProducer, p)
	})
}

func (b *Bridge) Send(ctx context.Context, ref resource.Ref, key, value []byte) error {
	return b.exec.Do(ctx, executor.IO, "send", func(ctx context.Context) error {
		return resource.With(ctx, b.handles, ref, func(p *producer.Producer) error {
			return p.Send(ctx, key, value)
		})
	})
}

func (b *Bridge) Flush(ctx context.Context, ref resource.Ref) error {
	return b.exec.Do(ctx, executor.IO, "flush", func(ctx context.Context) error {
		return resource.With(ctx, b.handles, ref, func(p *producer.Producer) error {
			return p.Flush(ctx)
		})
	})
}

/* ───────────────────────── consumer ─────────────────────── */

// ConsumerRequest mirrors new-consumer; empty smart-module path means none.
type ConsumerRequest struct {
	Topic                  string
	Partition              int64
	OffsetKind             string
	OffsetValue            uint64
	MaxBytes               *uint64
	SmartModulePath        string
	SmartModuleContext     string
	SmartModuleAccumulator []byte
}

// options validates in host order: anchor, smart module (reads the file), fetch size.
func (r ConsumerRequest) options() (consumer.Options, error) {
	var opts consumer.Options
	off, err := symbol.ParseOffset(r.OffsetKind, r.OffsetValue)
	if err != nil {
		return opts, err
	}
	if r.Partition < 0 || r.Partition > math.MaxInt32 {
		return opts, failure.New(failure.InvalidArgument, "partition %d out of range", r.Partition)
	}
	opts = consumer.Options{
		Topic:     r.Topic,
		Partition: int32(r.Partition),
		Offset:    off,
		MaxBytes:  consumer.DefaultMaxFetchBytes,
	}
	if r.SmartModulePath != "" {
		ctxKind, err := symbol.ParseContext(r.SmartModuleContext)
		if err != nil {
			return opts, err
		}
		inv, err := smartmodule.Load(r.SmartModulePath, ctxKind, r.SmartModuleAccumulator)
		if err != nil {
			return opts, err
		}
		opts.SmartModule = &inv
	}
	if r.MaxBytes != nil {
		if *r.MaxBytes == 0 || *r.MaxBytes > math.MaxInt32 {
			return opts, failure.New(failure.InvalidArgument, "max bytes %d out of range", *r.MaxBytes)
		}
		opts.MaxBytes = int32(*r.MaxBytes)
	}
	return opts, nil
}

func (b *Bridge) NewConsumer(ctx context.Context, ref resource.Ref, req ConsumerRequest) (resource.Ref, error) {
	return executor.Value(ctx, b.exec, executor.General, "new_consumer", func(ctx context.Context) (resource.Ref, error) {
		opts, err := req.options()
		if err != nil {
			return "", err
		}
		var cons *consumer.Consumer
		err = resource.With(ctx, b.handles, ref, func(c *client.Client) (err error) {
			cons, err = consumer.New(ctx, c, opts, b.engine)
			return err
		})
		if err != nil {
			return "", err
		}
		return b.handles.Register(KindConsumer, cons)
	})
}

// Next returns ok=false with a nil error when the deadline elapsed (stop-next).
func (b *Bridge) Next(ctx context.Context, ref resource.Ref, timeoutMs uint64) (rec consumer.Record, ok bool, err error) {
	timeout, err := millis("timeout", timeoutMs)
	if err != nil {
		return rec, false, err
	}
	err = b.exec.Do(ctx, executor.IO, "next", func(ctx context.Context) error {
		return resource.With(ctx, b.handles, ref, func(c *consumer.Consumer) (err error) {
			rec, ok, err = c.Next(ctx, timeout)
			return err
		})
	})
	return rec, ok, err
}

/* ───────────────────────── lifetime ─────────────────────── */

func (b *Bridge) Retain(ref resource.Ref) error { return b.handles.Retain(ref) }

// Release never blocks: the last release closes the native object in the background.
func (b *Bridge) Release(ref resource.Ref) error { return b.handles.Release(ref) }

// Handles reports the number of live handles.
func (b *Bridge) Handles() int { return b.handles.Len() }

// Close finalizes every remaining handle and the smart-module engine.
func (b *Bridge) Close() error {
	b.handles.Close()
	if b.engine != nil {
		return b.engine.Close()
	}
	return nil
}

const maxMillis = uint64(math.MaxInt64 / int64(time.Millisecond))

func millis(what string, ms uint64) (time.Duration, error) {
	if ms > maxMillis {
		return 0, failure.New(failure.InvalidArgument, "%s %dms out of range", what, ms)
	}
	return time.Duration(ms) * time.Millisecond, nil
}
