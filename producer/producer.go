// Package producer is the per-topic producer façade. Records are handed to an
// asynchronous sarama pipeline; flush waits until every accepted record has been
// acknowledged or has failed.
package producer

import (
	"context"
	"sync"
	"time"

	"github.com/IBM/sarama"

	"kbridge/client"
	"kbridge/internal/failure"
	"kbridge/internal/logging"
	"kbridge/internal/symbol"
	"kbridge/internal/telemetry"
)

const (
	DefaultLinger     = 100 * time.Millisecond
	DefaultBatchBytes = 16384
	DefaultTimeout    = 1500 * time.Millisecond
)

// Options is fixed for the lifetime of a producer.
type Options struct {
	Topic       string
	Linger      time.Duration
	BatchBytes  int
	Compression symbol.Compression
	Timeout     time.Duration
}

func DefaultOptions(topic string) Options {
	return Options{
		Topic:       topic,
		Linger:      DefaultLinger,
		BatchBytes:  DefaultBatchBytes,
		Compression: symbol.CompressionNone,
		Timeout:     DefaultTimeout,
	}
}

func (o Options) validate() error {
	switch {
	case o.Topic == "":
		return failure.New(failure.InvalidArgument, "producer topic must not be empty")
	case o.Linger < 0:
		return failure.New(failure.InvalidArgument, "linger must not be negative")
	case o.BatchBytes <= 0:
		return failure.New(failure.InvalidArgument, "batch size must be positive, got %d", o.BatchBytes)
	case o.Timeout <= 0:
		return failure.New(failure.InvalidArgument, "timeout must be positive")
	}
	return nil
}

func (o Options) saramaConfig(base *sarama.Config) (*sarama.Config, error) {
	sc := base
	sc.Producer.Flush.Frequency = o.Linger
	sc.Producer.Flush.Bytes = o.BatchBytes
	sc.Producer.Compression = o.Compression.Codec()
	sc.Producer.Timeout = o.Timeout
	sc.Producer.RequiredAcks = sarama.WaitForAll
	sc.Producer.Return.Successes = true
	sc.Producer.Return.Errors = true
	// one request in flight per broker keeps per-key order across retries
	sc.Net.MaxOpenRequests = 1
	if err := sc.Validate(); err != nil {
		return nil, failure.Wrap(failure.InvalidArgument, err, "producer config")
	}
	return sc, nil
}

type Producer struct {
	topic    string
	pipeline client.Pipeline
	timeout  time.Duration

	sendMu sync.Mutex // orders Send against Close
	closed bool

	mu       sync.Mutex
	pending  int
	idle     chan struct{} // closed while pending == 0
	failed   int
	firstErr error

	done chan struct{}
}

// New builds a producer bound to topic. Options are validated before any I/O.
func New(c *client.Client, opts Options) (*Producer, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	base, err := client.NewSaramaConfig(c.Profile())
	if err != nil {
		return nil, err
	}
	sc, err := opts.saramaConfig(base)
	if err != nil {
		return nil, err
	}
	if _, err := c.Partitions(opts.Topic); err != nil {
		return nil, err
	}
	pl, err := c.Dialer().DialProducer(c.Profile().Brokers, sc)
	if err != nil {
		return nil, failure.Wrap(failure.Classify(err, failure.ConnectionError), err, "producer for %q", opts.Topic)
	}
	return newProducer(opts, pl), nil
}

func newProducer(opts Options, pl client.Pipeline) *Producer {
	idle := make(chan struct{})
	close(idle)
	p := &Producer{
		topic:    opts.Topic,
		pipeline: pl,
		timeout:  opts.Timeout,
		idle:     idle,
		done:     make(chan struct{}),
	}
	go p.drain()
	logging.L().Debug("producer started", "topic", opts.Topic, "linger", opts.Linger,
		"batch_bytes", opts.BatchBytes, "compression", string(opts.Compression))
	return p
}

// Send returns once the pipeline accepted the record; it does not wait for the broker.
func (p *Producer) Send(ctx context.Context, key, value []byte) error {
	p.sendMu.Lock()
	defer p.sendMu.Unlock()
	if p.closed {
		return failure.New(failure.ProducerClosed, "producer for %q is closed", p.topic)
	}

	p.track()
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.ByteEncoder(key),
		Value: sarama.ByteEncoder(value),
	}
	select {
	case p.pipeline.Input() <- msg:
		return nil
	case <-ctx.Done():
		p.settle(nil)
		return failure.Wrap(failure.Timeout, ctx.Err(), "send to %q", p.topic)
	}
}

// Flush waits for every accepted record, bounded by the producer timeout. Delivery
// failures observed since the previous flush are reported once.
func (p *Producer) Flush(ctx context.Context) error {
	p.mu.Lock()
	idle := p.idle
	p.mu.Unlock()

	timer := time.NewTimer(p.timeout)
	defer timer.Stop()
	select {
	case <-idle:
	case <-timer.C:
		return failure.New(failure.Timeout, "flush %q: %d records unacknowledged after %s", p.topic, p.Inflight(), p.timeout)
	case <-ctx.Done():
		return failure.Wrap(failure.Timeout, ctx.Err(), "flush %q", p.topic)
	}

	p.mu.Lock()
	failed, first := p.failed, p.firstErr
	p.failed, p.firstErr = 0, nil
	p.mu.Unlock()
	if failed > 0 {
		return failure.Wrap(failure.BrokerError, first, "flush %q: %d records failed", p.topic, failed)
	}
	return nil
}

// Inflight is the number of accepted records not yet acknowledged or failed.
func (p *Producer) Inflight() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pending
}

// Close starts a background shutdown of the pipeline and returns immediately.
// Buffered records are still delivered on a best-effort basis.
func (p *Producer) Close() error {
	p.sendMu.Lock()
	defer p.sendMu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	if n := p.Inflight(); n > 0 {
		logging.L().Warn("producer released with unflushed records", "topic", p.topic, "inflight", n)
	}
	p.pipeline.AsyncClose()
	return nil
}

func (p *Producer) track() {
	p.mu.Lock()
	if p.pending == 0 {
		p.idle = make(chan struct{})
	}
	p.pending++
	p.mu.Unlock()
	telemetry.ProducerInflight.Inc()
}

func (p *Producer) settle(err error) {
	p.mu.Lock()
	p.pending--
	if err != nil {
		p.failed++
		if p.firstErr == nil {
			p.firstErr = err
		}
	}
	if p.pending == 0 {
		close(p.idle)
	}
	p.mu.Unlock()
	telemetry.ProducerInflight.Dec()
}

func (p *Producer) drain() {
	defer close(p.done)
	successes, errs := p.pipeline.Successes(), p.pipeline.Errors()
	for successes != nil || errs != nil {
		select {
		case _, ok := <-successes:
			if !ok {
				successes = nil
				continue
			}
			p.settle(nil)
		case pe, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			logging.L().Warn("record delivery failed", "topic", p.topic, "err", pe.Err)
			p.settle(pe.Err)
		}
	}
}
