// Package consumer is the per-partition consumer façade. A consumer opens its
// stream at construction and hands out records one at a time; a deadline on Next
// yields a stop-next result instead of an error and leaves the stream untouched.
package consumer

import (
	"context"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/IBM/sarama"
	"golang.org/x/text/encoding/unicode"

	"kbridge/client"
	"kbridge/internal/failure"
	"kbridge/internal/logging"
	"kbridge/internal/symbol"
	"kbridge/smartmodule"
)

// DefaultMaxFetchBytes is the maximum fetch size used when the host gives none.
const DefaultMaxFetchBytes = 1_000_000

// Options describe a consumer; they are consumed at construction.
type Options struct {
	Topic       string
	Partition   int32
	Offset      symbol.Offset
	MaxBytes    int32
	SmartModule *smartmodule.Invocation
}

// Record is one consumed record. Value is the lossy UTF-8 rendering of Raw.
type Record struct {
	Offset    int64
	Partition int32
	Key       []byte
	Value     string
	Raw       []byte
	Timestamp int64 // ms since epoch, -1 when unknown
}

type Consumer struct {
	topic     string
	partition int32
	source    client.Source
	stream    client.Stream
	module    smartmodule.Instance

	queue     []Record
	exhausted bool
}

func (o Options) validate(eng smartmodule.Engine) error {
	switch {
	case o.Topic == "":
		return failure.New(failure.InvalidArgument, "consumer topic must not be empty")
	case o.Partition < 0:
		return failure.New(failure.InvalidArgument, "partition must not be negative, got %d", o.Partition)
	case o.MaxBytes <= 0:
		return failure.New(failure.InvalidArgument, "max bytes must be positive, got %d", o.MaxBytes)
	case o.SmartModule != nil && eng == nil:
		return failure.New(failure.InvalidArgument, "smartmodule requested but no engine is configured")
	}
	return nil
}

func (o Options) saramaConfig(base *sarama.Config) (*sarama.Config, error) {
	sc := base
	sc.Consumer.Fetch.Max = o.MaxBytes
	if sc.Consumer.Fetch.Default > o.MaxBytes {
		sc.Consumer.Fetch.Default = o.MaxBytes
	}
	sc.Consumer.Return.Errors = true
	if err := sc.Validate(); err != nil {
		return nil, failure.Wrap(failure.InvalidArgument, err, "fetch config")
	}
	return sc, nil
}

// New validates opts, instantiates the smart module (if any) and opens the stream
// at the anchor. eng may be nil when no smart module is requested.
func New(ctx context.Context, c *client.Client, opts Options, eng smartmodule.Engine) (*Consumer, error) {
	if err := opts.validate(eng); err != nil {
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

	parts, err := c.Partitions(opts.Topic)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(parts, opts.Partition) {
		return nil, failure.New(failure.NotFound, "topic %q has no partition %d", opts.Topic, opts.Partition)
	}
	oldest, newest, err := c.Offsets(opts.Topic, opts.Partition)
	if err != nil {
		return nil, err
	}
	start := Resolve(opts.Offset, oldest, newest)

	var module smartmodule.Instance
	if opts.SmartModule != nil {
		if module, err = eng.Instantiate(ctx, *opts.SmartModule); err != nil {
			return nil, err
		}
	}

	src, err := c.Dialer().DialConsumer(c.Profile().Brokers, sc)
	if err != nil {
		closeModule(module)
		return nil, failure.Wrap(failure.Classify(err, failure.ConnectionError), err, "consumer for %q", opts.Topic)
	}
	stream, err := src.Open(opts.Topic, opts.Partition, start)
	if err != nil {
		_ = src.Close()
		closeModule(module)
		return nil, failure.Wrap(failure.Classify(err, failure.BrokerError), err, "open %s/%d at %d", opts.Topic, opts.Partition, start)
	}
	logging.L().Debug("consumer opened", "topic", opts.Topic, "partition", opts.Partition,
		"anchor", opts.Offset.Kind.String(), "start", start, "smartmodule", module != nil)
	return &Consumer{topic: opts.Topic, partition: opts.Partition, source: src, stream: stream, module: module}, nil
}

// Resolve turns an anchor into an absolute start position. Relative anchors are
// clamped into [oldest, newest]; absolute positions are passed through.
func Resolve(o symbol.Offset, oldest, newest int64) int64 {
	switch o.Kind {
	case symbol.FromBeginning:
		return min(oldest+o.Value, newest)
	case symbol.FromEnd:
		return max(newest-o.Value, oldest)
	}
	return o.Value
}

// Next waits up to timeout for the next record. ok is false when the deadline
// elapsed first; nothing is consumed in that case.
func (c *Consumer) Next(ctx context.Context, timeout time.Duration) (rec Record, ok bool, err error) {
	if c.exhausted {
		return Record{}, false, failure.New(failure.StreamEnded, "stream %s/%d has ended", c.topic, c.partition)
	}
	if len(c.queue) > 0 {
		rec, c.queue = c.queue[0], c.queue[1:]
		return rec, true, nil
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	msgs, errs := c.stream.Messages(), c.stream.Errors()
	for {
		select {
		case m, open := <-msgs:
			if !open {
				c.exhausted = true
				return Record{}, false, failure.New(failure.StreamEnded, "stream %s/%d has ended", c.topic, c.partition)
			}
			recs, err := c.apply(ctx, m)
			if err != nil {
				c.exhausted = true
				return Record{}, false, err
			}
			if len(recs) == 0 {
				continue
			}
			rec, c.queue = recs[0], recs[1:]
			return rec, true, nil
		case ce, open := <-errs:
			if !open {
				errs = nil
				continue
			}
			c.exhausted = true
			return Record{}, false, failure.Wrap(failure.BrokerError, ce.Err, "stream %s/%d", c.topic, c.partition)
		case <-timer.C:
			return Record{}, false, nil
		case <-ctx.Done():
			return Record{}, false, failure.Wrap(failure.Timeout, ctx.Err(), "next %s/%d", c.topic, c.partition)
		}
	}
}

func (c *Consumer) apply(ctx context.Context, m *sarama.ConsumerMessage) ([]Record, error) {
	if c.module == nil {
		return []Record{toRecord(m.Partition, m.Offset, m.Key, m.Value, m.Timestamp)}, nil
	}
	in := smartmodule.Record{Offset: m.Offset, Timestamp: millis(m.Timestamp), Key: m.Key, Value: m.Value}
	out, err := c.module.Apply(ctx, []smartmodule.Record{in})
	if err != nil {
		return nil, failure.Wrap(failure.Classify(err, failure.BrokerError), err, "smartmodule on %s/%d@%d", c.topic, c.partition, m.Offset)
	}
	recs := make([]Record, 0, len(out))
	for _, r := range out {
		rec := toRecord(m.Partition, r.Offset, r.Key, r.Value, time.Time{})
		rec.Timestamp = r.Timestamp
		recs = append(recs, rec)
	}
	return recs, nil
}

// Close stops the stream without waiting for it to drain.
func (c *Consumer) Close() error {
	c.stream.AsyncClose()
	closeModule(c.module)
	return c.source.Close()
}

func toRecord(partition int32, offset int64, key, value []byte, ts time.Time) Record {
	return Record{
		Offset:    offset,
		Partition: partition,
		Key:       key,
		Value:     lossy(value),
		Raw:       value,
		Timestamp: millis(ts),
	}
}

// lossy decodes b as UTF-8, replacing each maximal ill-formed subpart with a
// single U+FFFD.
func lossy(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	out, err := unicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		return strings.ToValidUTF8(string(b), "\uFFFD")
	}
	return string(out)
}

func millis(ts time.Time) int64 {
	if ts.IsZero() {
		return -1
	}
	return ts.UnixMilli()
}

func closeModule(m smartmodule.Instance) {
	if m == nil {
		return
	}
	if err := m.Close(); err != nil {
		logging.L().Warn("smartmodule close failed", "err", err)
	}
}
