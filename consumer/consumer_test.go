package consumer

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/IBM/sarama"

	"kbridge/client"
	"kbridge/internal/config"
	"kbridge/internal/failure"
	"kbridge/internal/symbol"
	"kbridge/smartmodule"
)

type stream struct {
	msgs   chan *sarama.ConsumerMessage
	errs   chan *sarama.ConsumerError
	closed bool
}

func newStream() *stream {
	return &stream{msgs: make(chan *sarama.ConsumerMessage, 16), errs: make(chan *sarama.ConsumerError, 1)}
}

func (s *stream) Messages() <-chan *sarama.ConsumerMessage { return s.msgs }
func (s *stream) Errors() <-chan *sarama.ConsumerError     { return s.errs }
func (s *stream) AsyncClose()                              { s.closed = true }

type source struct {
	s        *stream
	openedAt int64
	openErr  error
	closed   bool
	opened   int
}

func (s *source) Partitions(string) ([]int32, error) { return []int32{0}, nil }
func (s *source) Open(_ string, _ int32, offset int64) (client.Stream, error) {
	if s.openErr != nil {
		return nil, s.openErr
	}
	s.opened++
	s.openedAt = offset
	return s.s, nil
}
func (s *source) Close() error { s.closed = true; return nil }

type cluster struct{ oldest, newest int64 }

func (c cluster) Partitions(topic string) ([]int32, error) {
	if topic != "t1" {
		return nil, sarama.ErrUnknownTopicOrPartition
	}
	return []int32{0}, nil
}
func (c cluster) GetOffset(_ string, _ int32, at int64) (int64, error) {
	if at == sarama.OffsetOldest {
		return c.oldest, nil
	}
	return c.newest, nil
}
func (cluster) Close() error { return nil }

type dialer struct {
	cl    cluster
	src   *source
	dials int
	sc    *sarama.Config
}

func (d *dialer) DialCluster([]string, *sarama.Config) (client.Cluster, error) { return d.cl, nil }
func (d *dialer) DialAdmin([]string, *sarama.Config) (client.TopicAdmin, error) {
	return nil, nil
}
func (d *dialer) DialProducer([]string, *sarama.Config) (client.Pipeline, error) { return nil, nil }
func (d *dialer) DialConsumer(_ []string, sc *sarama.Config) (client.Source, error) {
	d.dials++
	d.sc = sc
	return d.src, nil
}

func setup(t *testing.T, oldest, newest int64) (*client.Client, *dialer) {
	t.Helper()
	d := &dialer{cl: cluster{oldest: oldest, newest: newest}, src: &source{s: newStream()}}
	p := config.Kafka{Brokers: []string{"b:9092"}, Version: "3.6.0", Retry: config.Retry{MaxElapsed: time.Second}}
	c, err := client.Connect(context.Background(), p, d)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	return c, d
}

func opts(kind symbol.OffsetKind, v int64) Options {
	return Options{Topic: "t1", Partition: 0, Offset: symbol.Offset{Kind: kind, Value: v}, MaxBytes: DefaultMaxFetchBytes}
}

func msg(offset int64, key, value string) *sarama.ConsumerMessage {
	return &sarama.ConsumerMessage{
		Topic: "t1", Partition: 0, Offset: offset,
		Key: []byte(key), Value: []byte(value),
		Timestamp: time.UnixMilli(1_700_000_000_000 + offset),
	}
}

func TestResolve(t *testing.T) {
	cases := []struct {
		off            symbol.Offset
		oldest, newest int64
		want           int64
	}{
		{symbol.Offset{Kind: symbol.FromBeginning, Value: 0}, 5, 20, 5},
		{symbol.Offset{Kind: symbol.FromBeginning, Value: 3}, 5, 20, 8},
		{symbol.Offset{Kind: symbol.FromBeginning, Value: 100}, 5, 20, 20},
		{symbol.Offset{Kind: symbol.FromEnd, Value: 0}, 5, 20, 20},
		{symbol.Offset{Kind: symbol.FromEnd, Value: 4}, 5, 20, 16},
		{symbol.Offset{Kind: symbol.FromEnd, Value: 100}, 5, 20, 5},
		{symbol.Offset{Kind: symbol.Absolute, Value: 4294967295}, 5, 20, 4294967295},
	}
	for _, c := range cases {
		if got := Resolve(c.off, c.oldest, c.newest); got != c.want {
			t.Errorf("%s(%d) in [%d,%d]: got %d want %d", c.off.Kind, c.off.Value, c.oldest, c.newest, got, c.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	c, d := setup(t, 0, 1)
	cons, err := New(context.Background(), c, opts(symbol.FromBeginning, 0), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer cons.Close()
	if d.src.openedAt != 0 {
		t.Fatalf("opened at %d", d.src.openedAt)
	}
	if d.sc.Consumer.Fetch.Max != DefaultMaxFetchBytes {
		t.Fatalf("fetch max = %d", d.sc.Consumer.Fetch.Max)
	}

	d.src.s.msgs <- msg(0, "k", "hello")
	rec, ok, err := cons.Next(context.Background(), time.Second)
	if err != nil || !ok {
		t.Fatalf("Next = %v %v", ok, err)
	}
	if rec.Offset != 0 || rec.Partition != 0 || string(rec.Key) != "k" || rec.Value != "hello" {
		t.Fatalf("record = %+v", rec)
	}
	if rec.Timestamp != 1_700_000_000_000 {
		t.Fatalf("timestamp = %d", rec.Timestamp)
	}
}

func TestNext_StopNextKeepsPosition(t *testing.T) {
	c, d := setup(t, 0, 0)
	cons, err := New(context.Background(), c, opts(symbol.FromEnd, 0), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer cons.Close()

	if _, ok, err := cons.Next(context.Background(), 50*time.Millisecond); ok || err != nil {
		t.Fatalf("want stop-next, got ok=%v err=%v", ok, err)
	}
	d.src.s.msgs <- msg(0, "", "v")
	rec, ok, err := cons.Next(context.Background(), time.Second)
	if err != nil || !ok || rec.Value != "v" || rec.Offset != 0 {
		t.Fatalf("Next after stop-next = %+v %v %v", rec, ok, err)
	}
}

func TestNext_LossyValueAndRaw(t *testing.T) {
	c, d := setup(t, 0, 1)
	cons, err := New(context.Background(), c, opts(symbol.FromBeginning, 0), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer cons.Close()

	m := msg(0, "k", "")
	m.Value = []byte{'o', 'k', 0xff, 0xfe, '!'}
	m.Timestamp = time.Time{}
	d.src.s.msgs <- m
	rec, ok, err := cons.Next(context.Background(), time.Second)
	if err != nil || !ok {
		t.Fatalf("Next = %v %v", ok, err)
	}
	if rec.Value != "ok\uFFFD\uFFFD!" {
		t.Fatalf("value = %q", rec.Value)
	}
	if len(rec.Raw) != 5 || rec.Raw[2] != 0xff {
		t.Fatalf("raw = %v", rec.Raw)
	}
	if rec.Timestamp != -1 {
		t.Fatalf("unknown timestamp = %d", rec.Timestamp)
	}
}

func TestNext_ErrorExhaustsStream(t *testing.T) {
	c, d := setup(t, 0, 1)
	cons, err := New(context.Background(), c, opts(symbol.FromBeginning, 0), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer cons.Close()

	d.src.s.errs <- &sarama.ConsumerError{Topic: "t1", Partition: 0, Err: sarama.ErrOffsetOutOfRange}
	_, _, err = cons.Next(context.Background(), time.Second)
	if failure.KindOf(err) != failure.BrokerError || !errors.Is(err, sarama.ErrOffsetOutOfRange) {
		t.Fatalf("want broker_error, got %v", err)
	}
	d.src.s.msgs <- msg(0, "", "late")
	if _, _, err := cons.Next(context.Background(), time.Second); failure.KindOf(err) != failure.StreamEnded {
		t.Fatalf("want stream_ended, got %v", err)
	}
}

func TestNext_ClosedStreamEnds(t *testing.T) {
	c, d := setup(t, 0, 1)
	cons, err := New(context.Background(), c, opts(symbol.FromBeginning, 0), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	close(d.src.s.msgs)
	if _, _, err := cons.Next(context.Background(), time.Second); failure.KindOf(err) != failure.StreamEnded {
		t.Fatalf("want stream_ended, got %v", err)
	}
	if err := cons.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !d.src.closed || !d.src.s.closed {
		t.Fatal("close did not reach the stream")
	}
}

func TestNew_Validation(t *testing.T) {
	c, d := setup(t, 0, 1)
	bad := opts(symbol.FromBeginning, 0)
	bad.MaxBytes = 0
	if _, err := New(context.Background(), c, bad, nil); failure.KindOf(err) != failure.InvalidArgument {
		t.Fatalf("max bytes: want invalid_argument, got %v", err)
	}
	sm := opts(symbol.FromBeginning, 0)
	sm.SmartModule = &smartmodule.Invocation{Module: []byte{1}}
	if _, err := New(context.Background(), c, sm, nil); failure.KindOf(err) != failure.InvalidArgument {
		t.Fatalf("smartmodule without engine: want invalid_argument, got %v", err)
	}
	missing := opts(symbol.FromBeginning, 0)
	missing.Topic = "nope"
	if _, err := New(context.Background(), c, missing, nil); failure.KindOf(err) != failure.NotFound {
		t.Fatalf("missing topic: want not_found, got %v", err)
	}
	part := opts(symbol.FromBeginning, 0)
	part.Partition = 3
	if _, err := New(context.Background(), c, part, nil); failure.KindOf(err) != failure.NotFound {
		t.Fatalf("missing partition: want not_found, got %v", err)
	}
	if d.dials != 0 {
		t.Fatalf("consumer dialed %d times for invalid input", d.dials)
	}
}

func TestNew_OpenFailureIsBrokerError(t *testing.T) {
	c, d := setup(t, 0, 1)
	d.src.openErr = errors.New("fetch rejected")
	_, err := New(context.Background(), c, opts(symbol.Absolute, 7), nil)
	if failure.KindOf(err) != failure.BrokerError {
		t.Fatalf("want broker_error, got %v", err)
	}
	if !d.src.closed {
		t.Fatal("source leaked after failed open")
	}
}

func TestNext_SmartModuleAggregate(t *testing.T) {
	c, d := setup(t, 0, 2)
	sum := smartmodule.TransformerFunc(func(_ context.Context, kind symbol.ContextKind, acc []byte, in smartmodule.Record) ([]smartmodule.Record, []byte, error) {
		next := append(append([]byte{}, acc...), in.Value...)
		return []smartmodule.Record{{Offset: in.Offset, Timestamp: in.Timestamp, Value: next}}, next, nil
	})
	eng := smartmodule.NewInProcess(sum)
	o := opts(symbol.FromBeginning, 0)
	o.SmartModule = &smartmodule.Invocation{Module: []byte{0x1f, 0x8b}, Context: symbol.ContextAggregate, Accumulator: []byte(">")}
	cons, err := New(context.Background(), c, o, eng)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer cons.Close()

	d.src.s.msgs <- msg(0, "", "a")
	d.src.s.msgs <- msg(1, "", "b")
	var got []string
	for i := 0; i < 2; i++ {
		rec, ok, err := cons.Next(context.Background(), time.Second)
		if err != nil || !ok {
			t.Fatalf("Next = %v %v", ok, err)
		}
		got = append(got, rec.Value)
	}
	if got[0] != ">a" || got[1] != ">ab" {
		t.Fatalf("aggregate = %v", got)
	}
}

func TestNext_SmartModuleFanOutAndFilter(t *testing.T) {
	c, d := setup(t, 0, 3)
	split := smartmodule.TransformerFunc(func(_ context.Context, _ symbol.ContextKind, _ []byte, in smartmodule.Record) ([]smartmodule.Record, []byte, error) {
		if string(in.Value) == "drop" {
			return nil, nil, nil
		}
		return []smartmodule.Record{{Offset: in.Offset, Value: in.Value}, {Offset: in.Offset, Value: in.Value}}, nil, nil
	})
	o := opts(symbol.FromBeginning, 0)
	o.SmartModule = &smartmodule.Invocation{Module: []byte{1}}
	cons, err := New(context.Background(), c, o, smartmodule.NewInProcess(split))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer cons.Close()

	d.src.s.msgs <- msg(0, "", "drop")
	d.src.s.msgs <- msg(1, "", "x")
	for i := 0; i < 2; i++ {
		rec, ok, err := cons.Next(context.Background(), time.Second)
		if err != nil || !ok || rec.Offset != 1 || rec.Value != "x" {
			t.Fatalf("Next #%d = %+v %v %v", i, rec, ok, err)
		}
	}
	if _, ok, err := cons.Next(context.Background(), 20*time.Millisecond); ok || err != nil {
		t.Fatalf("want stop-next, got %v %v", ok, err)
	}
}

func TestNext_ConcurrentCallersSeePrefix(t *testing.T) {
	c, d := setup(t, 0, 50)
	cons, err := New(context.Background(), c, opts(symbol.FromBeginning, 0), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer cons.Close()
	for i := int64(0); i < 10; i++ {
		d.src.s.msgs <- msg(i, "", "v")
	}

	// callers serialize on one lock, as the handle registry does
	var mu sync.Mutex
	var seen []int64
	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				mu.Lock()
				rec, ok, err := cons.Next(context.Background(), 20*time.Millisecond)
				if ok {
					seen = append(seen, rec.Offset)
				}
				mu.Unlock()
				if err != nil || !ok {
					return
				}
			}
		}()
	}
	wg.Wait()
	if len(seen) != 10 {
		t.Fatalf("got %d records", len(seen))
	}
	for i, off := range seen {
		if off != int64(i) {
			t.Fatalf("gap or duplicate at %d: %v", i, seen)
		}
	}
}

func TestLossy(t *testing.T) {
	cases := []struct {
		name string
		in   []byte
		want string
	}{
		{"valid", []byte("héllo"), "héllo"},
		{"empty", nil, ""},
		{"two bad bytes", []byte{'o', 'k', 0xff, 0xfe, '!'}, "ok\uFFFD\uFFFD!"},
		{"truncated sequence", []byte{'a', 0xe2, 0x82, 'b'}, "a\uFFFDb"},
		{"truncated at end", []byte{'a', 0xf0, 0x9f, 0x98}, "a\uFFFD"},
		{"surrogate", []byte{0xed, 0xa0, 0x80}, "\uFFFD\uFFFD\uFFFD"},
		{"stray continuation", []byte{0x80, 'x'}, "\uFFFDx"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := lossy(tc.in); got != tc.want {
				t.Fatalf("lossy(%x) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNew_FetchSizeIsPerConsumer(t *testing.T) {
	c, d := setup(t, 0, 1)
	small := opts(symbol.FromBeginning, 0)
	small.MaxBytes = 4096
	first, err := New(context.Background(), c, small, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer first.Close()
	firstCfg := d.sc

	second, err := New(context.Background(), c, opts(symbol.FromBeginning, 0), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer second.Close()

	if d.dials != 2 || firstCfg == d.sc {
		t.Fatalf("consumers share a client config (dials=%d)", d.dials)
	}
	if firstCfg.Consumer.Fetch.Max != 4096 || d.sc.Consumer.Fetch.Max != DefaultMaxFetchBytes {
		t.Fatalf("fetch max = %d, %d", firstCfg.Consumer.Fetch.Max, d.sc.Consumer.Fetch.Max)
	}
	if firstCfg.Metadata.AllowAutoTopicCreation {
		t.Fatal("consumer client may create topics")
	}
}
