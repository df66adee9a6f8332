package bridge

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"

	"kbridge/admin"
	"kbridge/client"
	"kbridge/internal/config"
	"kbridge/internal/executor"
	"kbridge/internal/failure"
	"kbridge/internal/symbol"
	"kbridge/smartmodule"
)

// broker is a single-partition in-memory cluster shared by every fake the dialer
// hands out.
type broker struct {
	t  *testing.T
	mu sync.Mutex

	topics  map[string]bool
	log     []*sarama.ConsumerMessage
	streams []chan *sarama.ConsumerMessage

	producerDials int
	consumerDials int
	closed        map[string]int
}

func newBroker(t *testing.T) *broker {
	return &broker{t: t, topics: map[string]bool{}, closed: map[string]int{}}
}

func (b *broker) append(m *sarama.ProducerMessage) error {
	key, _ := m.Key.Encode()
	value, _ := m.Value.Encode()
	b.mu.Lock()
	defer b.mu.Unlock()
	cm := &sarama.ConsumerMessage{
		Topic: m.Topic, Partition: 0, Offset: int64(len(b.log)),
		Key: key, Value: value, Timestamp: time.Now(),
	}
	b.log = append(b.log, cm)
	for _, s := range b.streams {
		s <- cm
	}
	return nil
}

func (b *broker) DialCluster([]string, *sarama.Config) (client.Cluster, error) {
	return &cluster{b}, nil
}
func (b *broker) DialAdmin([]string, *sarama.Config) (client.TopicAdmin, error) {
	return &topicAdmin{b}, nil
}
func (b *broker) DialProducer(_ []string, sc *sarama.Config) (client.Pipeline, error) {
	b.mu.Lock()
	b.producerDials++
	b.mu.Unlock()
	mp := mocks.NewAsyncProducer(b.t, sc)
	for i := 0; i < 16; i++ {
		mp.ExpectInputWithMessageCheckerFunctionAndSucceed(b.append)
	}
	return mp, nil
}
func (b *broker) DialConsumer([]string, *sarama.Config) (client.Source, error) {
	b.mu.Lock()
	b.consumerDials++
	b.mu.Unlock()
	return &source{b}, nil
}

type cluster struct{ b *broker }

func (c *cluster) Partitions(topic string) ([]int32, error) {
	c.b.mu.Lock()
	defer c.b.mu.Unlock()
	if !c.b.topics[topic] {
		return nil, sarama.ErrUnknownTopicOrPartition
	}
	return []int32{0}, nil
}
func (c *cluster) GetOffset(_ string, _ int32, at int64) (int64, error) {
	c.b.mu.Lock()
	defer c.b.mu.Unlock()
	if at == sarama.OffsetOldest {
		return 0, nil
	}
	return int64(len(c.b.log)), nil
}
func (c *cluster) Close() error { c.b.markClosed(KindClient); return nil }

type topicAdmin struct{ b *broker }

func (a *topicAdmin) CreateTopic(topic string, _ *sarama.TopicDetail, _ bool) error {
	a.b.mu.Lock()
	defer a.b.mu.Unlock()
	if a.b.topics[topic] {
		return &sarama.TopicError{Err: sarama.ErrTopicAlreadyExists}
	}
	a.b.topics[topic] = true
	return nil
}
func (a *topicAdmin) DeleteTopic(topic string) error {
	a.b.mu.Lock()
	defer a.b.mu.Unlock()
	if !a.b.topics[topic] {
		return sarama.ErrUnknownTopicOrPartition
	}
	delete(a.b.topics, topic)
	return nil
}
func (a *topicAdmin) BrokerIDs() ([]int32, error) { return []int32{1}, nil }
func (a *topicAdmin) Close() error                { a.b.markClosed(KindAdmin); return nil }

type source struct{ b *broker }

func (s *source) Partitions(string) ([]int32, error) { return []int32{0}, nil }
func (s *source) Open(_ string, _ int32, offset int64) (client.Stream, error) {
	s.b.mu.Lock()
	defer s.b.mu.Unlock()
	st := &stream{msgs: make(chan *sarama.ConsumerMessage, 64), errs: make(chan *sarama.ConsumerError)}
	for _, m := range s.b.log[min(offset, int64(len(s.b.log))):] {
		st.msgs <- m
	}
	s.b.streams = append(s.b.streams, st.msgs)
	return st, nil
}
func (s *source) Close() error { s.b.markClosed(KindConsumer); return nil }

type stream struct {
	msgs chan *sarama.ConsumerMessage
	errs chan *sarama.ConsumerError
}

func (s *stream) Messages() <-chan *sarama.ConsumerMessage { return s.msgs }
func (s *stream) Errors() <-chan *sarama.ConsumerError     { return s.errs }
func (s *stream) AsyncClose()                              {}

func (b *broker) markClosed(kind string) {
	b.mu.Lock()
	b.closed[kind]++
	b.mu.Unlock()
}

func (b *broker) closedCount(kind string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.closed[kind]
}

func newBridge(t *testing.T, eng smartmodule.Engine) (*Bridge, *broker) {
	t.Helper()
	br := newBroker(t)
	b := New(Options{
		Profile:  config.Kafka{Brokers: []string{"b:9092"}, Version: "3.6.0", Retry: config.Retry{MaxElapsed: time.Second}},
		Dialer:   br,
		Engine:   eng,
		Executor: executor.New(4, 4),
	})
	t.Cleanup(func() { _ = b.Close() })
	return b, br
}

func ptr[T any](v T) *T { return &v }

func TestProduceConsumeRoundTrip(t *testing.T) {
	b, _ := newBridge(t, nil)
	ctx := context.Background()

	adm, err := b.AdminConnect(ctx)
	if err != nil {
		t.Fatalf("AdminConnect: %v", err)
	}
	if err := b.CreateTopic(ctx, adm, admin.TopicSpec{Name: "t1", Partitions: 1, Replication: 1}); err != nil {
		t.Fatalf("CreateTopic: %v", err)
	}
	cl, err := b.Connect(ctx)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if v, err := b.PlatformVersion(ctx, cl); err != nil || v != "3.6.0" {
		t.Fatalf("PlatformVersion = %q, %v", v, err)
	}

	prod, err := b.NewProducer(ctx, cl, ProducerRequest{Topic: "t1"})
	if err != nil {
		t.Fatalf("NewProducer: %v", err)
	}
	if err := b.Send(ctx, prod, []byte("k"), []byte("hello")); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if err := b.Flush(ctx, prod); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	cons, err := b.NewConsumer(ctx, cl, ConsumerRequest{Topic: "t1", OffsetKind: "from_beginning"})
	if err != nil {
		t.Fatalf("NewConsumer: %v", err)
	}
	rec, ok, err := b.Next(ctx, cons, 1000)
	if err != nil || !ok {
		t.Fatalf("Next = %v %v", ok, err)
	}
	if rec.Offset != 0 || rec.Partition != 0 || string(rec.Key) != "k" || rec.Value != "hello" || rec.Timestamp <= 0 {
		t.Fatalf("record = %+v", rec)
	}
}

func TestStopNextThenRecord(t *testing.T) {
	b, br := newBridge(t, nil)
	br.topics["t1"] = true
	ctx := context.Background()
	cl, _ := b.Connect(ctx)

	cons, err := b.NewConsumer(ctx, cl, ConsumerRequest{Topic: "t1", OffsetKind: "from-end"})
	if err != nil {
		t.Fatalf("NewConsumer: %v", err)
	}
	if _, ok, err := b.Next(ctx, cons, 50); ok || err != nil {
		t.Fatalf("want stop-next, got %v %v", ok, err)
	}
	prod, err := b.NewProducer(ctx, cl, ProducerRequest{Topic: "t1", LingerMs: ptr(uint64(1))})
	if err != nil {
		t.Fatalf("NewProducer: %v", err)
	}
	if err := b.Send(ctx, prod, nil, []byte("v")); err != nil {
		t.Fatalf("Send: %v", err)
	}
	rec, ok, err := b.Next(ctx, cons, 1000)
	if err != nil || !ok || rec.Value != "v" {
		t.Fatalf("Next = %+v %v %v", rec, ok, err)
	}
}

func TestInvalidCompressionNoIO(t *testing.T) {
	b, br := newBridge(t, nil)
	br.topics["t1"] = true
	cl, _ := b.Connect(context.Background())
	_, err := b.NewProducer(context.Background(), cl, ProducerRequest{Topic: "t1", Compression: "brotli"})
	if failure.KindOf(err) != failure.InvalidArgument {
		t.Fatalf("want invalid_argument, got %v", err)
	}
	if br.producerDials != 0 {
		t.Fatal("producer dialed for an invalid compression")
	}
}

func TestEveryCompressionBuilds(t *testing.T) {
	b, br := newBridge(t, nil)
	br.topics["t1"] = true
	cl, _ := b.Connect(context.Background())
	for _, c := range []string{"none", "gzip", "snappy", "lz4"} {
		ref, err := b.NewProducer(context.Background(), cl, ProducerRequest{Topic: "t1", Compression: c})
		if err != nil {
			t.Fatalf("%s: %v", c, err)
		}
		_ = b.Release(ref)
	}
}

func TestConsumerValidationNoIO(t *testing.T) {
	b, br := newBridge(t, nil)
	br.topics["t1"] = true
	ctx := context.Background()
	cl, _ := b.Connect(ctx)

	cases := map[string]struct {
		req  ConsumerRequest
		want failure.Kind
	}{
		"unknown kind":    {ConsumerRequest{Topic: "t1", OffsetKind: "latest"}, failure.InvalidArgument},
		"absolute > i64":  {ConsumerRequest{Topic: "t1", OffsetKind: "absolute", OffsetValue: 1 << 63}, failure.InvalidArgument},
		"unknown context": {ConsumerRequest{Topic: "t1", OffsetKind: "absolute", SmartModulePath: filepath.Join(t.TempDir(), "agg.wasm"), SmartModuleContext: "join"}, failure.InvalidArgument},
		"missing module":  {ConsumerRequest{Topic: "t1", OffsetKind: "absolute", SmartModulePath: filepath.Join(t.TempDir(), "agg.wasm")}, failure.IoError},
		"zero max bytes":  {ConsumerRequest{Topic: "t1", OffsetKind: "absolute", MaxBytes: ptr(uint64(0))}, failure.InvalidArgument},
	}
	for name, c := range cases {
		if _, err := b.NewConsumer(ctx, cl, c.req); failure.KindOf(err) != c.want {
			t.Errorf("%s: want %s, got %v", name, c.want, err)
		}
	}
	if br.consumerDials != 0 {
		t.Fatalf("consumer dialed %d times for invalid requests", br.consumerDials)
	}

	if _, err := b.NewConsumer(ctx, cl, ConsumerRequest{Topic: "t1", OffsetKind: "absolute", OffsetValue: 1<<32 - 1}); err != nil {
		t.Fatalf("absolute 2^32-1 must be accepted: %v", err)
	}
	if _, err := b.NewConsumer(ctx, cl, ConsumerRequest{Topic: "t1", OffsetKind: "absolute", SmartModuleContext: "join"}); err != nil {
		t.Fatalf("context without a smart module must be ignored: %v", err)
	}
}

func TestSmartModuleAggregate(t *testing.T) {
	concat := smartmodule.TransformerFunc(func(_ context.Context, kind symbol.ContextKind, acc []byte, in smartmodule.Record) ([]smartmodule.Record, []byte, error) {
		if kind != symbol.ContextAggregate {
			t.Errorf("context = %s", kind)
		}
		next := append(append([]byte{}, acc...), in.Value...)
		return []smartmodule.Record{{Offset: in.Offset, Value: next}}, next, nil
	})
	eng := smartmodule.NewInProcess(concat)
	b, br := newBridge(t, eng)
	br.topics["t1"] = true
	ctx := context.Background()
	cl, _ := b.Connect(ctx)

	path := filepath.Join(t.TempDir(), "agg.wasm")
	if err := os.WriteFile(path, []byte("\x00asm"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	prod, _ := b.NewProducer(ctx, cl, ProducerRequest{Topic: "t1"})
	for i := 1; i <= 3; i++ {
		_ = b.Send(ctx, prod, nil, []byte(strconv.Itoa(i)))
	}
	if err := b.Flush(ctx, prod); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	cons, err := b.NewConsumer(ctx, cl, ConsumerRequest{
		Topic: "t1", OffsetKind: "from_beginning",
		SmartModulePath: path, SmartModuleContext: "aggregate", SmartModuleAccumulator: []byte("0"),
	})
	if err != nil {
		t.Fatalf("NewConsumer: %v", err)
	}
	var last string
	for i := 0; i < 3; i++ {
		rec, ok, err := b.Next(ctx, cons, 1000)
		if err != nil || !ok {
			t.Fatalf("Next = %v %v", ok, err)
		}
		last = rec.Value
	}
	if last != "0123" {
		t.Fatalf("aggregate = %q", last)
	}
	mods := eng.Modules()
	if len(mods) != 1 {
		t.Fatalf("modules shipped = %d", len(mods))
	}
	raw, err := smartmodule.Decompress(mods[0])
	if err != nil || string(raw) != "\x00asm" {
		t.Fatalf("shipped module = %q, %v", raw, err)
	}
}

func TestSmartModuleWithoutEngine(t *testing.T) {
	b, br := newBridge(t, nil)
	br.topics["t1"] = true
	cl, _ := b.Connect(context.Background())
	path := filepath.Join(t.TempDir(), "m.wasm")
	_ = os.WriteFile(path, []byte("x"), 0o644)
	_, err := b.NewConsumer(context.Background(), cl, ConsumerRequest{Topic: "t1", OffsetKind: "from_end", SmartModulePath: path})
	if failure.KindOf(err) != failure.InvalidArgument {
		t.Fatalf("want invalid_argument, got %v", err)
	}
}

func TestHandles_ReleaseAndWrongKind(t *testing.T) {
	b, br := newBridge(t, nil)
	ctx := context.Background()
	cl, err := b.Connect(ctx)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if _, _, err := b.Next(ctx, cl, 10); failure.KindOf(err) != failure.InvalidArgument {
		t.Fatalf("wrong kind: want invalid_argument, got %v", err)
	}

	if err := b.Retain(cl); err != nil {
		t.Fatalf("Retain: %v", err)
	}
	_ = b.Release(cl)
	if b.Handles() != 1 {
		t.Fatal("retained handle dropped early")
	}
	_ = b.Release(cl)
	if b.Handles() != 0 {
		t.Fatalf("handles left: %d", b.Handles())
	}
	deadline := time.Now().Add(time.Second)
	for br.closedCount(KindClient) == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client not closed after last release")
		}
		time.Sleep(time.Millisecond)
	}
	if _, err := b.PlatformVersion(ctx, cl); failure.KindOf(err) != failure.InvalidArgument {
		t.Fatalf("released handle: want invalid_argument, got %v", err)
	}
}

func TestCreateDeleteTopic(t *testing.T) {
	b, _ := newBridge(t, nil)
	ctx := context.Background()
	adm, _ := b.AdminConnect(ctx)
	spec := admin.TopicSpec{Name: "t2", Partitions: 1, Replication: 1, IgnoreRack: ptr(true)}
	if err := b.CreateTopic(ctx, adm, spec); err != nil {
		t.Fatalf("CreateTopic: %v", err)
	}
	if err := b.CreateTopic(ctx, adm, spec); failure.KindOf(err) != failure.AlreadyExists {
		t.Fatalf("want already_exists, got %v", err)
	}
	if err := b.DeleteTopic(ctx, adm, "t2"); err != nil {
		t.Fatalf("DeleteTopic: %v", err)
	}
	if err := b.DeleteTopic(ctx, adm, "t2"); failure.KindOf(err) != failure.NotFound {
		t.Fatalf("want not_found, got %v", err)
	}
}
