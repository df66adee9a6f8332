package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"

	"kbridge/internal/config"
	"kbridge/internal/failure"
)

type fakeCluster struct {
	parts   map[string][]int32
	offsets map[int64]int64
	closed  bool
}

func (f *fakeCluster) Partitions(topic string) ([]int32, error) {
	ps, ok := f.parts[topic]
	if !ok {
		return nil, sarama.ErrUnknownTopicOrPartition
	}
	return ps, nil
}

func (f *fakeCluster) GetOffset(_ string, _ int32, at int64) (int64, error) {
	return f.offsets[at], nil
}

func (f *fakeCluster) Close() error { f.closed = true; return nil }

type fakeDialer struct {
	failures int
	err      error
	calls    int
	cluster  *fakeCluster
}

func (d *fakeDialer) DialCluster([]string, *sarama.Config) (Cluster, error) {
	d.calls++
	if d.calls <= d.failures {
		return nil, d.err
	}
	return d.cluster, nil
}
func (d *fakeDialer) DialAdmin([]string, *sarama.Config) (TopicAdmin, error) { return nil, nil }
func (d *fakeDialer) DialProducer([]string, *sarama.Config) (Pipeline, error) {
	return nil, nil
}
func (d *fakeDialer) DialConsumer([]string, *sarama.Config) (Source, error) { return nil, nil }

func profile() config.Kafka {
	return config.Kafka{
		Brokers: []string{"b1:9092"},
		Version: "3.6.0",
		Retry:   config.Retry{Initial: time.Millisecond, Max: 2 * time.Millisecond, MaxElapsed: 200 * time.Millisecond},
	}
}

func TestConnect_RetriesUntilReachable(t *testing.T) {
	d := &fakeDialer{failures: 2, err: sarama.ErrOutOfBrokers, cluster: &fakeCluster{}}
	c, err := Connect(context.Background(), profile(), d)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if d.calls != 3 {
		t.Fatalf("want 3 dial attempts, got %d", d.calls)
	}
	if c.PlatformVersion() != "3.6.0" {
		t.Fatalf("version = %q", c.PlatformVersion())
	}
	_ = c.Close()
	if !d.cluster.closed {
		t.Fatal("close did not reach the cluster")
	}
}

func TestConnect_UnreachableIsConnectionError(t *testing.T) {
	d := &fakeDialer{failures: 1 << 20, err: sarama.ErrOutOfBrokers}
	_, err := Connect(context.Background(), profile(), d)
	if failure.KindOf(err) != failure.ConnectionError {
		t.Fatalf("want connection_error, got %v", err)
	}
}

func TestConnect_ConfigErrorStopsRetrying(t *testing.T) {
	d := &fakeDialer{failures: 5, err: sarama.ConfigurationError("Net.SASL.User must not be empty")}
	_, err := Connect(context.Background(), profile(), d)
	if failure.KindOf(err) != failure.InvalidArgument {
		t.Fatalf("want invalid_argument, got %v", err)
	}
	if d.calls != 1 {
		t.Fatalf("configuration error retried %d times", d.calls)
	}
}

func TestConnect_BadVersionNeverDials(t *testing.T) {
	p := profile()
	p.Version = "not-a-version"
	d := &fakeDialer{cluster: &fakeCluster{}}
	_, err := Connect(context.Background(), p, d)
	if failure.KindOf(err) != failure.InvalidArgument {
		t.Fatalf("want invalid_argument, got %v", err)
	}
	if d.calls != 0 {
		t.Fatal("dialed with an invalid profile")
	}
}

func TestClient_PartitionsAndOffsets(t *testing.T) {
	fc := &fakeCluster{
		parts:   map[string][]int32{"t1": {0, 1}},
		offsets: map[int64]int64{sarama.OffsetOldest: 3, sarama.OffsetNewest: 10},
	}
	c, err := Connect(context.Background(), profile(), &fakeDialer{cluster: fc})
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if _, err := c.Partitions("missing"); failure.KindOf(err) != failure.NotFound {
		t.Fatalf("want not_found, got %v", err)
	}
	ps, err := c.Partitions("t1")
	if err != nil || len(ps) != 2 {
		t.Fatalf("Partitions = %v, %v", ps, err)
	}
	oldest, newest, err := c.Offsets("t1", 0)
	if err != nil || oldest != 3 || newest != 10 {
		t.Fatalf("Offsets = %d %d %v", oldest, newest, err)
	}
}

func TestNewSaramaConfig_Profile(t *testing.T) {
	p := profile()
	p.ClientID = "host-1"
	p.SASLUser, p.SASLPass = "u", "p"
	p.TLSEn = true
	sc, err := NewSaramaConfig(p)
	if err != nil {
		t.Fatalf("NewSaramaConfig: %v", err)
	}
	if sc.ClientID != "host-1" || !sc.Net.SASL.Enable || !sc.Net.TLS.Enable {
		t.Fatalf("profile not applied: %+v", sc.Net)
	}
	if !sc.Version.IsAtLeast(sarama.V3_0_0_0) {
		t.Fatalf("version = %s", sc.Version)
	}
	if sc.Metadata.AllowAutoTopicCreation {
		t.Fatal("metadata requests may auto-create topics")
	}
}

func TestNewSaramaConfig_NeverAutoCreatesTopics(t *testing.T) {
	sc, err := NewSaramaConfig(config.Kafka{Version: "2.8.0"})
	if err != nil {
		t.Fatalf("NewSaramaConfig: %v", err)
	}
	if sc.Metadata.AllowAutoTopicCreation {
		t.Fatal("default profile allows topic auto-creation")
	}
}

func TestRetry_HonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := config.Retry{Initial: time.Millisecond, MaxElapsed: time.Minute}
	err := Retry(ctx, r, "connect", func() error { return sarama.ErrOutOfBrokers })
	if err == nil {
		t.Fatal("expected error from cancelled context")
	}
	if !errors.Is(err, context.Canceled) && !errors.Is(err, sarama.ErrOutOfBrokers) {
		t.Fatalf("unexpected error %v", err)
	}
}
