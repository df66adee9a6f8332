// Package client owns the broker connection behind a ClientHandle and turns the
// ambient profile into sarama configuration for everything built from it.
package client

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"github.com/cenkalti/backoff/v4"

	"kbridge/internal/config"
	"kbridge/internal/failure"
	"kbridge/internal/logging"
)

type Client struct {
	profile config.Kafka
	dialer  Dialer
	cluster Cluster
	version sarama.KafkaVersion
}

// Connect opens a cluster connection from the ambient profile, retrying with
// exponential back-off until profile.Retry.MaxElapsed.
func Connect(ctx context.Context, profile config.Kafka, d Dialer) (*Client, error) {
	sc, err := NewSaramaConfig(profile)
	if err != nil {
		return nil, err
	}
	var cl Cluster
	err = Retry(ctx, profile.Retry, "connect", func() error {
		c, err := d.DialCluster(profile.Brokers, sc)
		if err != nil {
			return err
		}
		cl = c
		return nil
	})
	if err != nil {
		return nil, failure.Wrap(failure.Classify(err, failure.ConnectionError), err, "connect %v", profile.Brokers)
	}
	logging.L().Info("client connected", "brokers", profile.Brokers, "version", sc.Version.String())
	return &Client{profile: profile, dialer: d, cluster: cl, version: sc.Version}, nil
}

// PlatformVersion is the protocol version negotiated for this connection.
func (c *Client) PlatformVersion() string { return c.version.String() }

func (c *Client) Profile() config.Kafka { return c.profile }

func (c *Client) Dialer() Dialer { return c.dialer }

// Partitions lists the partitions of topic; a missing topic is NotFound.
func (c *Client) Partitions(topic string) ([]int32, error) {
	ps, err := c.cluster.Partitions(topic)
	if err != nil {
		return nil, failure.Wrap(failure.Classify(err, failure.ConnectionError), err, "topic %q", topic)
	}
	if len(ps) == 0 {
		return nil, failure.New(failure.NotFound, "topic %q has no partitions", topic)
	}
	return ps, nil
}

// Offsets returns the oldest available offset and the next offset to be written.
func (c *Client) Offsets(topic string, partition int32) (oldest, newest int64, err error) {
	if oldest, err = c.cluster.GetOffset(topic, partition, sarama.OffsetOldest); err != nil {
		return 0, 0, failure.Wrap(failure.Classify(err, failure.BrokerError), err, "oldest offset %s/%d", topic, partition)
	}
	if newest, err = c.cluster.GetOffset(topic, partition, sarama.OffsetNewest); err != nil {
		return 0, 0, failure.Wrap(failure.Classify(err, failure.BrokerError), err, "newest offset %s/%d", topic, partition)
	}
	return oldest, newest, nil
}

func (c *Client) Close() error {
	return c.cluster.Close()
}

// NewSaramaConfig builds a fresh base configuration from the profile. Callers tune
// the producer or consumer sections on their own copy.
func NewSaramaConfig(p config.Kafka) (*sarama.Config, error) {
	ver, err := sarama.ParseKafkaVersion(p.Version)
	if err != nil {
		return nil, failure.Wrap(failure.InvalidArgument, err, "kafka version")
	}
	sc := sarama.NewConfig()
	sc.Version = ver
	// Metadata lookups must never create a topic as a side effect.
	sc.Metadata.AllowAutoTopicCreation = false
	if p.ClientID != "" {
		sc.ClientID = p.ClientID
	}
	if p.DialTimeout > 0 {
		sc.Net.DialTimeout = p.DialTimeout
	}
	if p.TLSEn {
		sc.Net.TLS.Enable = true
	}
	if p.SASLUser != "" {
		sc.Net.SASL.Enable = true
		sc.Net.SASL.User, sc.Net.SASL.Password = p.SASLUser, p.SASLPass
	}
	return sc, nil
}

// Retry runs fn with exponential back-off. Errors classified as anything other
// than ConnectionError stop the retries immediately.
func Retry(ctx context.Context, r config.Retry, op string, fn func() error) error {
	bo := backoff.NewExponentialBackOff()
	if r.Initial > 0 {
		bo.InitialInterval = r.Initial
	}
	if r.Max > 0 {
		bo.MaxInterval = r.Max
	}
	bo.MaxElapsedTime = r.MaxElapsed

	attempts := 0
	operation := func() error {
		attempts++
		err := fn()
		if err != nil && failure.Classify(err, failure.ConnectionError) != failure.ConnectionError {
			return backoff.Permanent(err)
		}
		return err
	}
	notify := func(err error, delay time.Duration) {
		logging.L().Warn("back-off retry", "op", op, "attempt", attempts, "delay", delay, "err", err)
	}
	return backoff.RetryNotify(operation, backoff.WithContext(bo, ctx), notify)
}
