package client

import (
	"github.com/IBM/sarama"
	"github.com/dnwe/otelsarama"
)

// Cluster is the metadata view a client handle keeps open.
type Cluster interface {
	Partitions(topic string) ([]int32, error)
	GetOffset(topic string, partitionID int32, time int64) (int64, error)
	Close() error
}

// TopicAdmin is the control-plane subset the admin façade uses.
type TopicAdmin interface {
	CreateTopic(topic string, detail *sarama.TopicDetail, validateOnly bool) error
	DeleteTopic(topic string) error
	BrokerIDs() ([]int32, error)
	Close() error
}

// Pipeline is an asynchronous producer.
type Pipeline interface {
	Input() chan<- *sarama.ProducerMessage
	Successes() <-chan *sarama.ProducerMessage
	Errors() <-chan *sarama.ProducerError
	AsyncClose()
}

// Source hands out per-partition streams.
type Source interface {
	Partitions(topic string) ([]int32, error)
	Open(topic string, partition int32, offset int64) (Stream, error)
	Close() error
}

type Stream interface {
	Messages() <-chan *sarama.ConsumerMessage
	Errors() <-chan *sarama.ConsumerError
	AsyncClose()
}

// Dialer opens everything that talks to the brokers.
type Dialer interface {
	DialCluster(brokers []string, sc *sarama.Config) (Cluster, error)
	DialAdmin(brokers []string, sc *sarama.Config) (TopicAdmin, error)
	DialProducer(brokers []string, sc *sarama.Config) (Pipeline, error)
	DialConsumer(brokers []string, sc *sarama.Config) (Source, error)
}

// SaramaDialer is the production Dialer.
type SaramaDialer struct{}

func (SaramaDialer) DialCluster(brokers []string, sc *sarama.Config) (Cluster, error) {
	cl, err := sarama.NewClient(brokers, sc)
	if err != nil {
		return nil, err
	}
	return cl, nil
}

func (SaramaDialer) DialAdmin(brokers []string, sc *sarama.Config) (TopicAdmin, error) {
	ca, err := sarama.NewClusterAdmin(brokers, sc)
	if err != nil {
		return nil, err
	}
	return saramaAdmin{ca}, nil
}

func (SaramaDialer) DialProducer(brokers []string, sc *sarama.Config) (Pipeline, error) {
	p, err := sarama.NewAsyncProducer(brokers, sc)
	if err != nil {
		return nil, err
	}
	return otelsarama.WrapAsyncProducer(sc, p), nil
}

func (SaramaDialer) DialConsumer(brokers []string, sc *sarama.Config) (Source, error) {
	c, err := sarama.NewConsumer(brokers, sc)
	if err != nil {
		return nil, err
	}
	return saramaSource{otelsarama.WrapConsumer(c)}, nil
}

type saramaAdmin struct {
	sarama.ClusterAdmin
}

func (a saramaAdmin) BrokerIDs() ([]int32, error) {
	brokers, _, err := a.DescribeCluster()
	if err != nil {
		return nil, err
	}
	ids := make([]int32, 0, len(brokers))
	for _, b := range brokers {
		ids = append(ids, b.ID())
	}
	return ids, nil
}

type saramaSource struct {
	c sarama.Consumer
}

func (s saramaSource) Partitions(topic string) ([]int32, error) { return s.c.Partitions(topic) }

func (s saramaSource) Open(topic string, partition int32, offset int64) (Stream, error) {
	pc, err := s.c.ConsumePartition(topic, partition, offset)
	if err != nil {
		return nil, err
	}
	return pc, nil
}

func (s saramaSource) Close() error { return s.c.Close() }
