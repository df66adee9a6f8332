// Package admin is the control-plane façade: an independent broker connection
// used only to create and delete topics.
package admin

import (
	"context"
	"math"
	"regexp"
	"sort"

	"github.com/IBM/sarama"

	"kbridge/client"
	"kbridge/internal/config"
	"kbridge/internal/failure"
	"kbridge/internal/logging"
)

const maxTopicName = 249

var legalTopic = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

type Admin struct {
	ta client.TopicAdmin
}

// Connect opens an admin connection; it is never derived from a client handle.
func Connect(ctx context.Context, profile config.Kafka, d client.Dialer) (*Admin, error) {
	sc, err := client.NewSaramaConfig(profile)
	if err != nil {
		return nil, err
	}
	var ta client.TopicAdmin
	err = client.Retry(ctx, profile.Retry, "admin_connect", func() error {
		a, err := d.DialAdmin(profile.Brokers, sc)
		if err != nil {
			return err
		}
		ta = a
		return nil
	})
	if err != nil {
		return nil, failure.Wrap(failure.Classify(err, failure.ConnectionError), err, "admin connect %v", profile.Brokers)
	}
	return &Admin{ta: ta}, nil
}

// TopicSpec is a computed-layout topic request.
type TopicSpec struct {
	Name        string
	Partitions  int64
	Replication int64
	// IgnoreRack nil leaves placement to the broker.
	IgnoreRack *bool
}

func (s TopicSpec) validate() error {
	if err := validName(s.Name); err != nil {
		return err
	}
	if s.Partitions < 1 || s.Partitions > math.MaxInt32 {
		return failure.New(failure.InvalidArgument, "partitions must be in [1, %d], got %d", math.MaxInt32, s.Partitions)
	}
	if s.Replication < 1 || s.Replication > math.MaxInt16 {
		return failure.New(failure.InvalidArgument, "replication must be in [1, %d], got %d", math.MaxInt16, s.Replication)
	}
	return nil
}

// CreateTopic is not idempotent: an existing topic fails with AlreadyExists.
func (a *Admin) CreateTopic(s TopicSpec) error {
	if err := s.validate(); err != nil {
		return err
	}
	detail := &sarama.TopicDetail{
		NumPartitions:     int32(s.Partitions),
		ReplicationFactor: int16(s.Replication),
	}
	if s.IgnoreRack != nil && *s.IgnoreRack {
		ids, err := a.ta.BrokerIDs()
		if err != nil {
			return failure.Wrap(failure.Classify(err, failure.ConnectionError), err, "describe cluster")
		}
		assignment, err := assignReplicas(ids, int32(s.Partitions), int(s.Replication))
		if err != nil {
			return err
		}
		detail = &sarama.TopicDetail{NumPartitions: -1, ReplicationFactor: -1, ReplicaAssignment: assignment}
	}
	if err := a.ta.CreateTopic(s.Name, detail, false); err != nil {
		return failure.Wrap(failure.Classify(err, failure.BrokerError), err, "create topic %q", s.Name)
	}
	logging.L().Info("topic created", "topic", s.Name, "partitions", s.Partitions, "replication", s.Replication)
	return nil
}

// DeleteTopic returns once the broker accepted the request.
func (a *Admin) DeleteTopic(name string) error {
	if err := validName(name); err != nil {
		return err
	}
	if err := a.ta.DeleteTopic(name); err != nil {
		return failure.Wrap(failure.Classify(err, failure.BrokerError), err, "delete topic %q", name)
	}
	logging.L().Info("topic deleted", "topic", name)
	return nil
}

func (a *Admin) Close() error {
	return a.ta.Close()
}

func validName(name string) error {
	switch {
	case name == "":
		return failure.New(failure.InvalidArgument, "topic name must not be empty")
	case name == "." || name == "..":
		return failure.New(failure.InvalidArgument, "topic name %q is reserved", name)
	case len(name) > maxTopicName:
		return failure.New(failure.InvalidArgument, "topic name longer than %d characters", maxTopicName)
	case !legalTopic.MatchString(name):
		return failure.New(failure.InvalidArgument, "topic name %q contains characters outside [a-zA-Z0-9._-]", name)
	}
	return nil
}

// assignReplicas spreads replicas round-robin over the brokers sorted by id,
// shifting the leader by one broker per partition.
func assignReplicas(brokers []int32, partitions int32, replication int) (map[int32][]int32, error) {
	if len(brokers) == 0 {
		return nil, failure.New(failure.ConnectionError, "cluster reported no brokers")
	}
	if replication > len(brokers) {
		return nil, failure.New(failure.InvalidArgument, "replication %d exceeds %d available brokers", replication, len(brokers))
	}
	ids := append([]int32(nil), brokers...)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make(map[int32][]int32, partitions)
	for p := int32(0); p < partitions; p++ {
		replicas := make([]int32, replication)
		for r := 0; r < replication; r++ {
			replicas[r] = ids[(int(p)+r)%len(ids)]
		}
		out[p] = replicas
	}
	return out, nil
}
