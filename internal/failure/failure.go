package failure

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"

	"github.com/IBM/sarama"
)

// Kind is the failure category surfaced to the host.
type Kind string

const (
	InvalidArgument  Kind = "invalid_argument"
	IoError          Kind = "io_error"
	ConnectionError  Kind = "connection_error"
	NotFound         Kind = "not_found"
	AlreadyExists    Kind = "already_exists"
	PermissionDenied Kind = "permission_denied"
	BrokerError      Kind = "broker_error"
	Timeout          Kind = "timeout"
	StreamEnded      Kind = "stream_ended"
	ProducerClosed   Kind = "producer_closed"
	Internal         Kind = "internal"
)

// Error carries a Kind together with the originating message.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Msg != "" && e.Err != nil:
		return e.Msg + ": " + e.Err.Error()
	case e.Err != nil:
		return e.Err.Error()
	default:
		return e.Msg
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so errors.Is(err, failure.New(NotFound, ""))
// works as a kind test.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Msg == "" && t.Err == nil
}

func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func Wrap(kind Kind, err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

// KindOf walks the chain for a *Error. Errors that never went through this package
// report Internal.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return Internal
}

// Classify maps broker client errors onto a Kind. Already classified errors keep their
// kind; anything unrecognised falls back to fallback.
func Classify(err error, fallback Kind) Kind {
	if err == nil {
		return ""
	}
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}

	var te *sarama.TopicError
	if errors.As(err, &te) {
		if k := kafkaKind(te.Err); k != "" {
			return k
		}
		return fallback
	}
	var ke sarama.KError
	if errors.As(err, &ke) {
		if k := kafkaKind(ke); k != "" {
			return k
		}
		return fallback
	}

	switch {
	case errors.Is(err, sarama.ErrOutOfBrokers),
		errors.Is(err, sarama.ErrNotConnected),
		errors.Is(err, sarama.ErrClosedClient),
		errors.Is(err, sarama.ErrAlreadyConnected):
		return ConnectionError
	case errors.Is(err, context.DeadlineExceeded):
		return Timeout
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission):
		return IoError
	}

	var ce sarama.ConfigurationError
	if errors.As(err, &ce) {
		return InvalidArgument
	}
	var ne net.Error
	if errors.As(err, &ne) {
		return ConnectionError
	}
	return fallback
}

func kafkaKind(k sarama.KError) Kind {
	switch k {
	case sarama.ErrNoError:
		return ""
	case sarama.ErrTopicAlreadyExists:
		return AlreadyExists
	case sarama.ErrUnknownTopicOrPartition:
		return NotFound
	case sarama.ErrTopicAuthorizationFailed,
		sarama.ErrClusterAuthorizationFailed,
		sarama.ErrGroupAuthorizationFailed,
		sarama.ErrTopicDeletionDisabled:
		return PermissionDenied
	case sarama.ErrSASLAuthenticationFailed,
		sarama.ErrIllegalSASLState,
		sarama.ErrUnsupportedSASLMechanism:
		return ConnectionError
	case sarama.ErrInvalidTopic,
		sarama.ErrInvalidPartitions,
		sarama.ErrInvalidReplicationFactor,
		sarama.ErrInvalidReplicaAssignment,
		sarama.ErrInvalidConfig,
		sarama.ErrPolicyViolation,
		sarama.ErrMessageSizeTooLarge,
		sarama.ErrInvalidRequest:
		return InvalidArgument
	case sarama.ErrRequestTimedOut:
		return Timeout
	}
	return ""
}

// From returns err as a *Error, classifying it when necessary.
func From(err error, fallback Kind) *Error {
	if err == nil {
		return nil
	}
	var fe *Error
	if errors.As(err, &fe) {
		return fe
	}
	return &Error{Kind: Classify(err, fallback), Err: err}
}
