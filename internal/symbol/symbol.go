// Package symbol translates the tagged symbols a host sends across the boundary into
// domain values. Every parser rejects unknown symbols with an InvalidArgument failure
// so callers can validate before touching the network.
package symbol

import (
	"math"
	"strings"

	"github.com/IBM/sarama"

	"kbridge/internal/failure"
)

// Status symbols returned to the host.
const (
	OK       = "ok"
	Error    = "error"
	StopNext = "stop_next"
)

func normalize(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
}

/* ───────────────────────── offsets ───────────────────────── */

type OffsetKind int

const (
	FromBeginning OffsetKind = iota + 1
	FromEnd
	Absolute
)

func (k OffsetKind) String() string {
	switch k {
	case FromBeginning:
		return "from_beginning"
	case FromEnd:
		return "from_end"
	case Absolute:
		return "absolute"
	}
	return "unknown"
}

// Offset is an anchor for opening a partition stream.
type Offset struct {
	Kind  OffsetKind
	Value int64
}

// ParseOffset validates kind and value. Relative anchors take an unsigned 32-bit
// distance; absolute anchors must fit a non-negative int64.
func ParseOffset(kind string, value uint64) (Offset, error) {
	var k OffsetKind
	switch normalize(kind) {
	case "from_beginning":
		k = FromBeginning
	case "from_end":
		k = FromEnd
	case "absolute":
		k = Absolute
	default:
		return Offset{}, failure.New(failure.InvalidArgument, "unsupported offset type %q", kind)
	}
	if k == Absolute {
		if value > math.MaxInt64 {
			return Offset{}, failure.New(failure.InvalidArgument, "absolute offset %d does not fit a signed 64-bit position", value)
		}
	} else if value > math.MaxUint32 {
		return Offset{}, failure.New(failure.InvalidArgument, "%s distance %d exceeds %d", k, value, uint64(math.MaxUint32))
	}
	return Offset{Kind: k, Value: int64(value)}, nil
}

/* ───────────────────────── compression ───────────────────── */

type Compression string

const (
	CompressionNone   Compression = "none"
	CompressionGzip   Compression = "gzip"
	CompressionSnappy Compression = "snappy"
	CompressionLZ4    Compression = "lz4"
)

// ParseCompression maps a compression symbol; empty means none.
func ParseCompression(s string) (Compression, error) {
	switch normalize(s) {
	case "", "none":
		return CompressionNone, nil
	case "gzip":
		return CompressionGzip, nil
	case "snappy":
		return CompressionSnappy, nil
	case "lz4":
		return CompressionLZ4, nil
	}
	return "", failure.New(failure.InvalidArgument, "unsupported compression type %q", s)
}

func (c Compression) Codec() sarama.CompressionCodec {
	switch c {
	case CompressionGzip:
		return sarama.CompressionGZIP
	case CompressionSnappy:
		return sarama.CompressionSnappy
	case CompressionLZ4:
		return sarama.CompressionLZ4
	}
	return sarama.CompressionNone
}

/* ───────────────────────── smart-module context ──────────── */

type ContextKind int

const (
	ContextNone ContextKind = iota
	ContextAggregate
)

func (k ContextKind) String() string {
	if k == ContextAggregate {
		return "aggregate"
	}
	return "none"
}

// ParseContext maps a smart-module context symbol; empty means none.
func ParseContext(s string) (ContextKind, error) {
	switch normalize(s) {
	case "", "none":
		return ContextNone, nil
	case "aggregate":
		return ContextAggregate, nil
	}
	return ContextNone, failure.New(failure.InvalidArgument, "unsupported smartmodule context %q", s)
}
