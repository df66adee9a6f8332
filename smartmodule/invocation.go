// Package smartmodule builds ad-hoc smart-module invocations for consumers and
// runs fetched records through an engine that executes them.
package smartmodule

import (
	"bytes"
	"os"

	"github.com/klauspost/compress/gzip"

	"kbridge/internal/failure"
	"kbridge/internal/symbol"
)

// Invocation is an ad-hoc module shipped with a consumer.
type Invocation struct {
	Module      []byte // gzip-compressed artifact
	Context     symbol.ContextKind
	Accumulator []byte
	Params      map[string]string
}

// Load reads the artifact at path and compresses it at the default level. The
// accumulator is only kept for the aggregate context.
func Load(path string, kind symbol.ContextKind, accumulator []byte) (Invocation, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Invocation{}, failure.Wrap(failure.IoError, err, "read smartmodule")
	}
	module, err := Compress(raw)
	if err != nil {
		return Invocation{}, failure.Wrap(failure.IoError, err, "compress smartmodule %q", path)
	}
	inv := Invocation{Module: module, Context: kind, Params: map[string]string{}}
	if kind == symbol.ContextAggregate {
		inv.Accumulator = append([]byte{}, accumulator...)
	}
	return inv, nil
}

func Compress(raw []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := gzip.NewWriterLevel(&buf, gzip.DefaultCompression)
	if err != nil {
		return nil, err
	}
	if _, err := zw.Write(raw); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decompress is the inverse of Compress, used by engines receiving a module.
func Decompress(module []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(module))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(zr); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
