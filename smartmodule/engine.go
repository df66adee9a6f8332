package smartmodule

import (
	"context"
	"sync"

	"kbridge/internal/symbol"
)

// Record is what a module sees and emits.
type Record struct {
	Offset    int64
	Timestamp int64
	Key       []byte
	Value     []byte
}

// Engine instantiates invocations; one instance per consumer.
type Engine interface {
	Instantiate(ctx context.Context, inv Invocation) (Instance, error)
	Close() error
}

// Instance carries the state of one invocation, including its accumulator.
// It is used by a single consumer at a time.
type Instance interface {
	Apply(ctx context.Context, in []Record) ([]Record, error)
	Close() error
}

// Transformer is an in-process module implementation.
type Transformer interface {
	Transform(ctx context.Context, kind symbol.ContextKind, acc []byte, in Record) (out []Record, next []byte, err error)
}

// TransformerFunc adapts a function to Transformer.
type TransformerFunc func(ctx context.Context, kind symbol.ContextKind, acc []byte, in Record) ([]Record, []byte, error)

func (f TransformerFunc) Transform(ctx context.Context, kind symbol.ContextKind, acc []byte, in Record) ([]Record, []byte, error) {
	return f(ctx, kind, acc, in)
}

// InProcess runs every invocation with the same compiled-in Transformer. The
// shipped module bytes are kept for inspection only.
type InProcess struct {
	impl Transformer

	mu      sync.Mutex
	modules [][]byte
}

func NewInProcess(impl Transformer) *InProcess { return &InProcess{impl: impl} }

func (e *InProcess) Instantiate(_ context.Context, inv Invocation) (Instance, error) {
	e.mu.Lock()
	e.modules = append(e.modules, inv.Module)
	e.mu.Unlock()
	return &localInstance{impl: e.impl, kind: inv.Context, acc: inv.Accumulator}, nil
}

// Modules returns the modules received so far.
func (e *InProcess) Modules() [][]byte {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([][]byte(nil), e.modules...)
}

func (e *InProcess) Close() error { return nil }

type localInstance struct {
	impl Transformer
	kind symbol.ContextKind
	acc  []byte
}

func (i *localInstance) Apply(ctx context.Context, in []Record) ([]Record, error) {
	var out []Record
	for _, r := range in {
		emitted, acc, err := i.impl.Transform(ctx, i.kind, i.acc, r)
		if err != nil {
			return nil, err
		}
		if i.kind == symbol.ContextAggregate {
			i.acc = acc
		}
		out = append(out, emitted...)
	}
	return out, nil
}

func (i *localInstance) Close() error { return nil }
