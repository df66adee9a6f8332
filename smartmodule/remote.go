package smartmodule

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	smpb "kbridge/api/smartmodule/v1"
	"kbridge/internal/failure"
	"kbridge/internal/logging"
	"kbridge/internal/symbol"
)

// Remote is an Engine reached over gRPC.
type Remote struct {
	conn    *grpc.ClientConn
	svc     smpb.EngineClient
	timeout time.Duration
}

// Dial creates a Remote engine client. The connection is established lazily.
func Dial(target string, timeout time.Duration, opts ...grpc.DialOption) (*Remote, error) {
	if len(opts) == 0 {
		opts = append(opts, grpc.WithTransportCredentials(insecure.NewCredentials()))
	}
	conn, err := grpc.NewClient(target, opts...)
	if err != nil {
		return nil, failure.Wrap(failure.InvalidArgument, err, "smartmodule engine %q", target)
	}
	return NewRemote(conn, timeout), nil
}

// NewRemote wraps an existing connection; Close closes it.
func NewRemote(conn *grpc.ClientConn, timeout time.Duration) *Remote {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Remote{conn: conn, svc: smpb.NewEngineClient(conn), timeout: timeout}
}

func (r *Remote) Instantiate(ctx context.Context, inv Invocation) (Instance, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	rep, err := r.svc.Load(ctx, &smpb.LoadRequest{Kind: smpb.KindAdHoc, Module: inv.Module})
	if err != nil {
		return nil, fromStatus(err, "load smartmodule")
	}
	logging.L().Debug("smartmodule loaded", "module_id", rep.GetModuleId(), "context", inv.Context.String(), "bytes", len(inv.Module))
	return &remoteInstance{
		engine: r,
		id:     rep.GetModuleId(),
		ctx:    contextName(inv.Context),
		acc:    inv.Accumulator,
		params: inv.Params,
	}, nil
}

func (r *Remote) Close() error {
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}

type remoteInstance struct {
	engine *Remote
	id     string
	ctx    string
	acc    []byte
	params map[string]string
}

func (i *remoteInstance) Apply(ctx context.Context, in []Record) ([]Record, error) {
	ctx, cancel := context.WithTimeout(ctx, i.engine.timeout)
	defer cancel()
	req := &smpb.ApplyRequest{
		ModuleId:    i.id,
		Context:     i.ctx,
		Accumulator: i.acc,
		Params:      i.params,
		Records:     make([]*smpb.Record, 0, len(in)),
	}
	for _, r := range in {
		req.Records = append(req.Records, &smpb.Record{Offset: r.Offset, Timestamp: r.Timestamp, Key: r.Key, Value: r.Value})
	}
	rep, err := i.engine.svc.Apply(ctx, req)
	if err != nil {
		return nil, fromStatus(err, "apply smartmodule")
	}
	if i.ctx == smpb.ContextAggregate {
		i.acc = rep.GetAccumulator()
	}
	out := make([]Record, 0, len(rep.GetRecords()))
	for _, r := range rep.GetRecords() {
		out = append(out, Record{Offset: r.GetOffset(), Timestamp: r.GetTimestamp(), Key: r.GetKey(), Value: r.GetValue()})
	}
	return out, nil
}

// Close unloads the module; the engine connection stays open for other instances.
func (i *remoteInstance) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), i.engine.timeout)
	defer cancel()
	if _, err := i.engine.svc.Unload(ctx, &smpb.UnloadRequest{ModuleId: i.id}); err != nil {
		return fromStatus(err, "unload smartmodule")
	}
	return nil
}

func contextName(k symbol.ContextKind) string {
	if k == symbol.ContextAggregate {
		return smpb.ContextAggregate
	}
	return smpb.ContextNone
}

func fromStatus(err error, op string) error {
	kind := failure.BrokerError
	switch status.Code(err) {
	case codes.InvalidArgument, codes.FailedPrecondition:
		kind = failure.InvalidArgument
	case codes.NotFound:
		kind = failure.NotFound
	case codes.Unavailable:
		kind = failure.ConnectionError
	case codes.DeadlineExceeded:
		kind = failure.Timeout
	case codes.PermissionDenied, codes.Unauthenticated:
		kind = failure.PermissionDenied
	}
	return failure.Wrap(kind, err, "%s", op)
}
