package transport

import (
	"context"

	bridgepb "kbridge/api/bridge/v1"
	"kbridge/admin"
	"kbridge/bridge"
	"kbridge/internal/failure"
	"kbridge/internal/resource"
)

// service adapts bridge.Bridge to the wire surface. Failures become Result
// values; gRPC errors are reserved for transport problems.
type service struct {
	bridgepb.UnimplementedBridgeServer
	b *bridge.Bridge
}

func result(err error) *bridgepb.Result {
	if err == nil {
		return &bridgepb.Result{Status: bridgepb.StatusOK}
	}
	fe := failure.From(err, failure.Internal)
	return &bridgepb.Result{Status: bridgepb.StatusError, Kind: string(fe.Kind), Message: fe.Error()}
}

func handleReply(ref resource.Ref, err error) (*bridgepb.HandleReply, error) {
	if err != nil {
		return &bridgepb.HandleReply{Result: result(err)}, nil
	}
	return &bridgepb.HandleReply{Result: result(nil), Handle: string(ref)}, nil
}

func resultReply(err error) (*bridgepb.ResultReply, error) {
	return &bridgepb.ResultReply{Result: result(err)}, nil
}

func (s *service) Connect(ctx context.Context, _ *bridgepb.Empty) (*bridgepb.HandleReply, error) {
	return handleReply(s.b.Connect(ctx))
}

func (s *service) PlatformVersion(ctx context.Context, in *bridgepb.HandleRequest) (*bridgepb.VersionReply, error) {
	v, err := s.b.PlatformVersion(ctx, resource.Ref(in.Handle))
	return &bridgepb.VersionReply{Result: result(err), Version: v}, nil
}

func (s *service) AdminConnect(ctx context.Context, _ *bridgepb.Empty) (*bridgepb.HandleReply, error) {
	return handleReply(s.b.AdminConnect(ctx))
}

func (s *service) CreateTopic(ctx context.Context, in *bridgepb.CreateTopicRequest) (*bridgepb.ResultReply, error) {
	return resultReply(s.b.CreateTopic(ctx, resource.Ref(in.Handle), admin.TopicSpec{
		Name:        in.Name,
		Partitions:  in.Partitions,
		Replication: in.Replication,
		IgnoreRack:  in.IgnoreRack,
	}))
}

func (s *service) DeleteTopic(ctx context.Context, in *bridgepb.DeleteTopicRequest) (*bridgepb.ResultReply, error) {
	return resultReply(s.b.DeleteTopic(ctx, resource.Ref(in.Handle), in.Name))
}

func (s *service) NewProducer(ctx context.Context, in *bridgepb.NewProducerRequest) (*bridgepb.HandleReply, error) {
	return handleReply(s.b.NewProducer(ctx, resource.Ref(in.Handle), bridge.ProducerRequest{
		Topic:       in.Topic,
		LingerMs:    in.LingerMs,
		BatchBytes:  in.BatchSizeBytes,
		Compression: in.Compression,
		TimeoutMs:   in.TimeoutMs,
	}))
}

func (s *service) Send(ctx context.Context, in *bridgepb.SendRequest) (*bridgepb.ResultReply, error) {
	return resultReply(s.b.Send(ctx, resource.Ref(in.Handle), in.Key, in.Value))
}

func (s *service) Flush(ctx context.Context, in *bridgepb.HandleRequest) (*bridgepb.ResultReply, error) {
	return resultReply(s.b.Flush(ctx, resource.Ref(in.Handle)))
}

func (s *service) NewConsumer(ctx context.Context, in *bridgepb.NewConsumerRequest) (*bridgepb.HandleReply, error) {
	return handleReply(s.b.NewConsumer(ctx, resource.Ref(in.Handle), bridge.ConsumerRequest{
		Topic:                  in.Topic,
		Partition:              in.Partition,
		OffsetKind:             in.OffsetKind,
		OffsetValue:            in.OffsetValue,
		MaxBytes:               in.MaxBytes,
		SmartModulePath:        in.SmartmodulePath,
		SmartModuleContext:     in.SmartmoduleContext,
		SmartModuleAccumulator: in.SmartmoduleAccumulator,
	}))
}

func (s *service) Next(ctx context.Context, in *bridgepb.NextRequest) (*bridgepb.NextReply, error) {
	rec, ok, err := s.b.Next(ctx, resource.Ref(in.Handle), in.TimeoutMs)
	switch {
	case err != nil:
		return &bridgepb.NextReply{Result: result(err)}, nil
	case !ok:
		return &bridgepb.NextReply{Result: &bridgepb.Result{Status: bridgepb.StatusStopNext}}, nil
	}
	out := &bridgepb.Record{
		Offset:    rec.Offset,
		Partition: rec.Partition,
		Key:       rec.Key,
		Value:     rec.Value,
		Timestamp: rec.Timestamp,
	}
	if in.Raw {
		out.RawValue = rec.Raw
	}
	return &bridgepb.NextReply{Result: result(nil), Record: out}, nil
}

func (s *service) Retain(_ context.Context, in *bridgepb.HandleRequest) (*bridgepb.ResultReply, error) {
	return resultReply(s.b.Retain(resource.Ref(in.Handle)))
}

func (s *service) Release(_ context.Context, in *bridgepb.HandleRequest) (*bridgepb.ResultReply, error) {
	return resultReply(s.b.Release(resource.Ref(in.Handle)))
}
