// Package bridgepb is the wire form of the host call surface. Every reply embeds a
// Result; failures are data, not gRPC errors, so hosts see one uniform shape.
package bridgepb

//go:generate protoc -I ../.. --go_out=../.. --go_opt=paths=source_relative --go-grpc_out=../.. --go-grpc_opt=paths=source_relative bridge/v1/bridge.proto

// Values of Result.status.
const (
	StatusOK       = "ok"
	StatusError    = "error"
	StatusStopNext = "stop_next"
)

func (x *Result) IsOK() bool { return x.GetStatus() == StatusOK }
