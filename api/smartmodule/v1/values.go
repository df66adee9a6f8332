// Package smpb describes the remote smart-module engine service. Consumers ship
// ad-hoc modules to an engine once and then pass fetched records through it.
package smpb

//go:generate protoc -I ../.. --go_out=../.. --go_opt=paths=source_relative --go-grpc_out=../.. --go-grpc_opt=paths=source_relative smartmodule/v1/engine.proto

// Values of LoadRequest.kind and ApplyRequest.context.
const (
	KindAdHoc = "ad_hoc"

	ContextNone      = "none"
	ContextAggregate = "aggregate"
)
