package transport

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	bridgepb "kbridge/api/bridge/v1"
)

// Dial connects a host to a running bridge. Close the returned connection when done.
func Dial(target string, opts ...grpc.DialOption) (bridgepb.BridgeClient, *grpc.ClientConn, error) {
	if len(opts) == 0 {
		opts = append(opts, grpc.WithTransportCredentials(insecure.NewCredentials()))
	}
	cc, err := grpc.NewClient(target, opts...)
	if err != nil {
		return nil, nil, err
	}
	return bridgepb.NewBridgeClient(cc), cc, nil
}
