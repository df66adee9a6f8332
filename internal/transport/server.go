package transport

import (
	"context"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	bridgepb "kbridge/api/bridge/v1"
	"kbridge/bridge"
	"kbridge/internal/logging"
)

type Server struct {
	grpc   *grpc.Server
	health *health.Server
	lis    net.Listener
}

// StartServer listens on addr and registers the bridge and health services.
// Serve must be called to accept connections.
func StartServer(addr string, b *bridge.Bridge) (*Server, error) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	return NewServer(lis, b), nil
}

// NewServer is StartServer on an existing listener.
func NewServer(lis net.Listener, b *bridge.Bridge) *Server {
	s := &Server{
		grpc:   grpc.NewServer(grpc.ChainUnaryInterceptor(logCalls)),
		health: health.NewServer(),
		lis:    lis,
	}
	bridgepb.RegisterBridgeServer(s.grpc, &service{b: b})
	healthpb.RegisterHealthServer(s.grpc, s.health)
	s.health.SetServingStatus(bridgepb.Bridge_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	return s
}

func (s *Server) Addr() net.Addr { return s.lis.Addr() }

func (s *Server) Serve() error {
	logging.L().Info("bridge listening", "addr", s.lis.Addr().String())
	return s.grpc.Serve(s.lis)
}

func (s *Server) Stop() {
	s.health.Shutdown()
	s.grpc.GracefulStop()
	_ = s.lis.Close()
}

func logCalls(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	logging.L().Debug("rpc", "method", info.FullMethod, "took", time.Since(start), "err", err)
	return resp, err
}
