package telemetry

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"kbridge/internal/logging"
)

var (
	Calls = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "kbridge", Name: "calls_total",
		Help: "Boundary calls by operation and result status",
	}, []string{"op", "status"})

	CallDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "kbridge", Name: "call_duration_seconds",
		Help:    "Boundary call latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"op"})

	HandlesOpen = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "kbridge", Name: "handles_open",
		Help: "Live host handles by kind",
	}, []string{"kind"})

	PoolWaiting = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "kbridge", Name: "pool_waiting",
		Help: "Calls waiting for an executor slot",
	}, []string{"pool"})

	ProducerInflight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "kbridge", Name: "producer_inflight",
		Help: "Records accepted by producers and not yet acknowledged",
	})
)

type Server struct {
	srv *http.Server
	lis net.Listener
}

// Expose serves /metrics on addr in the background.
func Expose(addr string) (*Server, error) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	s := &Server{
		srv: &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second},
		lis: lis,
	}
	go func() {
		if err := s.srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.L().Error("metrics server stopped", "err", err)
		}
	}()
	return s, nil
}

func (s *Server) Addr() string { return s.lis.Addr().String() }

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
