package telemetry

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
)

func TestExpose_ServesMetrics(t *testing.T) {
	s, err := Expose("127.0.0.1:0")
	if err != nil {
		t.Fatalf("Expose: %v", err)
	}
	defer s.Shutdown(context.Background())

	Calls.WithLabelValues("connect", "ok").Inc()
	resp, err := http.Get("http://" + s.Addr() + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "kbridge_calls_total") {
		t.Fatal("kbridge_calls_total not exported")
	}
}
