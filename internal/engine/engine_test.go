package engine

import (
	"context"
	"errors"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	bridgepb "kbridge/api/bridge/v1"
	"kbridge/internal/config"
	"kbridge/internal/transport"
)

func testConfig(t *testing.T) config.Config {
	return config.Config{
		Kafka:     config.Kafka{Brokers: []string{"127.0.0.1:1"}, Version: "2.8.0"},
		Executor:  config.Executor{IOWorkers: 2, GeneralWorkers: 2},
		Transport: config.Transport{Listen: "127.0.0.1:0"},
		Log:       config.Log{Level: "debug", File: filepath.Join(t.TempDir(), "bridge.log"), MaxSizeMB: 1},
	}
}

func TestRunServesUntilCancelled(t *testing.T) {
	cfg := testConfig(t)
	ctx, cancel := context.WithCancel(context.Background())
	e, err := Bootstrap(ctx, cfg)
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- e.Run(ctx) }()

	bc, cc, err := transport.Dial(e.transport.Addr().String())
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer cc.Close()

	rctx, rcancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer rcancel()
	rr, err := bc.Release(rctx, &bridgepb.HandleRequest{Handle: "nope"})
	if err != nil {
		t.Fatalf("release rpc: %v", err)
	}
	if rr.GetResult().GetStatus() != bridgepb.StatusError {
		t.Fatalf("release unknown = %v", rr.GetResult())
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after cancel")
	}

	if fi, err := os.Stat(cfg.Log.File); err != nil || fi.Size() == 0 {
		t.Fatalf("log file not written: %v", err)
	}
}

func TestBootstrapRejectsBusyListener(t *testing.T) {
	cfg := testConfig(t)
	first, err := Bootstrap(context.Background(), cfg)
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	defer first.transport.Stop()

	cfg.Transport.Listen = first.transport.Addr().String()
	if _, err := Bootstrap(context.Background(), cfg); err == nil {
		t.Fatal("second bootstrap on the same address succeeded")
	}
}

func TestBootstrapHonoursCancelledContext(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := lis.Addr().String()
	_ = lis.Close()

	cfg := testConfig(t)
	cfg.Transport.Listen = addr
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Bootstrap(ctx, cfg); !errors.Is(err, context.Canceled) {
		t.Fatalf("bootstrap with cancelled ctx = %v", err)
	}

	// nothing may be left bound on the configured address
	again, err := net.Listen("tcp", addr)
	if err != nil {
		t.Fatalf("address still bound after aborted bootstrap: %v", err)
	}
	_ = again.Close()
}
