package server

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/Kanagaraj46/socialnet/pkg/config"
)

func testConfig() config.ServerConfig {
	cfg := config.Default().Server
	cfg.Port = 0
	return cfg
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestGracefulServer_ShutdownBeforeStart(t *testing.T) {
	gs := NewGracefulServer(testConfig(), okHandler(), nil)

	if gs.IsShuttingDown() {
		t.Fatal("new server should not be shutting down")
	}
	if err := gs.Shutdown(time.Second); err != nil {
		t.Fatalf("shutdown failed: %v", err)
	}
	if !gs.IsShuttingDown() {
		t.Fatal("server should report shutting down after Shutdown")
	}
}

func TestGracefulServer_ShutdownIsIdempotent(t *testing.T) {
	gs := NewGracefulServer(testConfig(), okHandler(), nil)

	if err := gs.Shutdown(time.Second); err != nil {
		t.Fatalf("first shutdown failed: %v", err)
	}
	if err := gs.Shutdown(time.Second); err != nil {
		t.Fatalf("second shutdown failed: %v", err)
	}
}

func TestGracefulServer_ShutdownChannelCloses(t *testing.T) {
	gs := NewGracefulServer(testConfig(), okHandler(), nil)

	ch := gs.ShutdownChannel()
	select {
	case <-ch:
		t.Fatal("channel closed before shutdown")
	default:
	}

	if err := gs.Shutdown(time.Second); err != nil {
		t.Fatalf("shutdown failed: %v", err)
	}

	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("channel did not close after shutdown")
	}
}

func TestGracefulServer_ReloadConfig(t *testing.T) {
	gs := NewGracefulServer(testConfig(), okHandler(), nil)

	// No reload function configured is not an error.
	if err := gs.ReloadConfig(); err != nil {
		t.Fatalf("reload without function failed: %v", err)
	}

	called := false
	gs.SetConfigReloadFunc(func() error {
		called = true
		return nil
	})
	if err := gs.ReloadConfig(); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if !called {
		t.Fatal("reload function was not called")
	}

	gs.SetConfigReloadFunc(func() error {
		return errors.New("bad config")
	})
	if err := gs.ReloadConfig(); err == nil {
		t.Fatal("expected reload error to propagate")
	}
}
