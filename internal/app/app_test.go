package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/quotegate/quotegate/config"
)

// TestInitializeApp_InvalidConfig ensures InitializeApp rejects a missing upstream URL.
func TestInitializeApp_InvalidConfig(t *testing.T) {
	old := config.AppConfig
	t.Cleanup(func() { config.AppConfig = old })

	config.AppConfig = config.Config{}

	r, cleanup, err := InitializeApp()
	if err == nil || r != nil || cleanup != nil {
		if cleanup != nil {
			cleanup()
		}
		t.Fatalf("expected error from InitializeApp with empty config")
	}
}

func TestInitializeApp_HappyPath(t *testing.T) {
	old := config.AppConfig
	t.Cleanup(func() { config.AppConfig = old })

	config.AppConfig = config.Config{
		Server:   config.ServerConfig{Port: "8080"},
		Upstream: config.UpstreamConfig{BaseURL: "https://query1.finance.yahoo.com", TimeoutSec: 20},
		Cache:    config.CacheConfig{TTLSec: 600, MaxEntries: 256},
	}

	router, cleanup, err := InitializeApp()
	if err != nil || router == nil || cleanup == nil {
		t.Fatalf("InitializeApp failed: err=%v", err)
	}

	// Health endpoint is wired without touching the upstream
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("health status=%d", w.Code)
	}

	// Universe endpoint is static and must also work offline
	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/api/public/universe?market=ETF_US", nil)
	router.ServeHTTP(w2, req2)
	if w2.Code != http.StatusOK {
		t.Fatalf("universe status=%d", w2.Code)
	}

	// Call cleanup and ensure it doesn't panic
	cleanup()
}
