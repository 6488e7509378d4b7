package telemetry

import (
	"context"
	"testing"
)

func TestConfigFromEnvDefaults(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("HONEYCOMB_BATTLESHIP_API_KEY", "")
	t.Setenv("HONEYCOMB_BATTLESHIP_DATASET", "")

	cfg := ConfigFromEnv()
	if cfg.Endpoint != defaultEndpoint {
		t.Errorf("Endpoint = %q, want %q", cfg.Endpoint, defaultEndpoint)
	}
	if cfg.Dataset != defaultDataset {
		t.Errorf("Dataset = %q, want %q", cfg.Dataset, defaultDataset)
	}
	if cfg.Enabled() {
		t.Error("Enabled() should be false without an API key")
	}
}

func TestConfigFromEnvOverrides(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://localhost:4318")
	t.Setenv("HONEYCOMB_BATTLESHIP_API_KEY", "secret")
	t.Setenv("HONEYCOMB_BATTLESHIP_DATASET", "games")

	cfg := ConfigFromEnv()
	if !cfg.Enabled() {
		t.Error("Enabled() should be true with an API key")
	}
	headers := cfg.headers()
	if headers["x-honeycomb-team"] != "secret" || headers["x-honeycomb-dataset"] != "games" {
		t.Errorf("headers() = %v", headers)
	}
	if cfg.Endpoint != "http://localhost:4318" {
		t.Errorf("Endpoint = %q, want override", cfg.Endpoint)
	}
}

func TestTracesURL(t *testing.T) {
	tests := []struct {
		endpoint string
		expected string
	}{
		{"https://api.honeycomb.io", "https://api.honeycomb.io/v1/traces"},
		{"http://localhost:4318/", "http://localhost:4318/v1/traces"},
	}

	for _, tt := range tests {
		got := Config{Endpoint: tt.endpoint}.tracesURL()
		if got != tt.expected {
			t.Errorf("tracesURL(%q) = %q, want %q", tt.endpoint, got, tt.expected)
		}
	}
}

func TestTracerWithoutSetup(t *testing.T) {
	_, span := Tracer("test").Start(context.Background(), "global")
	defer span.End()
	if span.IsRecording() {
		t.Error("spans should not record before Setup")
	}
}
