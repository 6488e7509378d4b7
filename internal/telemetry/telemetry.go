// Package telemetry provides OpenTelemetry tracing exported to Honeycomb over OTLP/HTTP.
package telemetry

import (
	"context"
	"os"
	"runtime"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const (
	serviceName    = "battleship"
	serviceVersion = "0.1.0"

	defaultEndpoint = "https://api.honeycomb.io"
	defaultDataset  = "battleship"
	tracesPath      = "/v1/traces"
)

// Config selects where spans are sent. Telemetry is disabled without an API key.
type Config struct {
	Endpoint string
	APIKey   string
	Dataset  string
}

// ConfigFromEnv reads HONEYCOMB_BATTLESHIP_API_KEY, HONEYCOMB_BATTLESHIP_DATASET
// and, optionally, OTEL_EXPORTER_OTLP_ENDPOINT.
func ConfigFromEnv() Config {
	cfg := Config{
		Endpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		APIKey:   os.Getenv("HONEYCOMB_BATTLESHIP_API_KEY"),
		Dataset:  os.Getenv("HONEYCOMB_BATTLESHIP_DATASET"),
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultEndpoint
	}
	if cfg.Dataset == "" {
		cfg.Dataset = defaultDataset
	}
	return cfg
}

// Enabled reports whether spans should be exported.
func (c Config) Enabled() bool {
	return c.APIKey != ""
}

// tracesURL appends the OTLP traces path to the base endpoint.
func (c Config) tracesURL() string {
	return strings.TrimSuffix(c.Endpoint, "/") + tracesPath
}

// headers returns the Honeycomb authentication headers.
func (c Config) headers() map[string]string {
	return map[string]string{
		"x-honeycomb-team":    c.APIKey,
		"x-honeycomb-dataset": c.Dataset,
	}
}

// Setup registers a global tracer provider exporting to cfg.Endpoint.
// Returns a shutdown function that should be called on application exit.
func Setup(ctx context.Context, cfg Config) (shutdown func(context.Context) error, err error) {
	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(cfg.tracesURL()),
		otlptracehttp.WithHeaders(cfg.headers()),
	)
	if err != nil {
		return nil, err
	}

	// Own resource instead of merging with Default() to avoid schema URL conflicts
	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
			attribute.String("host.name", getHostname()),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.name", "go"),
			attribute.String("process.runtime.version", runtime.Version()),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Tracer returns a named tracer for the given component. Before Setup, or
// without it, the global provider hands out spans that record nothing.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(serviceName + "/" + name)
}

// getHostname returns the system hostname, or "unknown" if it cannot be determined.
func getHostname() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return hostname
}
