package otel

import (
	"context"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

type providerEnv struct {
	Enabled  string `env:"JIM_CARRIER_OTEL_ENABLED"`
	Endpoint string `env:"JIM_CARRIER_OTEL_ENDPOINT"`
}

// Setup initialises OpenTelemetry tracing for the given service.
//
// Tracing is opt-in: when JIM_CARRIER_OTEL_ENDPOINT is empty or
// JIM_CARRIER_OTEL_ENABLED is false, Setup returns a no-op shutdown
// function and no global provider is registered.
//
// The returned shutdown function flushes pending spans and should be deferred
// by the caller.
func Setup(ctx context.Context, serviceName string) (shutdown func(context.Context) error, err error) {
	noop := func(context.Context) error { return nil }

	var cfg providerEnv
	if err := env.Parse(&cfg); err != nil {
		return noop, fmt.Errorf("parse otel env: %w", err)
	}
	if strings.EqualFold(strings.TrimSpace(cfg.Enabled), "false") || cfg.Endpoint == "" {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(cfg.Endpoint),
	)
	if err != nil {
		return noop, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
		),
	)
	if err != nil {
		return noop, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}
