package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/glance/internal/core/ports"
)

// InstrumentationName names the tracer of the pipeline.
const InstrumentationName = "glance"

// Setup installs a global tracer provider that reports finished spans to logger and
// returns a tracer on it. The returned function flushes and shuts the provider down.
func Setup(logger ports.Logger) (*OTelTracer, func(context.Context) error) {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(NewBridge(logger)),
	)
	otel.SetTracerProvider(tp)

	return NewOTelTracer(InstrumentationName), tp.Shutdown
}
