package telemetry

import (
	"context"
	"log/slog"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// NewProvider returns a tracer provider that logs every finished span at
// debug level and hands it to any extra processors. No spans leave the
// process.
func NewProvider(logger *slog.Logger, extra ...sdktrace.SpanProcessor) *sdktrace.TracerProvider {
	if logger == nil {
		logger = slog.Default()
	}
	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithSpanProcessor(&logProcessor{log: logger}),
	}
	for _, p := range extra {
		opts = append(opts, sdktrace.WithSpanProcessor(p))
	}
	return sdktrace.NewTracerProvider(opts...)
}

type logProcessor struct {
	log *slog.Logger
}

func (p *logProcessor) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

func (p *logProcessor) OnEnd(s sdktrace.ReadOnlySpan) {
	p.log.Debug("Span finished.",
		"name", s.Name(),
		"duration", s.EndTime().Sub(s.StartTime()),
		"status", s.Status().Code.String(),
	)
}

func (p *logProcessor) Shutdown(context.Context) error   { return nil }
func (p *logProcessor) ForceFlush(context.Context) error { return nil }
