package otelx

import (
	"context"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Config controls OTel initialization.
type Config struct {
	ServiceName    string
	ServiceVersion string
	// UseStdout enables stdout trace exporter (suitable for local dev/tests).
	UseStdout bool
	// SampleRatio is the fraction of traces recorded, in [0,1]. Zero
	// defaults to 1 (sample everything) — the three-stage pipeline's
	// trace volume is low enough that head sampling isn't needed by
	// default, but a deployment fronting a noisier producer can turn it
	// down without recompiling.
	SampleRatio float64
}

// Init configures a global tracer provider and returns a shutdown func.
func Init(ctx context.Context, cfg Config) (func(context.Context) error, error) {
	if cfg.ServiceName == "" {
		cfg.ServiceName = "triad"
	}
	if cfg.ServiceVersion == "" {
		cfg.ServiceVersion = os.Getenv("TRIAD_VERSION")
	}
	if cfg.SampleRatio <= 0 {
		cfg.SampleRatio = 1
	}

	res, err := sdkresource.New(ctx,
		sdkresource.WithFromEnv(),
		sdkresource.WithProcess(),
		sdkresource.WithOS(),
		sdkresource.WithHost(),
		sdkresource.WithAttributes(
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(cfg.ServiceVersion),
			attribute.String("library.language", "go"),
		),
	)
	if err != nil {
		return nil, err
	}

	sampler := sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SampleRatio))

	var tp *sdktrace.TracerProvider
	if cfg.UseStdout {
		exp, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
		if err != nil {
			return nil, err
		}
		tp = sdktrace.NewTracerProvider(
			sdktrace.WithBatcher(exp,
				sdktrace.WithMaxExportBatchSize(512),
				sdktrace.WithBatchTimeout(200*time.Millisecond),
			),
			sdktrace.WithResource(res),
			sdktrace.WithSampler(sampler),
		)
	} else {
		// No-op exporter for now; can be extended to OTLP.
		tp = sdktrace.NewTracerProvider(sdktrace.WithResource(res), sdktrace.WithSampler(sampler))
	}

	otel.SetTracerProvider(tp)
	return tp.Shutdown, nil
}
