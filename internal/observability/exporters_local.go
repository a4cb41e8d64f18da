//go:build !gcloud

package observability

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
)

// newExporters exports over OTLP/HTTP only when a collector endpoint is configured.
func newExporters(ctx context.Context, _ Config) (exporters, error) {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		return exporters{}, nil
	}

	spanExporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return exporters{}, err
	}

	metricExporter, err := otlpmetrichttp.New(ctx)
	if err != nil {
		return exporters{}, err
	}

	return exporters{
		span:   spanExporter,
		metric: metricExporter,
	}, nil
}
