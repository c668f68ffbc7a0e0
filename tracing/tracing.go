// Package tracing provides OpenTelemetry tracing for the wiki lookup server.
// Spans cover one MCP tool call each, with a child span per upstream request.
package tracing

import (
	"context"
	"io"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
	"go.opentelemetry.io/otel/trace"

	apierrors "github.com/olgasafonova/wikilookup-mcp-server/internal/errors"
	"github.com/olgasafonova/wikilookup-mcp-server/internal/lookup"
)

const TracerName = "wikilookup-mcp-server"

// Span attribute keys
const (
	AttrService   = attribute.Key("lookup.service")
	AttrAction    = attribute.Key("lookup.action")
	AttrPageTitle = attribute.Key("wiki.page.title")
	AttrStatus    = attribute.Key("lookup.status")
	AttrRows      = attribute.Key("lookup.rows")
	AttrErrorCode = attribute.Key("lookup.error_code")
)

// Config holds tracing configuration
type Config struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	Enabled        bool
	OTLPEndpoint   string    // OTLP/HTTP collector; empty selects the pretty-printing exporter
	Writer         io.Writer // destination of the pretty-printing exporter, default stderr
	SampleRate     float64
}

// DefaultConfig reads OTEL_ENABLED, OTEL_ENVIRONMENT and OTEL_EXPORTER_OTLP_ENDPOINT.
func DefaultConfig() Config {
	env := os.Getenv("OTEL_ENVIRONMENT")
	if env == "" {
		env = "development"
	}
	return Config{
		ServiceName:    TracerName,
		ServiceVersion: "1.0.0",
		Environment:    env,
		Enabled:        os.Getenv("OTEL_ENABLED") == "true" || os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "",
		OTLPEndpoint:   os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		SampleRate:     1.0,
	}
}

// Setup initializes OpenTelemetry tracing and returns a shutdown function
func Setup(ctx context.Context, config Config) (func(context.Context) error, error) {
	if !config.Enabled {
		return func(context.Context) error { return nil }, nil
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(config.ServiceName),
			semconv.ServiceVersion(config.ServiceVersion),
			attribute.String("environment", config.Environment),
		),
	)
	if err != nil {
		return nil, err
	}

	var exporter sdktrace.SpanExporter
	if config.OTLPEndpoint != "" {
		exporter, err = otlptracehttp.New(ctx,
			otlptracehttp.WithEndpoint(config.OTLPEndpoint),
			otlptracehttp.WithInsecure(),
		)
	} else {
		// stdout carries the MCP stdio protocol
		w := config.Writer
		if w == nil {
			w = os.Stderr
		}
		exporter, err = stdouttrace.New(
			stdouttrace.WithWriter(w),
			stdouttrace.WithPrettyPrint(),
		)
	}
	if err != nil {
		return nil, err
	}

	var sampler sdktrace.Sampler
	switch {
	case config.SampleRate >= 1.0:
		sampler = sdktrace.AlwaysSample()
	case config.SampleRate <= 0:
		sampler = sdktrace.NeverSample()
	default:
		sampler = sdktrace.TraceIDRatioBased(config.SampleRate)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sampler),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp.Shutdown, nil
}

// Tracer returns the named tracer for the server
func Tracer() trace.Tracer {
	return otel.Tracer(TracerName)
}

// StartSpan starts a new span with the given name and returns the context and span
func StartSpan(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return Tracer().Start(ctx, name, opts...)
}

// AddToolAttributes adds standard tool attributes to a span
func AddToolAttributes(span trace.Span, toolName, category string) {
	span.SetAttributes(
		attribute.String("mcp.tool.name", toolName),
		attribute.String("mcp.tool.category", category),
	)
}

// AddLookupAttributes tags a span with the upstream service and action, and
// the page title when there is one.
func AddLookupAttributes(span trace.Span, service, action, page string) {
	span.SetAttributes(AttrService.String(service), AttrAction.String(action))
	if page != "" {
		span.SetAttributes(AttrPageTitle.String(page))
	}
}

// SetLookupResult records the outcome of a lookup. Only a failed lookup marks
// the span as an error; an empty answer is a success.
func SetLookupResult(span trace.Span, status lookup.Status, rows int) {
	span.SetAttributes(AttrStatus.String(string(status)), AttrRows.Int(rows))
	if status == lookup.StatusFailed {
		span.SetStatus(codes.Error, "lookup failed")
		return
	}
	span.SetStatus(codes.Ok, "")
}

// RecordError records err on the span, marks it failed and tags the error class.
func RecordError(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetAttributes(AttrErrorCode.String(apierrors.Code(err)))
	span.SetStatus(codes.Error, err.Error())
}
