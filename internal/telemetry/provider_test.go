package telemetry

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

const testPrefix = "WAVECMP_"

func TestSetup_NoopWhenEndpointEmpty(t *testing.T) {
	t.Setenv(testPrefix+EnvEndpoint, "")
	t.Setenv(testPrefix+EnvEnabled, "")

	shutdown, err := Setup(context.Background(), testPrefix, "test-service", "dev")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_NoopWhenExplicitlyDisabled(t *testing.T) {
	t.Setenv(testPrefix+EnvEndpoint, "http://localhost:4318")
	t.Setenv(testPrefix+EnvEnabled, "FALSE")

	shutdown, err := Setup(context.Background(), testPrefix, "test-service", "dev")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_CreatesProviderWhenEndpointSet(t *testing.T) {
	// Non-routable address so no actual export happens.
	t.Setenv(testPrefix+EnvEndpoint, "http://192.0.2.1:4318")
	t.Setenv(testPrefix+EnvEnabled, "")

	shutdown, err := Setup(context.Background(), testPrefix, "test-service", "dev")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_ReadsOwnPrefix(t *testing.T) {
	t.Setenv("WAVECMP_"+EnvEndpoint, "http://192.0.2.1:4318")
	t.Setenv("WAVEFORM_"+EnvEndpoint, "")
	t.Setenv("WAVEFORM_"+EnvEnabled, "")

	before := otel.GetTracerProvider()
	shutdown, err := Setup(context.Background(), "WAVEFORM_", "waveform", "dev")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer shutdown(context.Background())
	if otel.GetTracerProvider() != before {
		t.Error("another binary's endpoint should not enable tracing")
	}

	t.Setenv("WAVEFORM_"+EnvEndpoint, "http://192.0.2.1:4318")
	shutdown, err = Setup(context.Background(), "WAVEFORM_", "waveform", "dev")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer shutdown(context.Background())
	if _, ok := otel.GetTracerProvider().(*sdktrace.TracerProvider); !ok {
		t.Errorf("tracer provider = %T, want the SDK provider", otel.GetTracerProvider())
	}
}

func TestEndSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	defer tp.Shutdown(context.Background())
	tracer := tp.Tracer(TracerName)

	_, ok := tracer.Start(context.Background(), "ok")
	EndSpan(ok, nil)
	_, failed := tracer.Start(context.Background(), "failed")
	failed.SetAttributes(attribute.String("path", "origin.json"))
	EndSpan(failed, errors.New("boom"))

	spans := recorder.Ended()
	if len(spans) != 2 {
		t.Fatalf("ended spans = %d, want 2", len(spans))
	}
	if spans[0].Status().Code != codes.Unset {
		t.Errorf("successful span status = %v, want Unset", spans[0].Status().Code)
	}
	if spans[1].Status().Code != codes.Error || spans[1].Status().Description != "boom" {
		t.Errorf("failed span status = %+v", spans[1].Status())
	}
	if len(spans[1].Events()) != 1 {
		t.Errorf("failed span should carry the recorded error event, got %d events", len(spans[1].Events()))
	}
}

func TestStartSpan_NonRecordingByDefault(t *testing.T) {
	ctx, span := StartSpan(context.Background(), "compare", attribute.Int("values", 3))
	defer span.End()
	if ctx == nil {
		t.Fatal("StartSpan returned a nil context")
	}
}
