package tracing

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestSetup_RejectsUnknownExporter(t *testing.T) {
	if _, err := Setup("jaeger", 1); err == nil {
		t.Fatalf("expected error for unknown exporter")
	}
}

func TestSetup_StdoutExportsSpans(t *testing.T) {
	var buf bytes.Buffer
	p, err := setup(ExporterStdout, 1, &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, span := Start(context.Background(), "order.create")
	End(span, errors.New("boom"))

	if err := p.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
	if !strings.Contains(buf.String(), "order.create") {
		t.Fatalf("expected exported span, got %q", buf.String())
	}
}

func TestShutdown_NilProvider(t *testing.T) {
	var p *Provider
	if err := p.Shutdown(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
