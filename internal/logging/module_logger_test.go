package logging

import (
	"context"
	"testing"

	"github.com/goliatone/go-contentquery/pkg/interfaces"
)

type recordingLogger struct {
	fields map[string]any
	names  []string
}

func (r *recordingLogger) Trace(string, ...any) {}
func (r *recordingLogger) Debug(string, ...any) {}
func (r *recordingLogger) Info(string, ...any)  {}
func (r *recordingLogger) Warn(string, ...any)  {}
func (r *recordingLogger) Error(string, ...any) {}
func (r *recordingLogger) Fatal(string, ...any) {}

func (r *recordingLogger) WithFields(fields map[string]any) interfaces.Logger {
	r.fields = fields
	return r
}

func (r *recordingLogger) WithContext(context.Context) interfaces.Logger { return r }

type stubProvider struct {
	logger *recordingLogger
}

func (p *stubProvider) GetLogger(name string) interfaces.Logger {
	p.logger.names = append(p.logger.names, name)
	return p.logger
}

func TestModuleLoggerAttachesModuleField(t *testing.T) {
	provider := &stubProvider{logger: &recordingLogger{}}

	ModuleLogger(provider, "contentquery.engine")

	if len(provider.logger.names) != 1 || provider.logger.names[0] != "contentquery.engine" {
		t.Fatalf("expected namespaced lookup, got %v", provider.logger.names)
	}
	if provider.logger.fields["module"] != "contentquery.engine" {
		t.Fatalf("expected module field, got %v", provider.logger.fields)
	}
}

func TestModuleLoggerDefaultsToRootNamespace(t *testing.T) {
	provider := &stubProvider{logger: &recordingLogger{}}

	ModuleLogger(provider, "")

	if provider.logger.names[0] != "contentquery" {
		t.Fatalf("expected root namespace, got %v", provider.logger.names)
	}
}

func TestModuleLoggerWithoutProvider(t *testing.T) {
	logger := EngineLogger(nil)
	if logger == nil {
		t.Fatal("expected no-op logger, got nil")
	}
	// Must be safe to call without a backing sink.
	logger.Debug("noop", "k", "v")
}

func TestWithFieldsCopiesInput(t *testing.T) {
	logger := &recordingLogger{}
	fields := map[string]any{"k": "v"}

	WithFields(logger, fields)
	fields["k"] = "mutated"

	if logger.fields["k"] != "v" {
		t.Fatalf("expected defensive copy, got %v", logger.fields)
	}
}

func TestWithFieldsNilSafe(t *testing.T) {
	if got := WithFields(nil, map[string]any{"k": "v"}); got != nil {
		t.Fatalf("expected nil passthrough, got %v", got)
	}
	logger := NoOp()
	if got := WithFields(logger, nil); got != logger {
		t.Fatal("empty fields must return the logger unchanged")
	}
}
