package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"bahnarchiv/internal/services"
)

func TestConsoleHandlerOutput(t *testing.T) {
	var buf bytes.Buffer
	levelVar := new(slog.LevelVar)
	levelVar.Set(slog.LevelInfo)
	logger := slog.New(newConsoleHandler(&buf, levelVar, false))

	logger.Info("catalog loaded", String("path", "/tmp/catalog.json"), Int("episodes", 42))

	line := buf.String()
	if !strings.Contains(line, "INFO") {
		t.Fatalf("missing level label: %q", line)
	}
	if !strings.Contains(line, "catalog loaded") {
		t.Fatalf("missing message: %q", line)
	}
	if !strings.Contains(line, "path=/tmp/catalog.json") {
		t.Fatalf("missing path attr: %q", line)
	}
	if !strings.Contains(line, "episodes=42") {
		t.Fatalf("missing episodes attr: %q", line)
	}
}

func TestConsoleHandlerComponentPrefix(t *testing.T) {
	var buf bytes.Buffer
	levelVar := new(slog.LevelVar)
	levelVar.Set(slog.LevelInfo)
	base := slog.New(newConsoleHandler(&buf, levelVar, false))

	NewComponentLogger(base, "matcher").Info("no match")

	line := buf.String()
	if !strings.Contains(line, "matcher: no match") {
		t.Fatalf("expected component prefix, got %q", line)
	}
	if strings.Contains(line, "component=") {
		t.Fatalf("component should not appear as attr: %q", line)
	}
}

func TestConsoleHandlerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	levelVar := new(slog.LevelVar)
	levelVar.Set(slog.LevelWarn)
	logger := slog.New(newConsoleHandler(&buf, levelVar, false))

	logger.Info("suppressed")
	if buf.Len() != 0 {
		t.Fatalf("info line emitted below threshold: %q", buf.String())
	}
	logger.Warn("kept")
	if !strings.Contains(buf.String(), "kept") {
		t.Fatalf("warn line missing: %q", buf.String())
	}
}

func TestConsoleHandlerQuotesValues(t *testing.T) {
	var buf bytes.Buffer
	levelVar := new(slog.LevelVar)
	levelVar.Set(slog.LevelInfo)
	logger := slog.New(newConsoleHandler(&buf, levelVar, false))

	logger.Info("msg", String("title", "Die Gotthardbahn"))
	if !strings.Contains(buf.String(), `title="Die Gotthardbahn"`) {
		t.Fatalf("expected quoted value: %q", buf.String())
	}
}

func TestJSONHandlerFieldNames(t *testing.T) {
	var buf bytes.Buffer
	levelVar := new(slog.LevelVar)
	levelVar.Set(slog.LevelInfo)
	logger := slog.New(newJSONHandler(&buf, levelVar, false))

	logger.Info("done", Float64(FieldConfidence, 0.75))

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("invalid JSON line %q: %v", buf.String(), err)
	}
	if payload["msg"] != "done" {
		t.Fatalf("unexpected msg field: %v", payload["msg"])
	}
	if payload["level"] != "info" {
		t.Fatalf("unexpected level field: %v", payload["level"])
	}
	if _, ok := payload["ts"]; !ok {
		t.Fatal("missing ts field")
	}
	if payload[FieldConfidence] != 0.75 {
		t.Fatalf("unexpected confidence: %v", payload[FieldConfidence])
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestWithContextAddsRunID(t *testing.T) {
	var buf bytes.Buffer
	levelVar := new(slog.LevelVar)
	levelVar.Set(slog.LevelInfo)
	logger := slog.New(newConsoleHandler(&buf, levelVar, false))

	ctx := services.WithRunID(context.Background(), "run-123")
	WithContext(ctx, logger).Info("hello")

	if !strings.Contains(buf.String(), "run_id=run-123") {
		t.Fatalf("missing run_id attr: %q", buf.String())
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := NewNop()
	logger.Error("nothing happens", Error(nil))
}
