package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Info("catalog loaded", Int("aliases", 3))

	var event map[string]any
	if err := json.Unmarshal(buf.Bytes(), &event); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if event["msg"] != "catalog loaded" {
		t.Errorf("msg = %v", event["msg"])
	}
	if event["aliases"] != float64(3) {
		t.Errorf("aliases = %v", event["aliases"])
	}
}

func TestNewConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Info("scan complete", String("query", "inception"))
	if !strings.Contains(buf.String(), "scan complete") {
		t.Errorf("console output missing message: %q", buf.String())
	}
}

func TestNewLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Info("hidden")
	logger.Warn("visible")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info record emitted at warn level")
	}
	if !strings.Contains(out, "visible") {
		t.Error("warn record missing")
	}
}

func TestNewUnsupportedFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Error("New(xml) error = nil, want error")
	}
}

func TestErrorAttr(t *testing.T) {
	attr := Error(errors.New("boom"))
	if attr.Key != "error" {
		t.Errorf("Error attr key = %q", attr.Key)
	}
	nilAttr := Error(nil)
	if nilAttr.Value.Kind() != slog.KindString {
		t.Errorf("Error(nil) kind = %v, want string placeholder", nilAttr.Value.Kind())
	}
}

func TestNewNop(t *testing.T) {
	logger := NewNop()
	logger.Error("dropped", Error(errors.New("ignored")))
}
