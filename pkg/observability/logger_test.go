package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(WarnLevel, &buf)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	output := buf.String()
	if bytes.Contains([]byte(output), []byte("debug message")) {
		t.Error("Debug message should be filtered at warn level")
	}
	if bytes.Contains([]byte(output), []byte("info message")) {
		t.Error("Info message should be filtered at warn level")
	}
	if !bytes.Contains([]byte(output), []byte("warn message")) {
		t.Error("Warn message should be logged at warn level")
	}
	if !bytes.Contains([]byte(output), []byte("error message")) {
		t.Error("Error message should be logged at warn level")
	}
}

func TestLoggerJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(InfoLevel, &buf)

	logger.WithField("page", "pricing").Info("page rendered")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Log output is not valid JSON: %v", err)
	}

	if entry["msg"] != "page rendered" {
		t.Errorf("Expected msg 'page rendered', got %v", entry["msg"])
	}
	if entry["page"] != "pricing" {
		t.Errorf("Expected page field 'pricing', got %v", entry["page"])
	}
}

func TestLoggerWithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(InfoLevel, &buf)

	logger.WithFields(map[string]interface{}{
		"slug":   "intro",
		"status": 200,
	}).Info("article served")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Log output is not valid JSON: %v", err)
	}

	if entry["slug"] != "intro" {
		t.Errorf("Expected slug field 'intro', got %v", entry["slug"])
	}
}

func TestLoggerWithErrorNil(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(InfoLevel, &buf)

	same := logger.WithError(nil)
	if same != logger {
		t.Error("WithError(nil) should return the same logger")
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  LogLevel
	}{
		{"debug", DebugLevel},
		{"info", InfoLevel},
		{"warn", WarnLevel},
		{"warning", WarnLevel},
		{"error", ErrorLevel},
		{"bogus", InfoLevel},
		{"", InfoLevel},
	}

	for _, tt := range tests {
		if got := ParseLogLevel(tt.input); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestRequestIDContext(t *testing.T) {
	ctx := context.Background()

	if GetRequestID(ctx) != "" {
		t.Error("Expected empty request ID on fresh context")
	}

	ctx = WithRequestID(ctx, "req-123")
	if GetRequestID(ctx) != "req-123" {
		t.Errorf("Expected request ID 'req-123', got %q", GetRequestID(ctx))
	}
}

func TestFromContextAttachesRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(InfoLevel, &buf)

	ctx := WithLogger(context.Background(), logger)
	ctx = WithRequestID(ctx, "req-456")

	FromContext(ctx).Info("handled")

	if !bytes.Contains(buf.Bytes(), []byte("req-456")) {
		t.Error("Expected request ID in log output")
	}
}
