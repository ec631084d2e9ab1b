package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"
)

func jsonLogger(buf *bytes.Buffer, level string) *Logger {
	return NewWithWriter(&Config{Level: level, Format: "json"}, "test-svc", buf)
}

func lastLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(lines[len(lines)-1]), &entry); err != nil {
		t.Fatalf("invalid json log line %q: %v", lines[len(lines)-1], err)
	}
	return entry
}

func TestNewDefault(t *testing.T) {
	l := NewDefault("test-svc")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.service != "test-svc" {
		t.Errorf("expected service 'test-svc', got %q", l.service)
	}
}

func TestNewInvalidLevel(t *testing.T) {
	var buf bytes.Buffer
	l := jsonLogger(&buf, "invalid-level")
	l.Debug("hidden")
	l.Info("shown")
	if strings.Contains(buf.String(), "hidden") {
		t.Error("invalid level should fall back to info")
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Error("expected info message to be written")
	}
}

func TestJSONOutputCarriesFields(t *testing.T) {
	var buf bytes.Buffer
	l := jsonLogger(&buf, "debug")
	l.WithComponent("registry").Info("handler registered", Fields(FieldRequest, "app.Echo"))

	entry := lastLine(t, &buf)
	if entry["message"] != "handler registered" {
		t.Errorf("unexpected message %v", entry["message"])
	}
	if entry[FieldComponent] != "registry" {
		t.Errorf("expected component=registry, got %v", entry[FieldComponent])
	}
	if entry[FieldRequest] != "app.Echo" {
		t.Errorf("expected request=app.Echo, got %v", entry[FieldRequest])
	}
	if entry[FieldService] != "test-svc" {
		t.Errorf("expected service=test-svc, got %v", entry[FieldService])
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := jsonLogger(&buf, "warn")
	l.Info("dropped")
	l.Warn("kept")
	if strings.Contains(buf.String(), "dropped") {
		t.Error("info should be filtered at warn level")
	}
	if !strings.Contains(buf.String(), "kept") {
		t.Error("warn should pass at warn level")
	}
}

func TestWithContext_RequestID(t *testing.T) {
	var buf bytes.Buffer
	l := jsonLogger(&buf, "info")
	ctx := ContextWithRequestID(context.Background(), "abc123")
	ctx = ContextWithCorrelationID(ctx, "corr-1")
	l.WithContext(ctx).Info("dispatch")

	entry := lastLine(t, &buf)
	if entry[FieldRequestID] != "abc123" {
		t.Errorf("expected request_id=abc123, got %v", entry[FieldRequestID])
	}
	if entry[FieldCorrelationID] != "corr-1" {
		t.Errorf("expected correlation_id=corr-1, got %v", entry[FieldCorrelationID])
	}
}

func TestRequestIDFromContext_Empty(t *testing.T) {
	if id := RequestIDFromContext(context.Background()); id != "" {
		t.Errorf("expected empty id, got %q", id)
	}
}

func TestWithError(t *testing.T) {
	var buf bytes.Buffer
	l := jsonLogger(&buf, "info")
	l.WithError(fmt.Errorf("boom")).Error("failed")

	entry := lastLine(t, &buf)
	if entry["error"] != "boom" {
		t.Errorf("expected error=boom, got %v", entry["error"])
	}
}

func TestNewNop(t *testing.T) {
	l := NewNop()
	l.Error("nothing")
}

func TestInit(t *testing.T) {
	Init(&Config{Level: "info", Format: "json", Output: "stdout"})
	if GetGlobalLogger() == nil {
		t.Fatal("expected global logger to be set after Init")
	}
}

func TestGetGlobalLoggerDefault(t *testing.T) {
	globalLogger = nil
	if GetGlobalLogger() == nil {
		t.Fatal("expected default global logger to be created")
	}
}

func TestSetGlobalLogger(t *testing.T) {
	l := NewDefault("custom")
	SetGlobalLogger(l)
	if got := GetGlobalLogger(); got != l {
		t.Error("expected SetGlobalLogger to set the global logger")
	}
}

func TestPackageLevelFunctions(t *testing.T) {
	Init(&Config{Level: "debug", Format: "console", Output: "stdout", NoColor: true})
	Debug("debug msg")
	Info("info msg")
	Warn("warn msg")
	Error("error msg")
}

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.Level != "info" {
		t.Errorf("expected level 'info', got %q", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected format 'console', got %q", cfg.Format)
	}
	if cfg.Output != "stdout" {
		t.Errorf("expected output 'stdout', got %q", cfg.Output)
	}
	if !cfg.Timestamp {
		t.Error("expected Timestamp to be true")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Level: "info", Format: "json", Output: "stdout"}, false},
		{"valid console", Config{Level: "debug", Format: "console", Output: "stderr"}, false},
		{"invalid level", Config{Level: "bad", Format: "json", Output: "stdout"}, true},
		{"invalid format", Config{Level: "info", Format: "xml", Output: "stdout"}, true},
		{"invalid output", Config{Level: "info", Format: "json", Output: "file"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestLevelTag(t *testing.T) {
	if got := levelTag("info", true); got != "[INF]" {
		t.Errorf("expected [INF], got %q", got)
	}
	if got := levelTag("custom", true); got != "[CUSTOM]" {
		t.Errorf("expected [CUSTOM], got %q", got)
	}
	if got := levelTag("error", false); !strings.Contains(got, "[ERR]") {
		t.Errorf("expected colored [ERR], got %q", got)
	}
}

func TestRegisterAndGet(t *testing.T) {
	l := NewDefault("custom-component")
	Register("my-component", l)
	defer Unregister("my-component")

	if got := Get("my-component"); got != l {
		t.Error("expected Get to return the registered logger")
	}
}

func TestGetUnregistered(t *testing.T) {
	if got := Get("unregistered-component"); got == nil {
		t.Fatal("expected non-nil logger for unregistered component")
	}
}

func TestRegisterDefaults(t *testing.T) {
	Init(&Config{Level: "info", Format: "json", Output: "stdout"})
	RegisterDefaults("registry", "dispatch")
	defer Unregister("registry")
	defer Unregister("dispatch")

	names := Names()
	found := 0
	for _, n := range names {
		if n == "registry" || n == "dispatch" {
			found++
		}
	}
	if found != 2 {
		t.Errorf("expected both defaults registered, got %v", names)
	}
}

func TestFields(t *testing.T) {
	tests := []struct {
		name     string
		input    []interface{}
		expected map[string]interface{}
	}{
		{
			"key-value pairs",
			[]interface{}{"op", "save", "id", 42},
			map[string]interface{}{"op": "save", "id": 42},
		},
		{
			"odd number of args",
			[]interface{}{"op", "save", "trailing"},
			map[string]interface{}{"op": "save"},
		},
		{
			"non-string key skipped",
			[]interface{}{123, "value", "key", "val"},
			map[string]interface{}{"key": "val"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := Fields(tc.input...)
			if len(result) != len(tc.expected) {
				t.Errorf("expected %d fields, got %d", len(tc.expected), len(result))
			}
			for k, v := range tc.expected {
				if result[k] != v {
					t.Errorf("Fields[%q] = %v, expected %v", k, result[k], v)
				}
			}
		})
	}
}

func TestRequestFields(t *testing.T) {
	fields := RequestFields("send", "app.Echo", 150*time.Millisecond)
	if fields[FieldOperation] != "send" {
		t.Errorf("expected operation 'send', got %v", fields[FieldOperation])
	}
	if fields[FieldRequest] != "app.Echo" {
		t.Errorf("expected request app.Echo, got %v", fields[FieldRequest])
	}
	if fields[FieldDuration] != int64(150) {
		t.Errorf("expected duration 150, got %v", fields[FieldDuration])
	}
}

func TestMergeWithError(t *testing.T) {
	fields := MergeWithError(nil, fmt.Errorf("x"))
	if fields[FieldError] != "x" {
		t.Errorf("expected error=x, got %v", fields[FieldError])
	}

	fields = MergeWithError(RequestFields("send", "app.Echo", time.Second), fmt.Errorf("y"))
	if fields[FieldError] != "y" || fields[FieldDuration] != int64(1000) {
		t.Errorf("expected merged fields, got %v", fields)
	}
}

func TestCorrelationIDFromContext(t *testing.T) {
	if id := CorrelationIDFromContext(context.Background()); id != "" {
		t.Errorf("expected empty id, got %q", id)
	}
	ctx := ContextWithCorrelationID(context.Background(), "corr-2")
	if id := CorrelationIDFromContext(ctx); id != "corr-2" {
		t.Errorf("expected corr-2, got %q", id)
	}
}
