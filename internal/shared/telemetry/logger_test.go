package telemetry

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"testing"
)

func captureStdout(t *testing.T, fn func()) []byte {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()
	_ = w.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	return out
}

func TestInfoWritesStructuredLine(t *testing.T) {
	out := captureStdout(t, func() {
		Info("weather.lookup", map[string]any{"city": "Pune", "cached": true})
	})

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(out), &entry); err != nil {
		t.Fatalf("invalid json %q: %v", out, err)
	}
	if entry["level"] != "info" || entry["msg"] != "weather.lookup" {
		t.Fatalf("unexpected entry %v", entry)
	}
	if entry["city"] != "Pune" || entry["cached"] != true {
		t.Fatalf("missing fields in %v", entry)
	}
	if _, ok := entry["ts"].(string); !ok {
		t.Fatalf("expected ts string, got %v", entry["ts"])
	}
}

func TestErrorLevel(t *testing.T) {
	out := captureStdout(t, func() {
		Error("http.error", nil)
	})
	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(out), &entry); err != nil {
		t.Fatalf("invalid json %q: %v", out, err)
	}
	if entry["level"] != "error" {
		t.Fatalf("expected error level, got %v", entry["level"])
	}
}
