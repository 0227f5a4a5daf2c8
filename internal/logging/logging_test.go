package logging

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

type testStringer string

func (s testStringer) String() string { return string(s) }

func TestInitAndLoggingToFile(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "nested", "longctx.log")

	if err := Init(logPath, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	t.Cleanup(func() {
		_ = Close()
		SetDebug(false)
	})

	LogEvent("hello %s", "world")
	LogDebug("hidden %s", "line")
	SetDebug(true)
	LogDebug("visible %s", "line")
	_ = Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "hello world") {
		t.Fatalf("expected LogEvent content, got: %s", content)
	}
	if strings.Contains(content, "hidden line") {
		t.Fatalf("debug line logged while debug disabled: %s", content)
	}
	if !strings.Contains(content, "[DEBUG] visible line") {
		t.Fatalf("expected LogDebug content, got: %s", content)
	}
}

func TestBuildRequestMessageDefaults(t *testing.T) {
	msg := buildRequestMessage(" get ", " ", 200, 1500*time.Microsecond, map[string]any{"ok": true})
	if !strings.Contains(msg, "[GET]") {
		t.Fatalf("expected uppercased method, got: %s", msg)
	}
	if !strings.Contains(msg, "path=/ ") {
		t.Fatalf("expected default path, got: %s", msg)
	}
	if !strings.Contains(msg, "status=200") {
		t.Fatalf("expected status, got: %s", msg)
	}
	if !strings.Contains(msg, "elapsed=1.5ms") {
		t.Fatalf("expected elapsed, got: %s", msg)
	}
	if !strings.Contains(msg, "detail={\"ok\":true}") {
		t.Fatalf("expected detail json, got: %s", msg)
	}

	if msg := buildRequestMessage("", "/api/chart", 404, 0, nil); strings.Contains(msg, "detail=") || !strings.Contains(msg, "[UNKNOWN]") {
		t.Fatalf("unexpected message without detail: %s", msg)
	}
}

func TestFormatPayloadVariants(t *testing.T) {
	if got := formatPayload(nil); got != "null" {
		t.Fatalf("nil payload: %s", got)
	}
	if got := formatPayload(" "); got != `""` {
		t.Fatalf("empty string payload: %s", got)
	}
	if got := formatPayload([]byte("hi")); got != "hi" {
		t.Fatalf("byte payload: %s", got)
	}
	if got := formatPayload(testStringer("ok")); got != "ok" {
		t.Fatalf("stringer payload: %s", got)
	}
}

func TestInitDiscard(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	if err := Init("", false); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	LogEvent("discard")
	if buf.Len() != 0 {
		t.Fatalf("expected log output discarded, got: %s", buf.String())
	}
	log.SetOutput(os.Stderr)
}
