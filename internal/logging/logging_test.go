package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLogger_WritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, "info")

	log.Info("attempt started", "attempt_id", "abc", "items", 5)
	log.Debug("dropped")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1 (debug must be filtered): %q", len(lines), buf.String())
	}

	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("record is not JSON: %v", err)
	}
	if rec["msg"] != "attempt started" {
		t.Errorf("msg = %v, want %q", rec["msg"], "attempt started")
	}
	if rec["attempt_id"] != "abc" {
		t.Errorf("attempt_id = %v, want %q", rec["attempt_id"], "abc")
	}
}

func TestNew_EmptyPathDiscards(t *testing.T) {
	log, closeFn, err := New("", "debug")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	log.Info("nothing to see")
	if err := closeFn(); err != nil {
		t.Errorf("close: %v", err)
	}
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiz.log")
	log, closeFn, err := New(path, "debug")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	log.Debug("answer", "item_id", 3)
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"item_id":3`) {
		t.Errorf("log file missing record: %q", data)
	}
}
