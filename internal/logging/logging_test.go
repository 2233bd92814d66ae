package logging

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTraceWritesJSONWhenEnabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "launcher.log")
	Configure(path)
	t.Cleanup(func() {
		SetTraceEnabled(false)
		Configure("")
	})

	Trace("skipped.event", nil)
	SetTraceEnabled(true)
	Trace("mode.enter", map[string]interface{}{"mode": "search"})
	Error(errors.New("boom"))
	Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	content := string(data)
	if strings.Contains(content, "skipped.event") {
		t.Fatalf("trace written while disabled: %s", content)
	}
	if !strings.Contains(content, `"event":"mode.enter"`) {
		t.Fatalf("expected trace entry, got %s", content)
	}
	if !strings.Contains(content, "boom") {
		t.Fatalf("expected error line, got %s", content)
	}
}

func TestConfigureEmptyPathUsesDefault(t *testing.T) {
	Configure("")
	if Path() != defaultLogFile {
		t.Fatalf("expected %q, got %q", defaultLogFile, Path())
	}
}
