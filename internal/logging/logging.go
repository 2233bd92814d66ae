package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultLogFile = "tmux-popup-launcher.log"

	maxSizeMB  = 5
	maxBackups = 3
	maxAgeDays = 14
)

var (
	traceMu      sync.Mutex
	traceEnabled bool
	logPath      = defaultLogFile
	writer       io.WriteCloser
	errLogger    *log.Logger
)

// Error writes errors to the shared log file.
func Error(err error) {
	if err == nil {
		return
	}
	traceMu.Lock()
	defer traceMu.Unlock()
	ensureWriterLocked()
	errLogger.Println(err)
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	traceMu.Lock()
	traceEnabled = enabled
	traceMu.Unlock()
}

// TraceEnabled reports whether trace entries are being written.
func TraceEnabled() bool {
	traceMu.Lock()
	defer traceMu.Unlock()
	return traceEnabled
}

// Trace appends a structured JSON entry to the shared log when tracing is enabled.
func Trace(event string, payload interface{}) {
	traceMu.Lock()
	defer traceMu.Unlock()
	if !traceEnabled {
		return
	}

	entry := struct {
		Time    time.Time   `json:"time"`
		Event   string      `json:"event"`
		Payload interface{} `json:"payload,omitempty"`
	}{
		Time:    time.Now().UTC(),
		Event:   event,
		Payload: payload,
	}

	ensureWriterLocked()
	enc := json.NewEncoder(writer)
	if err := enc.Encode(entry); err != nil {
		fmt.Fprintf(os.Stderr, "trace encoding failed: %v\n", err)
	}
}

// Configure sets the log destination. Empty values fall back to the default
// path. Directories are created automatically when missing. The file is
// rotated once it grows past a few megabytes.
func Configure(path string) {
	traceMu.Lock()
	defer traceMu.Unlock()
	closeWriterLocked()
	if strings.TrimSpace(path) == "" {
		logPath = defaultLogFile
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		logPath = defaultLogFile
		return
	}
	logPath = path
}

// Path returns the current log destination.
func Path() string {
	traceMu.Lock()
	defer traceMu.Unlock()
	return logPath
}

// Close flushes and releases the log file.
func Close() {
	traceMu.Lock()
	defer traceMu.Unlock()
	closeWriterLocked()
}

func ensureWriterLocked() {
	if writer != nil {
		return
	}
	writer = &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
		LocalTime:  true,
	}
	errLogger = log.New(writer, "", log.LstdFlags)
}

func closeWriterLocked() {
	if writer == nil {
		return
	}
	if err := writer.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "closing log failed: %v\n", err)
	}
	writer = nil
	errLogger = nil
}
