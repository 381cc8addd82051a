package logger

import (
	"bytes"
	"io"
	"os"
	"sync"
	"testing"
)

func reset() {
	SetVerbose(false)
	SetOutput(os.Stderr)
}

func TestSetVerbose(t *testing.T) {
	defer reset()

	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected verbose to be false initially")
	}

	SetVerbose(true)
	if !IsVerbose() {
		t.Error("expected verbose to be true after SetVerbose(true)")
	}

	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected verbose to be false after SetVerbose(false)")
	}
}

func TestDebug_WhenVerbose(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Debug("test message %s", "arg")

	if got := buf.String(); got != "[DEBUG] test message arg\n" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestDebug_WhenNotVerbose(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Debug("test message")
	Info("test message")
	Warn("test message")
	For("persister").Warn("test message")

	if buf.Len() > 0 {
		t.Errorf("expected no output when verbose is disabled, got %q", buf.String())
	}
}

func TestSection(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Section("Save")

	if got := buf.String(); got != "\n=== Save ===\n" {
		t.Errorf("unexpected section output: %q", got)
	}
}

func TestInfo(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Info("wrote %d bytes", 42)

	if got := buf.String(); got != "[INFO] wrote 42 bytes\n" {
		t.Errorf("unexpected info output: %q", got)
	}
}

func TestWarn(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Warn("Open file url error")

	if got := buf.String(); got != "[WARN] Open file url error\n" {
		t.Errorf("unexpected warn output: %q", got)
	}
}

func TestComponent(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	log := For("persister")
	log.Debug("a")
	log.Info("b %d", 1)
	log.Warn("c")

	want := "[DEBUG] persister: a\n[INFO] persister: b 1\n[WARN] persister: c\n"
	if got := buf.String(); got != want {
		t.Errorf("unexpected component output: %q", got)
	}
}

func TestConcurrentAccess(t *testing.T) {
	defer reset()

	SetOutput(io.Discard)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			SetVerbose(true)
			Debug("concurrent %d", i)
			For("worker").Info("concurrent %d", i)
			IsVerbose()
			SetVerbose(false)
		}()
	}
	wg.Wait()
}
