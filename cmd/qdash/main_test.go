package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/quantum-dash/internal/config"
)

func TestRuntimeConfig(t *testing.T) {
	qd := config.DefaultQuantumDash()

	rt := runtimeConfig(settings{Seed: 9}, qd)
	if rt.ScreenW != 800 || rt.ScreenH != 600 || rt.TickRate != 60 || rt.Seed != 9 {
		t.Errorf("unexpected runtime config %+v", rt)
	}

	rt = runtimeConfig(settings{FPS: 120}, qd)
	if rt.TickRate != 120 {
		t.Errorf("--fps should override the config tick rate, got %d", rt.TickRate)
	}
	if rt.Seed == 0 {
		t.Error("a zero seed should be replaced by a time-based one")
	}
}

func TestNewLoggerCarriesSession(t *testing.T) {
	var buf bytes.Buffer
	logger, closeLog, err := newLogger(settings{LogLevel: "debug"}, &buf)
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	defer closeLog()

	logger.Debug("hello")
	out := buf.String()
	if !strings.Contains(out, "hello") || !strings.Contains(out, "session=") || !strings.Contains(out, "qdash") {
		t.Errorf("log line missing fields: %q", out)
	}
}

func TestNewLoggerRejectsBadLevel(t *testing.T) {
	if _, _, err := newLogger(settings{LogLevel: "loud"}, &bytes.Buffer{}); err == nil {
		t.Error("expected an error for an unknown level")
	}
}

func TestNewLoggerFile(t *testing.T) {
	path := t.TempDir() + "/qdash.log"
	logger, closeLog, err := newLogger(settings{LogLevel: "info", LogFile: path}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	logger.Info("to file")
	if err := closeLog(); err != nil {
		t.Errorf("close failed: %v", err)
	}
}
