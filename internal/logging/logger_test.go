package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitializeSilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")
	t.Cleanup(func() { SetLogger(nil) })

	if err := Initialize("", ""); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if GetLogger().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("logger should be silent when no level is set")
	}
}

func TestInitializeWritesToFile(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })
	path := filepath.Join(t.TempDir(), "stepper.log")

	if err := Initialize("debug", path); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	LogCommit("tap", 1, 2)
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "Value committed") {
		t.Errorf("log file = %q, want commit entry", data)
	}
}

func TestInitializeFromEnv(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })
	t.Setenv(LogLevelEnvVar, "warn")
	t.Setenv(LogFileEnvVar, filepath.Join(t.TempDir(), "env.log"))

	if err := Initialize("", ""); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	core := GetLogger().Core()
	if core.Enabled(zapcore.InfoLevel) || !core.Enabled(zapcore.WarnLevel) {
		t.Error("logger should be enabled at warn and above only")
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"INFO":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"verbose": zapcore.InfoLevel,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestDomainHelpers(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })

	LogCommit("edit", 3, 7)
	LogRejected("abc", "parse", false, 3)
	LogRepeat("increment", "stop", 10)

	entries := logs.AllUntimed()
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	if entries[0].ContextMap()["new"] != int64(7) {
		t.Errorf("commit entry fields = %v", entries[0].ContextMap())
	}
	if entries[1].ContextMap()["input"] != "abc" {
		t.Errorf("rejected entry fields = %v", entries[1].ContextMap())
	}
	if entries[2].Message != "Repeat stop" {
		t.Errorf("repeat entry message = %q", entries[2].Message)
	}
}
