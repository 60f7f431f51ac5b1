package logging

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		spec      string
		wantLevel string
		wantJSON  bool
	}{
		{"debug", "debug", false},
		{" warn ", "warn", false},
		{"json", "info", true},
		{"json:", "info", true},
		{"json:trace", "trace", true},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			level, jsonFormat := ParseLevel(tt.spec)
			if level != tt.wantLevel || jsonFormat != tt.wantJSON {
				t.Errorf("ParseLevel(%q) = %q, %v; want %q, %v", tt.spec, level, jsonFormat, tt.wantLevel, tt.wantJSON)
			}
		})
	}
}

func TestResolveLevel(t *testing.T) {
	tests := []struct {
		name       string
		cli, env   string
		wantSpec   string
		wantSource string
	}{
		{"cli wins", "debug", "error", "debug", "CLI --log-level"},
		{"env fallback", "", "error", "error", "ICONSET_LOG_LEVEL"},
		{"default", "", "", DefaultLevel, "default"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, source := ResolveLevel(tt.cli, tt.env)
			if spec != tt.wantSpec || source != tt.wantSource {
				t.Errorf("ResolveLevel(%q, %q) = %q, %q", tt.cli, tt.env, spec, source)
			}
		})
	}
}

func TestNewLoggerPrefixesTextOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("iconset", "info", &buf)
	logger.Info("hello", "size", 20)

	out := buf.String()
	if !strings.HasPrefix(out, Prefix) {
		t.Fatalf("expected prefix %q, got %q", Prefix, out)
	}
	if !strings.Contains(out, "hello") || !strings.Contains(out, "size=20") {
		t.Errorf("unexpected log line: %q", out)
	}
}

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("iconset", "json:debug", &buf)
	logger.Debug("probe", "bin", "convert")

	out := buf.String()
	if strings.HasPrefix(out, Prefix) {
		t.Errorf("JSON output must not be prefixed: %q", out)
	}
	if !strings.Contains(out, `"@message":"probe"`) {
		t.Errorf("expected JSON message, got %q", out)
	}
}

func TestNewLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("iconset", "warn", &buf)
	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("info line should be filtered at warn level, got %q", buf.String())
	}
}

func TestPrefixWriter(t *testing.T) {
	var buf bytes.Buffer
	pw := NewPrefixWriter("> ", &buf)

	chunks := []string{"one\ntw", "o\n", "three"}
	for _, c := range chunks {
		n, err := pw.Write([]byte(c))
		if err != nil {
			t.Fatalf("write %q: %v", c, err)
		}
		if n != len(c) {
			t.Fatalf("write %q returned %d", c, n)
		}
	}

	if got, want := buf.String(), "> one\n> two\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	if _, err := pw.Write([]byte("\n")); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "> one\n> two\n> three\n"; got != want {
		t.Errorf("after flush got %q, want %q", got, want)
	}
}

func TestValidateLevel(t *testing.T) {
	for _, ok := range []string{"trace", "debug", "info", "warn", "error", "off", "WARN", "json", "json:debug"} {
		if err := ValidateLevel(ok); err != nil {
			t.Errorf("ValidateLevel(%q) = %v, want nil", ok, err)
		}
	}
	for _, bad := range []string{"verbose", "json:loud", "", "inf0"} {
		if err := ValidateLevel(bad); err == nil {
			t.Errorf("ValidateLevel(%q) should fail", bad)
		}
	}
}

func TestOpenOutputDefaultsToStderr(t *testing.T) {
	w, closeFn, err := OpenOutput("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w != os.Stderr {
		t.Errorf("writer = %v, want stderr", w)
	}
	if err := closeFn(); err != nil {
		t.Errorf("close: %v", err)
	}
}

func TestOpenOutputAppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "iconset.log")
	for _, line := range []string{"first\n", "second\n"} {
		w, closeFn, err := OpenOutput(path)
		if err != nil {
			t.Fatalf("open: %v", err)
		}
		if _, err := io.WriteString(w, line); err != nil {
			t.Fatal(err)
		}
		if err := closeFn(); err != nil {
			t.Fatalf("close: %v", err)
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "first\nsecond\n" {
		t.Errorf("log file = %q", data)
	}
}

func TestOpenOutputMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", "iconset.log")

	w, closeFn, err := OpenOutput(path)
	if err == nil {
		t.Fatal("expected error for log path in a missing directory")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
	if w != nil {
		t.Errorf("writer should be nil on error, got %v", w)
	}
	if closeFn == nil || closeFn() != nil {
		t.Error("close func must be a non-nil no-op on error")
	}
}
