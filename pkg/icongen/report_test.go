package icongen

import (
	"bytes"
	"testing"
)

func TestReporterPlain(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, false)

	r.Heading("Title")
	r.Step("Creating %s (%s)...", "a.png", "20x20")
	r.Success("done %d", 12)
	r.Failure("broke")

	want := "Title\n==============================\nCreating a.png (20x20)...\ndone 12\nbroke\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestReporterColor(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, true)
	r.success.EnableColor()

	r.Success("ok")
	if !bytes.Contains(buf.Bytes(), []byte("\x1b[32m")) {
		t.Errorf("expected green escape sequence, got %q", buf.String())
	}
}
