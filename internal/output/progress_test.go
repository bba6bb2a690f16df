package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestSpinnerNonTTYPrintsMessageOnce(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner("computing feasible pizzas")
	s.SetWriter(&buf)

	s.Start()
	s.Start() // second Start is a no-op
	s.Stop()

	got := buf.String()
	if got != "computing feasible pizzas...\n" {
		t.Errorf("non-TTY spinner output = %q, want single message line", got)
	}
}

func TestSpinnerStopWithoutStart(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner("idle")
	s.SetWriter(&buf)

	s.Stop()

	if buf.Len() != 0 {
		t.Errorf("Stop without Start wrote %q, want nothing", buf.String())
	}
}

func TestWriterIsTTYFalseForBuffer(t *testing.T) {
	if writerIsTTY(&bytes.Buffer{}) {
		t.Error("writerIsTTY(*bytes.Buffer) = true, want false")
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner("closure")
	s.SetWriter(&buf)

	s.Start()
	s.Stop()
	s.Stop()

	if n := strings.Count(buf.String(), "closure"); n != 1 {
		t.Errorf("message printed %d times, want 1", n)
	}
}
