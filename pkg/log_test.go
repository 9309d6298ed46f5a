package bumpversion

import (
	"bytes"
	"errors"
	"testing"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, false)

	l.Error(errors.New("boom"))
	l.Warn("nothing to sync")
	l.WithField("file", "a.json").WithField("reason", "x").Info("skipped")
	l.Debug("hidden")

	want := "Error: boom\nNote: nothing to sync\nskipped file=a.json reason=x\n"
	if got := buf.String(); got != want {
		t.Errorf("log output = %q, expected %q", got, want)
	}
}

func TestNewLoggerVerbose(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, true).Debug("shown")
	if got := buf.String(); got != "shown\n" {
		t.Errorf("verbose log output = %q, expected %q", got, "shown\n")
	}
}
