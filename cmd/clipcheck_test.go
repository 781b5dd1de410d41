package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestRunClipcheck_RoundTrip(t *testing.T) {
	var stored string
	write := func(s string) error { stored = s; return nil }
	read := func() (string, error) { return stored, nil }

	var out bytes.Buffer
	if err := runClipcheck(&out, write, read); err != nil {
		t.Fatalf("runClipcheck() error = %v", err)
	}
	if !strings.Contains(out.String(), "Clipboard OK") {
		t.Errorf("expected success message, got:\n%s", out.String())
	}
}

func TestRunClipcheck_WriteFails(t *testing.T) {
	write := func(string) error { return errors.New("no display") }
	read := func() (string, error) { return "", nil }

	err := runClipcheck(&bytes.Buffer{}, write, read)
	if err == nil || !strings.Contains(err.Error(), "no display") {
		t.Errorf("expected write error, got %v", err)
	}
}

func TestRunClipcheck_Mismatch(t *testing.T) {
	write := func(string) error { return nil }
	read := func() (string, error) { return "something else", nil }

	if err := runClipcheck(&bytes.Buffer{}, write, read); err == nil {
		t.Error("expected mismatch error")
	}
}
