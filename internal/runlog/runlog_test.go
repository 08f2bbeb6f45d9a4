package runlog

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewWritesJSONToProvidedWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := New("info", &buf)
	logger.Info("hello", "key", "value")

	out := buf.String()
	if !strings.Contains(out, `"msg":"hello"`) {
		t.Fatalf("output = %s, want a JSON line with msg=hello", out)
	}
	if !strings.Contains(out, `"key":"value"`) {
		t.Fatalf("output = %s, want the key=value attribute", out)
	}
}

func TestNewDebugLevelSuppressesNothingBelowDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := New("debug", &buf)
	logger.Debug("verbose detail")
	if !strings.Contains(buf.String(), "verbose detail") {
		t.Fatal("debug-level logger should emit Debug() calls")
	}
}

func TestNewInfoLevelSuppressesDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := New("info", &buf)
	logger.Debug("should not appear")
	if buf.Len() != 0 {
		t.Fatalf("output = %s, want nothing written for a Debug() call at info level", buf.String())
	}
}

func TestNewUnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := New("bogus", &buf)
	logger.Info("still logs")
	if !strings.Contains(buf.String(), "still logs") {
		t.Fatal("unknown level should default to info, not suppress Info() calls")
	}
}
