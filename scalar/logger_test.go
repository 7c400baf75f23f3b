package scalar

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	MaxDFix64.Add(DFix64FromRaw(1))
	if !strings.Contains(buf.String(), "saturat") {
		t.Errorf("expected a saturation record, got %q", buf.String())
	}

	buf.Reset()
	SetLogger(nil)
	MaxDFix64.Add(DFix64FromRaw(1))
	if buf.Len() != 0 {
		t.Errorf("nop logger wrote %q", buf.String())
	}
}
