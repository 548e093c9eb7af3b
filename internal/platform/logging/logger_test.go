package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
)

func TestLogger_WritesKeyValueFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONWriter(&buf, LevelInfo).Named("leagueapi")

	logger.WarnContext(context.Background(), "read failed", "resource", "standings", "error", errors.New("boom"))

	var line map[string]any
	if err := sonic.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	if line["msg"] != "read failed" {
		t.Fatalf("unexpected msg: %v", line["msg"])
	}
	if line["component"] != "leagueapi" {
		t.Fatalf("unexpected component: %v", line["component"])
	}
	if line["resource"] != "standings" {
		t.Fatalf("unexpected resource: %v", line["resource"])
	}
	if line["error"] != "boom" {
		t.Fatalf("unexpected error field: %v", line["error"])
	}
	if _, ok := line["trace_id"]; ok {
		t.Fatalf("did not expect trace_id without a span")
	}
}

func TestLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONWriter(&buf, LevelWarn)

	logger.Info("hidden")
	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected no output below warn, got %q", buf.String())
	}

	logger.Error("shown", "odd")
	if !strings.Contains(buf.String(), `"odd":null`) {
		t.Fatalf("expected dangling key to be kept, got %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		"WARNING": LevelWarn,
		" error ": LevelError,
		"":        LevelInfo,
		"verbose": LevelInfo,
	}
	for raw, want := range cases {
		if got := ParseLevel(raw); got != want {
			t.Fatalf("ParseLevel(%q) = %s, want %s", raw, got, want)
		}
	}
}

func TestNilLoggerFallsBackToDefault(t *testing.T) {
	var logger *Logger
	logger.Info("no panic")
	if logger.With("k", "v") == nil {
		t.Fatalf("expected nop logger from nil receiver")
	}
}
