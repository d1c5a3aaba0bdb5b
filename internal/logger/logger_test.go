package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func decodeLines(t *testing.T, b []byte) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, ln := range bytes.Split(bytes.TrimSpace(b), []byte("\n")) {
		if len(bytes.TrimSpace(ln)) == 0 {
			continue
		}
		m := map[string]any{}
		if err := json.Unmarshal(ln, &m); err != nil {
			t.Fatalf("json: %v: %s", err, ln)
		}
		delete(m, "time")
		delete(m, "duration_ms")
		out = append(out, m)
	}
	return out
}

func TestStepJSON(t *testing.T) {
	var buf bytes.Buffer
	rt := false
	l := New(Options{Out: &buf, Format: "json", Level: "debug", ReportTimestamp: &rt})
	l = l.With("command", "linefilter")

	st := StartStep(l, "pipeline_run", "text", "lines_in", 3)
	st.OK(false, "lines_out", 2)

	lines := decodeLines(t, buf.Bytes())
	if len(lines) != 2 {
		t.Fatalf("expected 2 events, got %d: %s", len(lines), buf.String())
	}
	want := []map[string]any{
		{"level": "debug", "msg": "pipeline_run", "command": "linefilter", "status": "started", "action": "pipeline_run", "resource": "text", "lines_in": float64(3)},
		{"level": "debug", "msg": "pipeline_run", "command": "linefilter", "status": "ok", "action": "pipeline_run", "resource": "text", "changed": false, "lines_out": float64(2)},
	}
	for i := range want {
		for k, v := range want[i] {
			if lines[i][k] != v {
				t.Fatalf("event %d key %q: got %v want %v (%v)", i, k, lines[i][k], v, lines[i])
			}
		}
	}
}

func TestStepFailReturnsErrorAndLogs(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Out: &buf, Format: "json", Level: "warn"})
	cause := errors.New("boom")
	if got := StartStep(l, "write", "stdout").Fail(cause); got != cause {
		t.Fatalf("Fail must return the error unchanged")
	}
	lines := decodeLines(t, buf.Bytes())
	if len(lines) != 1 {
		t.Fatalf("expected only the failure at warn level, got %d: %s", len(lines), buf.String())
	}
	if lines[0]["status"] != "failed" || lines[0]["error"] != "boom" {
		t.Fatalf("unexpected failure event: %v", lines[0])
	}
}

func TestDefaultLevelIsWarn(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Out: &buf, Format: "json"})
	l.Info("quiet")
	l.Debug("quieter")
	if buf.Len() != 0 {
		t.Fatalf("expected info/debug suppressed by default, got %q", buf.String())
	}
	l.Warn("loud")
	if !strings.Contains(buf.String(), "loud") {
		t.Fatalf("expected warn to be written, got %q", buf.String())
	}
}

func TestAutoFormatIsJSONForNonTTY(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Out: &buf, Level: "info"})
	l.Info("hello", "k", "v")
	var m map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &m); err != nil {
		t.Fatalf("expected JSON output for a non-TTY writer: %v (%q)", err, buf.String())
	}
}

func TestContextRoundTrip(t *testing.T) {
	if _, ok := FromContext(context.Background()).(nopLogger); !ok {
		t.Fatalf("expected nop logger from empty context")
	}
	var buf bytes.Buffer
	l := New(Options{Out: &buf, Format: "json", Level: "info"})
	ctx := WithContext(context.Background(), l)
	FromContext(ctx).Info("from_ctx")
	if !strings.Contains(buf.String(), "from_ctx") {
		t.Fatalf("expected logger from context to write, got %q", buf.String())
	}
}
