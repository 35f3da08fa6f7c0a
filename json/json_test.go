package json

import (
	"bytes"
	stdjson "encoding/json"
	"strings"
	"testing"
)

type testReport struct {
	Output  string   `json:"output"`
	Filter  string   `json:"filter" default:"lanczos3"`
	Width   int      `json:"width"`
	Notes   []string `json:"notes" default:"[]"`
	Skipped bool     `json:"skipped,omitempty"`
}

func TestEncodeAppliesDefaults(t *testing.T) {
	report := &testReport{Output: "a.png", Width: 10}

	var buf bytes.Buffer
	if err := NewEncoder(&buf).Encode(report); err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	if report.Filter != "lanczos3" {
		t.Fatalf("expected default Filter=lanczos3, got %q", report.Filter)
	}

	var decoded testReport
	if err := stdjson.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("encoded JSON should be valid, got error: %v", err)
	}
	if decoded.Filter != "lanczos3" || decoded.Output != "a.png" || decoded.Width != 10 {
		t.Fatalf("unexpected decoded value %+v", decoded)
	}
	if !strings.Contains(buf.String(), `"notes": []`) {
		t.Fatalf("expected nil slice encoded as [], got %s", buf.String())
	}
}

func TestEncodeKeepsExplicitValues(t *testing.T) {
	report := &testReport{Output: "b.jpg", Filter: "nearest", Notes: []string{"x"}}

	var buf bytes.Buffer
	if err := NewEncoder(&buf).Encode(report); err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	if report.Filter != "nearest" {
		t.Fatalf("default overwrote Filter: %q", report.Filter)
	}
	if !strings.Contains(buf.String(), `"x"`) {
		t.Fatalf("notes missing: %s", buf.String())
	}
}

func TestEncoderIndents(t *testing.T) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf).Encode(&testReport{Output: "c.gif", Notes: []string{"x"}}); err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "\n  \"output\": \"c.gif\"") {
		t.Fatalf("expected indented output, got %s", out)
	}
	if !strings.HasSuffix(out, "}\n") {
		t.Fatalf("expected trailing newline, got %q", out)
	}
	if strings.Contains(out, "skipped") {
		t.Fatalf("omitempty field was encoded: %s", out)
	}
}
