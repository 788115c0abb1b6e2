package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestZeroLoggerPrintf(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false)
	l.Printf("Hello, %s", "Selene")
	var event map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &event); err != nil {
		t.Fatalf("wanted json event, got %q: %v", buf.String(), err)
	}
	switch {
	case event["level"] != "info":
		t.Errorf("wanted info level, got %v", event["level"])
	case event["message"] != "Hello, Selene":
		t.Errorf("wanted message, got %v", event["message"])
	case event["time"] == nil:
		t.Errorf("wanted timestamp")
	}
}

func TestZeroLoggerErrorf(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false)
	l.Errorf("code %d", 7)
	var event map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &event); err != nil {
		t.Fatalf("wanted json event, got %q: %v", buf.String(), err)
	}
	switch {
	case event["level"] != "error":
		t.Errorf("wanted error level, got %v", event["level"])
	case event["message"] != "code 7":
		t.Errorf("wanted message, got %v", event["message"])
	}
}

func TestZeroLoggerWith(t *testing.T) {
	var buf bytes.Buffer
	parent := New(&buf, false)
	child := parent.With("session", "abc")
	child.Printf("joined")
	parent.Printf("other")
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if want, got := 2, len(lines); want != got {
		t.Fatalf("wanted %v lines, got %v: %q", want, got, buf.String())
	}
	var childEvent, parentEvent map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &childEvent); err != nil {
		t.Fatalf("unwanted error: %v", err)
	}
	if err := json.Unmarshal([]byte(lines[1]), &parentEvent); err != nil {
		t.Fatalf("unwanted error: %v", err)
	}
	if want, got := "abc", childEvent["session"]; want != got {
		t.Errorf("wanted child event to have session field %v, got %v", want, got)
	}
	if _, ok := parentEvent["session"]; ok {
		t.Errorf("wanted parent event to not have session field")
	}
}

func TestZeroLoggerConsole(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, true)
	l.Printf("placed %v tiles", 3)
	got := buf.String()
	switch {
	case !strings.Contains(got, "placed 3 tiles"):
		t.Errorf("wanted message in console output, got %q", got)
	case strings.HasPrefix(got, "{"):
		t.Errorf("wanted console output to not be json, got %q", got)
	}
}
