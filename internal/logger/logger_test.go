package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestInitFallsBackToInfoOnUnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	InitWithOutput("chatty", "text", &buf)
	if Log.GetLevel() != logrus.InfoLevel {
		t.Fatalf("expected info level, got %s", Log.GetLevel())
	}
	Log.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected debug output to be filtered, got %q", buf.String())
	}
}

func TestInitJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	InitWithOutput("debug", "JSON", &buf)
	Log.WithField("invariant", "slot").Warn("bad slot")

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("expected json log line, got %q: %v", buf.String(), err)
	}
	if entry["invariant"] != "slot" {
		t.Fatalf("expected invariant field, got %+v", entry)
	}
	if !strings.Contains(entry["msg"].(string), "bad slot") {
		t.Fatalf("expected message, got %+v", entry)
	}
}
