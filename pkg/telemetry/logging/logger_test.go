package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_Formats(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantError bool
	}{
		{"defaults", Config{}, false},
		{"json", Config{Level: "debug", Format: "json"}, false},
		{"text", Config{Level: "warn", Format: "text"}, false},
		{"bad level", Config{Level: "loud"}, true},
		{"bad format", Config{Format: "xml"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.cfg.Writer = &buf

			logger, err := New(tt.cfg)
			if tt.wantError {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			logger.Info("hello")
			if buf.Len() == 0 {
				t.Error("nothing written")
			}
		})
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "warn", Writer: &buf})
	if err != nil {
		t.Fatal(err)
	}

	logger.Info("invisible")
	if buf.Len() != 0 {
		t.Errorf("info logged below warn level: %s", buf.String())
	}

	logger.Warn("visible")
	if buf.Len() == 0 {
		t.Error("warn not logged")
	}
}

func TestNew_RedactsPII(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Writer: &buf, RedactPII: true})
	if err != nil {
		t.Fatal(err)
	}

	logger.Info("processing claim",
		"narrative", "Call me at 555-123-4567 or jane@example.com",
		"api_key", "sk-abcdef123456",
	)

	var record map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}

	narrative, _ := record["narrative"].(string)
	if strings.Contains(narrative, "555-123-4567") {
		t.Errorf("phone number not redacted: %q", narrative)
	}
	if strings.Contains(narrative, "jane@example.com") {
		t.Errorf("email not redacted: %q", narrative)
	}

	key, _ := record["api_key"].(string)
	if strings.Contains(key, "abcdef") {
		t.Errorf("sensitive key value not redacted: %q", key)
	}
}

func TestRedactor_RedactString(t *testing.T) {
	r := NewRedactor()

	tests := []struct {
		name  string
		input string
		leak  string
	}{
		{"api key", "using sk-proj-abc123 for auth", "abc123"},
		{"bearer", "Authorization: Bearer eyJhbGciOi", "eyJhbGciOi"},
		{"ssn", "my ssn is 123-45-6789", "123-45-6789"},
		{"phone", "call (555) 123-4567 anytime", "123-4567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := r.RedactString(tt.input)
			if strings.Contains(out, tt.leak) {
				t.Errorf("RedactString(%q) = %q, leaked %q", tt.input, out, tt.leak)
			}
		})
	}
}

func TestRedactor_RedactAttr_NonString(t *testing.T) {
	r := NewRedactor()

	a := r.RedactAttr(slog.Int("iterations", 7))
	if a.Value.Kind() != slog.KindInt64 || a.Value.Int64() != 7 {
		t.Errorf("non-string attr modified: %v", a)
	}
}
