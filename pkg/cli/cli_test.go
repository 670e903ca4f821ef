package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestConfigError(t *testing.T) {
	err := NewConfigError("server.listen_address", "missing port")
	if !strings.Contains(err.Error(), "server.listen_address") {
		t.Errorf("field missing from message: %s", err.Error())
	}

	bare := NewConfigError("", "failed to load config")
	if strings.Contains(bare.Error(), "in :") {
		t.Errorf("empty field rendered awkwardly: %s", bare.Error())
	}
}

func TestCommandError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := NewCommandError("run", cause)

	if !errors.Is(err, cause) {
		t.Error("CommandError does not unwrap to its cause")
	}
	if !strings.Contains(err.Error(), "run") {
		t.Errorf("command name missing: %s", err.Error())
	}
}

func TestSetupSignalHandler(t *testing.T) {
	ctx := SetupSignalHandler()
	if ctx == nil {
		t.Fatal("SetupSignalHandler() returned nil context")
	}

	select {
	case <-ctx.Done():
		t.Error("context canceled before any signal was delivered")
	default:
	}
}

func TestNewFormatter(t *testing.T) {
	tests := []struct {
		format    OutputFormat
		wantError bool
	}{
		{FormatText, false},
		{FormatJSON, false},
		{"", false},
		{"yaml", true},
	}

	for _, tt := range tests {
		_, err := NewFormatter(tt.format)
		if tt.wantError && err == nil {
			t.Errorf("NewFormatter(%q): expected error", tt.format)
		}
		if !tt.wantError && err != nil {
			t.Errorf("NewFormatter(%q): unexpected error %v", tt.format, err)
		}
	}
}

func TestJSONFormatter_FormatTo(t *testing.T) {
	var buf bytes.Buffer
	f := &JSONFormatter{Indent: true}

	data := map[string]interface{}{"status": "approved", "amount": 4500.0}
	if err := f.FormatTo(&buf, data); err != nil {
		t.Fatal(err)
	}

	var out map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if out["status"] != "approved" {
		t.Errorf("unexpected output: %v", out)
	}
}
