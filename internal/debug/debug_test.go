package debug

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLog_SetOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(nil) })

	Log("window %q activated", "files")

	if got := buf.String(); !strings.Contains(got, `window "files" activated`) {
		t.Errorf("log output = %q", got)
	}
	if !Enabled() {
		t.Error("Enabled() = false, want true")
	}
}

func TestLog_Disabled(t *testing.T) {
	SetOutput(nil)
	Log("dropped %d", 1)
	if Enabled() {
		t.Error("Enabled() = true, want false")
	}
}

func TestInit_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "desk.log")
	if err := Init(path); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	Log("hello")
	if err := Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("file contents = %q", data)
	}
}
