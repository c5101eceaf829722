package tui

import (
	"bytes"
	"os"
	"testing"
)

func clearModeEnv(t *testing.T) {
	t.Helper()
	t.Setenv("BIBLELOAD_PLAIN", "")
	t.Setenv("CI", "")
	t.Setenv("NO_COLOR", "")
}

func TestDetectMode_EnvOverrides(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"BIBLELOAD_PLAIN", "BIBLELOAD_PLAIN", "1"},
		{"CI", "CI", "true"},
		{"NO_COLOR", "NO_COLOR", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearModeEnv(t)
			t.Setenv(tt.key, tt.val)

			if got := DetectMode(os.Stdout); got != ModePlain {
				t.Errorf("DetectMode() = %d, want ModePlain", got)
			}
		})
	}
}

func TestDetectMode_NonFileWriter(t *testing.T) {
	clearModeEnv(t)

	if got := DetectMode(&bytes.Buffer{}); got != ModePlain {
		t.Errorf("DetectMode(buffer) = %d, want ModePlain", got)
	}
}

func TestDetectMode_NoTerminal(t *testing.T) {
	clearModeEnv(t)

	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if got := DetectMode(f); got != ModePlain {
		t.Errorf("DetectMode(file) = %d, want ModePlain", got)
	}
}
