package logging

import (
	"bytes"
	"io"
	"os"
	"strings"
	"sync"
	"testing"
)

func TestConsoleLogger_Output(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		log     func(l *ConsoleLogger)
		want    string
	}{
		{
			name:    "verbose enabled",
			verbose: true,
			log:     func(l *ConsoleLogger) { l.Verbose("batch %d/%d", 1, 3) },
			want:    "[VERBOSE] batch 1/3\n",
		},
		{
			name:    "verbose disabled",
			verbose: false,
			log:     func(l *ConsoleLogger) { l.Verbose("batch %d/%d", 1, 3) },
			want:    "",
		},
		{
			name: "info",
			log:  func(l *ConsoleLogger) { l.Info("Loaded %d verses", 31102) },
			want: "Loaded 31102 verses\n",
		},
		{
			name: "error",
			log:  func(l *ConsoleLogger) { l.Error("load failed: %s", "timeout") },
			want: "[ERROR] load failed: timeout\n",
		},
		{
			name: "no args keeps percent signs",
			log:  func(l *ConsoleLogger) { l.Info("100% done") },
			want: "100% done\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewWriterLogger(&buf, tt.verbose)
			tt.log(logger)
			if got := buf.String(); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestConsoleLogger_DefaultsToStderr(t *testing.T) {
	old := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	logger := NewConsoleLogger(false)
	logger.Info("to stderr")

	w.Close()
	os.Stderr = old

	var buf bytes.Buffer
	io.Copy(&buf, r)

	if buf.String() != "to stderr\n" {
		t.Errorf("Expected message on stderr, got %q", buf.String())
	}
	if logger.IsVerbose() {
		t.Error("Expected IsVerbose() to be false")
	}
}

func TestConsoleLogger_ConcurrentWritesDoNotInterleave(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, true)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			logger.Verbose("worker %d", n)
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 50 {
		t.Fatalf("Expected 50 lines, got %d", len(lines))
	}
	for _, line := range lines {
		if !strings.HasPrefix(line, "[VERBOSE] worker ") {
			t.Errorf("Interleaved or malformed line: %q", line)
		}
	}
}

func TestNullLogger_DiscardsEverything(t *testing.T) {
	logger := NewNullLogger()
	logger.Verbose("x %d", 1)
	logger.Info("y")
	logger.Error("z %s", "err")
}
