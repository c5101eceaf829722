package logging

import "github.com/vvka-141/bibleload/pkg/bibleload"

var _ bibleload.Logger = (*NullLogger)(nil)

// NullLogger drops everything. Loader, reader and connector tests pass it
// where batch progress and server notices would only be noise.
type NullLogger struct{}

// NewNullLogger returns a NullLogger.
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

func (l *NullLogger) Verbose(format string, args ...interface{}) {}

func (l *NullLogger) Info(format string, args ...interface{}) {}

func (l *NullLogger) Error(format string, args ...interface{}) {}
