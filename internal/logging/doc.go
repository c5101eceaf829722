// Package logging provides concrete implementations of the bibleload.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes prefixed messages to stderr (or any io.Writer)
//   - NullLogger: Discards all messages (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
// Log output never goes to stdout, which parse reserves for row data.
package logging
