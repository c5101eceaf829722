package bibleload

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	res, err := loader.Load(ctx, pool, rows, mapping)
//	if errors.Is(err, bibleload.ErrUnmappedBook) {
//	    // Add the book to book-map.json and rerun
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidPattern indicates an extraction pattern is malformed or lacks
	// one of the book, chapter, verse and text groups.
	ErrInvalidPattern = errors.New("invalid extraction pattern")

	// ErrUnsupportedFormat indicates a row format or file extension other than jsonl/csv.
	ErrUnsupportedFormat = errors.New("unsupported row format")

	// ErrInvalidBookMap indicates the book map file is not a valid mapping.
	ErrInvalidBookMap = errors.New("invalid book map")

	// ErrConnectionFailed indicates database connection failed.
	ErrConnectionFailed = errors.New("connection failed")

	// ErrUnsupportedAuthMethod indicates the requested authentication method is not supported.
	ErrUnsupportedAuthMethod = errors.New("unsupported authentication method")

	// ErrEmptyInput indicates there were no rows to load.
	ErrEmptyInput = errors.New("input contains no rows; nothing to load")

	// ErrInvalidRow indicates a row read from an exchange file is malformed.
	ErrInvalidRow = errors.New("invalid row")

	// ErrStrictMode indicates extraction left unparsed lines while strict mode was requested.
	ErrStrictMode = errors.New("failed in strict mode")

	// ErrUnmappedBook indicates a book in the input has no book map entry.
	ErrUnmappedBook = errors.New("unmapped book")

	// ErrBookResolution indicates upserted books could not be re-read by name.
	ErrBookResolution = errors.New("unable to resolve book IDs")

	// ErrLoadFailed indicates a store write failed and the transaction was rolled back.
	ErrLoadFailed = errors.New("load failed")

	// ErrBookNotFound indicates a read for a book that is not stored.
	ErrBookNotFound = errors.New("book not found")

	// ErrVerseNotFound indicates a read for a verse that is not stored.
	ErrVerseNotFound = errors.New("verse not found")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig),
		errors.Is(err, ErrInvalidPattern),
		errors.Is(err, ErrUnsupportedFormat),
		errors.Is(err, ErrInvalidBookMap),
		errors.Is(err, ErrUnsupportedAuthMethod):
		return ExitConfigError
	case errors.Is(err, ErrConnectionFailed):
		return ExitConnectionError
	case errors.Is(err, ErrEmptyInput), errors.Is(err, ErrInvalidRow):
		return ExitInputError
	case errors.Is(err, ErrStrictMode):
		return ExitStrictParse
	case errors.Is(err, ErrUnmappedBook):
		return ExitMappingError
	case errors.Is(err, ErrBookResolution), errors.Is(err, ErrLoadFailed):
		return ExitLoadFailed
	}

	errStr := err.Error()

	// cobra does not export typed errors for flag and argument misuse
	for _, prefix := range []string{"unknown flag", "unknown shorthand flag", "unknown command", "accepts ", "requires at least", "required flag", "invalid argument"} {
		if strings.HasPrefix(errStr, prefix) {
			return ExitUsageError
		}
	}

	if strings.Contains(errStr, "failed to connect") ||
		strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no such host") {
		return ExitConnectionError
	}

	return ExitGeneralError
}
