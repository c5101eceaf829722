package bibleload

import "time"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess         = 0  // Parse/load completed successfully
	ExitGeneralError    = 1  // Unknown or unclassified error
	ExitUsageError      = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic           = 3  // Internal panic (unexpected crash)
	ExitConfigError     = 10 // Invalid configuration, pattern, format or book map
	ExitConnectionError = 11 // Failed to connect to database
	ExitInputError      = 12 // Empty or malformed row input
	ExitStrictParse     = 13 // Unparsed lines present in strict mode
	ExitMappingError    = 14 // Book missing from the book map
	ExitLoadFailed      = 15 // Store write failed and was rolled back
)

const (
	// DefaultBatchSize is the number of verse upserts sent per pgx batch.
	DefaultBatchSize = 500

	// DefaultLinePattern matches lines such as "Matthew 1:1 In the beginning...".
	// Book names may carry a leading 1-3 ordinal ("1 John", "2Kings").
	DefaultLinePattern = `^(?P<book>[1-3]?\s?[A-Za-z ]+?)\s+(?P<chapter>\d+):(?P<verse>\d+)\s+(?P<text>.+)$`

	// DefaultDelimiter separates fields for the delimited extraction rule.
	DefaultDelimiter = "|"

	// DefaultTimeout bounds a whole command run.
	DefaultTimeout = 10 * time.Minute

	// DefaultPort is used when no source supplies a port.
	DefaultPort = 5432

	// DefaultSSLMode is used when no source supplies an SSL mode.
	DefaultSSLMode = "prefer"

	// ApplicationName is reported to PostgreSQL as application_name.
	ApplicationName = "bibleload"
)
