package bibleload

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Row is one normalized verse: the unit produced by extraction and consumed by loading.
// Book and Text are trimmed; Chapter and Verse are 1-based.
type Row struct {
	Book    string `json:"book"`
	Chapter int    `json:"chapter"`
	Verse   int    `json:"verse"`
	Text    string `json:"text"`
}

// Ref renders the row's natural key as "Book C:V".
func (r Row) Ref() string {
	return fmt.Sprintf("%s %d:%d", r.Book, r.Chapter, r.Verse)
}

// UnparsedLine records an input line that did not match the extraction rule.
type UnparsedLine struct {
	LineNumber int    // 1-based position in the source
	Raw        string // original line without its trailing newline
}

// ParseResult is the outcome of extracting rows from a source.
// Rows and Unparsed both preserve input order.
type ParseResult struct {
	Rows     []Row
	Unparsed []UnparsedLine
}

// Testament identifies which half of the canon a book belongs to.
type Testament string

const (
	TestamentOld Testament = "OLD"
	TestamentNew Testament = "NEW"
)

// ParseTestament accepts "old"/"new" in any case.
func ParseTestament(s string) (Testament, error) {
	switch Testament(strings.ToUpper(strings.TrimSpace(s))) {
	case TestamentOld:
		return TestamentOld, nil
	case TestamentNew:
		return TestamentNew, nil
	default:
		return "", fmt.Errorf("testament must be OLD or NEW, got %q", s)
	}
}

// StorageValue is the form persisted in bible_books.testament.
func (t Testament) StorageValue() string {
	return strings.ToLower(string(t))
}

// BookMeta is the book map entry for one book name.
type BookMeta struct {
	Testament   Testament
	SortOrder   int
	DisplayName string // optional; defaults to the book name
}

// BookMapping maps raw book names, as they appear in rows, to their metadata.
type BookMapping map[string]BookMeta

// DisplayNameFor returns the configured display name, or name itself when none is set.
func (m BookMapping) DisplayNameFor(name string) string {
	if meta, ok := m[name]; ok && meta.DisplayName != "" {
		return meta.DisplayName
	}
	return name
}

// BookRecord is a persisted row of bible_books.
type BookRecord struct {
	ID          int64
	Testament   Testament
	Name        string
	DisplayName string
	SortOrder   int
}

// VerseRecord is a persisted row of bible_verses.
type VerseRecord struct {
	BookID  int64
	Chapter int
	Verse   int
	Text    string
}

// LoadResult summarizes a committed load.
type LoadResult struct {
	// RunID identifies this load in logs and in the session's application_name
	RunID uuid.UUID

	// Verses is the number of verse rows upserted
	Verses int

	// Books is the number of distinct books upserted
	Books int

	// Duration covers the transaction from Begin to Commit
	Duration time.Duration
}

// ParseConfig contains all parameters needed for a parse operation.
type ParseConfig struct {
	// InputPath is the raw text source
	InputPath string

	// OutputPath receives the normalized rows
	OutputPath string

	// Format is the output format name: "jsonl" or "csv"
	Format string

	// LinePattern is the regex with book, chapter, verse and text groups.
	// Ignored when Delimiter is set.
	LinePattern string

	// Delimiter selects the delimited rule ("book|chapter|verse|text") instead of LinePattern
	Delimiter string

	// SkipComments drops lines starting with '#'
	SkipComments bool

	// Strict fails the parse when any line is left unparsed
	Strict bool

	// PrintErrors itemizes unparsed lines on stderr
	PrintErrors bool
}

// Validate checks if the ParseConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *ParseConfig) Validate() error {
	var errs []error

	if c.InputPath == "" {
		errs = append(errs, fmt.Errorf("InputPath is required: %w", ErrInvalidConfig))
	}

	if c.OutputPath == "" {
		errs = append(errs, fmt.Errorf("OutputPath is required: %w", ErrInvalidConfig))
	}

	switch strings.ToLower(c.Format) {
	case "jsonl", "csv":
	default:
		errs = append(errs, fmt.Errorf("format %q is not one of jsonl, csv: %w", c.Format, ErrUnsupportedFormat))
	}

	if c.LinePattern == "" && c.Delimiter == "" {
		errs = append(errs, fmt.Errorf("LinePattern or Delimiter is required: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// LoadConfig contains all parameters needed for a load operation.
type LoadConfig struct {
	// InputPath is a .jsonl or .csv row file
	InputPath string

	// BookMapPath is the book map JSON file; empty selects the built-in map
	BookMapPath string

	// BatchSize is the number of verse upserts per batch
	BatchSize int

	// Timeout bounds the whole load
	Timeout time.Duration

	// Verbose enables detailed logging
	Verbose bool
}

// Validate checks if the LoadConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *LoadConfig) Validate() error {
	var errs []error

	if c.InputPath == "" {
		errs = append(errs, fmt.Errorf("InputPath is required: %w", ErrInvalidConfig))
	}

	if c.BatchSize <= 0 {
		errs = append(errs, fmt.Errorf("batch size must be positive, got %d: %w", c.BatchSize, ErrInvalidConfig))
	}

	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout cannot be negative: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// ConnectionConfig represents parsed connection parameters.
type ConnectionConfig struct {
	Host     string
	Port     int
	Database string
	Username string
	Password string
	SSLMode  string

	// AuthMethod indicates the authentication mechanism to use
	AuthMethod AuthMethod

	// Additional connection parameters
	AppName          string
	ConnectTimeout   time.Duration
	AdditionalParams map[string]string

	// Azure Entra ID authentication parameters (used when AuthMethod is AuthMethodAzureEntraID)
	// If all three are provided, Service Principal authentication is used.
	// If none are provided, DefaultAzureCredential chain is used (env vars, managed identity, CLI, etc.)
	AzureTenantID     string
	AzureClientID     string
	AzureClientSecret string

	// AWSRegion is required for AuthMethodAWSIAM
	AWSRegion string

	// GoogleInstance is the Cloud SQL instance connection name (project:region:instance)
	GoogleInstance string
}

// Validate reports every connection setting that is required for the
// configured auth method but missing. Token-based methods do not need a password.
func (c *ConnectionConfig) Validate() error {
	var missing []string

	if c.Host == "" && c.AuthMethod != AuthMethodGoogleIAM {
		missing = append(missing, "host")
	}
	if c.Port <= 0 && c.AuthMethod != AuthMethodGoogleIAM {
		missing = append(missing, "port")
	}
	if c.Database == "" {
		missing = append(missing, "database")
	}
	if c.Username == "" {
		missing = append(missing, "user")
	}
	if c.Password == "" && c.AuthMethod == AuthMethodStandard {
		missing = append(missing, "password")
	}
	if c.AuthMethod == AuthMethodAWSIAM && c.AWSRegion == "" {
		missing = append(missing, "aws region")
	}
	if c.AuthMethod == AuthMethodGoogleIAM && c.GoogleInstance == "" {
		missing = append(missing, "google instance")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required connection settings: %s: %w", strings.Join(missing, ", "), ErrInvalidConfig)
	}
	if !c.AuthMethod.IsValid() {
		return fmt.Errorf("auth method %v: %w", c.AuthMethod, ErrUnsupportedAuthMethod)
	}
	return nil
}

// AuthMethod represents the type of authentication to use.
type AuthMethod int

const (
	AuthMethodStandard     AuthMethod = iota // Username/Password
	AuthMethodAWSIAM                         // AWS IAM Database Authentication
	AuthMethodGoogleIAM                      // Google Cloud SQL IAM
	AuthMethodAzureEntraID                   // Azure Active Directory (Entra ID)
)

// String returns a human-readable string representation of the AuthMethod.
func (a AuthMethod) String() string {
	switch a {
	case AuthMethodStandard:
		return "Standard"
	case AuthMethodAWSIAM:
		return "AWS IAM"
	case AuthMethodGoogleIAM:
		return "Google IAM"
	case AuthMethodAzureEntraID:
		return "Azure Entra ID"
	default:
		return fmt.Sprintf("Unknown(%d)", a)
	}
}

// IsValid returns true if the AuthMethod is a valid, defined value.
func (a AuthMethod) IsValid() bool {
	return a >= AuthMethodStandard && a <= AuthMethodAzureEntraID
}

// ParseAuthMethod maps the bibleload.yaml auth_method values to an AuthMethod.
// An empty string selects standard authentication.
func ParseAuthMethod(s string) (AuthMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "standard", "password":
		return AuthMethodStandard, nil
	case "aws", "aws-iam":
		return AuthMethodAWSIAM, nil
	case "google", "google-iam":
		return AuthMethodGoogleIAM, nil
	case "azure", "azure-entra-id":
		return AuthMethodAzureEntraID, nil
	default:
		return AuthMethodStandard, fmt.Errorf("auth method %q: %w", s, ErrUnsupportedAuthMethod)
	}
}
