package db

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vvka-141/bibleload/pkg/bibleload"
)

// Connection pool configuration constants
const (
	// DefaultMaxConns bounds the pool; a load only ever holds one connection.
	DefaultMaxConns = 5

	// DefaultMinConns maintains at least one connection in the pool.
	DefaultMinConns = 1

	// DefaultMaxConnIdleTime keeps the connection alive through a long load.
	DefaultMaxConnIdleTime = 30 * time.Minute
)

// configurePool applies pool limits and routes server notices to the logger,
// keeping stdout free for row data.
func configurePool(poolConfig *pgxpool.Config, logger bibleload.Logger) {
	poolConfig.MaxConns = DefaultMaxConns
	poolConfig.MinConns = DefaultMinConns
	poolConfig.MaxConnIdleTime = DefaultMaxConnIdleTime
	poolConfig.ConnConfig.OnNotice = func(_ *pgconn.PgConn, notice *pgconn.Notice) {
		logger.Verbose("NOTICE: %s", notice.Message)
	}
}

// openPool parses connStr, opens a pool and pings it.
func openPool(ctx context.Context, connStr string, config *bibleload.ConnectionConfig, logger bibleload.Logger) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection config: %v: %w", err, bibleload.ErrInvalidConfig)
	}

	configurePool(poolConfig, logger)

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, wrapConnectionError(err, config.Host, config.Port, config.Database)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, wrapConnectionError(err, config.Host, config.Port, config.Database)
	}
	return pool, nil
}

// StandardConnector implements the Connector interface for standard
// username/password authentication. It makes a single attempt; transient
// failures surface to the caller.
type StandardConnector struct {
	config *bibleload.ConnectionConfig
	logger bibleload.Logger
}

// NewStandardConnector creates a new StandardConnector with the given configuration.
func NewStandardConnector(config *bibleload.ConnectionConfig, logger bibleload.Logger) *StandardConnector {
	return &StandardConnector{
		config: config,
		logger: logger,
	}
}

// Connect establishes a connection pool using standard authentication.
func (c *StandardConnector) Connect(ctx context.Context) (*pgxpool.Pool, error) {
	c.logger.Verbose("Connecting to %s:%d/%s as %s (sslmode=%s)",
		c.config.Host, c.config.Port, c.config.Database, c.config.Username, c.config.SSLMode)
	return openPool(ctx, BuildConnectionString(c.config), c.config, c.logger)
}

// NewConnector is a factory function that creates the appropriate Connector
// based on the ConnectionConfig's AuthMethod.
func NewConnector(config *bibleload.ConnectionConfig, logger bibleload.Logger) (bibleload.Connector, error) {
	switch config.AuthMethod {
	case bibleload.AuthMethodStandard:
		return NewStandardConnector(config, logger), nil
	case bibleload.AuthMethodAWSIAM:
		return newAWSConnector(config, logger)
	case bibleload.AuthMethodGoogleIAM:
		return newGoogleConnector(config, logger)
	case bibleload.AuthMethodAzureEntraID:
		return newAzureConnector(config, logger)
	default:
		return nil, fmt.Errorf("unsupported auth method %v: %w", config.AuthMethod, bibleload.ErrUnsupportedAuthMethod)
	}
}

// wrapConnectionError wraps raw pgx connection errors with actionable guidance.
// The result always wraps bibleload.ErrConnectionFailed.
func wrapConnectionError(err error, host string, port int, database string) error {
	return fmt.Errorf("%w: %w", bibleload.ErrConnectionFailed, explainConnectionError(err, host, port, database))
}

func explainConnectionError(err error, host string, port int, database string) error {
	errStr := strings.ToLower(err.Error())
	addr := net.JoinHostPort(host, strconv.Itoa(port))

	switch {
	case strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "actively refused"):
		return fmt.Errorf(`connection refused to %s

Possible causes:
  - PostgreSQL is not running (check: pg_isready -h %s -p %d)
  - Wrong host or port
  - Firewall blocking the connection

Original error: %w`, addr, host, port, err)

	case strings.Contains(errStr, "no such host") || strings.Contains(errStr, "no host"):
		return fmt.Errorf(`cannot resolve host "%s"

Possible causes:
  - Hostname is misspelled
  - DNS is not configured or reachable
  - Network connection issue

Original error: %w`, host, err)

	case strings.Contains(errStr, "password authentication failed"):
		return fmt.Errorf(`password authentication failed for database "%s"

Possible causes:
  - Wrong password (check $DB_PASS, $PGPASSWORD or ~/.pgpass)
  - Wrong username
  - User does not have access to the database

Original error: %w`, database, err)

	case strings.Contains(errStr, "does not exist"):
		return fmt.Errorf(`database "%s" does not exist

To create it and apply the bibleload tables:
  createdb %s
  bibleload schema | psql -d %s

Original error: %w`, database, database, database, err)

	case strings.Contains(errStr, "timeout") || strings.Contains(errStr, "timed out"):
		return fmt.Errorf(`connection timed out to %s

Possible causes:
  - Server is overloaded or unresponsive
  - Network latency or packet loss
  - Firewall silently dropping packets
  - Wrong host/port (server not listening)

Original error: %w`, addr, err)

	case strings.Contains(errStr, "ssl") || strings.Contains(errStr, "tls"):
		return fmt.Errorf(`SSL/TLS connection error

Possible causes:
  - Server requires SSL but --sslmode is wrong
  - Certificate verification failed (try --sslmode=require)

Original error: %w`, err)

	case strings.Contains(errStr, "too many connections"):
		return fmt.Errorf(`too many connections to database "%s"

Possible causes:
  - Connection pool exhausted on server
  - max_connections limit reached in postgresql.conf
  - Stale connections from earlier loads

Try: SELECT pg_terminate_backend(pid) FROM pg_stat_activity WHERE datname = '%s';

Original error: %w`, database, database, err)

	default:
		return fmt.Errorf("failed to connect to database: %w", err)
	}
}

// newAWSConnector creates a token-based connector with the AWS IAM token provider.
func newAWSConnector(config *bibleload.ConnectionConfig, logger bibleload.Logger) (bibleload.Connector, error) {
	endpoint := net.JoinHostPort(config.Host, strconv.Itoa(config.Port))

	tokenProvider, err := NewAWSIAMTokenProvider(endpoint, config.AWSRegion, config.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS IAM token provider: %v: %w", err, bibleload.ErrInvalidConfig)
	}

	return NewTokenBasedConnector(config, tokenProvider, "AWS IAM", logger), nil
}

// newGoogleConnector creates a GoogleCloudSQLConnector for Google Cloud SQL IAM authentication.
func newGoogleConnector(config *bibleload.ConnectionConfig, logger bibleload.Logger) (bibleload.Connector, error) {
	if config.GoogleInstance == "" {
		return nil, fmt.Errorf("Google Cloud SQL IAM auth requires --google-instance (project:region:instance): %w", bibleload.ErrInvalidConfig)
	}
	if config.Username == "" {
		return nil, fmt.Errorf("Google Cloud SQL IAM auth requires username (-U): %w", bibleload.ErrInvalidConfig)
	}

	return NewGoogleCloudSQLConnector(config, config.GoogleInstance, logger), nil
}

// newAzureConnector creates a token-based connector with the Azure Entra ID token provider.
// If explicit credentials (tenant, client, secret) are provided, uses Service Principal auth.
// Otherwise, falls back to DefaultAzureCredential chain.
func newAzureConnector(config *bibleload.ConnectionConfig, logger bibleload.Logger) (bibleload.Connector, error) {
	var tokenProvider TokenProvider
	var err error

	if config.AzureTenantID != "" && config.AzureClientID != "" && config.AzureClientSecret != "" {
		tokenProvider, err = NewAzureServicePrincipalProvider(
			config.AzureTenantID,
			config.AzureClientID,
			config.AzureClientSecret,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create Azure Service Principal provider: %v: %w", err, bibleload.ErrInvalidConfig)
		}
	} else {
		tokenProvider, err = NewAzureDefaultCredentialProvider()
		if err != nil {
			return nil, fmt.Errorf("failed to create Azure Default Credential provider: %v: %w", err, bibleload.ErrConnectionFailed)
		}
	}

	return NewTokenBasedConnector(config, tokenProvider, "Azure", logger), nil
}
