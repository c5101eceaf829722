package db

import (
	"fmt"
	"os"
	"strconv"

	"github.com/vvka-141/bibleload/internal/config"
	"github.com/vvka-141/bibleload/pkg/bibleload"
)

// GranularConnFlags represents connection parameters from CLI flags.
// These follow PostgreSQL standard flag conventions (-h, -p, -U, -d).
//
// Note: Password is NOT included as a CLI flag for security reasons.
// Use one of these methods instead:
//  1. $DB_PASS or $PGPASSWORD environment variable
//  2. .pgpass file (PostgreSQL standard)
//  3. Connection string with embedded password
type GranularConnFlags struct {
	Host     string
	Port     int
	Username string
	Database string
	SSLMode  string
}

// IsEmpty returns true if no granular connection flags were provided by the user.
func (g *GranularConnFlags) IsEmpty() bool {
	return g == nil || (g.Host == "" && g.Port == 0 && g.Username == "" && g.Database == "" && g.SSLMode == "")
}

// CloudFlags selects token-based authentication.
// Secrets are never flags: AZURE_CLIENT_SECRET comes from the environment.
type CloudFlags struct {
	AWS       bool
	AWSRegion string // Overrides AWS_REGION

	Google         bool
	GoogleInstance string // project:region:instance

	Azure         bool
	AzureTenantID string // Overrides AZURE_TENANT_ID
	AzureClientID string // Overrides AZURE_CLIENT_ID
}

func (c *CloudFlags) selected() int {
	n := 0
	for _, on := range []bool{c.AWS, c.Google, c.Azure} {
		if on {
			n++
		}
	}
	return n
}

// EnvVars holds the connection-related environment.
// See: https://www.postgresql.org/docs/current/libpq-envars.html
type EnvVars struct {
	DATABASE_URL string // Full connection string (Heroku/Rails convention)

	DB_HOST string
	DB_PORT string
	DB_NAME string
	DB_USER string
	DB_PASS string

	PGHOST     string
	PGPORT     string
	PGUSER     string
	PGPASSWORD string
	PGDATABASE string
	PGSSLMODE  string

	AWS_REGION string

	AZURE_TENANT_ID     string
	AZURE_CLIENT_ID     string
	AZURE_CLIENT_SECRET string
}

// LoadFromEnvironment loads the variables in EnvVars from the process environment.
func LoadFromEnvironment() *EnvVars {
	return &EnvVars{
		DATABASE_URL:        os.Getenv("DATABASE_URL"),
		DB_HOST:             os.Getenv("DB_HOST"),
		DB_PORT:             os.Getenv("DB_PORT"),
		DB_NAME:             os.Getenv("DB_NAME"),
		DB_USER:             os.Getenv("DB_USER"),
		DB_PASS:             os.Getenv("DB_PASS"),
		PGHOST:              os.Getenv("PGHOST"),
		PGPORT:              os.Getenv("PGPORT"),
		PGUSER:              os.Getenv("PGUSER"),
		PGPASSWORD:          os.Getenv("PGPASSWORD"),
		PGDATABASE:          os.Getenv("PGDATABASE"),
		PGSSLMODE:           os.Getenv("PGSSLMODE"),
		AWS_REGION:          os.Getenv("AWS_REGION"),
		AZURE_TENANT_ID:     os.Getenv("AZURE_TENANT_ID"),
		AZURE_CLIENT_ID:     os.Getenv("AZURE_CLIENT_ID"),
		AZURE_CLIENT_SECRET: os.Getenv("AZURE_CLIENT_SECRET"),
	}
}

// ResolveInput gathers every source ResolveConnectionParams consults.
type ResolveInput struct {
	ConnString    string // --connection
	Granular      *GranularConnFlags
	Cloud         *CloudFlags
	Env           *EnvVars
	ProjectConfig *config.ProjectConfig // nil when bibleload.yaml is absent
	PgpassFile    string                // empty disables the .pgpass lookup
}

// ResolveConnectionParams resolves connection parameters with this precedence:
//
//  1. Connection string flag (--connection)
//  2. DATABASE_URL, when no granular flags are given
//  3. Granular flags (-h, -p, -U, -d, --sslmode)
//  4. DB_HOST, DB_PORT, DB_NAME, DB_USER, DB_PASS
//  5. PGHOST, PGPORT, PGDATABASE, PGUSER, PGPASSWORD, PGSSLMODE
//  6. bibleload.yaml
//
// A password still missing after that is looked up in .pgpass. The result is
// validated, so every missing required setting is reported at once.
func ResolveConnectionParams(in ResolveInput) (*bibleload.ConnectionConfig, error) {
	granular := in.Granular
	if granular == nil {
		granular = &GranularConnFlags{}
	}
	cloud := in.Cloud
	if cloud == nil {
		cloud = &CloudFlags{}
	}
	env := in.Env
	if env == nil {
		env = &EnvVars{}
	}
	var pc config.ConnectionConfig
	if in.ProjectConfig != nil {
		pc = in.ProjectConfig.Connection
	}

	if in.ConnString != "" && !granular.IsEmpty() {
		return nil, fmt.Errorf(
			"cannot specify both --connection and granular flags (-h, -p, -U, -d)\n"+
				"Choose one approach:\n"+
				"  1. Connection string: --connection \"postgresql://user@localhost:5432/bible\"\n"+
				"  2. Granular flags: -h localhost -p 5432 -U myuser -d bible\n"+
				"  3. Environment variables: export DB_HOST=localhost DB_NAME=bible DB_USER=myuser: %w",
			bibleload.ErrInvalidConfig,
		)
	}
	if cloud.selected() > 1 {
		return nil, fmt.Errorf("--aws, --google and --azure are mutually exclusive: %w", bibleload.ErrInvalidConfig)
	}

	var cfg *bibleload.ConnectionConfig
	var err error
	switch {
	case in.ConnString != "":
		cfg, err = resolveFromConnectionString(in.ConnString, env)
	case granular.IsEmpty() && env.DATABASE_URL != "":
		cfg, err = resolveFromConnectionString(env.DATABASE_URL, env)
	default:
		cfg, err = resolveFromGranularParams(granular, env, pc)
	}
	if err != nil {
		return nil, err
	}

	if err := applyAuthMethod(cfg, cloud, env, pc); err != nil {
		return nil, err
	}

	if cfg.Password == "" && cfg.AuthMethod == bibleload.AuthMethodStandard && in.PgpassFile != "" {
		if pw, ok := LookupPgpass(in.PgpassFile, cfg.Host, cfg.Port, cfg.Database, cfg.Username); ok {
			cfg.Password = pw
		}
	}

	if cfg.AppName == "" {
		cfg.AppName = bibleload.ApplicationName
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveFromConnectionString parses a connection string. Environment
// variables fill the SSL mode and password when the string omits them,
// following libpq.
func resolveFromConnectionString(connStr string, env *EnvVars) (*bibleload.ConnectionConfig, error) {
	cfg, err := ParseConnectionString(connStr)
	if err != nil {
		return nil, fmt.Errorf("invalid connection string: %w", err)
	}

	cfg.SSLMode = firstNonEmpty(cfg.SSLMode, env.PGSSLMODE, bibleload.DefaultSSLMode)
	cfg.Password = firstNonEmpty(cfg.Password, env.DB_PASS, env.PGPASSWORD)
	return cfg, nil
}

// resolveFromGranularParams builds ConnectionConfig field by field:
// flag > DB_* > PG* > bibleload.yaml > default.
func resolveFromGranularParams(flags *GranularConnFlags, env *EnvVars, pc config.ConnectionConfig) (*bibleload.ConnectionConfig, error) {
	cfg := &bibleload.ConnectionConfig{
		AuthMethod:       bibleload.AuthMethodStandard,
		AdditionalParams: make(map[string]string),
	}

	cfg.Host = firstNonEmpty(flags.Host, env.DB_HOST, env.PGHOST, pc.Host)
	cfg.Database = firstNonEmpty(flags.Database, env.DB_NAME, env.PGDATABASE, pc.Database)
	cfg.Username = firstNonEmpty(flags.Username, env.DB_USER, env.PGUSER, pc.Username)
	cfg.Password = firstNonEmpty(env.DB_PASS, env.PGPASSWORD)
	cfg.SSLMode = firstNonEmpty(flags.SSLMode, env.PGSSLMODE, pc.SSLMode, bibleload.DefaultSSLMode)

	switch {
	case flags.Port != 0:
		cfg.Port = flags.Port
	case env.DB_PORT != "":
		port, err := parsePort("DB_PORT", env.DB_PORT)
		if err != nil {
			return nil, err
		}
		cfg.Port = port
	case env.PGPORT != "":
		port, err := parsePort("PGPORT", env.PGPORT)
		if err != nil {
			return nil, err
		}
		cfg.Port = port
	case pc.Port != 0:
		cfg.Port = pc.Port
	default:
		cfg.Port = bibleload.DefaultPort
	}

	return cfg, nil
}

// applyAuthMethod selects the auth method (flags > bibleload.yaml) and fills
// the provider-specific settings. CLI flags take precedence over environment
// variables, which take precedence over bibleload.yaml.
func applyAuthMethod(cfg *bibleload.ConnectionConfig, cloud *CloudFlags, env *EnvVars, pc config.ConnectionConfig) error {
	method, err := bibleload.ParseAuthMethod(pc.AuthMethod)
	if err != nil {
		return err
	}
	switch {
	case cloud.AWS:
		method = bibleload.AuthMethodAWSIAM
	case cloud.Google:
		method = bibleload.AuthMethodGoogleIAM
	case cloud.Azure:
		method = bibleload.AuthMethodAzureEntraID
	}
	cfg.AuthMethod = method

	switch method {
	case bibleload.AuthMethodAWSIAM:
		cfg.AWSRegion = firstNonEmpty(cloud.AWSRegion, env.AWS_REGION, pc.AWSRegion)
	case bibleload.AuthMethodGoogleIAM:
		cfg.GoogleInstance = firstNonEmpty(cloud.GoogleInstance, pc.GoogleInstance)
	case bibleload.AuthMethodAzureEntraID:
		cfg.AzureTenantID = firstNonEmpty(cloud.AzureTenantID, env.AZURE_TENANT_ID, pc.AzureTenantID)
		cfg.AzureClientID = firstNonEmpty(cloud.AzureClientID, env.AZURE_CLIENT_ID, pc.AzureClientID)
		cfg.AzureClientSecret = env.AZURE_CLIENT_SECRET
	}
	return nil
}

func parsePort(name, value string) (int, error) {
	port, err := strconv.Atoi(value)
	if err != nil || port <= 0 || port > 65535 {
		return 0, fmt.Errorf("invalid $%s value '%s': must be a port number: %w", name, value, bibleload.ErrInvalidConfig)
	}
	return port, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
