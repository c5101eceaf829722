// Package config reads the optional bibleload.yaml project file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vvka-141/bibleload/pkg/bibleload"
	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

type ConnectionConfig struct {
	Host           string `yaml:"host"`
	Port           int    `yaml:"port"`
	Username       string `yaml:"username"`
	Database       string `yaml:"database"`
	SSLMode        string `yaml:"sslmode"`
	AuthMethod     string `yaml:"auth_method,omitempty"`
	AzureTenantID  string `yaml:"azure_tenant_id,omitempty"`
	AzureClientID  string `yaml:"azure_client_id,omitempty"`
	AWSRegion      string `yaml:"aws_region,omitempty"`
	GoogleInstance string `yaml:"google_instance,omitempty"`
}

type ParseConfig struct {
	LineRegex string `yaml:"line_regex,omitempty"`
	Delimiter string `yaml:"delimiter,omitempty"`
	Format    string `yaml:"format,omitempty"`
	// SkipComments is a pointer so an explicit false can be told apart from unset.
	SkipComments *bool `yaml:"skip_comments,omitempty"`
}

type LoadConfig struct {
	BatchSize int    `yaml:"batch_size,omitempty"`
	BookMap   string `yaml:"book_map,omitempty"`
}

type ProjectConfig struct {
	Connection ConnectionConfig `yaml:"connection"`
	Parse      ParseConfig      `yaml:"parse"`
	Load       LoadConfig       `yaml:"load"`
	Timeout    string           `yaml:"timeout"`
}

const ConfigFileName = "bibleload.yaml"

// Load reads bibleload.yaml from dir.
func Load(dir string) (*ProjectConfig, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", configPath, err, bibleload.ErrInvalidConfig)
	}
	return &cfg, nil
}

// TimeoutOr returns the configured timeout, or fallback when none is set.
func (c *ProjectConfig) TimeoutOr(fallback time.Duration) (time.Duration, error) {
	if c == nil || c.Timeout == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q in %s: %w", c.Timeout, ConfigFileName, bibleload.ErrInvalidConfig)
	}
	if d <= 0 {
		return 0, fmt.Errorf("timeout in %s must be positive, got %s: %w", ConfigFileName, c.Timeout, bibleload.ErrInvalidConfig)
	}
	return d, nil
}
