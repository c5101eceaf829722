package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vvka-141/bibleload/pkg/bibleload"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))
	return dir
}

func TestLoad_AllFields(t *testing.T) {
	dir := writeConfig(t, `connection:
  host: myhost
  port: 5433
  username: myuser
  database: bible
  sslmode: require
  auth_method: aws
  aws_region: eu-west-1

parse:
  line_regex: '^(?P<book>\S+) (?P<chapter>\d+):(?P<verse>\d+) (?P<text>.*)$'
  format: csv
  skip_comments: false

load:
  batch_size: 250
  book_map: maps/kjv.json

timeout: 5m
`)

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "myhost", cfg.Connection.Host)
	assert.Equal(t, 5433, cfg.Connection.Port)
	assert.Equal(t, "myuser", cfg.Connection.Username)
	assert.Equal(t, "bible", cfg.Connection.Database)
	assert.Equal(t, "require", cfg.Connection.SSLMode)
	assert.Equal(t, "aws", cfg.Connection.AuthMethod)
	assert.Equal(t, "eu-west-1", cfg.Connection.AWSRegion)
	assert.Contains(t, cfg.Parse.LineRegex, "(?P<book>")
	assert.Equal(t, "csv", cfg.Parse.Format)
	require.NotNil(t, cfg.Parse.SkipComments)
	assert.False(t, *cfg.Parse.SkipComments)
	assert.Equal(t, 250, cfg.Load.BatchSize)
	assert.Equal(t, "maps/kjv.json", cfg.Load.BookMap)
	assert.Equal(t, "5m", cfg.Timeout)
}

func TestLoad_MinimalYAML(t *testing.T) {
	cfg, err := Load(writeConfig(t, "load:\n  batch_size: 100\n"))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "", cfg.Connection.Host)
	assert.Equal(t, 0, cfg.Connection.Port)
	assert.Nil(t, cfg.Parse.SkipComments)
	assert.Equal(t, 100, cfg.Load.BatchSize)
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load(t.TempDir())
	assert.True(t, errors.Is(err, ErrConfigNotFound), "expected ErrConfigNotFound, got: %v", err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	cfg, err := Load(writeConfig(t, "{{invalid"))
	assert.True(t, errors.Is(err, bibleload.ErrInvalidConfig), "got: %v", err)
	assert.Nil(t, cfg)
}

func TestTimeoutOr(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *ProjectConfig
		want    time.Duration
		wantErr bool
	}{
		{name: "nil config", cfg: nil, want: time.Minute},
		{name: "unset", cfg: &ProjectConfig{}, want: time.Minute},
		{name: "set", cfg: &ProjectConfig{Timeout: "90s"}, want: 90 * time.Second},
		{name: "garbage", cfg: &ProjectConfig{Timeout: "soon"}, wantErr: true},
		{name: "negative", cfg: &ProjectConfig{Timeout: "-1m"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.cfg.TimeoutOr(time.Minute)
			if tt.wantErr {
				assert.True(t, errors.Is(err, bibleload.ErrInvalidConfig))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
