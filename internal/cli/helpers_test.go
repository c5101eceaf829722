package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/vvka-141/bibleload/internal/files/filesystem"
	"github.com/vvka-141/bibleload/pkg/bibleload"
)

func resetParseFlags() {
	parseFlags = parseFlagValues{}
}

func resetLoadFlags() {
	loadFlags = loadFlagValues{
		batchSize: bibleload.DefaultBatchSize,
		timeout:   bibleload.DefaultTimeout,
	}
}

func resetReadFlags() {
	booksFlags = readFlagValues{timeout: bibleload.DefaultTimeout}
	showFlags = readFlagValues{timeout: bibleload.DefaultTimeout}
}

// useFS swaps the command filesystem for the duration of the test.
func useFS(t *testing.T, fs filesystem.FileSystemProvider) {
	t.Helper()
	original := fsProvider
	fsProvider = fs
	t.Cleanup(func() { fsProvider = original })
}

// isolateConfig points --config-dir at an empty directory and returns it.
func isolateConfig(t *testing.T) string {
	t.Helper()
	original := rootFlags
	dir := t.TempDir()
	rootFlags = rootFlagValues{configDir: dir}
	t.Cleanup(func() { rootFlags = original })
	return dir
}

func writeProjectConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "bibleload.yaml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

// clearConnectionEnv removes every environment source of connection settings.
func clearConnectionEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DATABASE_URL",
		"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_PASS",
		"PGHOST", "PGPORT", "PGUSER", "PGPASSWORD", "PGDATABASE", "PGSSLMODE",
		"AWS_REGION", "AZURE_TENANT_ID", "AZURE_CLIENT_ID", "AZURE_CLIENT_SECRET",
	} {
		t.Setenv(key, "")
	}
	t.Setenv("PGPASSFILE", filepath.Join(t.TempDir(), "no-pgpass"))
}

// stubConnector replaces the connector factory for the duration of the test.
func stubConnector(t *testing.T, factory func(*bibleload.ConnectionConfig, bibleload.Logger) (bibleload.Connector, error)) {
	t.Helper()
	original := newConnector
	newConnector = factory
	t.Cleanup(func() { newConnector = original })
}

// runCommand invokes run with captured stdout and stderr.
func runCommand(cmd *cobra.Command, run func(*cobra.Command, []string) error, args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	defer func() {
		cmd.SetOut(nil)
		cmd.SetErr(nil)
	}()

	err := run(cmd, args)
	return stdout.String(), stderr.String(), err
}
