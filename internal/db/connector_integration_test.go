package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vvka-141/bibleload/internal/db"
	"github.com/vvka-141/bibleload/internal/logging"
	testhelpers "github.com/vvka-141/bibleload/internal/testing"
	"github.com/vvka-141/bibleload/pkg/bibleload"
)

func resolveTestConfig(t *testing.T) *bibleload.ConnectionConfig {
	t.Helper()
	connString := testhelpers.RequireDatabase(t)

	cfg, err := db.ResolveConnectionParams(db.ResolveInput{ConnString: connString})
	require.NoError(t, err)
	return cfg
}

func TestStandardConnector_Connects(t *testing.T) {
	cfg := resolveTestConfig(t)

	connector, err := db.NewConnector(cfg, logging.NewNullLogger())
	require.NoError(t, err)

	pool, err := connector.Connect(context.Background())
	require.NoError(t, err)
	defer pool.Close()

	var appName string
	require.NoError(t, pool.QueryRow(context.Background(), "SELECT current_setting('application_name')").Scan(&appName))
	assert.Equal(t, bibleload.ApplicationName, appName)
}

func TestStandardConnector_WrongPassword(t *testing.T) {
	cfg := resolveTestConfig(t)
	cfg.Password = "definitely-wrong-password"

	connector, err := db.NewConnector(cfg, logging.NewNullLogger())
	require.NoError(t, err)

	_, err = connector.Connect(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, bibleload.ErrConnectionFailed))
	assert.Equal(t, bibleload.ExitConnectionError, bibleload.ExitCodeForError(err))
}

func TestStandardConnector_MissingDatabase(t *testing.T) {
	cfg := resolveTestConfig(t)
	cfg.Database = "bibleload_does_not_exist"

	connector, err := db.NewConnector(cfg, logging.NewNullLogger())
	require.NoError(t, err)

	_, err = connector.Connect(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `database "bibleload_does_not_exist" does not exist`)
	assert.Contains(t, err.Error(), "bibleload schema")
}
