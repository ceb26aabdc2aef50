package database

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMigrationsEmbedded(t *testing.T) {
	files, err := fs.Glob(migrations, "migrations/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	body, err := fs.ReadFile(migrations, files[0])
	require.NoError(t, err)
	assert.Contains(t, string(body), "-- +goose Up")
	assert.Contains(t, string(body), "CREATE TABLE IF NOT EXISTS users")
}

func TestOpenRequiresURL(t *testing.T) {
	_, err := Open("", zap.NewNop())
	assert.Error(t, err)
}
