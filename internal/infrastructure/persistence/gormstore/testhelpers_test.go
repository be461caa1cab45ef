package gormstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/rafabene/blog-backend/internal/infrastructure/config"
	"github.com/rafabene/blog-backend/internal/infrastructure/logging"
)

// newTestDB abre um arquivo SQLite novo por teste
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.DatabaseConfig{
		Driver:   config.DriverSQLite,
		Path:     filepath.Join(t.TempDir(), "test.db"),
		MaxConns: 1,
		MinConns: 1,
	}

	db, err := NewDatabaseConnection(cfg, logging.NewNopLogger())
	require.NoError(t, err)

	t.Cleanup(func() { _ = Close(db) })
	return db
}
