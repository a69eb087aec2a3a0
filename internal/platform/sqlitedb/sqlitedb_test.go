package sqlitedb_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"fieldreport/internal/platform/sqlitedb"
)

func TestOpenAppliesMigrationsIdempotently(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", "fieldreport.db")

	db, err := sqlitedb.Open(path)
	require.NoError(t, err)
	for _, table := range []string{"monthly_totals", "mirror_documents"} {
		var name string
		require.NoError(t, db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name))
		require.Equal(t, table, name)
	}
	require.NoError(t, sqlitedb.ApplyMigrations(db))
	require.NoError(t, db.Close())

	reopened, err := sqlitedb.Open(path)
	require.NoError(t, err)
	require.NoError(t, reopened.Close())
}
