package storage

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLite(t *testing.T) {
	kv, err := OpenSQLite(t.TempDir())
	require.NoError(t, err)
	defer kv.Close()
	testKVContract(t, kv)
}

func TestSQLite_CreatesDatabaseFile(t *testing.T) {
	dir := t.TempDir()
	kv, err := OpenSQLite(dir)
	require.NoError(t, err)
	defer kv.Close()

	_, err = os.Stat(filepath.Join(dir, "sendit.db"))
	assert.NoError(t, err)
}

func TestSQLite_ReopenKeepsData(t *testing.T) {
	dir := t.TempDir()

	kv, err := OpenSQLite(dir)
	require.NoError(t, err)
	_, err = kv.Put(t.Context(), "k", []byte(`{"kept":true}`), 0)
	require.NoError(t, err)
	require.NoError(t, kv.Close())

	kv, err = OpenSQLite(dir)
	require.NoError(t, err)
	defer kv.Close()

	e, err := kv.Get(t.Context(), "k")
	require.NoError(t, err)
	assert.JSONEq(t, `{"kept":true}`, string(e.Value))
	assert.Equal(t, int64(1), e.Revision)
}

func TestMigrationManager(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	m := NewMigrationManager(db)
	require.NoError(t, m.Initialize())

	version, err := m.Version()
	require.NoError(t, err)
	assert.Equal(t, int64(0), version)

	require.NoError(t, m.Up())

	version, err = m.Version()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, version, int64(1))

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='kv_store'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "kv_store", name)

	require.NoError(t, m.Down())

	after, err := m.Version()
	require.NoError(t, err)
	assert.Less(t, after, version)
}
