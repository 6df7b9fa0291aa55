package kodi

import (
	"database/sql"
	_ "embed"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vmunix/kodisrc/internal/source"

	_ "modernc.org/sqlite"
)

//go:embed testdata/schema.sql
var testSchema string

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// setupKodiDir creates a Kodi directory with an empty video database and
// no XML documents.
func setupKodiDir(t *testing.T) Paths {
	t.Helper()
	p := PathsFor(t.TempDir())
	require.NoError(t, os.MkdirAll(filepath.Dir(p.Database), 0755))

	db := openTestDB(t, p.Database)
	_, err := db.Exec(testSchema)
	require.NoError(t, err, "apply schema")
	return p
}

func openTestDB(t *testing.T, path string) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// addForeignPath inserts a path row with no content type, as Kodi's scanner does.
func addForeignPath(t *testing.T, dbPath, path string) {
	t.Helper()
	_, err := openTestDB(t, dbPath).Exec(`INSERT INTO path (strPath, strHash) VALUES (?, ?)`, path, "abc")
	require.NoError(t, err)
}

func countRows(t *testing.T, dbPath string, where string) int {
	t.Helper()
	var n int
	err := openTestDB(t, dbPath).QueryRow(`SELECT COUNT(*) FROM path WHERE ` + where).Scan(&n)
	require.NoError(t, err)
	return n
}

func mustSource(t *testing.T, name, path, content string) source.Source {
	t.Helper()
	src, err := source.New(name, path, content)
	require.NoError(t, err)
	return src
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
