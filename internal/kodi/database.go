package kodi

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/vmunix/kodisrc/internal/source"

	_ "modernc.org/sqlite"
)

const storeDatabase = "database"

// busyTimeoutMS keeps writes from failing while Kodi holds a short lock.
const busyTimeoutMS = 5000

// PathRow is a row of the path table that carries a content type.
type PathRow struct {
	ID             int64  `json:"id"`
	Path           string `json:"path"`
	Content        string `json:"content"`
	Scraper        string `json:"scraper"`
	Settings       string `json:"settings,omitempty"`
	ScanRecursive  int64  `json:"scan_recursive"`
	UseFolderNames bool   `json:"use_folder_names"`
}

// Database is the video database's path table. Every call opens its own
// connection and closes it before returning.
type Database struct {
	path string
}

// NewDatabase returns a Database backed by the SQLite file at path.
func NewDatabase(path string) *Database {
	return &Database{path: path}
}

// Path returns the database file location.
func (d *Database) Path() string { return d.path }

var insertPathQuery = fmt.Sprintf(
	`INSERT INTO "main"."path" ("%s") VALUES (%s)`,
	strings.Join(source.Columns, `", "`),
	strings.TrimSuffix(strings.Repeat("?, ", len(source.Columns)), ", "),
)

// Insert adds a row for src unless a source row with the same strPath
// exists. Reports whether a row was added. A row Kodi created for the same
// path without a content type is a *StorageError: it holds the unique strPath
// and must not be modified here.
func (d *Database) Insert(ctx context.Context, src source.Source) (bool, error) {
	var added bool
	err := d.withTx(ctx, func(tx *sql.Tx) error {
		var content sql.NullString
		err := tx.QueryRowContext(ctx, `SELECT strContent FROM path WHERE strPath = ?`, src.Path()).Scan(&content)
		switch {
		case errors.Is(err, sql.ErrNoRows):
		case err != nil:
			return fmt.Errorf("look up path: %w", err)
		case content.Valid:
			return nil
		default:
			return fmt.Errorf("path %s already exists without a content type; remove it in Kodi first", src.Path())
		}

		if _, err := tx.ExecContext(ctx, insertPathQuery, src.RowValues()...); err != nil {
			return fmt.Errorf("insert path: %w", err)
		}
		added = true
		return nil
	})
	return added, err
}

// List returns every row whose content type is set.
func (d *Database) List(ctx context.Context) ([]PathRow, error) {
	var rows []PathRow
	err := d.withDB(func(db *sql.DB) error {
		r, err := db.QueryContext(ctx, `
			SELECT idPath, strPath, strContent, strScraper, strSettings, scanRecursive, useFolderNames
			FROM path WHERE strContent IS NOT NULL ORDER BY idPath`)
		if err != nil {
			return fmt.Errorf("list paths: %w", err)
		}
		defer func() { _ = r.Close() }()

		for r.Next() {
			var (
				row                       PathRow
				path, scraper, settings   sql.NullString
				recursive, useFolderNames sql.NullInt64
			)
			if err := r.Scan(&row.ID, &path, &row.Content, &scraper, &settings, &recursive, &useFolderNames); err != nil {
				return fmt.Errorf("scan path: %w", err)
			}
			row.Path = path.String
			row.Scraper = scraper.String
			row.Settings = settings.String
			row.ScanRecursive = recursive.Int64
			row.UseFolderNames = useFolderNames.Int64 != 0
			rows = append(rows, row)
		}
		return r.Err()
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Count returns the number of rows whose content type is set.
func (d *Database) Count(ctx context.Context) (int, error) {
	var n int
	err := d.withDB(func(db *sql.DB) error {
		if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM path WHERE strContent IS NOT NULL`).Scan(&n); err != nil {
			return fmt.Errorf("count paths: %w", err)
		}
		return nil
	})
	return n, err
}

// Clear deletes every row whose content type is set and returns how many
// were removed. Rows with a NULL content type are left alone.
func (d *Database) Clear(ctx context.Context) (int64, error) {
	var n int64
	err := d.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM path WHERE strContent IS NOT NULL`)
		if err != nil {
			return fmt.Errorf("delete paths: %w", err)
		}
		n, err = res.RowsAffected()
		if err != nil {
			return fmt.Errorf("rows affected: %w", err)
		}
		return nil
	})
	return n, err
}

func (d *Database) open() (*sql.DB, error) {
	// Opening a missing file would silently create an empty database.
	info, err := os.Stat(d.path)
	if err != nil {
		return nil, storageError(storeDatabase, d.path, err)
	}
	if info.IsDir() {
		return nil, storageError(storeDatabase, d.path, errors.New("is a directory"))
	}

	db, err := sql.Open("sqlite", d.path)
	if err != nil {
		return nil, storageError(storeDatabase, d.path, fmt.Errorf("open: %w", err))
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(fmt.Sprintf("PRAGMA busy_timeout=%d", busyTimeoutMS)); err != nil {
		_ = db.Close()
		return nil, storageError(storeDatabase, d.path, fmt.Errorf("set busy timeout: %w", err))
	}
	return db, nil
}

func (d *Database) withDB(fn func(*sql.DB) error) error {
	db, err := d.open()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	return storageError(storeDatabase, d.path, fn(db))
}

func (d *Database) withTx(ctx context.Context, fn func(*sql.Tx) error) error {
	return d.withDB(func(db *sql.DB) error {
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin transaction: %w", err)
		}
		defer func() { _ = tx.Rollback() }()

		if err := fn(tx); err != nil {
			return err
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit: %w", err)
		}
		return nil
	})
}
