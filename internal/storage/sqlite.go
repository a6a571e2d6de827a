package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aphfiwiwi/biiscoti/internal/common"
	"github.com/mattn/go-sqlite3"
)

// openDB opens a single-connection SQLite database at path.
func openDB(dbPath string) (*sql.DB, error) {
	if err := validateString(dbPath, "dbPath"); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Table is a single-table SQLite store for one record type. Reads can be
// taken as snapshots or observed as live sequences.
type Table[T any] struct {
	db      *sql.DB
	changes *notifier
	dbPath  string
	schema  Schema[T]
}

// OpenTable opens (creating if needed) the database at dbPath and migrates
// it to hold schema's table.
func OpenTable[T any](ctx context.Context, dbPath string, schema Schema[T]) (*Table[T], error) {
	if err := schema.validate(); err != nil {
		return nil, err
	}

	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	if err := migrate(ctx, db, schema.Table, migrationsFor(schema)); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate %s: %w", schema.Table, err)
	}

	return &Table[T]{
		db:      db,
		dbPath:  dbPath,
		schema:  schema,
		changes: newNotifier(),
	}, nil
}

// Name returns the table name.
func (t *Table[T]) Name() string {
	return t.schema.Table
}

// Close ends every live sequence and closes the database.
func (t *Table[T]) Close() error {
	t.changes.close()
	return t.db.Close()
}

// InsertOrReplace stores rec. A record with a zero ID is inserted with a
// freshly assigned ID; otherwise the row with that ID is fully replaced.
// The stored record is returned.
func (t *Table[T]) InsertOrReplace(ctx context.Context, rec T) (T, error) {
	if err := validateContext(ctx); err != nil {
		return rec, err
	}

	cols := t.schema.columnNames()
	values := t.schema.Values(rec)
	id := t.schema.ID(rec)

	var (
		query string
		args  []any
	)
	if id == 0 {
		query = fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
			t.schema.Table, strings.Join(cols, ", "), placeholders(len(cols)))
		args = values
	} else {
		query = fmt.Sprintf("INSERT OR REPLACE INTO %s (id, %s) VALUES (%s)",
			t.schema.Table, strings.Join(cols, ", "), placeholders(len(cols)+1))
		args = append([]any{id}, values...)
	}

	result, err := t.db.ExecContext(ctx, query, args...)
	if err != nil {
		return rec, fmt.Errorf("failed to save into %s: %w", t.schema.Table, mapSQLiteError(err))
	}

	if id == 0 {
		newID, err := result.LastInsertId()
		if err != nil {
			return rec, fmt.Errorf("failed to get %s ID: %w", t.schema.Table, err)
		}
		rec = t.schema.WithID(rec, newID)
	}

	slog.Debug("saved record", "table", t.schema.Table, "id", t.schema.ID(rec))
	t.changes.notify()
	return rec, nil
}

// Delete removes the row with rec's ID. Deleting a row that does not exist
// is not an error.
func (t *Table[T]) Delete(ctx context.Context, rec T) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	id := t.schema.ID(rec)
	result, err := t.db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = ?", t.schema.Table), id)
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", t.schema.Table, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read %s delete result: %w", t.schema.Table, err)
	}
	if affected > 0 {
		slog.Debug("deleted record", "table", t.schema.Table, "id", id)
		t.changes.notify()
	}
	return nil
}

// Get returns the record with the given ID, or nil if there is none.
func (t *Table[T]) Get(ctx context.Context, id int64) (*T, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	row := t.db.QueryRowContext(ctx, t.schema.selectSQL()+" WHERE id = ?", id)
	rec, err := t.schema.Scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", t.schema.Table, err)
	}
	return &rec, nil
}

// First returns the row with the lowest ID, or nil for an empty table.
func (t *Table[T]) First(ctx context.Context) (*T, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	row := t.db.QueryRowContext(ctx, t.schema.selectSQL()+" ORDER BY id LIMIT 1")
	rec, err := t.schema.Scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", t.schema.Table, err)
	}
	return &rec, nil
}

// FindBy returns the first row whose column equals value, or nil.
func (t *Table[T]) FindBy(ctx context.Context, column string, value any) (*T, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if !t.schema.hasColumn(column) {
		return nil, fmt.Errorf("%w: %s.%s", ErrUnknownColumn, t.schema.Table, column)
	}

	row := t.db.QueryRowContext(ctx, t.schema.selectSQL()+" WHERE "+column+" = ? ORDER BY id LIMIT 1", value)
	rec, err := t.schema.Scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", t.schema.Table, err)
	}
	return &rec, nil
}

// List returns a snapshot of every row ordered by ID.
func (t *Table[T]) List(ctx context.Context) ([]T, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	return t.query(ctx, t.schema.selectSQL()+" ORDER BY id")
}

// ListByName returns a snapshot of rows whose name contains pattern.
func (t *Table[T]) ListByName(ctx context.Context, pattern string) ([]T, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if t.schema.NameColumn == "" {
		return nil, fmt.Errorf("%w: %s has no name column", ErrInvalidSchema, t.schema.Table)
	}
	query := t.schema.selectSQL() + " WHERE " + t.schema.NameColumn + " LIKE ? ORDER BY id"
	return t.query(ctx, query, "%"+pattern+"%")
}

// Count returns the number of rows.
func (t *Table[T]) Count(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	if err := t.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+t.schema.Table).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", t.schema.Table, err)
	}
	return count, nil
}

// SelectAll returns a live sequence of full-table snapshots.
func (t *Table[T]) SelectAll(ctx context.Context) *Watch[T] {
	return t.watch(ctx, t.List)
}

// SelectByName returns a live sequence of snapshots filtered to rows whose
// name contains pattern. Matching follows SQLite LIKE, so it is
// case-insensitive for ASCII and treats % and _ as wildcards.
func (t *Table[T]) SelectByName(ctx context.Context, pattern string) *Watch[T] {
	return t.watch(ctx, func(ctx context.Context) ([]T, error) {
		return t.ListByName(ctx, pattern)
	})
}

func (t *Table[T]) query(ctx context.Context, query string, args ...any) ([]T, error) {
	rows, err := t.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", t.schema.Table, err)
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		rec, err := t.schema.Scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", t.schema.Table, err)
		}
		out = append(out, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s: %w", t.schema.Table, err)
	}
	return out, nil
}

func mapSQLiteError(err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return fmt.Errorf("%w: %w", common.ErrDuplicateEntry, err)
	}
	return err
}
