package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the schema version every table database is
// migrated to. There is no migration path beyond it.
const ExpectedSchemaVersion = 1

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

func migrationsFor[T any](schema Schema[T]) []Migration {
	return []Migration{
		{
			Version:     1,
			Description: "Create " + schema.Table,
			Up: func(tx *sql.Tx) error {
				_, err := tx.Exec(schema.createTableSQL())
				return err
			},
		},
	}
}

// migrate applies pending migrations and verifies the final version.
func migrate(ctx context.Context, db *sql.DB, table string, migrations []Migration) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	var currentVersion int
	if err := db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&currentVersion); err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, txErr := db.BeginTx(ctx, nil)
		if txErr != nil {
			return fmt.Errorf("failed to begin transaction: %w", txErr)
		}

		if upErr := migration.Up(tx); upErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, upErr)
		}

		if _, execErr := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); execErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to update schema version: %w", execErr)
		}

		if commitErr := tx.Commit(); commitErr != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, commitErr)
		}

		slog.Debug("Applied migration",
			"table", table,
			"version", migration.Version,
			"description", migration.Description)
	}

	var finalVersion int
	if err := db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&finalVersion); err != nil {
		return fmt.Errorf("failed to verify final schema version: %w", err)
	}

	if finalVersion != ExpectedSchemaVersion {
		return fmt.Errorf("database schema version mismatch for %s: expected %d, got %d", table, ExpectedSchemaVersion, finalVersion)
	}

	return nil
}
