package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the application expects.
const ExpectedSchemaVersion = 2

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial snapshot schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS vendors (
					id TEXT PRIMARY KEY,
					name TEXT NOT NULL,
					email TEXT,
					phone TEXT,
					category TEXT,
					city TEXT,
					status TEXT NOT NULL,
					coupons INTEGER DEFAULT 0,
					joined_at DATETIME
				)`,
				`CREATE INDEX idx_vendors_status ON vendors(status)`,

				`CREATE TABLE IF NOT EXISTS coupons (
					id TEXT PRIMARY KEY,
					vendor_id TEXT,
					vendor_name TEXT,
					title TEXT NOT NULL,
					code TEXT,
					category TEXT,
					status TEXT NOT NULL,
					discount REAL DEFAULT 0,
					redemptions INTEGER DEFAULT 0,
					created_at DATETIME,
					expires_at DATETIME
				)`,
				`CREATE INDEX idx_coupons_vendor ON coupons(vendor_id)`,
				`CREATE INDEX idx_coupons_status ON coupons(status)`,

				`CREATE TABLE IF NOT EXISTS payments (
					id TEXT PRIMARY KEY,
					vendor_id TEXT,
					vendor_name TEXT,
					method TEXT,
					reference TEXT,
					status TEXT NOT NULL,
					amount REAL DEFAULT 0,
					paid_at DATETIME
				)`,
				`CREATE INDEX idx_payments_status ON payments(status)`,

				`CREATE TABLE IF NOT EXISTS users (
					id TEXT PRIMARY KEY,
					name TEXT,
					email TEXT,
					city TEXT,
					status TEXT NOT NULL,
					redemptions INTEGER DEFAULT 0,
					signed_up_at DATETIME
				)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Track last sync time per resource",
		Up: func(tx *sql.Tx) error {
			_, err := tx.Exec(`
				CREATE TABLE IF NOT EXISTS sync_meta (
					resource TEXT PRIMARY KEY,
					synced_at DATETIME NOT NULL
				)`)
			return err
		},
	},
}

// Migrate brings the database schema up to the expected version.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_versions (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`); err != nil {
		return fmt.Errorf("failed to create schema_versions table: %w", err)
	}

	var current int
	err := s.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_versions`).Scan(&current)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= current {
			continue
		}

		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin migration %d: %w", migration.Version, err)
		}

		if err := migration.Up(tx); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d (%s) failed: %w", migration.Version, migration.Description, err)
		}

		if _, err := tx.Exec(`INSERT INTO schema_versions (version) VALUES (?)`, migration.Version); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
		}

		slog.Info("applied migration",
			"version", migration.Version,
			"description", migration.Description)
	}

	return nil
}
