package store

import (
	"fmt"
)

type migration struct {
	Version     int
	Description string
	SQL         string
}

var migrations = []migration{
	{
		Version:     1,
		Description: "machines: rolling stock reference data",
		SQL: `
CREATE TABLE machines (
    id              INTEGER PRIMARY KEY,
    rollingstock_id TEXT NOT NULL UNIQUE,
    name            TEXT,
    location        TEXT,
    status          TEXT,
    producer        TEXT,
    created_at      INTEGER NOT NULL,
    updated_at      INTEGER NOT NULL
);

CREATE INDEX idx_machines_producer ON machines(producer);
`,
	},
	{
		Version:     2,
		Description: "spare_parts: replacement records keyed by (equipment, part)",
		SQL: `
CREATE TABLE spare_parts (
    id              INTEGER PRIMARY KEY,
    part_id         TEXT NOT NULL,
    equipment_id    TEXT NOT NULL,
    name            TEXT,
    description     TEXT,
    manufacturer    TEXT,
    replace_date    TEXT,
    unit_price      REAL NOT NULL DEFAULT 0,
    quantity        INTEGER NOT NULL DEFAULT 1,
    created_at      INTEGER NOT NULL
);

CREATE INDEX idx_parts_part      ON spare_parts(part_id);
CREATE INDEX idx_parts_equipment ON spare_parts(equipment_id);
CREATE INDEX idx_parts_pair      ON spare_parts(equipment_id, part_id);
`,
	},
	{
		Version:     3,
		Description: "lifespan_cache: resolved months per part",
		SQL: `
CREATE TABLE lifespan_cache (
    part_id     TEXT PRIMARY KEY,
    months      INTEGER NOT NULL,
    source      TEXT NOT NULL,
    resolved_at INTEGER NOT NULL
);
`,
	},
}

func (db *DB) migrate() error {
	// Create schema_versions table if it doesn't exist
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_versions (
			version     INTEGER PRIMARY KEY,
			description TEXT NOT NULL,
			applied_at  INTEGER NOT NULL DEFAULT (strftime('%s', 'now') * 1000)
		)
	`)
	if err != nil {
		return fmt.Errorf("create schema_versions: %w", err)
	}

	for _, m := range migrations {
		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM schema_versions WHERE version = ?", m.Version).Scan(&count)
		if err != nil {
			return fmt.Errorf("check migration %d: %w", m.Version, err)
		}
		if count > 0 {
			continue
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("begin migration %d: %w", m.Version, err)
		}

		if _, err := tx.Exec(m.SQL); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d (%s): %w", m.Version, m.Description, err)
		}

		if _, err := tx.Exec(
			"INSERT INTO schema_versions (version, description) VALUES (?, ?)",
			m.Version, m.Description,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("record migration %d: %w", m.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %d: %w", m.Version, err)
		}
	}

	return nil
}

// SchemaVersion returns the current schema version.
func (db *DB) SchemaVersion() (int, error) {
	var version int
	err := db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_versions").Scan(&version)
	return version, err
}
