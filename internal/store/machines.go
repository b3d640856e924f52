package store

import (
	"database/sql"
	"fmt"
	"time"
)

// Machine is a rolling-stock reference record. It enriches prompts and
// prediction snapshots; the engine never writes to it.
type Machine struct {
	ID             int64
	RollingstockID string
	Name           string
	Location       string
	Status         string
	Producer       string
	CreatedAt      int64
	UpdatedAt      int64
}

// UpsertMachine inserts or updates a machine by its rollingstock ID.
func (db *DB) UpsertMachine(m *Machine) error {
	now := time.Now().UnixMilli()

	_, err := db.Exec(`
		INSERT INTO machines (rollingstock_id, name, location, status, producer, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(rollingstock_id) DO UPDATE SET
			name       = excluded.name,
			location   = excluded.location,
			status     = excluded.status,
			producer   = excluded.producer,
			updated_at = excluded.updated_at
	`, m.RollingstockID, m.Name, m.Location, m.Status, m.Producer, now, now)
	if err != nil {
		return fmt.Errorf("upsert machine %s: %w", m.RollingstockID, err)
	}
	return nil
}

// GetMachine returns the machine for a rollingstock ID, or nil if absent.
func (db *DB) GetMachine(rollingstockID string) (*Machine, error) {
	var m Machine
	err := db.QueryRow(`
		SELECT id, rollingstock_id, name, location, status, producer, created_at, updated_at
		FROM machines WHERE rollingstock_id = ?
	`, rollingstockID).Scan(&m.ID, &m.RollingstockID, &m.Name, &m.Location, &m.Status, &m.Producer, &m.CreatedAt, &m.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get machine %s: %w", rollingstockID, err)
	}
	return &m, nil
}

// ListMachines returns all machines ordered by rollingstock ID.
func (db *DB) ListMachines() ([]Machine, error) {
	rows, err := db.Query(`
		SELECT id, rollingstock_id, name, location, status, producer, created_at, updated_at
		FROM machines ORDER BY rollingstock_id
	`)
	if err != nil {
		return nil, fmt.Errorf("list machines: %w", err)
	}
	defer rows.Close()

	var machines []Machine
	for rows.Next() {
		var m Machine
		if err := rows.Scan(&m.ID, &m.RollingstockID, &m.Name, &m.Location, &m.Status, &m.Producer, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan machine: %w", err)
		}
		machines = append(machines, m)
	}
	return machines, rows.Err()
}

// CountMachines returns the number of machine records.
func (db *DB) CountMachines() (int, error) {
	var n int
	err := db.QueryRow("SELECT COUNT(*) FROM machines").Scan(&n)
	return n, err
}
