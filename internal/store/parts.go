package store

import (
	"database/sql"
	"fmt"
	"time"
)

// PartRecord is one ingested replacement record: a spare part fitted to a
// piece of equipment, with the free-text date it was replaced. The date is
// stored as ingested; parsing happens in the engine so malformed values can
// be skipped per run instead of rejected at import.
type PartRecord struct {
	ID           int64
	PartID       string
	EquipmentID  string
	Name         string
	Description  string
	Manufacturer string
	ReplaceDate  string
	UnitPrice    float64
	Quantity     int
	CreatedAt    int64
}

// InsertPart appends a replacement record.
func (db *DB) InsertPart(p *PartRecord) error {
	now := time.Now().UnixMilli()

	result, err := db.Exec(`
		INSERT INTO spare_parts (part_id, equipment_id, name, description, manufacturer, replace_date, unit_price, quantity, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, p.PartID, p.EquipmentID, p.Name, p.Description, p.Manufacturer, p.ReplaceDate, p.UnitPrice, p.Quantity, now)
	if err != nil {
		return fmt.Errorf("insert part %s: %w", p.PartID, err)
	}

	p.ID, _ = result.LastInsertId()
	p.CreatedAt = now
	return nil
}

// ListParts returns all replacement records ordered by insertion.
func (db *DB) ListParts() ([]PartRecord, error) {
	rows, err := db.Query(`
		SELECT id, part_id, equipment_id, name, description, manufacturer, replace_date, unit_price, quantity, created_at
		FROM spare_parts ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("list parts: %w", err)
	}
	defer rows.Close()

	var parts []PartRecord
	for rows.Next() {
		var p PartRecord
		if err := rows.Scan(&p.ID, &p.PartID, &p.EquipmentID, &p.Name, &p.Description, &p.Manufacturer,
			&p.ReplaceDate, &p.UnitPrice, &p.Quantity, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan part: %w", err)
		}
		parts = append(parts, p)
	}
	return parts, rows.Err()
}

// GetPartInfo returns the most recent record for a part ID, or nil if the
// part has never been ingested. Used to feed part/machine metadata into the
// lifespan cascade.
func (db *DB) GetPartInfo(partID string) (*PartRecord, error) {
	var p PartRecord
	err := db.QueryRow(`
		SELECT id, part_id, equipment_id, name, description, manufacturer, replace_date, unit_price, quantity, created_at
		FROM spare_parts WHERE part_id = ? ORDER BY id DESC LIMIT 1
	`, partID).Scan(&p.ID, &p.PartID, &p.EquipmentID, &p.Name, &p.Description, &p.Manufacturer,
		&p.ReplaceDate, &p.UnitPrice, &p.Quantity, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get part info %s: %w", partID, err)
	}
	return &p, nil
}

// CountParts returns the number of replacement records.
func (db *DB) CountParts() (int, error) {
	var n int
	err := db.QueryRow("SELECT COUNT(*) FROM spare_parts").Scan(&n)
	return n, err
}

// DeleteAllParts clears the replacement records. Used by re-imports.
func (db *DB) DeleteAllParts() error {
	_, err := db.Exec("DELETE FROM spare_parts")
	return err
}

// DeleteAllMachines clears the machine reference data. Used by re-imports.
func (db *DB) DeleteAllMachines() error {
	_, err := db.Exec("DELETE FROM machines")
	return err
}
