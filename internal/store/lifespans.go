package store

import (
	"database/sql"
	"fmt"
	"time"
)

// CachedLifespan is a resolved lifespan figure persisted between runs so the
// cascade's network stages aren't re-queried for every batch.
type CachedLifespan struct {
	PartID     string
	Months     int
	Source     string
	ResolvedAt int64
}

// GetLifespan returns the cached lifespan for a part if it is younger than
// maxAge, or nil on miss/expiry.
func (db *DB) GetLifespan(partID string, maxAge time.Duration) (*CachedLifespan, error) {
	var c CachedLifespan
	err := db.QueryRow(`
		SELECT part_id, months, source, resolved_at
		FROM lifespan_cache WHERE part_id = ?
	`, partID).Scan(&c.PartID, &c.Months, &c.Source, &c.ResolvedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get lifespan %s: %w", partID, err)
	}

	if maxAge > 0 {
		age := time.Since(time.UnixMilli(c.ResolvedAt))
		if age > maxAge {
			return nil, nil
		}
	}
	return &c, nil
}

// SaveLifespan upserts the cached lifespan for a part.
func (db *DB) SaveLifespan(partID string, months int, source string) error {
	now := time.Now().UnixMilli()
	_, err := db.Exec(`
		INSERT INTO lifespan_cache (part_id, months, source, resolved_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(part_id) DO UPDATE SET
			months      = excluded.months,
			source      = excluded.source,
			resolved_at = excluded.resolved_at
	`, partID, months, source, now)
	if err != nil {
		return fmt.Errorf("save lifespan %s: %w", partID, err)
	}
	return nil
}

// PurgeLifespans clears the lifespan cache.
func (db *DB) PurgeLifespans() (int64, error) {
	result, err := db.Exec("DELETE FROM lifespan_cache")
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
