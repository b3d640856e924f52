// Package engine computes replacement predictions and due checks from
// ingested replacement history, annotated with lifespan figures from the
// resolution cascade. Each run is a pure function over a snapshot of the
// store plus live cascade lookups; no state survives between runs beyond the
// optional lifespan cache.
package engine

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/partwatch/partwatch/internal/lifespan"
	"github.com/partwatch/partwatch/internal/store"
)

// Prediction methods, recorded for auditability.
const (
	MethodEquipmentHistory = "equipment_specific_history"
	MethodPartTypeAverage  = "part_type_average"
)

// defaultIntervalDays is the static fallback when neither the pair nor the
// part type has enough history for an empirical interval.
const defaultIntervalDays = 365

// MachineSnapshot is denormalized machine reference data attached to a
// prediction for downstream display.
type MachineSnapshot struct {
	MachineID   string `json:"machine_id"`
	MachineName string `json:"machine_name"`
	Location    string `json:"location"`
	Status      string `json:"status"`
	Producer    string `json:"producer"`
}

// PartSnapshot is denormalized part metadata attached to a prediction.
type PartSnapshot struct {
	PartName     string `json:"part_name"`
	Description  string `json:"description"`
	Manufacturer string `json:"manufacturer"`
}

// Prediction is one per-pair replacement forecast. Field names are a
// compatibility surface consumed by the dashboard layer.
type Prediction struct {
	EquipmentID              string          `json:"equipment_id"`
	PartID                   string          `json:"part_id"`
	LastReplacement          Date            `json:"last_replacement"`
	PredictedNextReplacement Date            `json:"predicted_next_replacement"`
	AverageIntervalDays      float64         `json:"average_interval_days"`
	PredictionMethod         string          `json:"prediction_method"`
	Due                      bool            `json:"due"`
	LifespanMonths           int             `json:"lifespan_months"`
	MachineSnapshot          MachineSnapshot `json:"machine_snapshot"`
	PartSnapshot             PartSnapshot    `json:"part_snapshot"`
}

// Predictor computes replacement predictions over the full event history.
type Predictor struct {
	DB       *store.DB
	Resolver *lifespan.Resolver

	// Now overrides the clock for tests. Defaults to time.Now.
	Now func() time.Time

	// Workers bounds the parallel lifespan fan-out. Defaults to 4.
	Workers int

	// CacheMaxAge enables the persistent lifespan cache when positive.
	CacheMaxAge time.Duration
}

func (p *Predictor) now() time.Time {
	if p.Now != nil {
		return stripOffset(p.Now())
	}
	return stripOffset(time.Now())
}

// Predict produces one prediction per (equipment, part) pair observed in
// history. An unreadable store is the only fatal condition; per-record
// problems degrade to skips or defaults.
func (p *Predictor) Predict(ctx context.Context) ([]Prediction, error) {
	parts, err := p.DB.ListParts()
	if err != nil {
		return nil, fmt.Errorf("load replacement records: %w", err)
	}
	machines, err := p.DB.ListMachines()
	if err != nil {
		return nil, fmt.Errorf("load machines: %w", err)
	}

	machineByID := machineIndex(machines)
	histories := BuildHistories(CollectEvents(parts))
	typeAverages := PartTypeAverages(histories)

	keys := sortedPairs(histories)

	// Resolve lifespans once per distinct part in the prediction set.
	partInfo := latestRecords(parts)
	needed := make(map[string]store.PartRecord)
	for _, key := range keys {
		needed[key.PartID] = partInfo[key.PartID]
	}
	lookup := &lifespanLookup{
		db:          p.DB,
		resolver:    p.Resolver,
		cacheMaxAge: p.CacheMaxAge,
		workers:     p.Workers,
	}
	estimates := lookup.resolveAll(ctx, needed, machineByID)

	now := p.now()
	predictions := make([]Prediction, 0, len(keys))
	for _, key := range keys {
		dates := histories[key]
		last := dates[len(dates)-1]

		var avgDays float64
		var method string
		if intervals := pairIntervals(dates); len(intervals) > 0 {
			avgDays = meanDays(intervals)
			method = MethodEquipmentHistory
		} else if pooled, ok := typeAverages[key.PartID]; ok {
			avgDays = pooled
			method = MethodPartTypeAverage
		} else {
			avgDays = defaultIntervalDays
			method = MethodPartTypeAverage
		}

		next := last.Add(time.Duration(avgDays * float64(24*time.Hour)))

		predictions = append(predictions, Prediction{
			EquipmentID:              key.EquipmentID,
			PartID:                   key.PartID,
			LastReplacement:          Date{last},
			PredictedNextReplacement: Date{next},
			AverageIntervalDays:      avgDays,
			PredictionMethod:         method,
			Due:                      !now.Before(next),
			LifespanMonths:           estimates[key.PartID].Months,
			MachineSnapshot:          snapshotMachine(machineByID, key.EquipmentID),
			PartSnapshot:             snapshotPart(partInfo, key.PartID),
		})
	}

	return predictions, nil
}

// sortedPairs gives a deterministic pair order so repeated runs over the same
// history produce identical output.
func sortedPairs(histories map[PairKey][]time.Time) []PairKey {
	keys := make([]PairKey, 0, len(histories))
	for key := range histories {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].EquipmentID != keys[j].EquipmentID {
			return keys[i].EquipmentID < keys[j].EquipmentID
		}
		return keys[i].PartID < keys[j].PartID
	})
	return keys
}

func snapshotMachine(machines map[string]store.Machine, equipmentID string) MachineSnapshot {
	m, ok := machines[equipmentID]
	if !ok {
		return MachineSnapshot{}
	}
	return MachineSnapshot{
		MachineID:   m.RollingstockID,
		MachineName: m.Name,
		Location:    m.Location,
		Status:      m.Status,
		Producer:    m.Producer,
	}
}

func snapshotPart(partInfo map[string]store.PartRecord, partID string) PartSnapshot {
	rec, ok := partInfo[partID]
	if !ok {
		return PartSnapshot{}
	}
	return PartSnapshot{
		PartName:     rec.Name,
		Description:  rec.Description,
		Manufacturer: rec.Manufacturer,
	}
}
