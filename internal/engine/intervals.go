package engine

import (
	"log"
	"sort"
	"time"

	"github.com/partwatch/partwatch/internal/store"
)

// PairKey identifies an (equipment, part) combination, the prediction unit.
type PairKey struct {
	EquipmentID string
	PartID      string
}

// ReplacementEvent is one validated replacement: a pair plus the parsed date.
type ReplacementEvent struct {
	EquipmentID string
	PartID      string
	ReplacedAt  time.Time
}

// CollectEvents turns raw replacement records into validated events. Records
// with a missing identifier are discarded; dates that are absent or fail to
// parse are skipped and logged, never fatal.
func CollectEvents(parts []store.PartRecord) []ReplacementEvent {
	var events []ReplacementEvent
	for _, p := range parts {
		if p.PartID == "" || p.EquipmentID == "" {
			log.Printf("events: skipping record %d: null identifier", p.ID)
			continue
		}
		dt, err := ParseEventDate(p.ReplaceDate)
		if err == ErrNoDate {
			continue
		}
		if err != nil {
			log.Printf("events: skipping record for part %s on equipment %s: %v", p.PartID, p.EquipmentID, err)
			continue
		}
		events = append(events, ReplacementEvent{
			EquipmentID: p.EquipmentID,
			PartID:      p.PartID,
			ReplacedAt:  dt,
		})
	}
	return events
}

// BuildHistories partitions events by pair and sorts each pair's dates
// ascending.
func BuildHistories(events []ReplacementEvent) map[PairKey][]time.Time {
	histories := make(map[PairKey][]time.Time)
	for _, e := range events {
		key := PairKey{EquipmentID: e.EquipmentID, PartID: e.PartID}
		histories[key] = append(histories[key], e.ReplacedAt)
	}
	for key := range histories {
		dates := histories[key]
		sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	}
	return histories
}

// intervalDays is the whole-day difference between two dates, truncated.
func intervalDays(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

// pairIntervals returns the consecutive day-differences of a sorted history.
// Fewer than two dates yields nothing: single events are never interval
// source material.
func pairIntervals(dates []time.Time) []int {
	if len(dates) < 2 {
		return nil
	}
	intervals := make([]int, 0, len(dates)-1)
	for i := 1; i < len(dates); i++ {
		intervals = append(intervals, intervalDays(dates[i-1], dates[i]))
	}
	return intervals
}

func meanDays(intervals []int) float64 {
	sum := 0
	for _, d := range intervals {
		sum += d
	}
	return float64(sum) / float64(len(intervals))
}

// PartTypeAverages pools every equipment-specific interval across all
// equipment sharing a part ID and averages them. The pool is unweighted: an
// equipment with many replacements contributes more intervals than one with
// few. A part with no pair holding at least two dates gets no entry; callers
// fall back to the static default.
func PartTypeAverages(histories map[PairKey][]time.Time) map[string]float64 {
	pooled := make(map[string][]int)
	for key, dates := range histories {
		intervals := pairIntervals(dates)
		if len(intervals) == 0 {
			continue
		}
		pooled[key.PartID] = append(pooled[key.PartID], intervals...)
	}

	averages := make(map[string]float64, len(pooled))
	for partID, intervals := range pooled {
		averages[partID] = meanDays(intervals)
	}
	return averages
}
