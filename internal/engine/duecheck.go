package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/partwatch/partwatch/internal/lifespan"
	"github.com/partwatch/partwatch/internal/store"
)

// DueCheck flags a pair whose lifespan-based next-check date has passed. It
// answers "is this part overdue per manufacturer/industry guidance", not
// "per this equipment's own history": the month figure comes exclusively
// from the cascade, never from empirical intervals.
type DueCheck struct {
	EquipmentID       string `json:"equipment_id"`
	PartID            string `json:"part_id"`
	LastReplacement   Date   `json:"last_replacement"`
	ExpectedNextCheck Date   `json:"expected_next_check"`
	LifespanMonths    int    `json:"lifespan_months"`
	LifespanSource    string `json:"lifespan_source"` // "online" or "default"
}

// Scanner runs lifespan-based due checks over the event history.
type Scanner struct {
	DB       *store.DB
	Resolver *lifespan.Resolver

	Now         func() time.Time
	Workers     int
	CacheMaxAge time.Duration
}

func (s *Scanner) now() time.Time {
	if s.Now != nil {
		return stripOffset(s.Now())
	}
	return stripOffset(time.Now())
}

// Scan returns the pairs that are overdue for a check. Months convert to
// days with a flat x30 multiplier, an approximation rather than calendar
// arithmetic.
func (s *Scanner) Scan(ctx context.Context) ([]DueCheck, error) {
	parts, err := s.DB.ListParts()
	if err != nil {
		return nil, fmt.Errorf("load replacement records: %w", err)
	}
	machines, err := s.DB.ListMachines()
	if err != nil {
		return nil, fmt.Errorf("load machines: %w", err)
	}

	machineByID := machineIndex(machines)
	histories := BuildHistories(CollectEvents(parts))
	keys := sortedPairs(histories)

	partInfo := latestRecords(parts)
	needed := make(map[string]store.PartRecord)
	for _, key := range keys {
		needed[key.PartID] = partInfo[key.PartID]
	}
	lookup := &lifespanLookup{
		db:          s.DB,
		resolver:    s.Resolver,
		cacheMaxAge: s.CacheMaxAge,
		workers:     s.Workers,
	}
	estimates := lookup.resolveAll(ctx, needed, machineByID)

	now := s.now()
	var checks []DueCheck
	for _, key := range keys {
		dates := histories[key]
		last := dates[len(dates)-1]

		est := estimates[key.PartID]
		next := last.Add(time.Duration(est.Months) * 30 * 24 * time.Hour)
		if now.Before(next) {
			continue
		}

		checks = append(checks, DueCheck{
			EquipmentID:       key.EquipmentID,
			PartID:            key.PartID,
			LastReplacement:   Date{last},
			ExpectedNextCheck: Date{next},
			LifespanMonths:    est.Months,
			LifespanSource:    sourceLabel(est.Source),
		})
	}

	return checks, nil
}

// sourceLabel collapses the cascade's source into the two-valued
// traceability field the due-check consumers expect.
func sourceLabel(src lifespan.Source) string {
	if src == lifespan.SourceCategoryDefault {
		return "default"
	}
	return "online"
}
