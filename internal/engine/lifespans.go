package engine

import (
	"context"
	"log"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/partwatch/partwatch/internal/lifespan"
	"github.com/partwatch/partwatch/internal/store"
)

// lifespanLookup resolves month figures through the cascade with an optional
// persistent cache in front of it.
type lifespanLookup struct {
	db          *store.DB
	resolver    *lifespan.Resolver
	cacheMaxAge time.Duration
	workers     int
}

// buildRequest assembles the cascade request from the part's most recent
// record and its machine's reference data. Missing joins degrade to
// placeholders, never errors.
func buildRequest(partID string, rec store.PartRecord, machines map[string]store.Machine) lifespan.Request {
	req := lifespan.Request{
		PartName:     rec.Name,
		Manufacturer: rec.Manufacturer,
	}
	if req.PartName == "" {
		req.PartName = "Part " + partID
	}
	if m, ok := machines[rec.EquipmentID]; ok {
		req.MachineName = m.Name
		if req.Manufacturer == "" {
			req.Manufacturer = m.Producer
		}
	}
	if req.MachineName == "" {
		req.MachineName = "Unknown Machine"
	}
	return req
}

// resolve returns the lifespan estimate for one part, consulting the
// persistent cache first when enabled.
func (l *lifespanLookup) resolve(ctx context.Context, partID string, req lifespan.Request) lifespan.Estimate {
	if l.cacheMaxAge > 0 {
		cached, err := l.db.GetLifespan(partID, l.cacheMaxAge)
		if err != nil {
			log.Printf("lifespan: cache read for part %s: %v", partID, err)
		} else if cached != nil {
			return lifespan.Estimate{Months: cached.Months, Source: lifespan.Source(cached.Source)}
		}
	}

	est := l.resolver.Resolve(ctx, req)

	if l.cacheMaxAge > 0 {
		if err := l.db.SaveLifespan(partID, est.Months, string(est.Source)); err != nil {
			log.Printf("lifespan: cache write for part %s: %v", partID, err)
		}
	}
	return est
}

// resolveAll resolves lifespans for a set of parts with a bounded parallel
// fan-out. Each part's resolution is independent and writes only its own
// slot, so no locking is needed.
func (l *lifespanLookup) resolveAll(ctx context.Context, partInfo map[string]store.PartRecord,
	machines map[string]store.Machine) map[string]lifespan.Estimate {

	partIDs := make([]string, 0, len(partInfo))
	for id := range partInfo {
		partIDs = append(partIDs, id)
	}
	sort.Strings(partIDs)

	workers := l.workers
	if workers <= 0 {
		workers = 4
	}

	results := make([]lifespan.Estimate, len(partIDs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, id := range partIDs {
		i, id := i, id
		g.Go(func() error {
			results[i] = l.resolve(gctx, id, buildRequest(id, partInfo[id], machines))
			return nil
		})
	}
	g.Wait() // stages never return errors past the cascade

	estimates := make(map[string]lifespan.Estimate, len(partIDs))
	for i, id := range partIDs {
		estimates[id] = results[i]
	}
	return estimates
}

// latestRecords maps each part ID to its most recent record, the metadata
// source for prompts and snapshots.
func latestRecords(parts []store.PartRecord) map[string]store.PartRecord {
	info := make(map[string]store.PartRecord)
	for _, p := range parts {
		if p.PartID == "" {
			continue
		}
		info[p.PartID] = p
	}
	return info
}

func machineIndex(machines []store.Machine) map[string]store.Machine {
	idx := make(map[string]store.Machine, len(machines))
	for _, m := range machines {
		idx[m.RollingstockID] = m
	}
	return idx
}
