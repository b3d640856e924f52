package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
)

// flexID accepts a JSON number or string and normalizes it to text.
// The source exports mix integer and string identifiers; null stays empty.
type flexID string

func (f *flexID) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*f = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*f = flexID(strings.TrimSpace(v))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexID(n.String())
	return nil
}

// importMachine mirrors the machine objects in the source db.json export.
type importMachine struct {
	RollingstockID flexID `json:"rollingstockId"`
	Name           string `json:"name"`
	Location       string `json:"location"`
	Status         string `json:"status"`
	Producer       string `json:"producer"`
}

// importPart mirrors the sparepart objects in the source db.json export.
// Field names follow the upstream maintenance system's column names.
type importPart struct {
	PartID       flexID  `json:"SPAREPARTID"`
	EquipmentID  flexID  `json:"ROLLINGSTOCKID"`
	Note         string  `json:"NOTE"`
	Description  string  `json:"DESCRIPTION"`
	Manufacturer string  `json:"MANUFACTURER"`
	ReplaceDate  string  `json:"REPLACEDATE"`
	UnitPrice    float64 `json:"UNITPRICE"`
	Quantity     int     `json:"QUANTITY"`
}

type importFile struct {
	Machines   []importMachine `json:"machines"`
	SpareParts []importPart    `json:"spareparts"`
}

// ImportStats summarizes an import run.
type ImportStats struct {
	Machines int
	Parts    int
	Skipped  int
}

// ImportFile loads a db.json export into the store, replacing any previously
// imported data. Records with a null part or equipment identifier are
// discarded and logged; an unreadable file aborts the import.
func (db *DB) ImportFile(path string) (*ImportStats, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var f importFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := db.DeleteAllParts(); err != nil {
		return nil, fmt.Errorf("clear parts: %w", err)
	}
	if err := db.DeleteAllMachines(); err != nil {
		return nil, fmt.Errorf("clear machines: %w", err)
	}

	stats := &ImportStats{}

	for _, m := range f.Machines {
		if m.RollingstockID == "" {
			log.Printf("import: skipping machine %q: no rollingstock id", m.Name)
			stats.Skipped++
			continue
		}
		machine := &Machine{
			RollingstockID: string(m.RollingstockID),
			Name:           m.Name,
			Location:       m.Location,
			Status:         m.Status,
			Producer:       m.Producer,
		}
		if err := db.UpsertMachine(machine); err != nil {
			return nil, err
		}
		stats.Machines++
	}

	for _, p := range f.SpareParts {
		if p.PartID == "" || p.EquipmentID == "" {
			log.Printf("import: skipping record %q: null identifier", p.Note)
			stats.Skipped++
			continue
		}
		quantity := p.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		record := &PartRecord{
			PartID:       string(p.PartID),
			EquipmentID:  string(p.EquipmentID),
			Name:         p.Note,
			Description:  p.Description,
			Manufacturer: p.Manufacturer,
			ReplaceDate:  p.ReplaceDate,
			UnitPrice:    p.UnitPrice,
			Quantity:     quantity,
		}
		if err := db.InsertPart(record); err != nil {
			return nil, err
		}
		stats.Parts++
	}

	return stats, nil
}
