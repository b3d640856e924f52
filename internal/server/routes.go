package server

import (
	"encoding/json"
	"net/http"

	"github.com/partwatch/partwatch/internal/engine"
	"github.com/partwatch/partwatch/internal/lifespan"
)

func (s *Server) handlePredictions(w http.ResponseWriter, r *http.Request) {
	predictions, err := s.predictor.Predict(r.Context())
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
		return
	}
	if predictions == nil {
		predictions = []engine.Prediction{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(predictions)
}

func (s *Server) handleDueChecks(w http.ResponseWriter, r *http.Request) {
	checks, err := s.scanner.Scan(r.Context())
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
		return
	}
	if checks == nil {
		checks = []engine.DueCheck{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(checks)
}

// handleLifespan resolves a single ad-hoc lifespan query:
// GET /api/lifespan?part=Oil+Filter&machine=CR+Pump&manufacturer=Mahle
func (s *Server) handleLifespan(w http.ResponseWriter, r *http.Request) {
	part := r.URL.Query().Get("part")
	if part == "" {
		http.Error(w, `{"error":"part parameter required"}`, http.StatusBadRequest)
		return
	}

	est := s.resolver.Resolve(r.Context(), lifespan.Request{
		PartName:     part,
		MachineName:  r.URL.Query().Get("machine"),
		Manufacturer: r.URL.Query().Get("manufacturer"),
	})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(est)
}

func (s *Server) handleMachines(w http.ResponseWriter, r *http.Request) {
	machines, err := s.db.ListMachines()
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
		return
	}

	type machineOut struct {
		RollingstockID string `json:"rollingstock_id"`
		Name           string `json:"name"`
		Location       string `json:"location"`
		Status         string `json:"status"`
		Producer       string `json:"producer"`
	}
	out := make([]machineOut, 0, len(machines))
	for _, m := range machines {
		out = append(out, machineOut{
			RollingstockID: m.RollingstockID,
			Name:           m.Name,
			Location:       m.Location,
			Status:         m.Status,
			Producer:       m.Producer,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

func (s *Server) handleParts(w http.ResponseWriter, r *http.Request) {
	parts, err := s.db.ListParts()
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
		return
	}

	type partOut struct {
		PartID       string  `json:"part_id"`
		EquipmentID  string  `json:"equipment_id"`
		Name         string  `json:"name"`
		Description  string  `json:"description"`
		Manufacturer string  `json:"manufacturer"`
		ReplaceDate  string  `json:"replace_date"`
		UnitPrice    float64 `json:"unit_price"`
		Quantity     int     `json:"quantity"`
	}
	out := make([]partOut, 0, len(parts))
	for _, p := range parts {
		out = append(out, partOut{
			PartID:       p.PartID,
			EquipmentID:  p.EquipmentID,
			Name:         p.Name,
			Description:  p.Description,
			Manufacturer: p.Manufacturer,
			ReplaceDate:  p.ReplaceDate,
			UnitPrice:    p.UnitPrice,
			Quantity:     p.Quantity,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}
