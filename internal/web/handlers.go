package web

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/rouu123/world-map-name-distribution/internal/model"
)

func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	records, err := s.Store.ReadDataset()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	color := r.URL.Query().Get("color")
	if color != "" {
		var filtered []any
		for _, rec := range records {
			if rec.Color == color {
				filtered = append(filtered, rec)
			}
		}
		writeJSON(w, filtered)
		return
	}

	writeJSON(w, records)
}

func (s *Server) handleLegend(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, model.Legend())
}

func (s *Server) handleMap(w http.ResponseWriter, r *http.Request) {
	records, err := s.Store.ReadDataset()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	raw, err := os.ReadFile(s.GeoJSONPath)
	if err != nil {
		http.Error(w, "reading geometry: "+err.Error(), http.StatusInternalServerError)
		return
	}

	joined, err := JoinGeoJSON(raw, s.ISOProperty, records)
	if err != nil {
		http.Error(w, "joining geometry: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/geo+json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	_, _ = w.Write(joined)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	// Wildcard CORS — this is a local tool, not a public API.
	w.Header().Set("Access-Control-Allow-Origin", "*")
	if v == nil {
		_, _ = w.Write([]byte("[]"))
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}
