package web

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/rouu123/world-map-name-distribution/internal/store"
)

//go:embed all:static
var staticFS embed.FS

// Server serves the choropleth web app and API.
type Server struct {
	Store       *store.Store
	Addr        string
	GeoJSONPath string
	ISOProperty string
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	mux := http.NewServeMux()

	// API endpoints
	mux.HandleFunc("/api/records", s.handleRecords)
	mux.HandleFunc("/api/legend", s.handleLegend)
	mux.HandleFunc("/api/map.geojson", s.handleMap)

	// Static files
	staticSub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return fmt.Errorf("creating sub filesystem: %w", err)
	}
	mux.Handle("/", http.FileServer(http.FS(staticSub)))

	fmt.Printf("Serving at http://%s\n", s.Addr)
	return http.ListenAndServe(s.Addr, mux)
}
