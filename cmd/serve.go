package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rouu123/world-map-name-distribution/internal/store"
	"github.com/rouu123/world-map-name-distribution/internal/web"
)

var (
	serveHost    string
	servePort    int
	serveGeoJSON string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the choropleth map web app",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("host") {
			serveHost = cfg.Server.Host
		}
		if !cmd.Flags().Changed("port") {
			servePort = cfg.Server.Port
		}
		if !cmd.Flags().Changed("geojson") {
			serveGeoJSON = cfg.Map.GeoJSON
		}

		s, err := store.New(dataDir)
		if err != nil {
			return err
		}
		defer s.Close()

		srv := &web.Server{
			Store:       s,
			Addr:        fmt.Sprintf("%s:%d", serveHost, servePort),
			GeoJSONPath: serveGeoJSON,
			ISOProperty: cfg.Map.ISOProperty,
		}
		return srv.ListenAndServe()
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "localhost", "Host to listen on")
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveGeoJSON, "geojson", "", "Country polygon GeoJSON file")
	rootCmd.AddCommand(serveCmd)
}
