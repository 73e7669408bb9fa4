package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds all user-facing configuration for the pipeline.
type Config struct {
	Data   DataConfig   `toml:"data"`
	Server ServerConfig `toml:"server"`
	Fetch  FetchConfig  `toml:"fetch"`
	Map    MapConfig    `toml:"map"`
}

type DataConfig struct {
	Dir string `toml:"dir"`
}

type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

type FetchConfig struct {
	BaseURL   string  `toml:"base_url"`
	UserAgent string  `toml:"user_agent"`
	RateLimit float64 `toml:"rate_limit"`
	Burst     int     `toml:"burst"`
}

type MapConfig struct {
	// GeoJSON is the path to a country-polygon FeatureCollection
	// (Natural Earth admin-0 export or similar).
	GeoJSON string `toml:"geojson"`
	// ISOProperty is the feature property holding the alpha-3 code.
	ISOProperty string `toml:"iso_property"`
}

// Defaults returns a Config populated with built-in default values.
func Defaults() *Config {
	return &Config{
		Data:   DataConfig{Dir: "data"},
		Server: ServerConfig{Host: "localhost", Port: 8080},
		Fetch: FetchConfig{
			BaseURL:   "https://forebears.io",
			UserAgent: "Mozilla/5.0",
			RateLimit: 1.0,
			Burst:     1,
		},
		Map: MapConfig{
			GeoJSON:     "ne_110m_admin_0_countries.geojson",
			ISOProperty: "ISO_A3_EH",
		},
	}
}

// Load reads a TOML config file. If the file does not exist, built-in
// defaults are returned without error.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
