package config

import "time"

// Config holds the server configuration.
type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	Raster   RasterConfig
	Autosave AutosaveConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string
	Port string
}

// StoreConfig holds form persistence settings.
type StoreConfig struct {
	DSN  string
	Slot string
}

// RasterConfig holds template capture settings.
type RasterConfig struct {
	ChromiumPath string
	Headless     bool
	Timeout      time.Duration
	Args         []string
	Scale        float64
}

// AutosaveConfig holds autosave settings. A zero interval disables
// the autosave loop.
type AutosaveConfig struct {
	Interval time.Duration
}

// Defaults returns a Config with sensible defaults.
func Defaults() Config {
	return Config{
		Server: ServerConfig{
			Host: "localhost",
			Port: "8080",
		},
		Store: StoreConfig{
			DSN:  "file:biodata.db?cache=shared",
			Slot: "biodataForm",
		},
		Raster: RasterConfig{
			Headless: true,
			Timeout:  30 * time.Second,
			Scale:    2,
		},
		Autosave: AutosaveConfig{
			Interval: 0,
		},
	}
}
