// Package config loads the dashboard configuration from a YAML file,
// falling back to defaults when no file exists. Everything here is
// presentation and transport configuration; business thresholds are
// fixed in the chart package and deliberately not configurable.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Colors optionally overrides the chart palette. Empty fields keep
// the stock color.
type Colors struct {
	Accent   string `yaml:"accent"`
	Positive string `yaml:"positive"`
	Warning  string `yaml:"warning"`
	Fail     string `yaml:"fail"`
}

// Config is the full file shape.
type Config struct {
	// Endpoint is the GraphQL API URL.
	Endpoint string `yaml:"endpoint"`
	// SigninURL is the credential exchange endpoint.
	SigninURL string `yaml:"signin_url"`
	// Output is where the rendered dashboard HTML is written.
	Output string `yaml:"output"`
	// Timezone controls date tick labels (IANA name or "Local").
	Timezone string `yaml:"timezone"`
	// TopProjects is how many ranked bars to draw.
	TopProjects int `yaml:"top_projects"`
	// Addr is the listen address for serve mode.
	Addr   string `yaml:"addr"`
	Colors Colors `yaml:"colors"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Endpoint:    "https://zone01.gritlab.ax/api/graphql-engine/v1/graphql",
		SigninURL:   "https://zone01.gritlab.ax/api/auth/signin",
		Output:      "dashboard.html",
		Timezone:    "Local",
		TopProjects: 10,
		Addr:        "127.0.0.1:8642",
	}
}

// DefaultPath is the conventional config location under the home dir.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".go-xp-dashboard", "config.yaml")
}

// AppDir is where the session token and logs live.
func AppDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".go-xp-dashboard"
	}
	return filepath.Join(home, ".go-xp-dashboard")
}

// Load reads the file at path over the defaults. A missing file is
// not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.TopProjects <= 0 {
		cfg.TopProjects = Default().TopProjects
	}
	return cfg, nil
}
