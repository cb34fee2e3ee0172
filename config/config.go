// Package config loads the settings shared by the mandelbrot binaries.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	mandel "github.com/abdulmoid5/mandelbrot-visualizer"
)

var ErrUnknownLandmark = errors.New("unknown landmark")

type Config struct {
	// Landmark selects one of the classic regions by name. It overrides Region.
	Landmark   string            `yaml:"landmark,omitempty"`
	Region     mandel.Region     `yaml:"region"`
	Resolution mandel.Resolution `yaml:"resolution"`
	MaxIter    int               `yaml:"max_iter"`

	Workers   int    `yaml:"workers"`
	TileSize  int    `yaml:"tile_size"`
	Palette   string `yaml:"palette"`
	CachePath string `yaml:"cache_path,omitempty"`

	Server Server `yaml:"server"`
}

type Server struct {
	TCPAddr  string `yaml:"tcp_addr"`
	HTTPAddr string `yaml:"http_addr"`
}

// Default is the full view of the set at 800x600 with 100 iterations.
func Default() Config {
	p := mandel.DefaultParams()
	return Config{
		Region:     p.Region,
		Resolution: p.Resolution,
		MaxIter:    p.MaxIter,
		TileSize:   64,
		Palette:    "inferno",
		Server: Server{
			TCPAddr:  ":8081",
			HTTPAddr: ":8080",
		},
	}
}

// Load reads a YAML file on top of Default. Unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Params resolves the landmark, if any, and validates the result.
func (c Config) Params() (mandel.Params, error) {
	p := mandel.Params{Region: c.Region, Resolution: c.Resolution, MaxIter: c.MaxIter}
	if c.Landmark != "" {
		r, ok := mandel.Landmark(c.Landmark)
		if !ok {
			return p, fmt.Errorf("%w %q, known: %v", ErrUnknownLandmark, c.Landmark, mandel.LandmarkNames())
		}
		p.Region = r
	}
	return p, p.Validate()
}

// Marshal renders c as YAML, e.g. to seed a config file.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
