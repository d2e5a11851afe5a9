// Package config loads the panel-chain configuration and turns it into a
// hub75.Geometry.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/psybercell/hub75geo/pkg/hub75"
)

// Panels describes a custom multi-panel arrangement where some panel rows
// are mounted in reversed column order.
type Panels struct {
	Width        int    `yaml:"width"`
	Height       int    `yaml:"height"`
	ReversedRows []bool `yaml:"reversed_rows"`
}

// Config is the on-disk matrix configuration.
type Config struct {
	Width          int    `yaml:"width"`
	Height         int    `yaml:"height"`
	AddrLines      int    `yaml:"addr_lines"`
	Lanes          int    `yaml:"lanes,omitempty"`
	Planes         int    `yaml:"planes"`
	TemporalPlanes int    `yaml:"temporal_planes,omitempty"`
	Serpentine     bool   `yaml:"serpentine"`
	Orientation    string `yaml:"orientation,omitempty"`

	// Panels selects the custom multi-panel remap instead of Orientation.
	Panels *Panels `yaml:"panels,omitempty"`
}

// Default is the configuration for a single 64x32 panel at full depth.
func Default() *Config {
	return &Config{
		Width:     64,
		Height:    32,
		AddrLines: 4,
		Planes:    10,
	}
}

// Load reads a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Save writes the configuration back to a YAML file.
func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

// Transform resolves the configured orientation or custom panel layout.
func (c *Config) Transform() (hub75.Transform, error) {
	if c.Panels != nil {
		if c.Orientation != "" && c.Orientation != "normal" {
			return nil, fmt.Errorf("config: orientation %q conflicts with custom panel layout", c.Orientation)
		}
		if c.Panels.Width <= 0 || c.Panels.Height <= 0 ||
			c.Width%c.Panels.Width != 0 || c.Height%c.Panels.Height != 0 {
			return nil, fmt.Errorf("config: panels %dx%d do not tile canvas %dx%d",
				c.Panels.Width, c.Panels.Height, c.Width, c.Height)
		}
		return hub75.PanelLayout{
			PanelWidth:   c.Panels.Width,
			PanelHeight:  c.Panels.Height,
			ReversedRows: c.Panels.ReversedRows,
		}.Transform(), nil
	}

	o, err := hub75.ParseOrientation(c.Orientation)
	if err != nil {
		return nil, err
	}
	return o.Transform(), nil
}

// Geometry builds the immutable hub75.Geometry the configuration
// describes.
func (c *Config) Geometry() (*hub75.Geometry, error) {
	tr, err := c.Transform()
	if err != nil {
		return nil, err
	}
	return hub75.BuildGeometry(hub75.Config{
		Width:          c.Width,
		Height:         c.Height,
		AddrLines:      c.AddrLines,
		Lanes:          c.Lanes,
		Planes:         c.Planes,
		TemporalPlanes: c.TemporalPlanes,
		Serpentine:     c.Serpentine,
		Transform:      tr,
	})
}
