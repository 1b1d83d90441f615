package config

import (
	"sort"

	"github.com/san-kum/fracview/internal/mandel"
)

// Presets pairs named landmark regions with iteration budgets deep
// enough to resolve their detail.
var Presets = map[string]*Config{
	"home": {
		Width: DefaultWidth, Height: DefaultHeight, MaxIter: DefaultMaxIter, Palette: "hue",
	},
	"seahorse": {
		Width: DefaultWidth, Height: DefaultHeight, MaxIter: 1000, Palette: "hue",
		Region: regionConfig(mandel.SeahorseValley),
	},
	"elephant": {
		Width: DefaultWidth, Height: DefaultHeight, MaxIter: 1000, Palette: "hue",
		Region: regionConfig(mandel.ElephantValley),
	},
	"minibrot": {
		Width: DefaultWidth, Height: DefaultHeight, MaxIter: 2000, Palette: "spectral",
		Region: regionConfig(mandel.SpiralMinibrot),
	},
	"triple": {
		Width: DefaultWidth, Height: DefaultHeight, MaxIter: 2000, Palette: "spectral",
		Region: regionConfig(mandel.TripleSpiral),
	},
	"dragon": {
		Width: DefaultWidth, Height: DefaultHeight, MaxIter: 2000, Palette: "ice",
		Region: regionConfig(mandel.ValleyOfTheDragon),
	},
}

func regionConfig(r mandel.Region) RegionConfig {
	return RegionConfig{XMin: r.XMin, XMax: r.XMax, YMin: r.YMin, YMax: r.YMax}
}

// GetPreset returns the named preset, or nil if unknown.
func GetPreset(name string) *Config {
	return Presets[name]
}

// ListPresets returns the preset names, sorted.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
