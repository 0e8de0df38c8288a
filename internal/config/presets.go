package config

import "sort"

var Presets = map[string]*Config{
	// classic matches the first release: trails up to the screen height,
	// 100ms frames.
	"classic": {
		Mode: "kana", Bold: true, DelayMs: 100, Backend: "tcell", Theme: "matrix",
		Rain: RainConfig{SpawnDivisor: 40, TrailFromHeight: true, BoldChance: 60.0 / 256.0},
	},
	"dense": {
		Mode: "kana", Bold: true, DelayMs: 45, Backend: "tcell", Theme: "matrix",
		Rain: RainConfig{SpawnDivisor: 10, TrailMin: 8, TrailMax: 30, BoldChance: 0.3},
	},
	"sparse": {
		Mode: "kana", Bold: true, DelayMs: 60, Backend: "tcell", Theme: "matrix",
		Rain: RainConfig{SpawnDivisor: 80, TrailMin: 4, TrailMax: 15, BoldChance: 0.23},
	},
	"terminal": {
		Mode: "ascii", Bold: false, DelayMs: 45, Backend: "tcell", Theme: "amber",
		Rain: RainConfig{SpawnDivisor: 40, TrailMin: 4, TrailMax: 25, BoldChance: 0},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
