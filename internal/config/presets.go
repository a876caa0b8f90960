package config

import "sort"

var Presets = map[string]*Config{
	"plane": {
		Dimension: 2, Rounds: DefaultRounds,
	},
	"cube": {
		Dimension: 3, Rounds: DefaultRounds,
	},
	"tesseract": {
		Dimension: 4, Rounds: DefaultRounds,
	},
	"penteract": {
		Dimension: 5, Rounds: 4,
	},
}

// GetPreset returns a copy of the named preset merged over the defaults.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Dimension = p.Dimension
	cfg.Rounds = p.Rounds
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
