package config

import "sort"

// Presets build complete configurations; each call returns a fresh copy.
var Presets = map[string]func() *Config{
	"section6": func() *Config {
		return DefaultConfig()
	},
	"newtonian": func() *Config {
		cfg := DefaultConfig()
		cfg.Output.Path = "section6_newtonian_rotation_curves_dark.png"
		for i := range cfg.Galaxies {
			cfg.Galaxies[i].Kappa = 0
		}
		return cfg
	},
	"extended": func() *Config {
		cfg := DefaultConfig()
		cfg.Output.Path = "section6_fdft_rotation_curves_extended_dark.png"
		for i := range cfg.Galaxies {
			cfg.Galaxies[i].Lambda = 15
		}
		return cfg
	},
	"light": func() *Config {
		cfg := DefaultConfig()
		cfg.Output.Path = "section6_fdft_rotation_curves_light.png"
		cfg.Theme = "light"
		return cfg
	},
}

func GetPreset(name string) *Config {
	build, ok := Presets[name]
	if !ok {
		return nil
	}
	return build()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
