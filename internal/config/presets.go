package config

import "github.com/full2null/fallingsimulator/internal/sim"

var Presets = map[string]*Config{
	"skydiver": {
		Cd: 1.0, Area: 0.7, Height: 4000, Mass: 85,
		AirResistance: true, Mode: sim.ModeVelocity, Seconds: 30, FPS: 30,
	},
	"raindrop": {
		Cd: 0.47, Area: 0.00000785, Height: 2000, Mass: 0.000034,
		AirResistance: true, Mode: sim.ModeVelocity, Seconds: 5, FPS: 60,
	},
	"shipping_container": {
		Cd: 0.42, Area: 19.25, Height: 70, Mass: 1000,
		AirResistance: true, Mode: sim.ModeHeight, Seconds: 10, FPS: 30,
	},
	"vacuum_drop": {
		Cd: 0.42, Area: 19.25, Height: 70, Mass: 1000,
		AirResistance: false, Mode: sim.ModeHeight, Seconds: 10, FPS: 20,
	},
	"bowling_ball": {
		Cd: 0.5, Area: 0.036, Height: 100, Mass: 7.2,
		AirResistance: true, Mode: sim.ModeHeight, Seconds: 5, FPS: 60,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
