package config

// Presets are named tuning bundles for the single sun-and-planets model.
var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"strong": {
		Physics: PhysicsConfig{G: 40.0, ForceDamping: 0.02, MinDistance: 2.0},
		Camera:  CameraConfig{Sensitivity: DefaultSensitivity, Speed: DefaultSpeed},
		MaxDt:   DefaultMaxDt,
	},
	"gentle": {
		Physics: PhysicsConfig{G: 10.0, ForceDamping: 0.005, MinDistance: 2.0},
		Camera:  CameraConfig{Sensitivity: 1.0, Speed: 50.0},
		MaxDt:   DefaultMaxDt,
	},
	// Floor high enough to swallow the inner orbit gaps: most pairs skip,
	// exercising the silent close-range cutoff.
	"floor": {
		Physics: PhysicsConfig{G: 10.0, ForceDamping: 0.01, MinDistance: 15.0},
		Camera:  CameraConfig{Sensitivity: DefaultSensitivity, Speed: DefaultSpeed},
		MaxDt:   DefaultMaxDt,
	},
}

func GetPreset(name string) *Config {
	return Presets[name]
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
