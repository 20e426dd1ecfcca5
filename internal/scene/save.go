package scene

import (
	"os"

	"gopkg.in/yaml.v3"
)

// SaveDefault writes the built-in scene as a yaml file, as a starting point
// for hand-edited scenes.
func SaveDefault(path string) error {
	def := Default()

	fs := fileScene{
		Bodies: make([]fileBody, len(def.Bodies)),
		Camera: fileCamera{
			Position:    [3]float64{def.Camera.Position.X, def.Camera.Position.Y, def.Camera.Position.Z},
			Sensitivity: def.Camera.Sensitivity,
			Speed:       def.Camera.Speed,
		},
	}
	for i, b := range def.Bodies {
		fs.Bodies[i] = fileBody{
			Name:     b.Name,
			Mass:     b.Mass,
			Position: [3]float64{b.Position.X, b.Position.Y, b.Position.Z},
			Velocity: [3]float64{b.Velocity.X, b.Velocity.Y, b.Velocity.Z},
			Radius:   b.Radius,
			Color:    [3]uint8{b.Color.R, b.Color.G, b.Color.B},
			Emissive: b.Emissive,
		}
	}

	data, err := yaml.Marshal(&fs)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
