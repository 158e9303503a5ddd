package config

import (
	"embed"
	"fmt"

	yaml "go.yaml.in/yaml/v4"
)

//go:embed presets/*.yaml
var presetFS embed.FS

var presetNames = []string{"minimal", "recommended", "recommended-strict", "all"}

func loadPresets() (map[string]*StyleguideConfig, error) {
	out := make(map[string]*StyleguideConfig, len(presetNames))
	for _, name := range presetNames {
		data, err := presetFS.ReadFile("presets/" + name + ".yaml")
		if err != nil {
			return nil, fmt.Errorf("config: loading embedded preset %q: %w", name, err)
		}
		var sg StyleguideConfig
		if err := yaml.Unmarshal(data, &sg); err != nil {
			return nil, fmt.Errorf("config: parsing embedded preset %q: %w", name, err)
		}
		out[name] = &sg
	}
	return out, nil
}

// isPresetName reports whether an extends entry names one of the built-in
// presets rather than a file path or URL.
func isPresetName(s string) bool {
	switch s {
	case "minimal", "recommended", "recommended-strict", "all":
		return true
	default:
		return false
	}
}
