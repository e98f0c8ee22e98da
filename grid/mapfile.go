package grid

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MapFile is the on-disk YAML description of a warehouse map.
//
// Example:
//
//	name: tutorial
//	rows:
//	  - "#####"
//	  - "#S.P#"
//	  - "#..D#"
//	  - "#####"
//	max_steps: 100
//	battery: 50
//
// Rows use the ParseRunes character set. MaxSteps and Battery are
// optional and fall back to the package defaults when zero.
type MapFile struct {
	Name     string   `yaml:"name,omitempty"`
	Rows     []string `yaml:"rows"`
	MaxSteps int      `yaml:"max_steps,omitempty"`
	Battery  int      `yaml:"battery,omitempty"`
}

// LoadMap reads a YAML map document from path and builds the grid and
// its markers. Episode parameters from the file are returned as ready
// EnvOptions to splice into NewEnv.
func LoadMap(path string) (*Grid, Markers, []EnvOption, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, Markers{}, nil, fmt.Errorf("grid: reading map %q: %w", path, err)
	}

	return ParseMap(raw)
}

// ParseMap decodes a YAML map document from memory. See LoadMap.
func ParseMap(raw []byte) (*Grid, Markers, []EnvOption, error) {
	var mf MapFile
	if err := yaml.Unmarshal(raw, &mf); err != nil {
		return nil, Markers{}, nil, fmt.Errorf("grid: decoding map: %w", err)
	}
	g, m, err := ParseRunes(mf.Rows)
	if err != nil {
		return nil, Markers{}, nil, err
	}
	var opts []EnvOption
	if mf.MaxSteps > 0 {
		opts = append(opts, WithMaxSteps(mf.MaxSteps))
	}
	if mf.Battery > 0 {
		opts = append(opts, WithBattery(mf.Battery))
	}

	return g, m, opts, nil
}
