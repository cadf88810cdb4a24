// Package plan holds the device tables the fragment generators consume: the
// ordered module lists per device class and the dimmer channel names.
//
// The built-in tables describe the installation this tool was written for.
// A plan file (JSON, YAML or TOML) can replace them without recompiling.
package plan

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"
)

// Class geometry: the first network address of each class bank and the
// number of addresses consumed per device. The downstream Modbus poller
// relies on these; changing them re-maps every device.
const (
	BlockStart  = 101
	BlockStride = 3

	DimmerStart  = 151
	DimmerStride = 3

	ButtonGridStart  = 51
	ButtonGridStride = 2
)

// Plan is the full device map for one installation. Lists are ordered; list
// order determines address order. DimmerNames carries two entries per dimmer
// module, one per channel, in module order.
type Plan struct {
	Blocks      []int    `json:"blocks" yaml:"blocks" toml:"blocks"`
	Dimmers     []int    `json:"dimmers" yaml:"dimmers" toml:"dimmers"`
	DimmerNames []string `json:"dimmerNames" yaml:"dimmerNames" toml:"dimmerNames"`
	Panels      []int    `json:"panels" yaml:"panels" toml:"panels"`
}

// Default returns the compiled-in device tables.
func Default() *Plan {
	return &Plan{
		Blocks:  []int{20, 21, 22},
		Dimmers: []int{30, 31},
		DimmerNames: []string{
			"Wohnzimmer", "Essbereich",
			"Kueche", "Flur",
		},
		Panels: []int{40, 41, 42},
	}
}

// Load reads a plan file, choosing the decoder by file extension. Unknown
// extensions are treated as JSON.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan file: %w", err)
	}
	var p Plan
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &p)
	case ".toml":
		err = toml.Unmarshal(data, &p)
	default:
		err = json.Unmarshal(data, &p)
	}
	if err != nil {
		return nil, fmt.Errorf("parse plan file %s: %w", path, err)
	}
	return &p, nil
}

// Marshal renders the plan in the given format ("json", "yaml" or "toml").
func Marshal(p *Plan, format string) ([]byte, error) {
	switch format {
	case "json":
		return json.MarshalIndent(p, "", "  ")
	case "yaml":
		return yaml.Marshal(p)
	case "toml":
		return toml.Marshal(p)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
