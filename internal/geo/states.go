package geo

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
)

//go:embed data/indian_states.json
var indianStatesJSON []byte

// State is one entry of the Indian states/districts reference dataset.
type State struct {
	Name      string   `json:"name"`
	Districts []string `json:"districts"`
}

// StateDirectory is the read-only states/districts reference used by the
// classifier and served to the location picker. Loaded once at startup.
type StateDirectory struct {
	states          []State
	stateByDistrict map[string]string
}

// LoadStateDirectory parses the embedded reference dataset.
func LoadStateDirectory() (*StateDirectory, error) {
	var states []State
	if err := json.Unmarshal(indianStatesJSON, &states); err != nil {
		return nil, fmt.Errorf("failed to parse states dataset: %w", err)
	}

	byDistrict := make(map[string]string)
	for _, s := range states {
		for _, d := range s.Districts {
			byDistrict[strings.ToLower(d)] = s.Name
		}
	}

	return &StateDirectory{states: states, stateByDistrict: byDistrict}, nil
}

// States returns the full directory in dataset order.
func (d *StateDirectory) States() []State {
	return d.states
}

// LookupState returns the state a district belongs to, or "" when the
// district is not in the dataset. Matching is case-insensitive.
func (d *StateDirectory) LookupState(district string) string {
	return d.stateByDistrict[strings.ToLower(strings.TrimSpace(district))]
}
