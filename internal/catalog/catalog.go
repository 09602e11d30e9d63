// Package catalog holds the embedded muscle reference catalog. The catalog
// is shipped with the binary and seeded into storage at startup; it is the
// engine's read-only muscle identity source.
package catalog

import (
	_ "embed"
	"fmt"

	"github.com/claude/splitbalance/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed muscles.yaml
var musclesYAML []byte

// Entry is one catalog muscle as defined in the embedded YAML. IDs are
// assigned by storage on seeding; names are the stable identity here.
type Entry struct {
	Name        string `yaml:"name"`
	Group       string `yaml:"group"`
	Description string `yaml:"description"`
}

type catalogFile struct {
	Muscles []Entry `yaml:"muscles"`
}

// Load parses and validates the embedded catalog. Every entry must have a
// unique name and a known muscle group.
func Load() ([]Entry, error) {
	var f catalogFile
	if err := yaml.Unmarshal(musclesYAML, &f); err != nil {
		return nil, fmt.Errorf("parsing muscle catalog: %w", err)
	}
	if len(f.Muscles) == 0 {
		return nil, fmt.Errorf("muscle catalog is empty")
	}

	seen := make(map[string]bool, len(f.Muscles))
	for _, e := range f.Muscles {
		if e.Name == "" {
			return nil, fmt.Errorf("muscle catalog entry with empty name")
		}
		if seen[e.Name] {
			return nil, fmt.Errorf("duplicate muscle %q in catalog", e.Name)
		}
		seen[e.Name] = true
		if !models.ValidMuscleGroup(e.Group) {
			return nil, fmt.Errorf("muscle %q has unknown group %q", e.Name, e.Group)
		}
	}
	return f.Muscles, nil
}
