package catalog

import (
	"testing"

	"github.com/claude/splitbalance/internal/models"
)

// TestLoad verifies the embedded catalog parses, has unique names, valid
// groups, and covers every muscle group the model knows.
func TestLoad(t *testing.T) {
	entries, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(entries) < 40 {
		t.Errorf("catalog has %d muscles, expected the full seed list", len(entries))
	}

	groups := make(map[string]int)
	for _, e := range entries {
		if !models.ValidMuscleGroup(e.Group) {
			t.Errorf("muscle %q has invalid group %q", e.Name, e.Group)
		}
		groups[e.Group]++
	}
	for _, g := range []string{models.GroupChest, models.GroupBack, models.GroupShoulders,
		models.GroupArms, models.GroupLegs, models.GroupCore, models.GroupOther} {
		if groups[g] == 0 {
			t.Errorf("catalog has no muscles in group %q", g)
		}
	}
}
