package engine

import "github.com/claude/splitbalance/internal/models"

// Classify maps logged activation against a target range. Rules apply in
// order, first match wins:
//
//  1. zero activation → warning, even if the range's lower bound is itself
//     zero or the range is inverted
//  2. below the lower bound → below
//  3. at or under the upper bound plus 15% headroom → optimal
//  4. otherwise → above
//
// Muscles with no target in the split never reach this function; they carry
// models.StatusNotTracked instead.
func Classify(current int, rng Range) models.Classification {
	switch {
	case current == 0:
		return models.StatusWarning
	case float64(current) < rng.Lower:
		return models.StatusBelow
	case float64(current) <= rng.Upper*115/100:
		return models.StatusOptimal
	default:
		return models.StatusAbove
	}
}
