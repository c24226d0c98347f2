package puml

import (
	"slices"
	"strings"

	"github.com/matzehuels/dotuml/pkg/dot"
)

// Alias returns the PlantUML alias for a node ID: every "." becomes "_".
func Alias(id string) string {
	return strings.ReplaceAll(id, ".", "_")
}

// Collision is a set of distinct node IDs that share one alias.
type Collision struct {
	Alias string
	IDs   []string
}

// Collisions returns every alias claimed by more than one distinct class ID,
// in order of first appearance. Repeated identical IDs are not collisions.
func Collisions(classes []dot.Class) []Collision {
	var order []string
	byAlias := make(map[string][]string)
	for _, c := range classes {
		a := Alias(c.ID)
		ids, seen := byAlias[a]
		if !seen {
			order = append(order, a)
		}
		if !slices.Contains(ids, c.ID) {
			byAlias[a] = append(ids, c.ID)
		}
	}

	var out []Collision
	for _, a := range order {
		if ids := byAlias[a]; len(ids) > 1 {
			out = append(out, Collision{Alias: a, IDs: ids})
		}
	}
	return out
}
