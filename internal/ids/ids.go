// Package ids issues identifiers for newly added items.
package ids

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/idilsaglam/todolist/internal/model"
)

const prefix = "id-"

// Scheme names accepted by ByScheme.
const (
	SchemeSequential = "seq"
	SchemeUUID       = "uuid"
)

// Generator returns a fresh id for an item about to be appended to l.
type Generator func(l model.List) string

// Sequential returns "id-<n>" where n is the list length, bumped past the
// highest numeric suffix already in use so removals never cause a collision.
func Sequential(l model.List) string {
	n := len(l)
	for _, it := range l {
		if v, ok := seqNumber(it.ID); ok && v >= n {
			n = v + 1
		}
	}
	return prefix + strconv.Itoa(n)
}

// Random returns "id-<uuid>".
func Random(model.List) string {
	return prefix + uuid.NewString()
}

// ByScheme resolves a configured scheme name. Empty means sequential.
func ByScheme(name string) (Generator, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", SchemeSequential:
		return Sequential, nil
	case SchemeUUID:
		return Random, nil
	default:
		return nil, fmt.Errorf("unknown id scheme %q (want %s or %s)", name, SchemeSequential, SchemeUUID)
	}
}

func seqNumber(id string) (int, bool) {
	rest, ok := strings.CutPrefix(id, prefix)
	if !ok || rest == "" {
		return 0, false
	}
	v, err := strconv.Atoi(rest)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}
