package registry

import (
	"strings"

	"github.com/agext/levenshtein"
)

// maxSuggestDistance bounds how far a typo may be from a known namespace.
const maxSuggestDistance = 2

// suggest finds the known namespace closest to name. A case-insensitive
// match wins outright; otherwise the nearest namespace within
// maxSuggestDistance edits is returned, earliest registered on ties.
func (r *Registry) suggest(name string) string {
	if name == "" {
		return ""
	}
	best, bestDist := "", maxSuggestDistance+1
	for _, e := range r.entries {
		if strings.EqualFold(e.Namespace, name) {
			return e.Namespace
		}
		if d := levenshtein.Distance(name, e.Namespace, nil); d < bestDist {
			best, bestDist = e.Namespace, d
		}
	}
	return best
}
