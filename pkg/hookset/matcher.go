package hookset

import "github.com/lerenn/hook-manager/pkg/filetype"

// Matches reports whether a candidate path falls under the hook's filter.
// The hook must have been validated first so the regexes are compiled.
func (h *Hook) Matches(path string) bool {
	if h.filesRe != nil && !h.filesRe.MatchString(path) {
		return false
	}
	if h.excludeRe != nil && h.excludeRe.MatchString(path) {
		return false
	}

	// All tags in types must be present.
	for _, tag := range h.Types {
		if !filetype.Has(path, tag) {
			return false
		}
	}

	// At least one tag in types_or must be present.
	if len(h.TypesOr) > 0 {
		found := false
		for _, tag := range h.TypesOr {
			if filetype.Has(path, tag) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// FilterFiles returns the subset of candidates matching the hook's filter,
// preserving input order.
func (h *Hook) FilterFiles(candidates []string) []string {
	var matched []string
	for _, path := range candidates {
		if h.Matches(path) {
			matched = append(matched, path)
		}
	}
	return matched
}
