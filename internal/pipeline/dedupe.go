package pipeline

import (
	"sort"

	"gramdiff/internal/util"
)

// DedupeSort normalizes every raw token, drops the ones that normalize to
// the empty string, removes duplicates by normalized value and sorts the
// remainder ascending. All parser outputs go through here, which keeps pass
// ordering inside the parsers irrelevant to the final result.
func DedupeSort(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, token := range raw {
		username := util.NormalizeUsername(token)
		if username == "" {
			continue
		}
		if _, exists := seen[username]; exists {
			continue
		}
		seen[username] = struct{}{}
		out = append(out, username)
	}
	sort.Strings(out)
	return out
}
