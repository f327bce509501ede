package pipeline

// Diff returns the usernames present in following but absent from
// followers, preserving following's order. Both inputs are expected to be
// normalized and sorted already, so the output stays sorted.
func Diff(following, followers []string) []string {
	seen := make(map[string]struct{}, len(followers))
	for _, u := range followers {
		seen[u] = struct{}{}
	}

	out := make([]string, 0, len(following))
	for _, u := range following {
		if _, ok := seen[u]; !ok {
			out = append(out, u)
		}
	}
	return out
}
