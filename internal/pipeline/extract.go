package pipeline

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"gramdiff/internal"
)

// profileHrefPattern matches an Instagram profile URL and captures the
// username segment. The optional _u/ prefix covers app deep links; the
// capture is bounded to the username grammar so matching stays linear on
// untrusted input.
var profileHrefPattern = regexp.MustCompile(`(?i)https?://(?:www\.)?instagram\.com/(?:_u/)?([A-Za-z0-9._]{1,30})`)

// ParseJSON walks a decoded export tree and pulls out the relationship list.
// Export versions differ: the list may sit under relationships_followers,
// relationships_following, some other relationships_* key, or the file may
// be the bare array itself. Nothing here ever fails hard; an unrecognized
// shape yields an empty result with a warning.
func ParseJSON(data any) internal.ParseResult {
	switch v := data.(type) {
	case map[string]any:
		if arr, ok := v["relationships_followers"].([]any); ok {
			return parseRelationshipArray(internal.KindFollowers, arr)
		}
		if arr, ok := v["relationships_following"].([]any); ok {
			return parseRelationshipArray(internal.KindFollowing, arr)
		}

		// Remaining relationships_* keys are scanned in lexical order so
		// the pick is deterministic across runs.
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if !strings.HasPrefix(k, "relationships_") {
				continue
			}
			arr, ok := v[k].([]any)
			if !ok {
				continue
			}
			res := parseRelationshipArray(internal.KindUnknown, arr)
			if len(res.Usernames) > 0 {
				res.Warnings = append([]string{fmt.Sprintf("used non-standard field %q", k)}, res.Warnings...)
				return res
			}
		}
	case []any:
		return parseRelationshipArray(internal.KindUnknown, v)
	}

	return internal.ParseResult{
		Kind:      internal.KindUnknown,
		Usernames: []string{},
		Warnings:  []string{"unrecognized format: no relationship data found"},
	}
}

func parseRelationshipArray(kind internal.Kind, entries []any) internal.ParseResult {
	raw := make([]string, 0, len(entries))
	for _, entry := range entries {
		if candidate := extractEntry(entry); candidate != "" {
			raw = append(raw, candidate)
		}
	}

	usernames := DedupeSort(raw)
	warnings := []string{}
	if len(usernames) == 0 {
		warnings = append(warnings, fmt.Sprintf("%s data recognized but no usernames could be extracted", kind))
	}

	return internal.ParseResult{Kind: kind, Usernames: usernames, Warnings: warnings}
}

// extractEntry pulls one candidate username out of one relationship entry.
// Ordered fallback, first hit wins: string_list_data value, entry title,
// string_list_data href. Returns "" when the entry has none of them.
func extractEntry(entry any) string {
	node, ok := entry.(map[string]any)
	if !ok {
		return ""
	}

	records, _ := node["string_list_data"].([]any)
	for _, rec := range records {
		m, ok := rec.(map[string]any)
		if !ok {
			continue
		}
		if value, ok := m["value"].(string); ok && strings.TrimSpace(value) != "" {
			return value
		}
	}

	if title, ok := node["title"].(string); ok && strings.TrimSpace(title) != "" {
		return title
	}

	for _, rec := range records {
		m, ok := rec.(map[string]any)
		if !ok {
			continue
		}
		href, ok := m["href"].(string)
		if !ok {
			continue
		}
		if match := profileHrefPattern.FindStringSubmatch(href); match != nil {
			return match[1]
		}
	}

	return ""
}
