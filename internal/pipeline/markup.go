package pipeline

import (
	"regexp"
	"strings"

	"gramdiff/internal"
	"gramdiff/internal/util"
)

const markupNotice = "input was interpreted as HTML markup; username extraction is heuristic"

// Independent text-pattern passes over raw markup. Every capture group is
// bounded, no nested quantifiers: the input is untrusted and must never
// trigger catastrophic backtracking.
var (
	mentionPattern       = regexp.MustCompile(`@([A-Za-z0-9._]{1,30})`)
	valueFragmentPattern = regexp.MustCompile(`"value"\s*:\s*"([^"]{1,64})"`)
)

// ParseHTML mines candidate usernames from raw markup. The export's HTML
// variant carries no usable structure signal, so the result kind is always
// unknown and the candidates are the union of independent passes: profile
// URLs, @mentions, re-serialized "value":"..." fragments, and an optional
// structural pass over the document's anchors. The anchors capability being
// nil or failing silently reduces the result to the text passes.
func ParseHTML(text string, anchors internal.AnchorExtractor) internal.ParseResult {
	candidates := []string{}

	for _, m := range profileHrefPattern.FindAllStringSubmatch(text, -1) {
		candidates = append(candidates, m[1])
	}
	for _, m := range mentionPattern.FindAllStringSubmatch(text, -1) {
		candidates = append(candidates, m[1])
	}
	for _, m := range valueFragmentPattern.FindAllStringSubmatch(text, -1) {
		candidates = append(candidates, m[1])
	}

	if anchors != nil {
		if mined, err := anchors(text); err == nil {
			for _, a := range mined {
				if m := profileHrefPattern.FindStringSubmatch(a.Href); m != nil {
					candidates = append(candidates, m[1])
				}
				label := strings.TrimPrefix(strings.TrimSpace(a.Text), "@")
				if util.IsValidUsername(label) {
					candidates = append(candidates, label)
				}
			}
		}
	}

	filtered := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if util.IsValidUsername(strings.TrimSpace(c)) {
			filtered = append(filtered, c)
		}
	}

	usernames := DedupeSort(filtered)
	warnings := []string{markupNotice}
	if len(usernames) == 0 {
		warnings = append(warnings, "no usernames found in markup; try the JSON export format instead")
	}

	return internal.ParseResult{Kind: internal.KindUnknown, Usernames: usernames, Warnings: warnings}
}
