package pipeline

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gramdiff/internal"
)

// Aggregator loads every file the caller assigned to one category and
// merges the per-file results into a single username set.
type Aggregator struct {
	anchors internal.AnchorExtractor
}

func NewAggregator(anchors internal.AnchorExtractor) *Aggregator {
	return &Aggregator{anchors: anchors}
}

// ParseFile routes one file to the JSON or HTML parser based on sniffing.
// The only error is a JSON decode failure; HTML parsing cannot fail.
func (g *Aggregator) ParseFile(file internal.FileRecord) (internal.ParseResult, error) {
	if IsMarkup(file.Name, file.RawText) {
		return ParseHTML(file.RawText, g.anchors), nil
	}

	var data any
	if err := json.Unmarshal([]byte(file.RawText), &data); err != nil {
		return internal.ParseResult{}, err
	}
	return ParseJSON(data), nil
}

// Load processes the batch file by file. Per-file failures and category
// mismatches downgrade to warnings and never stop the batch; the one hard
// failure the caller sees is the merged set coming out empty. Warnings keep
// file order, the merge itself is a set union so the outcome does not
// depend on file order.
func (g *Aggregator) Load(files []internal.FileRecord, expected internal.Category) internal.CategoryResult {
	merged := map[string]struct{}{}
	warnings := []string{}

	for _, file := range files {
		res, err := g.ParseFile(file)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: invalid JSON, file skipped", file.Name))
			continue
		}

		for _, w := range res.Warnings {
			warnings = append(warnings, file.Name+": "+w)
		}
		if res.Kind != internal.KindUnknown && res.Kind != internal.Kind(expected) {
			warnings = append(warnings, fmt.Sprintf("%s: contains %s data but was loaded as %s", file.Name, res.Kind, expected))
		}
		if IsMarkup(file.Name, file.RawText) && hintsCategory(file.Name, expected.Other()) {
			warnings = append(warnings, fmt.Sprintf("%s: filename suggests %s but the file was loaded as %s", file.Name, expected.Other(), expected))
		}

		for _, u := range res.Usernames {
			merged[u] = struct{}{}
		}
	}

	usernames := make([]string, 0, len(merged))
	for u := range merged {
		usernames = append(usernames, u)
	}
	sort.Strings(usernames)

	return internal.CategoryResult{
		Usernames: usernames,
		Warnings:  warnings,
		Failed:    len(usernames) == 0,
	}
}

func hintsCategory(name string, category internal.Category) bool {
	return strings.Contains(strings.ToLower(name), string(category))
}
