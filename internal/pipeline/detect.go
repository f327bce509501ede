package pipeline

import "strings"

var markupExtensions = []string{".html", ".htm", ".xhtml"}

// IsMarkup classifies one export file. Content wins over filename: anything
// whose first non-whitespace byte is '<' is markup regardless of extension.
func IsMarkup(name, rawText string) bool {
	if strings.HasPrefix(strings.TrimSpace(rawText), "<") {
		return true
	}
	lower := strings.ToLower(name)
	for _, ext := range markupExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
