package util

import (
	"regexp"
	"strings"
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9._]{1,30}$`)

// NormalizeUsername canonicalizes a raw token for comparison: surrounding
// whitespace is trimmed, one leading @ is stripped, the rest is lowercased.
// The empty string means "no username" and must be discarded by the caller.
func NormalizeUsername(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "@")
	return strings.ToLower(s)
}

// IsValidUsername reports whether s fully matches the Instagram username
// grammar: 1-30 characters out of letters, digits, dot and underscore.
func IsValidUsername(s string) bool {
	return usernamePattern.MatchString(s)
}
