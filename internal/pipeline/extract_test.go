package pipeline

import (
	"encoding/json"
	"strings"
	"testing"

	"gramdiff/internal"
)

func decode(t *testing.T, blob string) any {
	t.Helper()
	var data any
	if err := json.Unmarshal([]byte(blob), &data); err != nil {
		t.Fatal(err)
	}
	return data
}

func TestParseJSONFollowers(t *testing.T) {
	res := ParseJSON(decode(t, `{"relationships_followers":[{"string_list_data":[{"value":"Alice"}]}]}`))
	if res.Kind != internal.KindFollowers {
		t.Fatalf("kind=%s", res.Kind)
	}
	if len(res.Usernames) != 1 || res.Usernames[0] != "alice" {
		t.Fatalf("usernames=%v", res.Usernames)
	}
	if len(res.Warnings) != 0 {
		t.Fatalf("warnings=%v", res.Warnings)
	}
}

func TestParseJSONTitleFallback(t *testing.T) {
	res := ParseJSON(decode(t, `{"relationships_following":[{"string_list_data":[{}],"title":"Bob"}]}`))
	if res.Kind != internal.KindFollowing {
		t.Fatalf("kind=%s", res.Kind)
	}
	if len(res.Usernames) != 1 || res.Usernames[0] != "bob" {
		t.Fatalf("usernames=%v", res.Usernames)
	}
}

func TestExtractEntryHrefFallback(t *testing.T) {
	entry := decode(t, `{"string_list_data":[{"href":"https://www.instagram.com/_u/carol/"}]}`)
	if got := extractEntry(entry); got != "carol" {
		t.Fatalf("got %q", got)
	}

	entry = decode(t, `{"string_list_data":[{"href":"https://instagram.com/dave"}]}`)
	if got := extractEntry(entry); got != "dave" {
		t.Fatalf("got %q", got)
	}
}

func TestExtractEntryNothingUsable(t *testing.T) {
	if got := extractEntry(decode(t, `{"string_list_data":[{"timestamp":123}]}`)); got != "" {
		t.Fatalf("got %q", got)
	}
	if got := extractEntry(decode(t, `{}`)); got != "" {
		t.Fatalf("got %q", got)
	}
	if got := extractEntry("not an object"); got != "" {
		t.Fatalf("got %q", got)
	}
	if got := extractEntry(nil); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestExtractEntryValueWins(t *testing.T) {
	entry := decode(t, `{"string_list_data":[{"value":"Alice","href":"https://instagram.com/other"}],"title":"Bob"}`)
	if got := extractEntry(entry); got != "Alice" {
		t.Fatalf("got %q", got)
	}
}

func TestParseJSONUnrecognized(t *testing.T) {
	res := ParseJSON(decode(t, `{}`))
	if res.Kind != internal.KindUnknown {
		t.Fatalf("kind=%s", res.Kind)
	}
	if len(res.Usernames) != 0 {
		t.Fatalf("usernames=%v", res.Usernames)
	}
	found := false
	for _, w := range res.Warnings {
		if strings.Contains(w, "unrecognized format") {
			found = true
		}
	}
	if !found {
		t.Fatalf("warnings=%v", res.Warnings)
	}
}

func TestParseJSONNonStandardFieldLexicalOrder(t *testing.T) {
	res := ParseJSON(decode(t, `{
		"relationships_z": [{"string_list_data":[{"value":"zoe"}]}],
		"relationships_a": [{"string_list_data":[{"value":"amy"}]}]
	}`))
	if res.Kind != internal.KindUnknown {
		t.Fatalf("kind=%s", res.Kind)
	}
	if len(res.Usernames) != 1 || res.Usernames[0] != "amy" {
		t.Fatalf("usernames=%v", res.Usernames)
	}
	if len(res.Warnings) == 0 || !strings.Contains(res.Warnings[0], "relationships_a") {
		t.Fatalf("warnings=%v", res.Warnings)
	}
}

func TestParseJSONNonStandardSkipsEmptyField(t *testing.T) {
	res := ParseJSON(decode(t, `{
		"relationships_a": [],
		"relationships_b": [{"string_list_data":[{"value":"bea"}]}]
	}`))
	if len(res.Usernames) != 1 || res.Usernames[0] != "bea" {
		t.Fatalf("usernames=%v", res.Usernames)
	}
}

func TestParseJSONBareArray(t *testing.T) {
	res := ParseJSON(decode(t, `[{"string_list_data":[{"value":"Eve"}]},{"title":"Frank"}]`))
	if res.Kind != internal.KindUnknown {
		t.Fatalf("kind=%s", res.Kind)
	}
	if len(res.Usernames) != 2 || res.Usernames[0] != "eve" || res.Usernames[1] != "frank" {
		t.Fatalf("usernames=%v", res.Usernames)
	}
}

func TestParseJSONZeroYieldWarns(t *testing.T) {
	res := ParseJSON(decode(t, `{"relationships_followers":[{"media_list_data":[]}]}`))
	if res.Kind != internal.KindFollowers {
		t.Fatalf("kind=%s", res.Kind)
	}
	if len(res.Usernames) != 0 {
		t.Fatalf("usernames=%v", res.Usernames)
	}
	if len(res.Warnings) == 0 || !strings.Contains(res.Warnings[0], "followers") {
		t.Fatalf("warnings=%v", res.Warnings)
	}
}
