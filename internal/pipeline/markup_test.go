package pipeline

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"gramdiff/internal"
	"gramdiff/internal/markup"
)

func TestParseHTMLTextPasses(t *testing.T) {
	res := ParseHTML(`Visit https://instagram.com/Dave/ and @erin and "value":"Frank"`, nil)
	if res.Kind != internal.KindUnknown {
		t.Fatalf("kind=%s", res.Kind)
	}
	want := []string{"dave", "erin", "frank"}
	if !reflect.DeepEqual(res.Usernames, want) {
		t.Fatalf("usernames=%v", res.Usernames)
	}
	if len(res.Warnings) != 1 || !strings.Contains(res.Warnings[0], "markup") {
		t.Fatalf("warnings=%v", res.Warnings)
	}
}

func TestParseHTMLDedupesAcrossPasses(t *testing.T) {
	res := ParseHTML(`@Dave plus https://www.instagram.com/dave/ plus "value":"DAVE"`, nil)
	if len(res.Usernames) != 1 || res.Usernames[0] != "dave" {
		t.Fatalf("usernames=%v", res.Usernames)
	}
}

func TestParseHTMLEmptyAddsHint(t *testing.T) {
	res := ParseHTML(`<html><body>nothing here at all?!</body></html>`, nil)
	if len(res.Usernames) != 0 {
		t.Fatalf("usernames=%v", res.Usernames)
	}
	if len(res.Warnings) != 2 || !strings.Contains(res.Warnings[1], "JSON") {
		t.Fatalf("warnings=%v", res.Warnings)
	}
}

func TestParseHTMLStructuralPass(t *testing.T) {
	html := `<html><body>
		<a href="https://www.instagram.com/_u/grace/">grace</a>
		<a href="/ignored">henry_1</a>
	</body></html>`
	res := ParseHTML(html, markup.Anchors)
	want := []string{"grace", "henry_1"}
	if !reflect.DeepEqual(res.Usernames, want) {
		t.Fatalf("usernames=%v", res.Usernames)
	}
}

func TestParseHTMLAnchorFailureDegradesSilently(t *testing.T) {
	failing := func(string) ([]internal.Anchor, error) { return nil, errors.New("boom") }
	res := ParseHTML("mention of @iris here", failing)
	if len(res.Usernames) != 1 || res.Usernames[0] != "iris" {
		t.Fatalf("usernames=%v", res.Usernames)
	}
	if len(res.Warnings) != 1 {
		t.Fatalf("warnings=%v", res.Warnings)
	}
}

func TestParseHTMLFiltersInvalidCandidates(t *testing.T) {
	res := ParseHTML(`"value":"not a username with spaces" and "value":"ok_name"`, nil)
	if len(res.Usernames) != 1 || res.Usernames[0] != "ok_name" {
		t.Fatalf("usernames=%v", res.Usernames)
	}
}
