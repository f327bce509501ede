package internal

type Category string

const (
	CategoryFollowers Category = "followers"
	CategoryFollowing Category = "following"
)

// Other returns the opposite category.
func (c Category) Other() Category {
	if c == CategoryFollowers {
		return CategoryFollowing
	}
	return CategoryFollowers
}

// Kind is the category a parser detected inside one file, independent of
// what the caller expected. HTML never carries a reliable signal, so the
// HTML parser always reports KindUnknown.
type Kind string

const (
	KindFollowers Kind = "followers"
	KindFollowing Kind = "following"
	KindUnknown   Kind = "unknown"
)

type ParseResult struct {
	Kind      Kind
	Usernames []string
	Warnings  []string
}

// FileRecord is one export file as handed over by the caller. RawText is the
// fully decoded content; the core never reads files itself.
type FileRecord struct {
	Name    string
	RawText string
}

type CategoryResult struct {
	Usernames []string
	Warnings  []string
	Failed    bool
}

// Anchor is one hyperlink mined out of a markup document.
type Anchor struct {
	Href string
	Text string
}

// AnchorExtractor parses markup into its anchors. It is an optional
// capability: a nil extractor or any error from it degrades HTML parsing to
// the plain text-pattern passes.
type AnchorExtractor func(text string) ([]Anchor, error)

type RunRow struct {
	ID               int
	TraceID          string
	Followers        []string
	Following        []string
	NotFollowingBack []string
	Warnings         []string
	CreatedAt        string
}

type ReportRow struct {
	Username         string
	InFollowing      bool
	InFollowers      bool
	NotFollowingBack bool
}
