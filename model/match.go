package model

// Mode selects the comparison rule used when scanning lines for a query.
type Mode int

const (
	// ModeTeamCode matches a query only when it appears as a
	// free-standing token on the line, never inside a longer code.
	ModeTeamCode Mode = iota

	// ModeSwimmerName matches a query anywhere within the line
	// (case-insensitive substring containment).
	ModeSwimmerName
)

// String returns a string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeTeamCode:
		return "team code"
	case ModeSwimmerName:
		return "swimmer name"
	default:
		return "unknown"
	}
}

// Match records a single line that matched a query.
type Match struct {
	// Page is the zero-based page index within the document
	Page int

	// Line is the zero-based line index within the page's plain-text lines
	Line int

	// Text is the original, unnormalized line content. The highlighter
	// relies on it to locate the line's geometry by normalized equality,
	// and the presentation layer displays it as-is.
	Text string
}
