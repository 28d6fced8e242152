package match

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/swimtools/psychmark/extract"
	"github.com/swimtools/psychmark/model"
)

// Normalize prepares text for comparison: Unicode compatibility folding
// (so ligatures produced by PDF extraction compare equal to their plain
// forms), lowercasing, and trimming surrounding whitespace.
func Normalize(s string) string {
	return strings.TrimSpace(strings.ToLower(norm.NFKC.String(s)))
}

// ContainsWholeTeam reports whether the normalized line contains team as
// a free-standing token rather than part of a longer code. team must
// already be normalized.
//
// A token is free-standing when the whole line equals it, when it sits
// at the start or end of the line against a space or tab, or when it is
// enclosed by spaces or by tabs. The space and tab forms are checked
// independently, so "MAC-MA" matches "MAC-MA\tResults" and
// "Team MAC-MA here" but never "EMAC-MA".
func ContainsWholeTeam(line, team string) bool {
	l := Normalize(line)

	switch {
	case l == team:
		return true
	case strings.HasPrefix(l, team+" "), strings.HasPrefix(l, team+"\t"):
		return true
	case strings.HasSuffix(l, " "+team), strings.HasSuffix(l, "\t"+team):
		return true
	case strings.Contains(l, " "+team+" "), strings.Contains(l, "\t"+team+"\t"):
		return true
	}
	return false
}

// Find scans the document's plain-text lines for the query and returns
// every matching line in page-then-line order. The returned matches keep
// the original, unnormalized line text. An empty result with a nil error
// means the query simply did not occur; it is not a failure.
//
// Find is read-only over the document. Callers are expected to reject
// empty queries before calling: after normalization an empty query would
// match every line in swimmer-name mode.
func Find(doc *extract.Document, query string, mode model.Mode) ([]model.Match, error) {
	q := Normalize(query)
	var matches []model.Match

	for pageIndex := 0; pageIndex < doc.PageCount(); pageIndex++ {
		lines, err := doc.PageLines(pageIndex)
		if err != nil {
			return nil, err
		}

		for lineIndex, line := range lines {
			if matchesLine(line, q, mode) {
				matches = append(matches, model.Match{
					Page: pageIndex,
					Line: lineIndex,
					Text: line,
				})
			}
		}
	}

	return matches, nil
}

// matchesLine applies the mode-specific comparison rule to one line.
// q must already be normalized.
func matchesLine(line, q string, mode model.Mode) bool {
	if mode == model.ModeTeamCode {
		return ContainsWholeTeam(line, q)
	}
	return strings.Contains(Normalize(line), q)
}
