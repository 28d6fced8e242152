// Package psychmark provides a fluent API for searching swim-meet psych
// sheet PDFs and producing copies with every matching line highlighted.
//
// Basic usage:
//
//	matches, err := psychmark.Open("psych_sheet.pdf").
//	    Query("MAC-MA").
//	    Matches()
//	if err != nil {
//	    // handle error
//	}
//
// Producing a highlighted copy:
//
//	annotated, matches, err := psychmark.FromBytes(data).
//	    Query("John Smith").
//	    SearchMode(model.ModeSwimmerName).
//	    Highlight()
//
// The pipeline is synchronous and stateless: each terminal operation
// opens its own document handles and nothing is shared between
// invocations, so concurrent callers each build their own pipeline.
//
// For lower-level access the extract, match, and highlight packages are
// also available.
package psychmark

import (
	"github.com/swimtools/psychmark/model"
)

// FromBytes creates a Pipeline over raw PDF bytes. The bytes are never
// mutated; highlighting produces a fresh serialized copy.
//
// Example:
//
//	matches, err := psychmark.FromBytes(data).Query("MAC-MA").Matches()
func FromBytes(data []byte) *Pipeline {
	return &Pipeline{
		data:    data,
		options: defaultOptions(),
	}
}

// Open creates a Pipeline that reads the named PDF file when a terminal
// operation runs.
//
// Example:
//
//	matches, err := psychmark.Open("psych_sheet.pdf").Query("MAC-MA").Matches()
func Open(filename string) *Pipeline {
	return &Pipeline{
		filename: filename,
		options:  defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	matches := psychmark.Must(psychmark.Open("sheet.pdf").Query("MAC-MA").Matches())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// DefaultMode is the search mode a fresh pipeline starts with.
const DefaultMode = model.ModeTeamCode
