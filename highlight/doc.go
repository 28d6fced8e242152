// Package highlight draws highlight annotations over matched lines and
// serializes the annotated document.
//
// Given the original PDF bytes and a list of matches, [Highlight]
// re-opens the document, maps each match's line text back to its
// geometric bounding box via the page layout, and adds a standard
// highlight annotation covering the line's full extent:
//
//	annotated, err := highlight.Highlight(original, matches)
//
// Matches are reconciled against layout lines by normalized text
// equality, not by index. When several layout lines normalize to the
// same text, every one is highlighted; a match whose text cannot be
// located in the layout is skipped silently. The input bytes are never
// mutated; a fresh serialized copy is returned.
package highlight
