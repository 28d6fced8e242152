// Package model provides the shared data types for psych sheet search
// and highlighting.
//
// This package defines the user-facing structures that the extraction,
// matching, and highlighting packages exchange. All operations ultimately
// produce or consume these types, making them the primary API for
// consuming results.
//
// # Matches
//
// The [Match] type records where a query matched within a document:
//
//	match := model.Match{Page: 0, Line: 12, Text: "MAC-MA  John Smith  1:23.45"}
//
// Page and Line are zero-based scan positions. Text is the original,
// unnormalized line content, which the highlighter later reconciles
// against page layout by normalized text equality.
//
// # Geometry
//
// The [Rect] type is an axis-aligned rectangle in PDF page coordinate
// space (origin bottom-left, Y increasing upward), with union and
// emptiness calculations used to rebuild a line's bounding box from its
// span rectangles.
package model
