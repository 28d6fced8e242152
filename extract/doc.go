// Package extract provides text and layout extraction from psych sheet PDFs.
//
// This package wraps the underlying PDF engine and exposes the two views
// the rest of the system consumes:
//
//   - plain-text lines per page, used for query matching
//   - a hierarchical layout of blocks, lines, and spans with bounding
//     boxes, used to turn a textual match back into page geometry
//
// # Opening Documents
//
// Use [FromBytes] to open a transient handle over raw PDF bytes:
//
//	doc, err := extract.FromBytes(data)
//	if err != nil {
//	    // *DocumentError: the bytes are not a parseable PDF
//	}
//
// Handles hold no shared state; each caller opens its own and discards it
// when done.
//
// # The Two Views
//
// [Document.PageLines] and [Document.PageLayout] are independent
// extraction passes over the same page. Their line segmentation is not
// guaranteed to align positionally, so consumers reconcile them by
// normalized text equality rather than by index.
package extract
