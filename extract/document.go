package extract

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// DocumentError indicates that input bytes could not be parsed as a PDF
// document. It is a hard failure: no partial extraction output is produced.
type DocumentError struct {
	Err error
}

// Error implements the error interface.
func (e *DocumentError) Error() string {
	return fmt.Sprintf("not a parseable PDF document: %v", e.Err)
}

// Unwrap returns the underlying engine error.
func (e *DocumentError) Unwrap() error {
	return e.Err
}

// Document is a transient handle over a parsed PDF. It is read-only and
// not safe for concurrent use; each pipeline invocation opens its own.
type Document struct {
	reader *pdf.Reader
}

// FromBytes parses raw PDF bytes into a fresh document handle.
// It returns a *DocumentError if the bytes are not a valid PDF.
func FromBytes(data []byte) (*Document, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &DocumentError{Err: err}
	}
	return &Document{reader: r}, nil
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	return d.reader.NumPage()
}

// page returns the engine page for a zero-based page index.
func (d *Document) page(pageIndex int) (pdf.Page, error) {
	if pageIndex < 0 || pageIndex >= d.reader.NumPage() {
		return pdf.Page{}, fmt.Errorf("page %d out of range (0-%d)", pageIndex, d.reader.NumPage()-1)
	}
	// The engine numbers pages from 1.
	return d.reader.Page(pageIndex + 1), nil
}
