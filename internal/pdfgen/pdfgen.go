// Package pdfgen builds small, deterministic PDF files for tests.
//
// The generated documents use a single non-embedded Helvetica font with a
// flat widths table, one content stream per page, and a conventional
// cross-reference table with programmatically computed offsets, so they
// parse cleanly in both the extraction and annotation engines.
package pdfgen

import (
	"bytes"
	"fmt"
	"strings"
)

// TextLine places one run of text on a page.
type TextLine struct {
	Text string
	X, Y float64
	// Size is the font size in points; 12 when zero.
	Size float64
}

// Page describes a single fixture page.
type Page struct {
	// Width and Height default to US Letter (612 x 792).
	Width, Height float64
	Lines         []TextLine
}

// glyphWidth is the width of every glyph in the fixture font, in
// thousandths of the font size. A flat table keeps span geometry easy to
// reason about in tests: a 12pt character is exactly 6pt wide.
const glyphWidth = 500

// SinglePage builds a one-page document with the given lines placed at
// x=72 and descending y positions, 20 points apart, starting at y=700.
func SinglePage(texts ...string) []byte {
	lines := make([]TextLine, len(texts))
	for i, t := range texts {
		lines[i] = TextLine{Text: t, X: 72, Y: 700 - float64(i)*20}
	}
	return Build(Page{Lines: lines})
}

// Build serializes the given pages into a complete PDF document.
func Build(pages ...Page) []byte {
	var buf bytes.Buffer
	// Object numbers: 1 catalog, 2 page tree, 3 font, then one page
	// object and one content stream per page.
	objCount := 3 + 2*len(pages)
	offsets := make([]int, objCount+1)

	writeObj := func(num int, body string) {
		offsets[num] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", num, body)
	}

	buf.WriteString("%PDF-1.4\n")

	kids := make([]string, len(pages))
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}

	writeObj(1, "<< /Type /Catalog /Pages 2 0 R >>")
	writeObj(2, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>",
		strings.Join(kids, " "), len(pages)))
	writeObj(3, fontDict())

	for i, page := range pages {
		width, height := page.Width, page.Height
		if width == 0 {
			width = 612
		}
		if height == 0 {
			height = 792
		}

		pageObj := 4 + 2*i
		contentObj := pageObj + 1
		content := contentStream(page.Lines)

		writeObj(pageObj, fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %g %g] "+
				"/Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>",
			width, height, contentObj))
		writeObj(contentObj, fmt.Sprintf("<< /Length %d >>\nstream\n%sendstream",
			len(content), content))
	}

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", objCount+1)
	buf.WriteString("0000000000 65535 f \n")
	for num := 1; num <= objCount; num++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[num])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		objCount+1, xrefOffset)

	return buf.Bytes()
}

// fontDict returns a non-embedded Helvetica with explicit widths so the
// extraction engine can compute character advance and span geometry.
func fontDict() string {
	widths := strings.TrimSpace(strings.Repeat(fmt.Sprintf("%d ", glyphWidth), 95))
	return fmt.Sprintf("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica "+
		"/FirstChar 32 /LastChar 126 /Widths [%s] /Encoding /WinAnsiEncoding >>", widths)
}

// contentStream renders each line as its own text object positioned via
// a text matrix.
func contentStream(lines []TextLine) string {
	var sb strings.Builder
	for _, line := range lines {
		size := line.Size
		if size == 0 {
			size = 12
		}
		fmt.Fprintf(&sb, "BT\n/F1 %g Tf\n1 0 0 1 %g %g Tm\n(%s) Tj\nET\n",
			size, line.X, line.Y, escapeString(line.Text))
	}
	return sb.String()
}

// escapeString escapes the characters with special meaning inside PDF
// literal strings.
func escapeString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)
	return r.Replace(s)
}
