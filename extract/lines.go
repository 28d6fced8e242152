package extract

import (
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PageLines returns the plain-text lines of a zero-based page, top to
// bottom. This is the view used for query matching; it is assembled
// directly from the page's positioned characters and is independent of
// the layout view produced by PageLayout.
func (d *Document) PageLines(pageIndex int) ([]string, error) {
	p, err := d.page(pageIndex)
	if err != nil {
		return nil, err
	}
	if p.V.IsNull() {
		return nil, nil
	}
	return assembleLines(p.Content().Text), nil
}

// assembleLines groups positioned characters into text lines.
// Characters are sorted top to bottom, then left to right, with a
// tolerance for baseline jitter; a horizontal gap wider than a fraction
// of the font size becomes a single space.
func assembleLines(texts []pdf.Text) []string {
	if len(texts) == 0 {
		return nil
	}

	sorted := make([]pdf.Text, len(texts))
	copy(sorted, texts)

	// Tolerance for X comparison as fraction of font size. Some PDF
	// generators emit fragments in correct stream order but with slightly
	// disordered X coordinates.
	const xTolerance = 0.25

	sort.SliceStable(sorted, func(i, j int) bool {
		yDiff := sorted[i].Y - sorted[j].Y
		if abs(yDiff) > lineTolerance(sorted[i].FontSize) {
			return yDiff > 0 // higher Y first (PDF coordinates)
		}
		if abs(sorted[i].X-sorted[j].X) < sorted[i].FontSize*xTolerance {
			return false // treat as equal, preserve stream order
		}
		return sorted[i].X < sorted[j].X
	})

	var lines []string
	var line strings.Builder
	var lastY float64
	var lastEndX float64
	first := true

	for _, t := range sorted {
		if t.S == "" {
			continue
		}
		if first {
			line.WriteString(t.S)
			lastY = t.Y
			lastEndX = t.X + t.W
			first = false
			continue
		}

		if abs(t.Y-lastY) > lineTolerance(t.FontSize) {
			lines = append(lines, line.String())
			line.Reset()
			line.WriteString(t.S)
		} else {
			gap := t.X - lastEndX
			if gap > t.FontSize*0.3 && !strings.HasSuffix(line.String(), " ") {
				line.WriteString(" ")
			}
			line.WriteString(t.S)
		}

		lastY = t.Y
		lastEndX = t.X + t.W
	}

	if line.Len() > 0 {
		lines = append(lines, line.String())
	}

	return lines
}

// lineTolerance returns the maximum baseline difference for two
// characters to be considered part of the same line.
func lineTolerance(fontSize float64) float64 {
	if fontSize <= 0 {
		return 2
	}
	return fontSize * 0.5
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
