package highlight

import (
	"bytes"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/swimtools/psychmark/extract"
	"github.com/swimtools/psychmark/match"
	"github.com/swimtools/psychmark/model"
)

// Options controls the appearance of highlight annotations.
type Options struct {
	// R, G, B are the highlight color components in [0, 1].
	R, G, B float64

	// Opacity is the annotation's constant opacity in (0, 1].
	Opacity float64
}

// DefaultOptions returns the standard yellow marker appearance.
func DefaultOptions() Options {
	return Options{R: 1, G: 1, B: 0, Opacity: 0.4}
}

// Highlight draws a highlight annotation over every layout line whose
// text matches one of the given matches, and returns the annotated
// document serialized to fresh bytes. It returns a
// *extract.DocumentError if original cannot be parsed.
func Highlight(original []byte, matches []model.Match) ([]byte, error) {
	return WithOptions(original, matches, DefaultOptions())
}

// WithOptions is Highlight with a custom annotation appearance.
func WithOptions(original []byte, matches []model.Match, opts Options) ([]byte, error) {
	// Fresh handle for geometry lookup, independent of whichever handle
	// produced the matches.
	doc, err := extract.FromBytes(original)
	if err != nil {
		return nil, err
	}

	conf := pdfmodel.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(original), conf)
	if err != nil {
		return nil, &extract.DocumentError{Err: err}
	}

	rectsByPage, err := resolveRects(doc, matches)
	if err != nil {
		return nil, err
	}

	for pageIndex, rects := range rectsByPage {
		// pdfcpu numbers pages from 1.
		if err := appendHighlights(ctx, pageIndex+1, rects, opts); err != nil {
			return nil, fmt.Errorf("page %d: %w", pageIndex+1, err)
		}
	}

	var out bytes.Buffer
	if err := api.WriteContext(ctx, &out); err != nil {
		return nil, fmt.Errorf("serializing annotated document: %w", err)
	}
	return out.Bytes(), nil
}

// resolveRects maps each match back to line geometry. For every layout
// line on the match's page whose normalized text equals the match's
// normalized text, the union of the line's span boxes becomes a
// highlight rectangle. Matches that cannot be located are dropped
// without error; over-highlighting duplicates is preferred to missing
// a line.
func resolveRects(doc *extract.Document, matches []model.Match) (map[int][]model.Rect, error) {
	layouts := make(map[int]*extract.PageLayout)
	rectsByPage := make(map[int][]model.Rect)

	for _, m := range matches {
		if m.Page < 0 || m.Page >= doc.PageCount() {
			continue
		}

		layout, ok := layouts[m.Page]
		if !ok {
			var err error
			layout, err = doc.PageLayout(m.Page)
			if err != nil {
				return nil, err
			}
			layouts[m.Page] = layout
		}

		target := match.Normalize(m.Text)
		for _, rect := range lineRects(layout, target) {
			rectsByPage[m.Page] = append(rectsByPage[m.Page], rect)
		}
	}

	return rectsByPage, nil
}

// lineRects returns the bounding rectangle of every text-block line
// whose normalized text equals target.
func lineRects(layout *extract.PageLayout, target string) []model.Rect {
	var rects []model.Rect
	for _, block := range layout.TextBlocks() {
		for _, line := range block.Lines {
			if match.Normalize(line.Text()) != target {
				continue
			}
			rects = append(rects, spanUnion(line))
		}
	}
	return rects
}

// spanUnion computes a line's bounding rectangle as the union of all its
// spans' bounding boxes.
func spanUnion(line extract.Line) model.Rect {
	rects := make([]model.Rect, len(line.Spans))
	for i, s := range line.Spans {
		rects[i] = s.BBox
	}
	return model.UnionAll(rects)
}
