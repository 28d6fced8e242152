package extract

import (
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/swimtools/psychmark/model"
)

// BlockKind marks what a layout block contains.
type BlockKind int

const (
	// BlockText is a block of text lines.
	BlockText BlockKind = iota

	// BlockImage is a non-text block. The current engine only surfaces
	// text content, but consumers skip non-text kinds regardless.
	BlockImage
)

// Span is a contiguous run of characters sharing a font, carrying its
// own bounding box.
type Span struct {
	Text     string
	BBox     model.Rect
	Font     string
	FontSize float64
}

// Line is a single layout line made of one or more spans, left to right.
type Line struct {
	Spans []Span
	BBox  model.Rect
}

// Text reconstructs the line's full text by joining its spans'
// text with single-space separators.
func (l Line) Text() string {
	parts := make([]string, 0, len(l.Spans))
	for _, s := range l.Spans {
		parts = append(parts, s.Text)
	}
	return strings.Join(parts, " ")
}

// Block is a group of vertically adjacent lines.
type Block struct {
	Kind  BlockKind
	Lines []Line
	BBox  model.Rect
}

// PageLayout is the hierarchical layout of a page: blocks containing
// lines containing spans, each with a bounding box in page coordinates.
type PageLayout struct {
	Blocks []Block
}

// TextBlocks returns only the text-bearing blocks of the page.
func (pl *PageLayout) TextBlocks() []Block {
	var blocks []Block
	for _, b := range pl.Blocks {
		if b.Kind == BlockText {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

// Fractions of the font size used to size a span's box around its
// baseline, and to detect word boundaries between characters.
const (
	descentRatio = 0.2
	ascentRatio  = 1.0
	wordGapRatio = 0.3
)

// PageLayout returns the layout view of a zero-based page. This pass is
// independent of PageLines: it segments the page by row geometry, so its
// lines do not necessarily align index-for-index with the plain-text view.
func (d *Document) PageLayout(pageIndex int) (*PageLayout, error) {
	p, err := d.page(pageIndex)
	if err != nil {
		return nil, err
	}
	if p.V.IsNull() {
		return &PageLayout{}, nil
	}

	rows, err := p.GetTextByRow()
	if err != nil {
		return nil, &DocumentError{Err: err}
	}

	// Rows top to bottom (PDF coordinates: larger Y is higher).
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Position > rows[j].Position
	})

	var lines []Line
	for _, row := range rows {
		if line, ok := buildLine(row.Content); ok {
			lines = append(lines, line)
		}
	}

	return &PageLayout{Blocks: groupIntoBlocks(lines)}, nil
}

// buildLine merges a row's characters into spans and computes the
// bounding boxes. A span breaks on font change or on a horizontal gap
// wide enough to be a word boundary.
func buildLine(chars []pdf.Text) (Line, bool) {
	var spans []Span
	var cur strings.Builder
	var curBox model.Rect
	var curFont string
	var curSize float64
	var lastEndX float64

	flush := func() {
		if cur.Len() == 0 {
			return
		}
		text := cur.String()
		if strings.TrimSpace(text) != "" {
			spans = append(spans, Span{
				Text:     strings.TrimSpace(text),
				BBox:     curBox,
				Font:     curFont,
				FontSize: curSize,
			})
		}
		cur.Reset()
	}

	for _, c := range chars {
		if c.S == "" {
			continue
		}
		charBox := model.NewRect(
			c.X,
			c.Y-c.FontSize*descentRatio,
			c.X+c.W,
			c.Y+c.FontSize*ascentRatio,
		)

		newSpan := cur.Len() == 0 ||
			c.Font != curFont ||
			c.FontSize != curSize ||
			c.X-lastEndX > c.FontSize*wordGapRatio

		if newSpan {
			flush()
			curBox = charBox
			curFont = c.Font
			curSize = c.FontSize
		} else {
			curBox = curBox.Union(charBox)
		}
		cur.WriteString(c.S)
		lastEndX = c.X + c.W
	}
	flush()

	if len(spans) == 0 {
		return Line{}, false
	}

	rects := make([]model.Rect, len(spans))
	for i, s := range spans {
		rects[i] = s.BBox
	}
	return Line{Spans: spans, BBox: model.UnionAll(rects)}, true
}

// groupIntoBlocks splits a page's lines into blocks wherever the vertical
// gap between consecutive lines exceeds the block gap threshold.
func groupIntoBlocks(lines []Line) []Block {
	if len(lines) == 0 {
		return nil
	}

	const blockGapRatio = 1.8

	var blocks []Block
	start := 0
	for i := 1; i < len(lines); i++ {
		prev := lines[i-1]
		curr := lines[i]
		gap := prev.BBox.Y0 - curr.BBox.Y1
		if gap > prev.BBox.Height()*blockGapRatio {
			blocks = append(blocks, newTextBlock(lines[start:i]))
			start = i
		}
	}
	blocks = append(blocks, newTextBlock(lines[start:]))

	return blocks
}

func newTextBlock(lines []Line) Block {
	rects := make([]model.Rect, len(lines))
	for i, l := range lines {
		rects[i] = l.BBox
	}
	return Block{
		Kind:  BlockText,
		Lines: append([]Line(nil), lines...),
		BBox:  model.UnionAll(rects),
	}
}
