package extract

import (
	"testing"

	"github.com/ledongthuc/pdf"

	"github.com/swimtools/psychmark/model"
)

func TestBuildLineSingleSpan(t *testing.T) {
	line, ok := buildLine(word("MAC-MA", 72, 700))
	if !ok {
		t.Fatal("expected a line")
	}
	if len(line.Spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(line.Spans))
	}
	if line.Spans[0].Text != "MAC-MA" {
		t.Errorf("span text = %q, want %q", line.Spans[0].Text, "MAC-MA")
	}

	// Box must cover the full run: x from 72 to 72 + 6 chars * 6pt.
	box := line.Spans[0].BBox
	if box.X0 != 72 || box.X1 != 108 {
		t.Errorf("span box x = [%g, %g], want [72, 108]", box.X0, box.X1)
	}
	if box.Y0 >= 700 || box.Y1 <= 700 {
		t.Errorf("span box y = [%g, %g], want to straddle the baseline 700", box.Y0, box.Y1)
	}
}

func TestBuildLineSplitsSpansAtWordGap(t *testing.T) {
	var chars []pdf.Text
	chars = append(chars, word("MAC-MA", 72, 700)...)
	chars = append(chars, word("Smith", 140, 700)...)

	line, ok := buildLine(chars)
	if !ok {
		t.Fatal("expected a line")
	}
	if len(line.Spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(line.Spans))
	}
	if got := line.Text(); got != "MAC-MA Smith" {
		t.Errorf("Text() = %q, want %q", got, "MAC-MA Smith")
	}
}

func TestBuildLineSplitsSpansAtFontChange(t *testing.T) {
	bold := pdf.Text{Font: "Helvetica-Bold", FontSize: 12, X: 108, Y: 700, W: 6, S: "X"}
	chars := append(word("abc", 90, 700), bold)

	line, ok := buildLine(chars)
	if !ok {
		t.Fatal("expected a line")
	}
	if len(line.Spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(line.Spans))
	}
	if line.Spans[1].Font != "Helvetica-Bold" {
		t.Errorf("second span font = %q, want Helvetica-Bold", line.Spans[1].Font)
	}
}

func TestBuildLineBBoxIsSpanUnion(t *testing.T) {
	var chars []pdf.Text
	chars = append(chars, word("ab", 72, 700)...)
	chars = append(chars, word("cd", 200, 700)...)

	line, ok := buildLine(chars)
	if !ok {
		t.Fatal("expected a line")
	}
	want := line.Spans[0].BBox.Union(line.Spans[1].BBox)
	if line.BBox != want {
		t.Errorf("line box = %+v, want union of spans %+v", line.BBox, want)
	}
}

func TestBuildLineEmpty(t *testing.T) {
	if _, ok := buildLine(nil); ok {
		t.Error("expected no line from empty input")
	}
	if _, ok := buildLine(word("   ", 72, 700)); ok {
		t.Error("expected no line from whitespace-only input")
	}
}

func TestGroupIntoBlocks(t *testing.T) {
	mkLine := func(y float64) Line {
		line, _ := buildLine(word("text", 72, y))
		return line
	}

	// Three tightly spaced lines, a large gap, then two more.
	lines := []Line{mkLine(700), mkLine(686), mkLine(672), mkLine(500), mkLine(486)}

	blocks := groupIntoBlocks(lines)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if len(blocks[0].Lines) != 3 {
		t.Errorf("first block has %d lines, want 3", len(blocks[0].Lines))
	}
	if len(blocks[1].Lines) != 2 {
		t.Errorf("second block has %d lines, want 2", len(blocks[1].Lines))
	}
	for _, b := range blocks {
		if b.Kind != BlockText {
			t.Errorf("block kind = %v, want BlockText", b.Kind)
		}
	}
}

func TestTextBlocksSkipsNonText(t *testing.T) {
	pl := &PageLayout{Blocks: []Block{
		{Kind: BlockText, Lines: []Line{{}}},
		{Kind: BlockImage},
		{Kind: BlockText, Lines: []Line{{}}},
	}}
	if got := len(pl.TextBlocks()); got != 2 {
		t.Errorf("TextBlocks() returned %d blocks, want 2", got)
	}
}

func TestLineTextJoinsSpansWithSingleSpaces(t *testing.T) {
	line := Line{Spans: []Span{
		{Text: "MAC-MA", BBox: model.NewRect(72, 698, 108, 712)},
		{Text: "John Smith", BBox: model.NewRect(140, 698, 200, 712)},
		{Text: "1:23.45", BBox: model.NewRect(230, 698, 272, 712)},
	}}
	want := "MAC-MA John Smith 1:23.45"
	if got := line.Text(); got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}
