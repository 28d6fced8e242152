package psychmark

import (
	"fmt"
	"os"

	"github.com/swimtools/psychmark/extract"
	"github.com/swimtools/psychmark/highlight"
	"github.com/swimtools/psychmark/match"
	"github.com/swimtools/psychmark/model"
)

// Pipeline provides a fluent interface for the extract, match, and
// highlight stages. Each configuration method returns a new Pipeline
// instance, making it safe for concurrent use and allowing method
// chaining.
type Pipeline struct {
	// Source (exactly one is used)
	filename string
	data     []byte

	// Configuration
	query   string
	mode    model.Mode
	options highlightOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a copy of the Pipeline so that each chain method returns
// a new instance.
func (p *Pipeline) clone() *Pipeline {
	return &Pipeline{
		filename: p.filename,
		data:     p.data,
		query:    p.query,
		mode:     p.mode,
		options:  p.options,
		err:      p.err,
	}
}

// ============================================================================
// Configuration Methods (return new Pipeline instance)
// ============================================================================

// Query sets the search term. Matching is case-insensitive and
// line-based; surrounding whitespace is ignored.
//
// Example:
//
//	matches, err := psychmark.Open("sheet.pdf").Query("MAC-MA").Matches()
func (p *Pipeline) Query(query string) *Pipeline {
	np := p.clone()
	np.query = query
	return np
}

// SearchMode selects between team-code and swimmer-name comparison
// rules. A fresh pipeline uses [DefaultMode].
//
// Example:
//
//	matches, err := psychmark.Open("sheet.pdf").
//	    Query("John Smith").
//	    SearchMode(model.ModeSwimmerName).
//	    Matches()
func (p *Pipeline) SearchMode(mode model.Mode) *Pipeline {
	np := p.clone()
	np.mode = mode
	return np
}

// HighlightColor sets the highlight annotation color. Components are in
// the range [0, 1]; the default is yellow.
func (p *Pipeline) HighlightColor(r, g, b float64) *Pipeline {
	np := p.clone()
	np.options.r, np.options.g, np.options.b = r, g, b
	return np
}

// Opacity sets the highlight annotation opacity in (0, 1].
func (p *Pipeline) Opacity(opacity float64) *Pipeline {
	np := p.clone()
	np.options.opacity = opacity
	return np
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Matches runs extraction and matching and returns every line matching
// the query in page-then-line scan order. An empty result with a nil
// error means the query did not occur anywhere.
//
// Example:
//
//	matches, err := psychmark.Open("sheet.pdf").Query("MAC-MA").Matches()
func (p *Pipeline) Matches() ([]model.Match, error) {
	if p.err != nil {
		return nil, p.err
	}

	data, err := p.sourceBytes()
	if err != nil {
		return nil, err
	}

	doc, err := extract.FromBytes(data)
	if err != nil {
		return nil, err
	}

	return match.Find(doc, p.query, p.mode)
}

// Highlight runs the full pipeline: extract, match, highlight, and
// serialize. It returns the annotated document bytes together with the
// match list. When nothing matches, the returned bytes are a plain
// re-serialization of the document with no annotations added.
//
// Example:
//
//	annotated, matches, err := psychmark.FromBytes(data).Query("MAC-MA").Highlight()
func (p *Pipeline) Highlight() ([]byte, []model.Match, error) {
	if p.err != nil {
		return nil, nil, p.err
	}

	data, err := p.sourceBytes()
	if err != nil {
		return nil, nil, err
	}

	doc, err := extract.FromBytes(data)
	if err != nil {
		return nil, nil, err
	}

	matches, err := match.Find(doc, p.query, p.mode)
	if err != nil {
		return nil, nil, err
	}

	annotated, err := highlight.WithOptions(data, matches, highlight.Options{
		R: p.options.r, G: p.options.g, B: p.options.b,
		Opacity: p.options.opacity,
	})
	if err != nil {
		return nil, nil, err
	}

	return annotated, matches, nil
}

// PageCount returns the number of pages in the source document.
func (p *Pipeline) PageCount() (int, error) {
	if p.err != nil {
		return 0, p.err
	}

	data, err := p.sourceBytes()
	if err != nil {
		return 0, err
	}

	doc, err := extract.FromBytes(data)
	if err != nil {
		return 0, err
	}

	return doc.PageCount(), nil
}

// sourceBytes resolves the pipeline's input to raw bytes.
func (p *Pipeline) sourceBytes() ([]byte, error) {
	if p.data != nil {
		return p.data, nil
	}
	if p.filename == "" {
		return nil, fmt.Errorf("no input specified")
	}
	data, err := os.ReadFile(p.filename)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", p.filename, err)
	}
	return data, nil
}
