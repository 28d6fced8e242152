package psychmark

import "github.com/swimtools/psychmark/highlight"

// highlightOptions holds annotation appearance configuration for the
// pipeline.
type highlightOptions struct {
	r, g, b float64
	opacity float64
}

// defaultOptions returns the default pipeline options.
func defaultOptions() highlightOptions {
	d := highlight.DefaultOptions()
	return highlightOptions{
		r:       d.R,
		g:       d.G,
		b:       d.B,
		opacity: d.Opacity,
	}
}
