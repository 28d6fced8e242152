package highlight

import (
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/swimtools/psychmark/model"
)

// annotPrintFlag makes the annotation render when the page is printed.
const annotPrintFlag = 4

// appendHighlights adds one highlight annotation per rectangle to the
// page's Annots array. pageNr is 1-based, matching pdfcpu.
func appendHighlights(ctx *pdfmodel.Context, pageNr int, rects []model.Rect, opts Options) error {
	if len(rects) == 0 {
		return nil
	}

	pageDict, _, _, err := ctx.PageDict(pageNr, false)
	if err != nil {
		return err
	}

	var annots types.Array
	if obj, found := pageDict.Find("Annots"); found {
		arr, err := ctx.DereferenceArray(obj)
		if err != nil {
			return err
		}
		annots = arr
	}

	for _, r := range rects {
		indRef, err := ctx.IndRefForNewObject(highlightDict(r, opts))
		if err != nil {
			return err
		}
		annots = append(annots, *indRef)
	}

	pageDict.Update("Annots", annots)
	return nil
}

// highlightDict builds the annotation dictionary for one rectangle.
// QuadPoints order is upper-left, upper-right, lower-left, lower-right,
// as PDF viewers expect for text markup annotations.
func highlightDict(r model.Rect, opts Options) types.Dict {
	return types.Dict(map[string]types.Object{
		"Type":    types.Name("Annot"),
		"Subtype": types.Name("Highlight"),
		"Rect":    types.NewNumberArray(r.X0, r.Y0, r.X1, r.Y1),
		"QuadPoints": types.NewNumberArray(
			r.X0, r.Y1,
			r.X1, r.Y1,
			r.X0, r.Y0,
			r.X1, r.Y0,
		),
		"C":  types.NewNumberArray(opts.R, opts.G, opts.B),
		"CA": types.Float(opts.Opacity),
		"F":  types.Integer(annotPrintFlag),
	})
}
