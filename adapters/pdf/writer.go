package biopdf

import (
	"bytes"
	"context"
	"image/png"
	"io"

	"seehuhn.de/go/geom/matrix"
	pdflib "seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
	pdfimage "seehuhn.de/go/pdf/graphics/image"

	"github.com/DEV-SHUKLA-GITHUB/BioData-maker/biodata"
)

// pageWidthPoints is 210 mm expressed in PDF points.
const pageWidthPoints = 210.0 / 25.4 * 72.0

// PageWriter embeds a capture into a single portrait page of fixed
// 210 mm width whose height follows the bitmap's aspect ratio. Long
// content yields one tall page rather than splitting.
type PageWriter struct{}

var _ biodata.PageWriter = PageWriter{}

// WritePage encodes the page. The document is assembled in memory and
// copied out only when encoding succeeds, so a failure leaves the
// destination untouched.
func (PageWriter) WritePage(ctx context.Context, bmp biodata.Bitmap, w io.Writer) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(bmp.PNG) == 0 {
		return 0, biodata.NewError(biodata.KindValidation, "bitmap is empty", nil)
	}

	img, err := png.Decode(bytes.NewReader(bmp.PNG))
	if err != nil {
		return 0, biodata.NewError(biodata.KindValidation, "bitmap is not a decodable png", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return 0, biodata.NewError(biodata.KindValidation, "bitmap has zero dimensions", nil)
	}
	pageHeight := pageWidthPoints * float64(bounds.Dy()) / float64(bounds.Dx())

	var buf bytes.Buffer
	paper := &pdflib.Rectangle{URx: pageWidthPoints, URy: pageHeight}
	page, err := document.WriteSinglePage(&buf, paper, pdflib.V2_0, nil)
	if err != nil {
		return 0, err
	}

	xobj := pdfimage.FromImage(img, color.DeviceRGBSpace, 8)

	page.PushGraphicsState()
	page.Transform(matrix.Scale(pageWidthPoints, pageHeight))
	page.DrawXObject(xobj)
	page.PopGraphicsState()

	if err := page.Close(); err != nil {
		return 0, err
	}

	n, err := buf.WriteTo(w)
	if err != nil {
		return n, err
	}
	return n, nil
}

// PageSize reports the output page dimensions in points for a capture.
func PageSize(bmp biodata.Bitmap) (width, height float64) {
	if bmp.Width <= 0 || bmp.Height <= 0 {
		return pageWidthPoints, 0
	}
	return pageWidthPoints, pageWidthPoints * float64(bmp.Height) / float64(bmp.Width)
}
