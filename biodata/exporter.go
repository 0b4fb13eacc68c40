package biodata

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"
)

// DefaultRasterScale is the device-pixel-ratio used for print capture.
const DefaultRasterScale = 2

// DefaultRasterSelector identifies the template subtree to capture.
const DefaultRasterSelector = "#biodata-template"

// PDFRenderer drives the image-based PDF pipeline: render markup,
// rasterize it, embed the bitmap into a single page sized to the
// capture's aspect ratio.
type PDFRenderer struct {
	HTML   HTMLRenderer
	Raster Rasterizer
	Pages  PageWriter
}

// Render produces the PDF. Nothing is written until rasterization and
// page encoding both succeed, so a failed export leaves no partial file.
func (r *PDFRenderer) Render(ctx context.Context, doc Document, w io.Writer, opts RenderOptions) (RenderStats, error) {
	if r.HTML == nil || r.Raster == nil || r.Pages == nil {
		return RenderStats{}, NewError(KindInternal, "pdf pipeline is not fully configured", nil)
	}

	markup, err := r.HTML.RenderHTML(ctx, doc)
	if err != nil {
		return RenderStats{}, NewError(KindInternal, "template rendering failed", err)
	}

	raster := opts.Raster
	if raster.Scale <= 0 {
		raster.Scale = DefaultRasterScale
	}
	if raster.Selector == "" {
		raster.Selector = DefaultRasterSelector
	}

	bmp, err := r.Raster.Rasterize(ctx, markup, raster)
	if err != nil {
		return RenderStats{}, NewError(KindInternal, "rasterization failed", err)
	}

	n, err := r.Pages.WritePage(ctx, bmp, w)
	if err != nil {
		return RenderStats{}, NewError(KindInternal, "page encoding failed", err)
	}

	return RenderStats{Items: int64(len(doc.Items)), Bytes: n}, nil
}

// HTMLDocRenderer emits the rendered template markup itself.
type HTMLDocRenderer struct {
	HTML HTMLRenderer
}

// Render writes the template document.
func (r *HTMLDocRenderer) Render(ctx context.Context, doc Document, w io.Writer, opts RenderOptions) (RenderStats, error) {
	if r.HTML == nil {
		return RenderStats{}, NewError(KindInternal, "html renderer is not configured", nil)
	}
	markup, err := r.HTML.RenderHTML(ctx, doc)
	if err != nil {
		return RenderStats{}, NewError(KindInternal, "template rendering failed", err)
	}
	n, err := io.WriteString(w, markup)
	if err != nil {
		return RenderStats{}, err
	}
	return RenderStats{Items: int64(len(doc.Items)), Bytes: int64(n)}, nil
}

// ExporterConfig configures an Exporter.
type ExporterConfig struct {
	Formats *FormatRegistry
	Logger  Logger
}

// Exporter resolves a template and format, builds the render items,
// and streams the artifact. One export runs at a time; a second
// concurrent request is refused with a busy error.
type Exporter struct {
	formats *FormatRegistry
	log     Logger
	busy    atomic.Bool
}

// NewExporter creates an exporter.
func NewExporter(cfg ExporterConfig) (*Exporter, error) {
	if cfg.Formats == nil {
		return nil, NewError(KindValidation, "format registry is required", nil)
	}
	log := cfg.Logger
	if log == nil {
		log = NopLogger{}
	}
	return &Exporter{formats: cfg.Formats, log: log}, nil
}

// Busy reports whether an export is in flight.
func (e *Exporter) Busy() bool {
	return e.busy.Load()
}

// Export runs one export to completion. No cancellation once started.
func (e *Exporter) Export(ctx context.Context, req ExportRequest, w io.Writer) (ExportResult, error) {
	if !e.busy.CompareAndSwap(false, true) {
		return ExportResult{}, NewError(KindBusy, "an export is already in progress", nil)
	}
	defer e.busy.Store(false)

	format := req.Format
	if format == "" {
		format = FormatPDF
	}

	tmpl, err := TemplateByID(req.TemplateID)
	if err != nil {
		return ExportResult{}, err
	}

	renderer, ok := e.formats.Resolve(format)
	if !ok {
		return ExportResult{}, NewError(KindValidation,
			fmt.Sprintf("format %q is not supported", format), nil)
	}

	header, items := BuildRenderItems(req.Record)
	doc := Document{
		Template: tmpl,
		Header:   header,
		Items:    items,
		Record:   req.Record,
	}

	filename := ExportFilename(tmpl, format)
	e.log.Debugf("export start template=%d format=%s filename=%s", tmpl.ID, format, filename)

	stats, err := renderer.Render(ctx, doc, w, req.Options)
	if err != nil {
		e.log.Errorf("export failed template=%d format=%s: %v", tmpl.ID, format, err)
		return ExportResult{}, err
	}

	e.log.Infof("export done template=%d format=%s bytes=%d", tmpl.ID, format, stats.Bytes)
	return ExportResult{
		TemplateID: tmpl.ID,
		Format:     format,
		Filename:   filename,
		Bytes:      stats.Bytes,
	}, nil
}
