package biodatarouter

import (
	"bytes"
	"net/http"
	"strings"

	errorslib "github.com/goliatone/go-errors"
	"github.com/goliatone/go-router"

	"github.com/DEV-SHUKLA-GITHUB/BioData-maker/biodata"
)

// DefaultBasePath prefixes all biodata routes.
const DefaultBasePath = "/api"

// Config configures the go-router adapter.
type Config struct {
	Service  *biodata.FormService
	Exporter *biodata.Exporter
	Preview  biodata.HTMLRenderer
	Logger   biodata.Logger
	BasePath string
}

// Handler exposes the form and template routes for go-router.
type Handler struct {
	service  *biodata.FormService
	exporter *biodata.Exporter
	preview  biodata.HTMLRenderer
	logger   biodata.Logger
	basePath string
}

// NewHandler creates a go-router handler.
func NewHandler(cfg Config) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = biodata.NopLogger{}
	}
	base := strings.TrimRight(cfg.BasePath, "/")
	if base == "" {
		base = DefaultBasePath
	}
	return &Handler{
		service:  cfg.Service,
		exporter: cfg.Exporter,
		preview:  cfg.Preview,
		logger:   logger,
		basePath: base,
	}
}

// RegisterRoutes registers routes on a compatible go-router router.
func (h *Handler) RegisterRoutes(r any) {
	reg, ok := r.(routeRegistrar)
	if !ok {
		return
	}
	base := h.basePath

	reg.Get(base+"/biodata", h.GetForm)
	reg.Post(base+"/biodata/fields", h.AddField)
	reg.Delete(base+"/biodata/fields/:section/:key", h.DeleteField)
	reg.Patch(base+"/biodata/fields/:section/:key/label", h.RenameLabel)
	reg.Patch(base+"/biodata/fields/:section/:key/value", h.SetValue)
	reg.Post(base+"/biodata/fields/:section/reorder", h.Reorder)
	reg.Post(base+"/biodata/image", h.UploadImage)
	reg.Get(base+"/biodata/image/:token", h.GetImage)
	reg.Post(base+"/biodata/save", h.SaveForm)
	reg.Post(base+"/biodata/load", h.LoadForm)
	reg.Post(base+"/biodata/submit", h.Submit)
	reg.Get(base+"/templates", h.ListTemplates)
	reg.Get(base+"/templates/:id/preview", h.PreviewTemplate)
	reg.Post(base+"/templates/:id/export", h.Export)
}

// GetForm handles GET /api/biodata.
func (h *Handler) GetForm(c router.Context) error {
	if h == nil || h.service == nil {
		return writeError(c, biodata.NewError(biodata.KindNotImpl, "form service not configured", nil))
	}
	return c.JSON(http.StatusOK, h.service.Schema())
}

type addFieldPayload struct {
	Section string `json:"section"`
}

// AddField handles POST /api/biodata/fields.
func (h *Handler) AddField(c router.Context) error {
	if h == nil || h.service == nil {
		return writeError(c, biodata.NewError(biodata.KindNotImpl, "form service not configured", nil))
	}
	var payload addFieldPayload
	if err := c.Bind(&payload); err != nil {
		return writeError(c, biodata.NewError(biodata.KindValidation, "invalid payload", err))
	}
	return c.JSON(http.StatusOK, h.service.AddField(biodata.Section(payload.Section)))
}

// DeleteField handles DELETE /api/biodata/fields/:section/:key.
func (h *Handler) DeleteField(c router.Context) error {
	if h == nil || h.service == nil {
		return writeError(c, biodata.NewError(biodata.KindNotImpl, "form service not configured", nil))
	}
	section := biodata.Section(c.Param("section"))
	key := c.Param("key")
	return c.JSON(http.StatusOK, h.service.DeleteField(section, key))
}

type labelPayload struct {
	Label string `json:"label"`
}

// RenameLabel handles PATCH /api/biodata/fields/:section/:key/label.
func (h *Handler) RenameLabel(c router.Context) error {
	if h == nil || h.service == nil {
		return writeError(c, biodata.NewError(biodata.KindNotImpl, "form service not configured", nil))
	}
	var payload labelPayload
	if err := c.Bind(&payload); err != nil {
		return writeError(c, biodata.NewError(biodata.KindValidation, "invalid payload", err))
	}
	section := biodata.Section(c.Param("section"))
	key := c.Param("key")
	return c.JSON(http.StatusOK, h.service.RenameLabel(section, key, payload.Label))
}

type valuePayload struct {
	Value string `json:"value"`
}

// SetValue handles PATCH /api/biodata/fields/:section/:key/value.
func (h *Handler) SetValue(c router.Context) error {
	if h == nil || h.service == nil {
		return writeError(c, biodata.NewError(biodata.KindNotImpl, "form service not configured", nil))
	}
	var payload valuePayload
	if err := c.Bind(&payload); err != nil {
		return writeError(c, biodata.NewError(biodata.KindValidation, "invalid payload", err))
	}
	section := biodata.Section(c.Param("section"))
	key := c.Param("key")
	return c.JSON(http.StatusOK, h.service.SetValue(section, key, payload.Value))
}

type reorderPayload struct {
	Source      int `json:"source"`
	Destination int `json:"destination"`
}

// Reorder handles POST /api/biodata/fields/:section/reorder.
func (h *Handler) Reorder(c router.Context) error {
	if h == nil || h.service == nil {
		return writeError(c, biodata.NewError(biodata.KindNotImpl, "form service not configured", nil))
	}
	var payload reorderPayload
	if err := c.Bind(&payload); err != nil {
		return writeError(c, biodata.NewError(biodata.KindValidation, "invalid payload", err))
	}
	section := biodata.Section(c.Param("section"))
	return c.JSON(http.StatusOK, h.service.Reorder(section, payload.Source, payload.Destination))
}

// UploadImage handles POST /api/biodata/image. The photo travels as the
// raw request body with its Content-Type header.
func (h *Handler) UploadImage(c router.Context) error {
	if h == nil || h.service == nil {
		return writeError(c, biodata.NewError(biodata.KindNotImpl, "form service not configured", nil))
	}
	preview, err := h.service.AttachImage(c.Body(), c.Header("Content-Type"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"imagePreview": preview})
}

// GetImage handles GET /api/biodata/image/:token.
func (h *Handler) GetImage(c router.Context) error {
	if h == nil || h.service == nil {
		return writeError(c, biodata.NewError(biodata.KindNotImpl, "form service not configured", nil))
	}
	img, ok := h.service.ImageByToken(c.Param("token"))
	if !ok {
		return writeError(c, biodata.NewError(biodata.KindNotFound, "image not found", nil))
	}
	c.SetHeader("Content-Type", img.ContentType)
	c.Status(http.StatusOK)
	return c.Send(img.Data)
}

// SaveForm handles POST /api/biodata/save.
func (h *Handler) SaveForm(c router.Context) error {
	if h == nil || h.service == nil {
		return writeError(c, biodata.NewError(biodata.KindNotImpl, "form service not configured", nil))
	}
	if err := h.service.Save(c.Context()); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}

// LoadForm handles POST /api/biodata/load. It restores the persisted
// snapshot and returns the resulting schema.
func (h *Handler) LoadForm(c router.Context) error {
	if h == nil || h.service == nil {
		return writeError(c, biodata.NewError(biodata.KindNotImpl, "form service not configured", nil))
	}
	h.service.Load(c.Context())
	return c.JSON(http.StatusOK, h.service.Schema())
}

// Submit handles POST /api/biodata/submit.
func (h *Handler) Submit(c router.Context) error {
	if h == nil || h.service == nil {
		return writeError(c, biodata.NewError(biodata.KindNotImpl, "form service not configured", nil))
	}
	record, err := h.service.Submit(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, record)
}

// ListTemplates handles GET /api/templates.
func (h *Handler) ListTemplates(c router.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"templates": biodata.Templates})
}

// PreviewTemplate handles GET /api/templates/:id/preview.
func (h *Handler) PreviewTemplate(c router.Context) error {
	if h == nil || h.service == nil || h.preview == nil {
		return writeError(c, biodata.NewError(biodata.KindNotImpl, "preview renderer not configured", nil))
	}
	tmpl, err := biodata.TemplateByID(c.ParamsInt("id", 0))
	if err != nil {
		return writeError(c, err)
	}
	record, err := h.service.Transform()
	if err != nil {
		return writeError(c, err)
	}
	header, items := biodata.BuildRenderItems(record)
	markup, err := h.preview.RenderHTML(c.Context(), biodata.Document{
		Template: tmpl,
		Header:   header,
		Items:    items,
		Record:   record,
	})
	if err != nil {
		return writeError(c, err)
	}
	c.SetHeader("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	return c.Send([]byte(markup))
}

// Export handles POST /api/templates/:id/export. The artifact is
// buffered so a late failure never leaves a partial download.
func (h *Handler) Export(c router.Context) error {
	if h == nil || h.service == nil || h.exporter == nil {
		return writeError(c, biodata.NewError(biodata.KindNotImpl, "exporter not configured", nil))
	}
	record, err := h.service.Transform()
	if err != nil {
		return writeError(c, err)
	}

	var buf bytes.Buffer
	result, err := h.exporter.Export(c.Context(), biodata.ExportRequest{
		TemplateID: c.ParamsInt("id", 0),
		Format:     biodata.Format(c.Query("format")),
		Record:     record,
	}, &buf)
	if err != nil {
		return writeError(c, err)
	}

	c.SetHeader("Content-Type", contentTypeForFormat(result.Format))
	c.SetHeader("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	c.Status(http.StatusOK)
	return c.Send(buf.Bytes())
}

// ErrorResponse describes JSON error responses.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody contains error details.
type ErrorBody struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

func writeError(c router.Context, err error) error {
	if err == nil {
		return c.NoContent(http.StatusNoContent)
	}
	ge := biodata.AsGoError(err)
	return c.JSON(statusForError(ge), ErrorResponse{
		Error: ErrorBody{Message: ge.Message, Code: ge.TextCode},
	})
}

func statusForError(err *errorslib.Error) int {
	if err == nil {
		return http.StatusInternalServerError
	}
	if err.TextCode == "not_implemented" {
		return http.StatusNotImplemented
	}
	switch err.Category {
	case errorslib.CategoryValidation:
		return http.StatusBadRequest
	case errorslib.CategoryNotFound:
		return http.StatusNotFound
	case errorslib.CategoryOperation:
		switch err.TextCode {
		case "busy", "canceled":
			return http.StatusConflict
		default:
			return http.StatusRequestTimeout
		}
	default:
		return http.StatusInternalServerError
	}
}

func contentTypeForFormat(format biodata.Format) string {
	switch format {
	case biodata.FormatPDF:
		return "application/pdf"
	case biodata.FormatHTML:
		return "text/html; charset=utf-8"
	case biodata.FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case biodata.FormatJSON:
		return "application/json"
	default:
		return "application/octet-stream"
	}
}

type routeRegistrar interface {
	Get(path string, handler router.HandlerFunc, mw ...router.MiddlewareFunc) router.RouteInfo
	Post(path string, handler router.HandlerFunc, mw ...router.MiddlewareFunc) router.RouteInfo
	Patch(path string, handler router.HandlerFunc, mw ...router.MiddlewareFunc) router.RouteInfo
	Delete(path string, handler router.HandlerFunc, mw ...router.MiddlewareFunc) router.RouteInfo
}
