package biodata

import (
	"context"
	"io"
)

// Section identifies a namespace of fields.
type Section string

const (
	SectionPersonal Section = "personalDetails"
	SectionFamily   Section = "familyDetails"
	SectionContact  Section = "contactDetails"
)

// SectionOrder is the fixed rendering/serialization order of sections.
var SectionOrder = []Section{SectionPersonal, SectionFamily, SectionContact}

// FieldEntry is one labeled form field.
type FieldEntry struct {
	Key   string `json:"-"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// FormData maps section to field key to entry.
type FormData map[Section]map[string]FieldEntry

// FieldOrder is the per-section ordered list of field keys.
type FieldOrder map[Section][]string

// StoredForm is the durable snapshot of a form.
type StoredForm struct {
	FormData     FormData   `json:"formData"`
	FieldOrder   FieldOrder `json:"fieldOrder"`
	ImagePreview string     `json:"imagePreview,omitempty"`
}

// FormRepository persists the single form slot.
type FormRepository interface {
	Save(ctx context.Context, form StoredForm) error
	Load(ctx context.Context) (StoredForm, bool, error)
}

// RejectReason explains a rejected mutation.
type RejectReason string

const (
	RejectMandatory      RejectReason = "mandatory"
	RejectEmptyLabel     RejectReason = "empty_label"
	RejectUnknownSection RejectReason = "unknown_section"
	RejectUnknownField   RejectReason = "unknown_field"
	RejectInvalidOption  RejectReason = "invalid_option"
	RejectInvalidValue   RejectReason = "invalid_value"
	RejectNoDestination  RejectReason = "no_destination"
	RejectOutOfRange     RejectReason = "out_of_range"
	RejectNotEditing     RejectReason = "not_editing"
)

// Mutation is the outcome of a schema mutation attempt. Rejected
// mutations leave the form unchanged.
type Mutation struct {
	Accepted bool         `json:"accepted"`
	Key      string       `json:"key,omitempty"`
	Reason   RejectReason `json:"reason,omitempty"`
}

// ImageAttachment is the session photo plus its derived preview reference.
type ImageAttachment struct {
	Data        []byte
	ContentType string
	Preview     string
}

// RecordField is one label/value pair in submission order.
type RecordField struct {
	Label string
	Value string
}

// SectionRecord is the transformed output for one section.
type SectionRecord struct {
	Section Section
	Fields  []RecordField
}

// Record is the ordered submission output handed to rendering and export.
type Record struct {
	Sections []SectionRecord
	Image    *ImageAttachment
}

// Header carries the identity fields displayed outside the item list.
type Header struct {
	Name         string
	DateOfBirth  string
	PlaceOfBirth string
}

// RenderItem is the flattened unit every template consumes.
type RenderItem struct {
	Field      string
	Value      string
	Section    Section
	NewSection bool
	Multiline  bool
}

// TemplateDescriptor is a static catalog entry for one template.
type TemplateDescriptor struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// Document is the fully resolved input a renderer consumes.
type Document struct {
	Template TemplateDescriptor
	Header   Header
	Items    []RenderItem
	Record   Record
}

// Format is the export output format.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatHTML Format = "html"
	FormatXLSX Format = "xlsx"
	FormatJSON Format = "json"
)

// ExternalAssetsPolicy controls how external assets are handled during capture.
type ExternalAssetsPolicy string

const (
	ExternalAssetsUnspecified ExternalAssetsPolicy = ""
	ExternalAssetsAllow       ExternalAssetsPolicy = "allow"
	ExternalAssetsBlock       ExternalAssetsPolicy = "block"
)

// RasterOptions configures bitmap capture.
type RasterOptions struct {
	Scale                float64
	Selector             string
	ExternalAssetsPolicy ExternalAssetsPolicy
}

// XLSXOptions configures XLSX output.
type XLSXOptions struct {
	SheetName string
}

// RenderOptions configures renderer behavior.
type RenderOptions struct {
	Raster RasterOptions
	XLSX   XLSXOptions
}

// RenderStats capture renderer output.
type RenderStats struct {
	Items int64
	Bytes int64
}

// Renderer writes a resolved document to the destination.
type Renderer interface {
	Render(ctx context.Context, doc Document, w io.Writer, opts RenderOptions) (RenderStats, error)
}

// HTMLRenderer produces the template markup for a resolved document.
type HTMLRenderer interface {
	RenderHTML(ctx context.Context, doc Document) (string, error)
}

// Bitmap is an encoded capture plus its pixel dimensions.
type Bitmap struct {
	PNG    []byte
	Width  int
	Height int
}

// Rasterizer captures rendered markup as a bitmap.
type Rasterizer interface {
	Rasterize(ctx context.Context, html string, opts RasterOptions) (Bitmap, error)
}

// PageWriter embeds a bitmap into a paginated document.
type PageWriter interface {
	WritePage(ctx context.Context, bmp Bitmap, w io.Writer) (int64, error)
}

// ExportRequest captures an export request.
type ExportRequest struct {
	TemplateID int
	Format     Format
	Record     Record
	Options    RenderOptions
}

// ExportResult captures a completed export.
type ExportResult struct {
	TemplateID int
	Format     Format
	Filename   string
	Bytes      int64
}

// Logger provides logging hooks.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger discards all log output.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}
