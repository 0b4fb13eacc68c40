package render

import (
	"bytes"
	"context"
	"embed"
	"encoding/base64"
	"fmt"
	"io/fs"
	"sync"

	"github.com/flosch/pongo2/v6"
	"github.com/microcosm-cc/bluemonday"

	"github.com/DEV-SHUKLA-GITHUB/BioData-maker/biodata"
)

//go:embed templates/*.html
var templateFS embed.FS

// Config configures the template renderer.
type Config struct {
	Logger biodata.Logger
}

// Renderer produces template markup from a resolved document using an
// embedded pongo2 template per catalog entry. User-supplied strings
// pass through a strict sanitization policy before rendering.
type Renderer struct {
	mu        sync.RWMutex
	set       *pongo2.TemplateSet
	templates map[int]*pongo2.Template
	policy    *bluemonday.Policy
	log       biodata.Logger
}

var _ biodata.HTMLRenderer = (*Renderer)(nil)

// New constructs a Renderer over the embedded template set.
func New(cfg Config) (*Renderer, error) {
	log := cfg.Logger
	if log == nil {
		log = biodata.NopLogger{}
	}

	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("render: open embedded templates: %w", err)
	}

	return &Renderer{
		set:       pongo2.NewSet("biodata", pongo2.NewFSLoader(sub)),
		templates: make(map[int]*pongo2.Template),
		policy:    bluemonday.StrictPolicy(),
		log:       log,
	}, nil
}

// RenderHTML renders the document through its template.
func (r *Renderer) RenderHTML(ctx context.Context, doc biodata.Document) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	tmpl, err := r.template(doc.Template.ID)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteWriter(r.buildContext(doc), &buf); err != nil {
		return "", fmt.Errorf("render: execute template %d: %w", doc.Template.ID, err)
	}

	r.log.Debugf("rendered template=%d items=%d bytes=%d", doc.Template.ID, len(doc.Items), buf.Len())
	return buf.String(), nil
}

func (r *Renderer) template(id int) (*pongo2.Template, error) {
	r.mu.RLock()
	if tmpl, ok := r.templates[id]; ok {
		r.mu.RUnlock()
		return tmpl, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	if tmpl, ok := r.templates[id]; ok {
		return tmpl, nil
	}

	path := fmt.Sprintf("template%d.html", id)
	tmpl, err := r.set.FromFile(path)
	if err != nil {
		return nil, biodata.NewError(biodata.KindNotFound,
			fmt.Sprintf("no template markup for id %d", id), err)
	}
	r.templates[id] = tmpl
	return tmpl, nil
}

func (r *Renderer) buildContext(doc biodata.Document) pongo2.Context {
	items := make([]map[string]any, 0, len(doc.Items))
	for _, item := range doc.Items {
		items = append(items, map[string]any{
			"field":        r.policy.Sanitize(item.Field),
			"value":        r.policy.Sanitize(item.Value),
			"sectionLabel": biodata.SectionDisplayName(item.Section),
			"newSection":   item.NewSection,
			"multiline":    item.Multiline,
		})
	}

	viewCtx := pongo2.Context{
		"templateName": doc.Template.Name,
		"category":     doc.Template.Category,
		"name":         r.policy.Sanitize(doc.Header.Name),
		"dateOfBirth":  r.policy.Sanitize(doc.Header.DateOfBirth),
		"placeOfBirth": r.policy.Sanitize(doc.Header.PlaceOfBirth),
		"items":        items,
		"imageURI":     "",
	}

	if img := doc.Record.Image; img != nil && len(img.Data) > 0 {
		viewCtx["imageURI"] = fmt.Sprintf("data:%s;base64,%s",
			img.ContentType, base64.StdEncoding.EncodeToString(img.Data))
	}

	return viewCtx
}
