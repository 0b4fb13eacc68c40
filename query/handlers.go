package query

import (
	"context"

	"github.com/goliatone/go-errors"

	"github.com/DEV-SHUKLA-GITHUB/BioData-maker/biodata"
)

// FormSchemaHandler returns the current schema view.
type FormSchemaHandler struct {
	Service *biodata.FormService
}

func NewFormSchemaHandler(svc *biodata.FormService) *FormSchemaHandler {
	return &FormSchemaHandler{Service: svc}
}

func (h *FormSchemaHandler) Query(ctx context.Context, msg FormSchema) (biodata.SchemaView, error) {
	if h == nil || h.Service == nil {
		return biodata.SchemaView{}, errors.New("form service is required", errors.CategoryInternal).
			WithTextCode("SERVICE_REQUIRED")
	}
	_ = ctx
	_ = msg
	return h.Service.Schema(), nil
}

// TemplateCatalogHandler returns the static template catalog.
type TemplateCatalogHandler struct{}

func NewTemplateCatalogHandler() *TemplateCatalogHandler {
	return &TemplateCatalogHandler{}
}

func (h *TemplateCatalogHandler) Query(ctx context.Context, msg TemplateCatalog) ([]biodata.TemplateDescriptor, error) {
	_ = ctx
	_ = msg
	return biodata.Templates, nil
}

// FieldOptionsHandler returns the option list for a constrained field.
type FieldOptionsHandler struct{}

func NewFieldOptionsHandler() *FieldOptionsHandler {
	return &FieldOptionsHandler{}
}

func (h *FieldOptionsHandler) Query(ctx context.Context, msg FieldOptions) ([]string, error) {
	_ = ctx
	opts, ok := biodata.FieldOptions(msg.Key)
	if !ok {
		return nil, biodata.NewError(biodata.KindNotFound, "field has no option list", nil)
	}
	return opts, nil
}

// SessionImageHandler returns the session photo by preview token.
type SessionImageHandler struct {
	Service *biodata.FormService
}

func NewSessionImageHandler(svc *biodata.FormService) *SessionImageHandler {
	return &SessionImageHandler{Service: svc}
}

func (h *SessionImageHandler) Query(ctx context.Context, msg SessionImage) (*biodata.ImageAttachment, error) {
	if h == nil || h.Service == nil {
		return nil, errors.New("form service is required", errors.CategoryInternal).
			WithTextCode("SERVICE_REQUIRED")
	}
	_ = ctx
	img, ok := h.Service.ImageByToken(msg.Token)
	if !ok {
		return nil, biodata.NewError(biodata.KindNotFound, "image not found", nil)
	}
	return img, nil
}
