package command

import (
	"context"

	gcmd "github.com/goliatone/go-command"
	"github.com/goliatone/go-errors"

	"github.com/DEV-SHUKLA-GITHUB/BioData-maker/biodata"
)

// AddFieldHandler adds custom fields.
type AddFieldHandler struct {
	Service *biodata.FormService
}

func NewAddFieldHandler(svc *biodata.FormService) *AddFieldHandler {
	return &AddFieldHandler{Service: svc}
}

func (h *AddFieldHandler) Execute(ctx context.Context, msg AddField) error {
	if h == nil || h.Service == nil {
		return errors.New("form service is required", errors.CategoryInternal).
			WithTextCode("SERVICE_REQUIRED")
	}
	storeMutation(ctx, msg.Result, h.Service.AddField(msg.Section))
	return nil
}

// DeleteFieldHandler removes fields.
type DeleteFieldHandler struct {
	Service *biodata.FormService
}

func NewDeleteFieldHandler(svc *biodata.FormService) *DeleteFieldHandler {
	return &DeleteFieldHandler{Service: svc}
}

func (h *DeleteFieldHandler) Execute(ctx context.Context, msg DeleteField) error {
	if h == nil || h.Service == nil {
		return errors.New("form service is required", errors.CategoryInternal).
			WithTextCode("SERVICE_REQUIRED")
	}
	storeMutation(ctx, msg.Result, h.Service.DeleteField(msg.Section, msg.Key))
	return nil
}

// RenameFieldHandler renames field labels.
type RenameFieldHandler struct {
	Service *biodata.FormService
}

func NewRenameFieldHandler(svc *biodata.FormService) *RenameFieldHandler {
	return &RenameFieldHandler{Service: svc}
}

func (h *RenameFieldHandler) Execute(ctx context.Context, msg RenameField) error {
	if h == nil || h.Service == nil {
		return errors.New("form service is required", errors.CategoryInternal).
			WithTextCode("SERVICE_REQUIRED")
	}
	storeMutation(ctx, msg.Result, h.Service.RenameLabel(msg.Section, msg.Key, msg.Label))
	return nil
}

// SetFieldValueHandler writes field values.
type SetFieldValueHandler struct {
	Service *biodata.FormService
}

func NewSetFieldValueHandler(svc *biodata.FormService) *SetFieldValueHandler {
	return &SetFieldValueHandler{Service: svc}
}

func (h *SetFieldValueHandler) Execute(ctx context.Context, msg SetFieldValue) error {
	if h == nil || h.Service == nil {
		return errors.New("form service is required", errors.CategoryInternal).
			WithTextCode("SERVICE_REQUIRED")
	}
	storeMutation(ctx, msg.Result, h.Service.SetValue(msg.Section, msg.Key, msg.Value))
	return nil
}

// ReorderFieldHandler moves fields.
type ReorderFieldHandler struct {
	Service *biodata.FormService
}

func NewReorderFieldHandler(svc *biodata.FormService) *ReorderFieldHandler {
	return &ReorderFieldHandler{Service: svc}
}

func (h *ReorderFieldHandler) Execute(ctx context.Context, msg ReorderField) error {
	if h == nil || h.Service == nil {
		return errors.New("form service is required", errors.CategoryInternal).
			WithTextCode("SERVICE_REQUIRED")
	}
	storeMutation(ctx, msg.Result, h.Service.Reorder(msg.Section, msg.Source, msg.Destination))
	return nil
}

// SaveFormHandler persists the form.
type SaveFormHandler struct {
	Service *biodata.FormService
}

func NewSaveFormHandler(svc *biodata.FormService) *SaveFormHandler {
	return &SaveFormHandler{Service: svc}
}

func (h *SaveFormHandler) Execute(ctx context.Context, msg SaveForm) error {
	if h == nil || h.Service == nil {
		return errors.New("form service is required", errors.CategoryInternal).
			WithTextCode("SERVICE_REQUIRED")
	}
	_ = msg
	return h.Service.Save(ctx)
}

// SubmitFormHandler transforms the form into a record.
type SubmitFormHandler struct {
	Service *biodata.FormService
}

func NewSubmitFormHandler(svc *biodata.FormService) *SubmitFormHandler {
	return &SubmitFormHandler{Service: svc}
}

func (h *SubmitFormHandler) Execute(ctx context.Context, msg SubmitForm) error {
	if h == nil || h.Service == nil {
		return errors.New("form service is required", errors.CategoryInternal).
			WithTextCode("SERVICE_REQUIRED")
	}
	record, err := h.Service.Submit(ctx)
	if err != nil {
		return err
	}
	if msg.Result != nil {
		*msg.Result = record
	}
	if res := gcmd.ResultFromContext[biodata.Record](ctx); res != nil {
		res.Store(record)
	}
	return nil
}

// ExportTemplateHandler runs template exports.
type ExportTemplateHandler struct {
	Service  *biodata.FormService
	Exporter *biodata.Exporter
}

func NewExportTemplateHandler(svc *biodata.FormService, exp *biodata.Exporter) *ExportTemplateHandler {
	return &ExportTemplateHandler{Service: svc, Exporter: exp}
}

func (h *ExportTemplateHandler) Execute(ctx context.Context, msg ExportTemplate) error {
	if h == nil || h.Service == nil || h.Exporter == nil {
		return errors.New("form service and exporter are required", errors.CategoryInternal).
			WithTextCode("SERVICE_REQUIRED")
	}
	record, err := h.Service.Transform()
	if err != nil {
		return err
	}
	result, err := h.Exporter.Export(ctx, biodata.ExportRequest{
		TemplateID: msg.TemplateID,
		Format:     msg.Format,
		Record:     record,
	}, msg.Output)
	if err != nil {
		return err
	}
	if msg.Result != nil {
		*msg.Result = result
	}
	if res := gcmd.ResultFromContext[biodata.ExportResult](ctx); res != nil {
		res.Store(result)
	}
	return nil
}

func storeMutation(ctx context.Context, out *biodata.Mutation, m biodata.Mutation) {
	if out != nil {
		*out = m
	}
	if res := gcmd.ResultFromContext[biodata.Mutation](ctx); res != nil {
		res.Store(m)
	}
}
