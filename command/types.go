package command

import (
	"io"

	"github.com/goliatone/go-errors"

	"github.com/DEV-SHUKLA-GITHUB/BioData-maker/biodata"
)

// AddField adds a custom field to a section.
type AddField struct {
	Section biodata.Section
	Result  *biodata.Mutation
}

func (AddField) Type() string { return "biodata:add_field" }

func (msg AddField) Validate() error {
	if msg.Section == "" {
		return errors.New("section is required", errors.CategoryValidation).
			WithTextCode("SECTION_REQUIRED")
	}
	return nil
}

// DeleteField removes a non-mandatory field.
type DeleteField struct {
	Section biodata.Section
	Key     string
	Result  *biodata.Mutation
}

func (DeleteField) Type() string { return "biodata:delete_field" }

func (msg DeleteField) Validate() error {
	if msg.Section == "" {
		return errors.New("section is required", errors.CategoryValidation).
			WithTextCode("SECTION_REQUIRED")
	}
	if msg.Key == "" {
		return errors.New("field key is required", errors.CategoryValidation).
			WithTextCode("KEY_REQUIRED")
	}
	return nil
}

// RenameField changes a non-mandatory field's label.
type RenameField struct {
	Section biodata.Section
	Key     string
	Label   string
	Result  *biodata.Mutation
}

func (RenameField) Type() string { return "biodata:rename_field" }

func (msg RenameField) Validate() error {
	if msg.Section == "" {
		return errors.New("section is required", errors.CategoryValidation).
			WithTextCode("SECTION_REQUIRED")
	}
	if msg.Key == "" {
		return errors.New("field key is required", errors.CategoryValidation).
			WithTextCode("KEY_REQUIRED")
	}
	return nil
}

// SetFieldValue overwrites a field's value.
type SetFieldValue struct {
	Section biodata.Section
	Key     string
	Value   string
	Result  *biodata.Mutation
}

func (SetFieldValue) Type() string { return "biodata:set_value" }

func (msg SetFieldValue) Validate() error {
	if msg.Section == "" {
		return errors.New("section is required", errors.CategoryValidation).
			WithTextCode("SECTION_REQUIRED")
	}
	if msg.Key == "" {
		return errors.New("field key is required", errors.CategoryValidation).
			WithTextCode("KEY_REQUIRED")
	}
	return nil
}

// ReorderField moves a field within its section's order.
type ReorderField struct {
	Section     biodata.Section
	Source      int
	Destination int
	Result      *biodata.Mutation
}

func (ReorderField) Type() string { return "biodata:reorder_field" }

func (msg ReorderField) Validate() error {
	if msg.Section == "" {
		return errors.New("section is required", errors.CategoryValidation).
			WithTextCode("SECTION_REQUIRED")
	}
	return nil
}

// SaveForm persists the current form snapshot.
type SaveForm struct{}

func (SaveForm) Type() string { return "biodata:save" }

func (SaveForm) Validate() error { return nil }

// SubmitForm validates and transforms the form into a record.
type SubmitForm struct {
	Result *biodata.Record
}

func (SubmitForm) Type() string { return "biodata:submit" }

func (SubmitForm) Validate() error { return nil }

// ExportTemplate renders the current form through a template into the
// requested format.
type ExportTemplate struct {
	TemplateID int
	Format     biodata.Format
	Output     io.Writer
	Result     *biodata.ExportResult
}

func (ExportTemplate) Type() string { return "biodata:export" }

func (msg ExportTemplate) Validate() error {
	if msg.TemplateID <= 0 {
		return errors.New("template ID is required", errors.CategoryValidation).
			WithTextCode("TEMPLATE_ID_REQUIRED")
	}
	if msg.Output == nil {
		return errors.New("output writer is required", errors.CategoryValidation).
			WithTextCode("OUTPUT_REQUIRED")
	}
	return nil
}
