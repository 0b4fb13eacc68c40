package query

import (
	"github.com/goliatone/go-errors"
)

// FormSchema requests the current schema view.
type FormSchema struct{}

func (FormSchema) Type() string { return "biodata:schema" }

func (FormSchema) Validate() error { return nil }

// TemplateCatalog requests the template catalog.
type TemplateCatalog struct{}

func (TemplateCatalog) Type() string { return "biodata:templates" }

func (TemplateCatalog) Validate() error { return nil }

// FieldOptions requests the option list for a constrained field.
type FieldOptions struct {
	Key string
}

func (FieldOptions) Type() string { return "biodata:field_options" }

func (msg FieldOptions) Validate() error {
	if msg.Key == "" {
		return errors.New("field key is required", errors.CategoryValidation).
			WithTextCode("KEY_REQUIRED")
	}
	return nil
}

// SessionImage requests the session photo by preview token.
type SessionImage struct {
	Token string
}

func (SessionImage) Type() string { return "biodata:image" }

func (msg SessionImage) Validate() error {
	if msg.Token == "" {
		return errors.New("image token is required", errors.CategoryValidation).
			WithTextCode("TOKEN_REQUIRED")
	}
	return nil
}
