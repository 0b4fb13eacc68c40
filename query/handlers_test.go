package query

import (
	"context"
	"testing"

	"github.com/DEV-SHUKLA-GITHUB/BioData-maker/biodata"
)

func TestFormSchemaHandler_ReturnsSections(t *testing.T) {
	svc := biodata.NewFormService(biodata.FormServiceConfig{})
	handler := NewFormSchemaHandler(svc)

	view, err := handler.Query(context.Background(), FormSchema{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(view.Sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(view.Sections))
	}
}

func TestFormSchemaHandler_RequiresService(t *testing.T) {
	handler := NewFormSchemaHandler(nil)
	if _, err := handler.Query(context.Background(), FormSchema{}); err == nil {
		t.Fatal("expected service error")
	}
}

func TestTemplateCatalogHandler_ReturnsCatalog(t *testing.T) {
	handler := NewTemplateCatalogHandler()
	catalog, err := handler.Query(context.Background(), TemplateCatalog{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(catalog) != 7 {
		t.Fatalf("expected 7 templates, got %d", len(catalog))
	}
}

func TestFieldOptionsHandler(t *testing.T) {
	handler := NewFieldOptionsHandler()

	opts, err := handler.Query(context.Background(), FieldOptions{Key: "rashi"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(opts) != 12 {
		t.Fatalf("expected 12 rashi options, got %d", len(opts))
	}

	_, err = handler.Query(context.Background(), FieldOptions{Key: "name"})
	if biodata.KindFromError(err) != biodata.KindNotFound {
		t.Fatalf("expected not_found for free-text field, got %v", err)
	}
}

func TestSessionImageHandler(t *testing.T) {
	svc := biodata.NewFormService(biodata.FormServiceConfig{})
	preview, err := svc.AttachImage([]byte{0x89, 0x50, 0x4E, 0x47}, "image/png")
	if err != nil {
		t.Fatalf("attach: %v", err)
	}
	token, ok := biodata.PreviewToken(preview)
	if !ok {
		t.Fatalf("no token in %q", preview)
	}

	handler := NewSessionImageHandler(svc)
	img, err := handler.Query(context.Background(), SessionImage{Token: token})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if img.ContentType != "image/png" {
		t.Fatalf("unexpected content type %q", img.ContentType)
	}

	_, err = handler.Query(context.Background(), SessionImage{Token: "stale"})
	if biodata.KindFromError(err) != biodata.KindNotFound {
		t.Fatalf("expected not_found, got %v", err)
	}
}

func TestQueryValidation(t *testing.T) {
	if err := (FieldOptions{}).Validate(); err == nil {
		t.Fatal("expected missing key error")
	}
	if err := (SessionImage{}).Validate(); err == nil {
		t.Fatal("expected missing token error")
	}
	if err := (FormSchema{}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
