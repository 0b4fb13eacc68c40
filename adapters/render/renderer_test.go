package render

import (
	"context"
	"strings"
	"testing"

	"github.com/DEV-SHUKLA-GITHUB/BioData-maker/biodata"
)

func testDocument(tmplID int) biodata.Document {
	tmpl, _ := biodata.TemplateByID(tmplID)
	return biodata.Document{
		Template: tmpl,
		Header: biodata.Header{
			Name:         "Asha",
			DateOfBirth:  "1996-04-12",
			PlaceOfBirth: "Pune",
		},
		Items: []biodata.RenderItem{
			{Field: "Rashi", Value: "simha (leo)", Section: biodata.SectionPersonal, NewSection: true},
			{Field: "Father'sName", Value: "Ramesh", Section: biodata.SectionFamily, NewSection: true},
		},
	}
}

func TestRenderHTMLEveryTemplate(t *testing.T) {
	r, err := New(Config{})
	if err != nil {
		t.Fatalf("renderer init failed: %v", err)
	}

	for _, tmpl := range biodata.Templates {
		markup, err := r.RenderHTML(context.Background(), testDocument(tmpl.ID))
		if err != nil {
			t.Fatalf("template %d failed: %v", tmpl.ID, err)
		}
		if !strings.Contains(markup, `id="biodata-template"`) {
			t.Fatalf("template %d missing capture root", tmpl.ID)
		}
		if !strings.Contains(markup, "Asha") {
			t.Fatalf("template %d missing header name", tmpl.ID)
		}
		if !strings.Contains(markup, "simha (leo)") {
			t.Fatalf("template %d missing item value", tmpl.ID)
		}
		if !strings.Contains(markup, "Family Details") {
			t.Fatalf("template %d missing section header", tmpl.ID)
		}
	}
}

func TestRenderHTMLSanitizesValues(t *testing.T) {
	r, err := New(Config{})
	if err != nil {
		t.Fatalf("renderer init failed: %v", err)
	}

	doc := testDocument(1)
	doc.Items = []biodata.RenderItem{{
		Field:      "Work",
		Value:      `<script>alert("x")</script>Engineer`,
		Section:    biodata.SectionPersonal,
		NewSection: true,
	}}

	markup, err := r.RenderHTML(context.Background(), doc)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if strings.Contains(markup, "<script>") {
		t.Fatal("script tag survived sanitization")
	}
	if !strings.Contains(markup, "Engineer") {
		t.Fatal("text content lost in sanitization")
	}
}

func TestRenderHTMLInlinesImage(t *testing.T) {
	r, err := New(Config{})
	if err != nil {
		t.Fatalf("renderer init failed: %v", err)
	}

	doc := testDocument(6)
	doc.Record.Image = &biodata.ImageAttachment{
		Data:        []byte{0xff, 0xd8, 0xff},
		ContentType: "image/jpeg",
	}

	markup, err := r.RenderHTML(context.Background(), doc)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(markup, "data:image/jpeg;base64,") {
		t.Fatal("image not inlined as data URI")
	}
}

func TestRenderHTMLUnknownTemplate(t *testing.T) {
	r, err := New(Config{})
	if err != nil {
		t.Fatalf("renderer init failed: %v", err)
	}

	doc := testDocument(1)
	doc.Template.ID = 99
	_, err = r.RenderHTML(context.Background(), doc)
	if biodata.KindFromError(err) != biodata.KindNotFound {
		t.Fatalf("expected not_found, got %v", err)
	}
}
