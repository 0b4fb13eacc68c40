package biodata

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func submittedRecord(t *testing.T) Record {
	t.Helper()
	f := filledForm(t)
	f.SetValue(SectionFamily, "fatherName", "Ramesh")
	f.SetValue(SectionContact, "residentialAddress",
		"42 Shivaji Nagar, near the old water tower, Pune, Maharashtra 411005")
	record, err := f.Submit()
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	return record
}

func TestBuildRenderItemsExtractsIdentity(t *testing.T) {
	record := submittedRecord(t)
	header, items := BuildRenderItems(record)

	if header.Name != "Asha" || header.DateOfBirth != "1996-04-12" || header.PlaceOfBirth != "Pune" {
		t.Fatalf("unexpected header: %+v", header)
	}
	for _, item := range items {
		switch item.Field {
		case "Name", "DateofBirth", "PlaceofBirth":
			t.Fatalf("identity field %q appears twice", item.Field)
		}
	}
}

func TestBuildRenderItemsFiltersBlankValues(t *testing.T) {
	f := filledForm(t)
	f.SetValue(SectionPersonal, "gotra", "   ")
	record, err := f.Submit()
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	_, items := BuildRenderItems(record)
	for _, item := range items {
		if item.Field == "Gotra" {
			t.Fatal("blank value not filtered")
		}
	}
}

func TestBuildRenderItemsSectionBoundaries(t *testing.T) {
	record := submittedRecord(t)
	_, items := BuildRenderItems(record)
	if len(items) == 0 {
		t.Fatal("no items built")
	}

	if !items[0].NewSection {
		t.Fatal("first item must start a section")
	}
	for i := 1; i < len(items); i++ {
		changed := items[i].Section != items[i-1].Section
		if items[i].NewSection != changed {
			t.Fatalf("item %d: NewSection=%v but section change=%v", i, items[i].NewSection, changed)
		}
	}
}

func TestBuildRenderItemsMultilineHint(t *testing.T) {
	record := submittedRecord(t)
	_, items := BuildRenderItems(record)

	for _, item := range items {
		want := len(item.Value) > 40
		if item.Multiline != want {
			t.Fatalf("item %q: Multiline=%v for %d chars", item.Field, item.Multiline, len(item.Value))
		}
	}

	found := false
	for _, item := range items {
		if strings.Contains(item.Field, "ResidentialAddress") && item.Multiline {
			found = true
		}
	}
	if !found {
		t.Fatal("long address not marked multiline")
	}
}

func TestBuildRenderItemsIdempotent(t *testing.T) {
	record := submittedRecord(t)

	header1, items1 := BuildRenderItems(record)
	header2, items2 := BuildRenderItems(record)

	if diff := cmp.Diff(header1, header2); diff != "" {
		t.Fatalf("headers differ (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(items1, items2); diff != "" {
		t.Fatalf("items differ (-first +second):\n%s", diff)
	}
}

func TestBuildRenderItemsRenamedIdentityStaysInBody(t *testing.T) {
	f := filledForm(t)
	// A custom field whose label sanitizes to something other than the
	// identity labels stays in the body even in the personal section.
	add := f.AddField(SectionPersonal)
	f.RenameLabel(SectionPersonal, add.Key, "Pet Name")
	f.SetValue(SectionPersonal, add.Key, "Chintu")

	record, err := f.Submit()
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	_, items := BuildRenderItems(record)

	for _, item := range items {
		if item.Field == "PetName" && item.Value == "Chintu" {
			return
		}
	}
	t.Fatal("renamed field missing from items")
}
