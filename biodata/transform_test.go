package biodata

import (
	"encoding/json"
	"strings"
	"testing"
)

func filledForm(t *testing.T) *Form {
	t.Helper()
	f := NewForm()
	for _, m := range []Mutation{
		f.SetValue(SectionPersonal, "name", "Asha"),
		f.SetValue(SectionPersonal, "dateOfBirth", "1996-04-12"),
		f.SetValue(SectionPersonal, "placeOfBirth", "Pune"),
		f.SetValue(SectionContact, "contactNumber", "9876543210"),
	} {
		if !m.Accepted {
			t.Fatalf("seed mutation rejected: %+v", m)
		}
	}
	return f
}

func TestSubmitRequiresCoreFields(t *testing.T) {
	f := NewForm()
	_, err := f.Submit()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if KindFromError(err) != KindValidation {
		t.Fatalf("unexpected kind %q", KindFromError(err))
	}
	for _, label := range []string{"Name", "Date of Birth", "Contact Number"} {
		if !strings.Contains(err.Error(), label) {
			t.Fatalf("error %q does not name %q", err.Error(), label)
		}
	}
}

func TestSubmitSanitizesLabels(t *testing.T) {
	f := filledForm(t)
	f.SetValue(SectionFamily, "fatherName", "Ramesh")

	record, err := f.Submit()
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	for _, field := range record.Section(SectionFamily) {
		if field.Value != "Ramesh" {
			continue
		}
		if field.Label != "Father'sName" {
			t.Fatalf("label %q, want Father'sName", field.Label)
		}
		return
	}
	t.Fatal("father field not found in record")
}

func TestSubmitPreservesFieldOrder(t *testing.T) {
	f := filledForm(t)
	f.SetValue(SectionContact, "contactPerson", "Uncle")
	f.SetValue(SectionContact, "emailId", "asha@example.com")

	// contactNumber, contactPerson, emailId, residentialAddress
	// becomes emailId, contactNumber, contactPerson, residentialAddress.
	if m := f.Reorder(SectionContact, 2, 0); !m.Accepted {
		t.Fatalf("reorder rejected: %+v", m)
	}

	record, err := f.Submit()
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	got := make([]string, 0, 4)
	for _, field := range record.Section(SectionContact) {
		got = append(got, field.Label)
	}
	want := []string{"EmailID", "ContactNumber", "ContactPerson", "ResidentialAddress"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("field %d = %q, want %q (full: %v)", i, got[i], want[i], got)
		}
	}
}

func TestRecordJSONKeyOrder(t *testing.T) {
	f := filledForm(t)
	record, err := f.Submit()
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	payload, err := json.Marshal(record)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	text := string(payload)

	// Sections serialize in fixed order, fields in field order.
	personal := strings.Index(text, `"personalDetails"`)
	family := strings.Index(text, `"familyDetails"`)
	contact := strings.Index(text, `"contactDetails"`)
	if personal < 0 || family < 0 || contact < 0 {
		t.Fatalf("missing section keys in %s", text)
	}
	if !(personal < family && family < contact) {
		t.Fatalf("section order wrong in %s", text)
	}
	if !strings.Contains(text, `"DateofBirth":"1996-04-12"`) {
		t.Fatalf("sanitized date key missing in %s", text)
	}
	name := strings.Index(text, `"Name"`)
	dob := strings.Index(text, `"DateofBirth"`)
	if !(name >= 0 && dob > name) {
		t.Fatalf("field order wrong in %s", text)
	}

	// Valid JSON despite the hand-built syntax.
	var decoded map[string]any
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
}

func TestSubmitAttachesImageTopLevel(t *testing.T) {
	f := filledForm(t)
	preview, err := f.AttachImage([]byte{0x89, 0x50, 0x4e, 0x47}, "image/png")
	if err != nil {
		t.Fatalf("attach failed: %v", err)
	}

	record, err := f.Submit()
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if record.Image == nil || record.Image.Preview != preview {
		t.Fatal("image not attached to record")
	}

	payload, err := json.Marshal(record)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(payload), `"imagePreview"`) {
		t.Fatalf("imagePreview missing from %s", payload)
	}
}

func TestSubmitSkipsOrphanedOrderKeys(t *testing.T) {
	f := filledForm(t)
	// Force an orphaned key directly into the order.
	f.order[SectionContact] = append(f.order[SectionContact], "ghost")

	record, err := f.Submit()
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	for _, field := range record.Section(SectionContact) {
		if field.Label == "ghost" {
			t.Fatal("orphaned key emitted")
		}
	}
}
