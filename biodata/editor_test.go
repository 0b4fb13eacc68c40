package biodata

import "testing"

func TestLabelEditCommit(t *testing.T) {
	f := NewForm()
	ed := NewLabelEditor(f)
	add := f.AddField(SectionContact)

	if m := ed.Begin(SectionContact, add.Key); !m.Accepted {
		t.Fatalf("begin rejected: %+v", m)
	}
	if ed.Temp() != "New Field" {
		t.Fatalf("temp buffer did not capture old label: %q", ed.Temp())
	}

	ed.SetTemp("WhatsApp Number")
	if m := ed.Commit(); !m.Accepted {
		t.Fatalf("commit rejected: %+v", m)
	}
	entry, _ := f.Entry(SectionContact, add.Key)
	if entry.Label != "WhatsApp Number" {
		t.Fatalf("label not applied: %q", entry.Label)
	}
	if _, _, active := ed.Editing(); active {
		t.Fatal("editor still active after commit")
	}
}

func TestLabelEditCancelRestoresNothing(t *testing.T) {
	f := NewForm()
	ed := NewLabelEditor(f)
	add := f.AddField(SectionContact)

	ed.Begin(SectionContact, add.Key)
	ed.SetTemp("Discarded")
	ed.Cancel()

	entry, _ := f.Entry(SectionContact, add.Key)
	if entry.Label != "New Field" {
		t.Fatalf("cancel changed the label: %q", entry.Label)
	}
}

func TestLabelEditBlurProtocol(t *testing.T) {
	f := NewForm()
	ed := NewLabelEditor(f)
	add := f.AddField(SectionContact)

	// Blur with non-blank temp commits.
	ed.Begin(SectionContact, add.Key)
	ed.SetTemp("Alternate Contact")
	if m := ed.Blur(); !m.Accepted {
		t.Fatalf("blur commit rejected: %+v", m)
	}
	entry, _ := f.Entry(SectionContact, add.Key)
	if entry.Label != "Alternate Contact" {
		t.Fatalf("blur did not commit: %q", entry.Label)
	}

	// Blur with blank temp cancels.
	ed.Begin(SectionContact, add.Key)
	ed.SetTemp("   ")
	if m := ed.Blur(); m.Accepted || m.Reason != RejectEmptyLabel {
		t.Fatalf("blank blur not cancelled: %+v", m)
	}
	entry, _ = f.Entry(SectionContact, add.Key)
	if entry.Label != "Alternate Contact" {
		t.Fatalf("blank blur changed the label: %q", entry.Label)
	}
}

func TestLabelEditMandatoryRefused(t *testing.T) {
	f := NewForm()
	ed := NewLabelEditor(f)

	if m := ed.Begin(SectionPersonal, "name"); m.Accepted || m.Reason != RejectMandatory {
		t.Fatalf("mandatory edit not refused: %+v", m)
	}
	if m := ed.Commit(); m.Accepted || m.Reason != RejectNotEditing {
		t.Fatalf("commit without edit not refused: %+v", m)
	}
}
