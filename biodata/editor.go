package biodata

import "strings"

// LabelEditor implements the transactional label-edit protocol: an edit
// begins by capturing the current label into a temp buffer, and ends by
// an explicit commit, a cancel, or a blur. Blur commits when the temp
// text is non-blank and cancels otherwise.
type LabelEditor struct {
	form    *Form
	section Section
	key     string
	temp    string
	active  bool
}

// NewLabelEditor creates an editor bound to a form.
func NewLabelEditor(form *Form) *LabelEditor {
	return &LabelEditor{form: form}
}

// Begin starts editing a field's label. Mandatory fields are refused.
func (e *LabelEditor) Begin(section Section, key string) Mutation {
	if IsMandatory(section, key) {
		return rejected(RejectMandatory)
	}
	entry, ok := e.form.Entry(section, key)
	if !ok {
		return rejected(RejectUnknownField)
	}
	e.section = section
	e.key = key
	e.temp = entry.Label
	e.active = true
	return accepted(key)
}

// SetTemp updates the in-progress label text.
func (e *LabelEditor) SetTemp(label string) {
	if e.active {
		e.temp = label
	}
}

// Temp returns the in-progress label text.
func (e *LabelEditor) Temp() string {
	return e.temp
}

// Editing returns the field under edit, if any.
func (e *LabelEditor) Editing() (Section, string, bool) {
	return e.section, e.key, e.active
}

// Commit applies the temp label and ends the edit. The form keeps its
// previous label when the rename is refused.
func (e *LabelEditor) Commit() Mutation {
	if !e.active {
		return rejected(RejectNotEditing)
	}
	m := e.form.RenameLabel(e.section, e.key, e.temp)
	e.reset()
	return m
}

// Cancel ends the edit without changing the form.
func (e *LabelEditor) Cancel() {
	e.reset()
}

// Blur ends the edit on loss of focus: commit when the temp text is
// non-blank, cancel otherwise.
func (e *LabelEditor) Blur() Mutation {
	if !e.active {
		return rejected(RejectNotEditing)
	}
	if strings.TrimSpace(e.temp) == "" {
		e.reset()
		return rejected(RejectEmptyLabel)
	}
	return e.Commit()
}

func (e *LabelEditor) reset() {
	e.section = ""
	e.key = ""
	e.temp = ""
	e.active = false
}
