package biodata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// sanitizeLabel strips all whitespace from a label so it can serve as
// an output key. Other punctuation is kept.
func sanitizeLabel(label string) string {
	return strings.Join(strings.Fields(label), "")
}

// requiredFields must hold non-blank values before submission proceeds.
var requiredFields = []struct {
	section Section
	key     string
}{
	{SectionPersonal, "name"},
	{SectionPersonal, "dateOfBirth"},
	{SectionContact, "contactNumber"},
}

// Validate checks the required-field set and reports every missing
// field label in one error.
func (f *Form) Validate() error {
	var missing []string
	for _, req := range requiredFields {
		entry, ok := f.data[req.section][req.key]
		if !ok || strings.TrimSpace(entry.Value) == "" {
			label := req.key
			if ok {
				label = entry.Label
			}
			missing = append(missing, label)
		}
	}
	if len(missing) > 0 {
		return NewError(KindValidation,
			fmt.Sprintf("missing required fields: %s", strings.Join(missing, ", ")), nil)
	}
	return nil
}

// Submit validates the form and transforms it into the ordered Record:
// sections walk in fixed order, fields walk in field order, labels are
// sanitized into output keys. Keys missing from the registry are
// skipped. The photo rides along as a top-level attachment.
func (f *Form) Submit() (Record, error) {
	if err := f.Validate(); err != nil {
		return Record{}, err
	}

	record := Record{Sections: make([]SectionRecord, 0, len(SectionOrder))}
	for _, section := range SectionOrder {
		sr := SectionRecord{Section: section}
		for _, key := range f.order[section] {
			entry, ok := f.data[section][key]
			if !ok {
				continue
			}
			sr.Fields = append(sr.Fields, RecordField{
				Label: sanitizeLabel(entry.Label),
				Value: entry.Value,
			})
		}
		record.Sections = append(record.Sections, sr)
	}
	record.Image = f.image
	return record, nil
}

// Section returns the fields for one section, or nil.
func (r Record) Section(section Section) []RecordField {
	for _, sr := range r.Sections {
		if sr.Section == section {
			return sr.Fields
		}
	}
	return nil
}

// MarshalJSON serializes the record as nested objects whose key order
// matches submission order. Map-based marshalling would sort keys.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, sr := range r.Sections {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONKey(&buf, string(sr.Section)); err != nil {
			return nil, err
		}
		buf.WriteByte('{')
		for j, field := range sr.Fields {
			if j > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONKey(&buf, field.Label); err != nil {
				return nil, err
			}
			value, err := json.Marshal(field.Value)
			if err != nil {
				return nil, err
			}
			buf.Write(value)
		}
		buf.WriteByte('}')
	}
	if r.Image != nil && r.Image.Preview != "" {
		if len(r.Sections) > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONKey(&buf, "imagePreview"); err != nil {
			return nil, err
		}
		preview, err := json.Marshal(r.Image.Preview)
		if err != nil {
			return nil, err
		}
		buf.Write(preview)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeJSONKey(buf *bytes.Buffer, key string) error {
	encoded, err := json.Marshal(key)
	if err != nil {
		return err
	}
	buf.Write(encoded)
	buf.WriteByte(':')
	return nil
}
