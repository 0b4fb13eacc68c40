package biodata

import "strings"

// multilineThreshold is the value length beyond which an item renders
// with relaxed line height.
const multilineThreshold = 40

// Identity labels extracted into the header, in sanitized form. A
// renamed identity field no longer matches and renders in the body.
const (
	headerLabelName         = "Name"
	headerLabelDateOfBirth  = "DateofBirth"
	headerLabelPlaceOfBirth = "PlaceofBirth"
)

// BuildRenderItems flattens a record into the ordered item list every
// template consumes, plus the extracted header fields. It is a pure
// function of the record: identity fields are pulled out of the
// personal section, blank values are dropped, and items carry a
// new-section marker where the section changes.
func BuildRenderItems(record Record) (Header, []RenderItem) {
	var header Header
	var items []RenderItem

	prev := Section("")
	for _, sr := range record.Sections {
		for _, field := range sr.Fields {
			if sr.Section == SectionPersonal {
				switch field.Label {
				case headerLabelName:
					header.Name = field.Value
					continue
				case headerLabelDateOfBirth:
					header.DateOfBirth = field.Value
					continue
				case headerLabelPlaceOfBirth:
					header.PlaceOfBirth = field.Value
					continue
				}
			}
			if strings.TrimSpace(field.Value) == "" {
				continue
			}
			items = append(items, RenderItem{
				Field:      field.Label,
				Value:      field.Value,
				Section:    sr.Section,
				NewSection: sr.Section != prev,
				Multiline:  len(field.Value) > multilineThreshold,
			})
			prev = sr.Section
		}
	}

	return header, items
}
