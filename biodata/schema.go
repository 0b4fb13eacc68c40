package biodata

import (
	"fmt"
	"strings"
	"unicode"
)

// RashiOptions is the constrained option list for the rashi field.
var RashiOptions = []string{
	"mesh (aries)", "varishabna (taurus)", "mithuna (gemini)", "karka (cancer)",
	"simha (leo)", "kanya (virgo)", "tula (libra)", "vrischika (scorpio)",
	"dhanur (sagittarius)", "makara (capricorn)", "kumbha (aquarius)", "meena (pisces)",
}

// ComplexionOptions is the constrained option list for the complexion field.
var ComplexionOptions = []string{"very fair", "fair", "medium", "brown", "dark"}

// HeightOptions lists heights from 3' 0" through 8' 0" in one-inch steps.
var HeightOptions = heightOptions()

func heightOptions() []string {
	opts := make([]string, 0, 61)
	for ft := 3; ft <= 8; ft++ {
		for inch := 0; inch <= 11; inch++ {
			opts = append(opts, fmt.Sprintf(`%d' %d"`, ft, inch))
			if ft == 8 && inch == 0 {
				return opts
			}
		}
	}
	return opts
}

type defaultField struct {
	key   string
	label string
}

var defaultSchema = map[Section][]defaultField{
	SectionPersonal: {
		{"name", "Name"},
		{"dateOfBirth", "Date of Birth"},
		{"placeOfBirth", "Place of Birth"},
		{"timeOfBirth", "Time of Birth"},
		{"rashi", "Rashi"},
		{"nakshatra", "Nakshatra"},
		{"complexion", "Complexion"},
		{"height", "Height"},
		{"gotra", "Gotra"},
		{"bachelors", "Education"},
		{"work", "Occupation"},
	},
	SectionFamily: {
		{"fatherName", "Father's Name"},
		{"fatherOccupation", "Father's Occupation"},
		{"motherName", "Mother's Name"},
		{"motherOccupation", "Mother's Occupation"},
		{"siblings", "Siblings"},
	},
	SectionContact: {
		{"contactNumber", "Contact Number"},
		{"contactPerson", "Contact Person"},
		{"emailId", "Email ID"},
		{"residentialAddress", "Residential Address"},
	},
}

// mandatorySet lists the keys that can never be deleted or relabeled.
var mandatorySet = map[Section]map[string]bool{
	SectionPersonal: {"name": true, "dateOfBirth": true, "placeOfBirth": true},
	SectionFamily:   {"fatherName": true, "motherName": true},
	SectionContact:  {"contactNumber": true},
}

// fieldOptionLists maps known field keys to their constrained option lists.
var fieldOptionLists = map[string][]string{
	"rashi":      RashiOptions,
	"complexion": ComplexionOptions,
	"height":     HeightOptions,
}

// FieldOptions returns the constrained option list for a field key, if any.
func FieldOptions(key string) ([]string, bool) {
	opts, ok := fieldOptionLists[key]
	return opts, ok
}

// IsMandatory reports whether a field can never be deleted or relabeled.
func IsMandatory(section Section, key string) bool {
	return mandatorySet[section][key]
}

// ValidSection reports whether section is part of the fixed section set.
func ValidSection(section Section) bool {
	_, ok := defaultSchema[section]
	return ok
}

// SectionDisplayName splits a camel-cased section name into words,
// e.g. "personalDetails" becomes "Personal Details".
func SectionDisplayName(section Section) string {
	var b strings.Builder
	for i, r := range string(section) {
		if i == 0 {
			b.WriteRune(unicode.ToUpper(r))
			continue
		}
		if unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// DefaultStoredForm returns the static default schema snapshot.
func DefaultStoredForm() StoredForm {
	data := make(FormData, len(SectionOrder))
	order := make(FieldOrder, len(SectionOrder))
	for _, section := range SectionOrder {
		fields := defaultSchema[section]
		data[section] = make(map[string]FieldEntry, len(fields))
		order[section] = make([]string, 0, len(fields))
		for _, f := range fields {
			data[section][f.key] = FieldEntry{Key: f.key, Label: f.label}
			order[section] = append(order[section], f.key)
		}
	}
	return StoredForm{FormData: data, FieldOrder: order}
}
