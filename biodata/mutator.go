package biodata

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	customFieldPrefix = "customField_"
	defaultFieldLabel = "New Field"
)

func accepted(key string) Mutation {
	return Mutation{Accepted: true, Key: key}
}

func rejected(reason RejectReason) Mutation {
	return Mutation{Reason: reason}
}

// AddField inserts a new custom field with a generated key and the
// default label, appended to the section's order.
func (f *Form) AddField(section Section) Mutation {
	if !ValidSection(section) {
		return rejected(RejectUnknownSection)
	}
	key := customFieldPrefix + uuid.NewString()
	f.data[section][key] = FieldEntry{Key: key, Label: defaultFieldLabel}
	f.order[section] = append(f.order[section], key)
	return accepted(key)
}

// DeleteField removes a field from the registry and the order.
// Mandatory fields are refused.
func (f *Form) DeleteField(section Section, key string) Mutation {
	if !ValidSection(section) {
		return rejected(RejectUnknownSection)
	}
	if IsMandatory(section, key) {
		return rejected(RejectMandatory)
	}
	if _, ok := f.data[section][key]; !ok {
		return rejected(RejectUnknownField)
	}
	delete(f.data[section], key)
	keys := f.order[section]
	for i, k := range keys {
		if k == key {
			f.order[section] = append(keys[:i], keys[i+1:]...)
			break
		}
	}
	return accepted(key)
}

// RenameLabel overwrites a field's label in place. Mandatory fields
// and blank labels are refused.
func (f *Form) RenameLabel(section Section, key, newLabel string) Mutation {
	if !ValidSection(section) {
		return rejected(RejectUnknownSection)
	}
	if IsMandatory(section, key) {
		return rejected(RejectMandatory)
	}
	if strings.TrimSpace(newLabel) == "" {
		return rejected(RejectEmptyLabel)
	}
	entry, ok := f.data[section][key]
	if !ok {
		return rejected(RejectUnknownField)
	}
	entry.Label = newLabel
	f.data[section][key] = entry
	return accepted(key)
}

// SetValue overwrites a field's value unconditionally.
func (f *Form) SetValue(section Section, key, value string) Mutation {
	if !ValidSection(section) {
		return rejected(RejectUnknownSection)
	}
	entry, ok := f.data[section][key]
	if !ok {
		return rejected(RejectUnknownField)
	}
	entry.Value = value
	f.data[section][key] = entry
	return accepted(key)
}

// SetDate parses a date string and stores it in ISO form (yyyy-mm-dd).
// An empty input clears the field.
func (f *Form) SetDate(section Section, key, value string) Mutation {
	if value == "" {
		return f.SetValue(section, key, "")
	}
	parsed, err := parseDate(value)
	if err != nil {
		return rejected(RejectInvalidValue)
	}
	return f.SetValue(section, key, parsed.Format("2006-01-02"))
}

var dateLayouts = []string{"2006-01-02", time.RFC3339, "02/01/2006", "January 2, 2006"}

func parseDate(value string) (time.Time, error) {
	var err error
	for _, layout := range dateLayouts {
		var t time.Time
		t, err = time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// SetTime stores a clock value normalized to HH:mm:ss.
func (f *Form) SetTime(section Section, key, value string) Mutation {
	if value == "" {
		return f.SetValue(section, key, "")
	}
	t, err := time.Parse("15:04:05", value)
	if err != nil {
		t, err = time.Parse("15:04", value)
	}
	if err != nil {
		return rejected(RejectInvalidValue)
	}
	return f.SetValue(section, key, t.Format("15:04:05"))
}

// SetOption stores a value from the field's constrained option list.
// Values outside the list are refused. An empty input clears the field.
func (f *Form) SetOption(section Section, key, value string) Mutation {
	opts, ok := FieldOptions(key)
	if !ok {
		return f.SetValue(section, key, value)
	}
	if value == "" {
		return f.SetValue(section, key, "")
	}
	for _, opt := range opts {
		if opt == value {
			return f.SetValue(section, key, value)
		}
	}
	return rejected(RejectInvalidOption)
}

// Reorder moves the key at source to destination within a section's
// order. A negative destination means the drop was cancelled.
func (f *Form) Reorder(section Section, source, destination int) Mutation {
	if !ValidSection(section) {
		return rejected(RejectUnknownSection)
	}
	if destination < 0 {
		return rejected(RejectNoDestination)
	}
	keys := f.order[section]
	if source < 0 || source >= len(keys) || destination >= len(keys) {
		return rejected(RejectOutOfRange)
	}
	key := keys[source]
	keys = append(keys[:source], keys[source+1:]...)
	keys = append(keys[:destination], append([]string{key}, keys[destination:]...)...)
	f.order[section] = keys
	return accepted(key)
}
