package biodata

// Form holds the field registry and the field order for every section.
// It is not safe for concurrent use; FormService serializes access.
type Form struct {
	data  FormData
	order FieldOrder
	image *ImageAttachment
}

// NewForm creates a form seeded with the static default schema.
func NewForm() *Form {
	f := &Form{}
	f.Restore(DefaultStoredForm())
	return f
}

// Restore replaces the form state with a stored snapshot. Sections
// missing from the snapshot fall back to their defaults, and unknown
// sections are dropped, so older persisted records keep loading.
func (f *Form) Restore(stored StoredForm) {
	defaults := DefaultStoredForm()
	f.data = make(FormData, len(SectionOrder))
	f.order = make(FieldOrder, len(SectionOrder))

	for _, section := range SectionOrder {
		fields := stored.FormData[section]
		keys := stored.FieldOrder[section]
		if len(fields) == 0 || len(keys) == 0 {
			f.data[section] = defaults.FormData[section]
			f.order[section] = defaults.FieldOrder[section]
			continue
		}

		f.data[section] = make(map[string]FieldEntry, len(fields))
		f.order[section] = make([]string, 0, len(keys))
		for _, key := range keys {
			entry, ok := fields[key]
			if !ok {
				continue
			}
			entry.Key = key
			f.data[section][key] = entry
			f.order[section] = append(f.order[section], key)
		}
		// Keys present in the registry but missing from the order
		// would otherwise become unreachable.
		for key, entry := range fields {
			if _, ok := f.data[section][key]; ok {
				continue
			}
			entry.Key = key
			f.data[section][key] = entry
			f.order[section] = append(f.order[section], key)
		}
	}

	if stored.ImagePreview != "" {
		f.image = &ImageAttachment{Preview: stored.ImagePreview}
	} else {
		f.image = nil
	}
}

// Snapshot returns a deep copy of the form state for persistence.
func (f *Form) Snapshot() StoredForm {
	stored := StoredForm{
		FormData:   make(FormData, len(f.data)),
		FieldOrder: make(FieldOrder, len(f.order)),
	}
	for section, fields := range f.data {
		cp := make(map[string]FieldEntry, len(fields))
		for key, entry := range fields {
			cp[key] = entry
		}
		stored.FormData[section] = cp
	}
	for section, keys := range f.order {
		stored.FieldOrder[section] = append([]string(nil), keys...)
	}
	if f.image != nil {
		stored.ImagePreview = f.image.Preview
	}
	return stored
}

// Entry looks up one field.
func (f *Form) Entry(section Section, key string) (FieldEntry, bool) {
	entry, ok := f.data[section][key]
	return entry, ok
}

// Entries returns a section's fields in field order.
func (f *Form) Entries(section Section) []FieldEntry {
	keys := f.order[section]
	entries := make([]FieldEntry, 0, len(keys))
	for _, key := range keys {
		if entry, ok := f.data[section][key]; ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

// Order returns a copy of a section's field order.
func (f *Form) Order(section Section) []string {
	return append([]string(nil), f.order[section]...)
}

// Image returns the current session photo, if any.
func (f *Form) Image() *ImageAttachment {
	return f.image
}

// Reset discards all state and reseeds the default schema.
func (f *Form) Reset() {
	f.Restore(DefaultStoredForm())
}
