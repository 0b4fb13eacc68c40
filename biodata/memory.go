package biodata

import (
	"context"
	"sync"
)

// MemoryRepository is an in-memory FormRepository for tests and demos.
type MemoryRepository struct {
	mu     sync.RWMutex
	stored StoredForm
	has    bool
}

// NewMemoryRepository creates an empty repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Save stores the snapshot, replacing any previous one.
func (m *MemoryRepository) Save(ctx context.Context, form StoredForm) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stored = copyStoredForm(form)
	m.has = true
	return nil
}

// Load returns the stored snapshot, if any.
func (m *MemoryRepository) Load(ctx context.Context) (StoredForm, bool, error) {
	if err := ctx.Err(); err != nil {
		return StoredForm{}, false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.has {
		return StoredForm{}, false, nil
	}
	return copyStoredForm(m.stored), true, nil
}

func copyStoredForm(form StoredForm) StoredForm {
	cp := StoredForm{
		FormData:     make(FormData, len(form.FormData)),
		FieldOrder:   make(FieldOrder, len(form.FieldOrder)),
		ImagePreview: form.ImagePreview,
	}
	for section, fields := range form.FormData {
		entries := make(map[string]FieldEntry, len(fields))
		for key, entry := range fields {
			entries[key] = entry
		}
		cp.FormData[section] = entries
	}
	for section, keys := range form.FieldOrder {
		cp.FieldOrder[section] = append([]string(nil), keys...)
	}
	return cp
}
