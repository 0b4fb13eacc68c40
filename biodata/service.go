package biodata

import (
	"context"
	"sync"
)

// FieldView is one field as presented to clients.
type FieldView struct {
	Key       string   `json:"key"`
	Label     string   `json:"label"`
	Value     string   `json:"value"`
	Mandatory bool     `json:"mandatory"`
	Options   []string `json:"options,omitempty"`
}

// SectionView is one section as presented to clients.
type SectionView struct {
	Section     Section     `json:"section"`
	DisplayName string      `json:"displayName"`
	Fields      []FieldView `json:"fields"`
}

// SchemaView is the full current schema as presented to clients.
type SchemaView struct {
	Sections     []SectionView `json:"sections"`
	ImagePreview string        `json:"imagePreview,omitempty"`
}

// FormServiceConfig supplies dependencies for FormService.
type FormServiceConfig struct {
	Repository FormRepository
	Logger     Logger
}

// FormService is the single-writer facade over the form: every
// operation takes the service lock, so mutations always complete
// before the next read observes them.
type FormService struct {
	mu     sync.Mutex
	form   *Form
	editor *LabelEditor
	repo   FormRepository
	log    Logger
}

// NewFormService creates a service seeded with the default schema.
func NewFormService(cfg FormServiceConfig) *FormService {
	repo := cfg.Repository
	if repo == nil {
		repo = NewMemoryRepository()
	}
	log := cfg.Logger
	if log == nil {
		log = NopLogger{}
	}
	form := NewForm()
	return &FormService{
		form:   form,
		editor: NewLabelEditor(form),
		repo:   repo,
		log:    log,
	}
}

// Start loads the persisted form. Absent or malformed records fall
// back to the defaults without surfacing an error.
func (s *FormService) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok, err := s.repo.Load(ctx)
	if err != nil {
		s.log.Errorf("form load failed, using defaults: %v", err)
		return
	}
	if !ok {
		s.log.Debugf("no persisted form, using defaults")
		return
	}
	s.form.Restore(stored)
	s.log.Infof("form restored from persisted slot")
}

// Schema returns the current schema view.
func (s *FormService) Schema() SchemaView {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := SchemaView{Sections: make([]SectionView, 0, len(SectionOrder))}
	for _, section := range SectionOrder {
		sv := SectionView{
			Section:     section,
			DisplayName: SectionDisplayName(section),
		}
		for _, entry := range s.form.Entries(section) {
			fv := FieldView{
				Key:       entry.Key,
				Label:     entry.Label,
				Value:     entry.Value,
				Mandatory: IsMandatory(section, entry.Key),
			}
			if opts, ok := FieldOptions(entry.Key); ok {
				fv.Options = opts
			}
			sv.Fields = append(sv.Fields, fv)
		}
		view.Sections = append(view.Sections, sv)
	}
	if img := s.form.Image(); img != nil {
		view.ImagePreview = img.Preview
	}
	return view
}

// AddField adds a custom field to a section.
func (s *FormService) AddField(section Section) Mutation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form.AddField(section)
}

// DeleteField removes a non-mandatory field.
func (s *FormService) DeleteField(section Section, key string) Mutation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form.DeleteField(section, key)
}

// RenameLabel renames a non-mandatory field's label.
func (s *FormService) RenameLabel(section Section, key, label string) Mutation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form.RenameLabel(section, key, label)
}

// SetValue overwrites a field value, routing typed fields through
// their typed setters.
func (s *FormService) SetValue(section Section, key, value string) Mutation {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch key {
	case "dateOfBirth":
		return s.form.SetDate(section, key, value)
	case "timeOfBirth":
		return s.form.SetTime(section, key, value)
	}
	if _, ok := FieldOptions(key); ok {
		return s.form.SetOption(section, key, value)
	}
	return s.form.SetValue(section, key, value)
}

// Reorder moves a field within its section's order.
func (s *FormService) Reorder(section Section, source, destination int) Mutation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form.Reorder(section, source, destination)
}

// BeginLabelEdit starts a transactional label edit.
func (s *FormService) BeginLabelEdit(section Section, key string) Mutation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editor.Begin(section, key)
}

// SetLabelTemp updates the in-progress label text.
func (s *FormService) SetLabelTemp(label string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editor.SetTemp(label)
}

// CommitLabelEdit applies the in-progress label.
func (s *FormService) CommitLabelEdit() Mutation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editor.Commit()
}

// CancelLabelEdit abandons the in-progress label.
func (s *FormService) CancelLabelEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editor.Cancel()
}

// BlurLabelEdit ends the edit on loss of focus.
func (s *FormService) BlurLabelEdit() Mutation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editor.Blur()
}

// AttachImage stores the session photo and returns its preview reference.
func (s *FormService) AttachImage(data []byte, contentType string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form.AttachImage(data, contentType)
}

// ImageByToken resolves a preview token to the session photo. Tokens
// persisted before a restart dangle and resolve to nothing.
func (s *FormService) ImageByToken(token string) (*ImageAttachment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	img := s.form.Image()
	if img == nil || len(img.Data) == 0 {
		return nil, false
	}
	current, ok := PreviewToken(img.Preview)
	if !ok || current != token {
		return nil, false
	}
	return img, true
}

// Save persists the current form snapshot.
func (s *FormService) Save(ctx context.Context) error {
	s.mu.Lock()
	snapshot := s.form.Snapshot()
	s.mu.Unlock()
	if err := s.repo.Save(ctx, snapshot); err != nil {
		return NewError(KindInternal, "form save failed", err)
	}
	return nil
}

// Load restores the persisted form, falling back to defaults.
func (s *FormService) Load(ctx context.Context) {
	s.Start(ctx)
}

// Snapshot returns a deep copy of the current state. Used by the
// autosave task.
func (s *FormService) Snapshot() StoredForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form.Snapshot()
}

// Transform validates and transforms the current form without
// persisting. Exports and previews use this to obtain a record.
func (s *FormService) Transform() (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form.Submit()
}

// Submit validates and transforms the form, persisting the snapshot on
// success as the interactive flow does.
func (s *FormService) Submit(ctx context.Context) (Record, error) {
	s.mu.Lock()
	record, err := s.form.Submit()
	s.mu.Unlock()
	if err != nil {
		return Record{}, err
	}
	if err := s.Save(ctx); err != nil {
		s.log.Errorf("post-submit save failed: %v", err)
	}
	return record, nil
}

// Reset discards all state and reseeds the defaults.
func (s *FormService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form.Reset()
}
