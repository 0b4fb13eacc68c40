package storebun

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/uptrace/bun"

	"github.com/DEV-SHUKLA-GITHUB/BioData-maker/biodata"
)

// DefaultSlot is the durable key the form snapshot lives under.
const DefaultSlot = "biodataForm"

// Store persists the form snapshot in a Bun-backed database, one row
// per slot, last writer wins.
type Store struct {
	DB   *bun.DB
	Slot string
	Now  func() time.Time
}

var _ biodata.FormRepository = (*Store)(nil)

// NewStore creates a Bun-backed form repository on the default slot.
func NewStore(db *bun.DB) *Store {
	return &Store{DB: db, Slot: DefaultSlot, Now: time.Now}
}

// EnsureSchema creates the slot table if it does not exist.
func EnsureSchema(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().Model((*slotModel)(nil)).IfNotExists().Exec(ctx)
	return err
}

// Save serializes the snapshot into the slot row, replacing any
// previous snapshot.
func (s *Store) Save(ctx context.Context, form biodata.StoredForm) error {
	if s == nil || s.DB == nil {
		return biodata.NewError(biodata.KindNotImpl, "store database not configured", nil)
	}

	payload, err := json.Marshal(form)
	if err != nil {
		return err
	}

	model := slotModel{
		Slot:      s.slot(),
		Payload:   payload,
		UpdatedAt: s.now(),
	}
	_, err = s.DB.NewInsert().Model(&model).
		On("CONFLICT (slot) DO UPDATE").
		Set("payload = EXCLUDED.payload").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	return err
}

// Load reads and parses the slot row. A missing row reports no
// snapshot; a malformed payload reports an error so the caller can
// fall back to defaults.
func (s *Store) Load(ctx context.Context) (biodata.StoredForm, bool, error) {
	if s == nil || s.DB == nil {
		return biodata.StoredForm{}, false, biodata.NewError(biodata.KindNotImpl, "store database not configured", nil)
	}

	model := new(slotModel)
	err := s.DB.NewSelect().Model(model).Where("slot = ?", s.slot()).Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return biodata.StoredForm{}, false, nil
		}
		return biodata.StoredForm{}, false, err
	}

	var form biodata.StoredForm
	if err := json.Unmarshal(model.Payload, &form); err != nil {
		return biodata.StoredForm{}, false, biodata.NewError(biodata.KindInternal, "stored form is malformed", err)
	}
	return form, true, nil
}

// Delete removes the slot row.
func (s *Store) Delete(ctx context.Context) error {
	if s == nil || s.DB == nil {
		return biodata.NewError(biodata.KindNotImpl, "store database not configured", nil)
	}
	_, err := s.DB.NewDelete().Model((*slotModel)(nil)).Where("slot = ?", s.slot()).Exec(ctx)
	return err
}

type slotModel struct {
	bun.BaseModel `bun:"table:form_slots,alias:form_slots"`

	Slot      string    `bun:",pk"`
	Payload   []byte    `bun:"payload,notnull"`
	UpdatedAt time.Time `bun:"updated_at"`
}

func (s *Store) slot() string {
	if s.Slot != "" {
		return s.Slot
	}
	return DefaultSlot
}

func (s *Store) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
