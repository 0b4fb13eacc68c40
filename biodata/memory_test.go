package biodata

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMemoryRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	if _, ok, err := repo.Load(ctx); err != nil || ok {
		t.Fatalf("empty repo: ok=%v err=%v", ok, err)
	}

	f := NewForm()
	f.SetValue(SectionPersonal, "name", "Asha")
	f.AddField(SectionFamily)
	f.Reorder(SectionContact, 0, 3)
	if _, err := f.AttachImage([]byte{1, 2, 3}, "image/jpeg"); err != nil {
		t.Fatalf("attach failed: %v", err)
	}

	if err := repo.Save(ctx, f.Snapshot()); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	stored, ok, err := repo.Load(ctx)
	if err != nil || !ok {
		t.Fatalf("load failed: ok=%v err=%v", ok, err)
	}

	restored := &Form{}
	restored.Restore(stored)
	checkOrderInvariant(t, restored)

	if diff := cmp.Diff(f.Snapshot(), restored.Snapshot()); diff != "" {
		t.Fatalf("round trip differs (-saved +loaded):\n%s", diff)
	}
	// The binary itself is excluded by design, only the preview survives.
	if restored.Image() == nil || len(restored.Image().Data) != 0 {
		t.Fatal("expected dangling preview without binary data")
	}
}

func TestMemoryRepositoryCopiesOnSave(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	snapshot := DefaultStoredForm()
	if err := repo.Save(ctx, snapshot); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	snapshot.FormData[SectionPersonal]["name"] = FieldEntry{Key: "name", Label: "Mutated"}

	stored, _, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if stored.FormData[SectionPersonal]["name"].Label != "Name" {
		t.Fatal("stored snapshot aliased caller memory")
	}
}
