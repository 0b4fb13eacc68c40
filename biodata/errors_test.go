package biodata

import (
	"context"
	"errors"
	"testing"

	errorslib "github.com/goliatone/go-errors"
)

func TestAsGoErrorMapsKinds(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		category errorslib.Category
		code     string
	}{
		{"validation", NewError(KindValidation, "bad input", nil), errorslib.CategoryValidation, "validation"},
		{"not found", NewError(KindNotFound, "missing", nil), errorslib.CategoryNotFound, "not_found"},
		{"busy", NewError(KindBusy, "in progress", nil), errorslib.CategoryOperation, "busy"},
		{"not implemented", NewError(KindNotImpl, "no store", nil), errorslib.CategoryOperation, "not_implemented"},
		{"internal", errors.New("plain"), errorslib.CategoryInternal, "internal"},
		{"timeout", context.DeadlineExceeded, errorslib.CategoryOperation, "timeout"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ge := AsGoError(tc.err)
			if ge == nil {
				t.Fatal("nil mapped error")
			}
			if ge.Category != tc.category {
				t.Fatalf("category %v, want %v", ge.Category, tc.category)
			}
			if ge.TextCode != tc.code {
				t.Fatalf("text code %q, want %q", ge.TextCode, tc.code)
			}
		})
	}

	if AsGoError(nil) != nil {
		t.Fatal("nil error mapped to non-nil")
	}
}

func TestKindFromError(t *testing.T) {
	wrapped := NewError(KindValidation, "outer", errors.New("inner"))
	if KindFromError(wrapped) != KindValidation {
		t.Fatal("kind lost through wrap")
	}
	if KindFromError(context.Canceled) != KindCanceled {
		t.Fatal("canceled not detected")
	}
	if KindFromError(errors.New("x")) != KindInternal {
		t.Fatal("default kind wrong")
	}
	if wrapped.Error() != "outer: inner" {
		t.Fatalf("message %q", wrapped.Error())
	}
	busy := NewError(KindBusy, "export running", context.Canceled)
	if KindFromError(busy) != KindBusy {
		t.Fatal("explicit kind lost to wrapped context error")
	}
	if ge := AsGoError(busy); ge.TextCode != "busy" {
		t.Fatalf("text code %q", ge.TextCode)
	}
}
