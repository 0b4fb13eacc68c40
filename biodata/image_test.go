package biodata

import (
	"bytes"
	"strings"
	"testing"
)

func TestAttachImageValidation(t *testing.T) {
	f := NewForm()

	if _, err := f.AttachImage(nil, "image/png"); KindFromError(err) != KindValidation {
		t.Fatalf("empty image: %v", err)
	}
	if _, err := f.AttachImage([]byte("x"), "application/pdf"); KindFromError(err) != KindValidation {
		t.Fatalf("wrong mime: %v", err)
	}
	oversized := bytes.Repeat([]byte{0xff}, MaxImageBytes+1)
	if _, err := f.AttachImage(oversized, "image/jpeg"); KindFromError(err) != KindValidation {
		t.Fatalf("oversized: %v", err)
	}
	if f.Image() != nil {
		t.Fatal("rejected upload mutated state")
	}

	preview, err := f.AttachImage([]byte{1, 2, 3}, "image/jpeg")
	if err != nil {
		t.Fatalf("valid upload failed: %v", err)
	}
	if !strings.HasPrefix(preview, "/api/biodata/image/") {
		t.Fatalf("unexpected preview %q", preview)
	}

	token, ok := PreviewToken(preview)
	if !ok || token == "" {
		t.Fatalf("token not extractable from %q", preview)
	}
	if _, ok := PreviewToken("blob:local"); ok {
		t.Fatal("foreign reference produced a token")
	}
}
