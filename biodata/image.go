package biodata

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// MaxImageBytes is the photo upload size ceiling.
const MaxImageBytes = 5 * 1024 * 1024

const imagePreviewPath = "/api/biodata/image/"

// AttachImage validates and stores the session photo, returning the
// derived preview reference. Oversized or non-image uploads are
// refused and leave the form unchanged.
func (f *Form) AttachImage(data []byte, contentType string) (string, error) {
	if len(data) == 0 {
		return "", NewError(KindValidation, "image is empty", nil)
	}
	if len(data) > MaxImageBytes {
		return "", NewError(KindValidation,
			fmt.Sprintf("image exceeds %d bytes", MaxImageBytes), nil)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return "", NewError(KindValidation,
			fmt.Sprintf("unsupported content type %q", contentType), nil)
	}

	f.image = &ImageAttachment{
		Data:        data,
		ContentType: contentType,
		Preview:     imagePreviewPath + uuid.NewString(),
	}
	return f.image.Preview, nil
}

// ClearImage discards the session photo.
func (f *Form) ClearImage() {
	f.image = nil
}

// PreviewToken extracts the token from a preview reference.
func PreviewToken(preview string) (string, bool) {
	if !strings.HasPrefix(preview, imagePreviewPath) {
		return "", false
	}
	token := strings.TrimPrefix(preview, imagePreviewPath)
	return token, token != ""
}
