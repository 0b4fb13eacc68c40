package biodata

import (
	"fmt"
	"strings"
)

// ExportFilename derives the download filename from the template name:
// lower-cased, spaces to hyphens, "-biodata" suffix. Descriptors with
// no name fall back to the generic id-based pattern.
func ExportFilename(tmpl TemplateDescriptor, format Format) string {
	ext := string(format)
	if ext == "" {
		ext = "pdf"
	}

	name := strings.TrimSpace(tmpl.Name)
	if name == "" {
		return fmt.Sprintf("biodata-template-%d.%s", tmpl.ID, ext)
	}

	kebab := strings.Join(strings.Fields(strings.ToLower(name)), "-")
	return kebab + "-biodata." + ext
}
