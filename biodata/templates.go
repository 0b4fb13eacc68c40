package biodata

import "fmt"

// Templates is the static catalog of presentation templates.
var Templates = []TemplateDescriptor{
	{
		ID:          1,
		Name:        "Classic Professional",
		Description: "Clean and professional design perfect for traditional families",
		Category:    "Professional",
	},
	{
		ID:          2,
		Name:        "Modern Elegant",
		Description: "Contemporary design with elegant typography and layout",
		Category:    "Modern",
	},
	{
		ID:          3,
		Name:        "Traditional Heritage",
		Description: "Traditional Indian design with cultural elements",
		Category:    "Traditional",
	},
	{
		ID:          4,
		Name:        "Minimalist Style",
		Description: "Simple and clean design focusing on essential information",
		Category:    "Minimalist",
	},
	{
		ID:          5,
		Name:        "Floral Design",
		Description: "Beautiful floral patterns perfect for wedding biodata",
		Category:    "Decorative",
	},
	{
		ID:          6,
		Name:        "Royal Classic",
		Description: "Luxurious design with royal elements and gold accents",
		Category:    "Luxury",
	},
	{
		ID:          7,
		Name:        "Contemporary Chic",
		Description: "Modern chic design with sophisticated typography",
		Category:    "Contemporary",
	},
}

// TemplateByID looks up a catalog entry.
func TemplateByID(id int) (TemplateDescriptor, error) {
	for _, t := range Templates {
		if t.ID == id {
			return t, nil
		}
	}
	return TemplateDescriptor{}, NewError(KindNotFound,
		fmt.Sprintf("template %d not found", id), nil)
}
