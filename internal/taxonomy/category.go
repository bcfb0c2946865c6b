// Package taxonomy assigns skill strings to document section buckets.
package taxonomy

// Category is the section bucket a skill is grouped under in the
// rendered document.
type Category string

// Category constants define the closed set of buckets.
const (
	CategoryLanguage Category = "language"
	CategoryFrontend Category = "frontend"
	CategoryBackend  Category = "backend"
	CategoryDataML   Category = "data_ml"
	CategoryDatabase Category = "database"
	CategoryDevOps   Category = "devops"
	CategoryMobile   Category = "mobile"
	CategoryTool     Category = "tool"
	CategoryOther    Category = "other"
)

// AllCategories returns every bucket in scan order. Useful for
// building document sections in a stable order.
func AllCategories() []Category {
	return []Category{
		CategoryLanguage,
		CategoryFrontend,
		CategoryBackend,
		CategoryDataML,
		CategoryDatabase,
		CategoryDevOps,
		CategoryMobile,
		CategoryTool,
		CategoryOther,
	}
}

// Title returns the human-readable section heading for a category.
func (c Category) Title() string {
	switch c {
	case CategoryLanguage:
		return "Programming Languages"
	case CategoryFrontend:
		return "Web Development"
	case CategoryBackend:
		return "Backend Development"
	case CategoryDataML:
		return "Data Science & ML"
	case CategoryDatabase:
		return "Databases"
	case CategoryDevOps:
		return "DevOps & Cloud"
	case CategoryMobile:
		return "Mobile Development"
	case CategoryTool:
		return "Tools & Technologies"
	default:
		return "Other Skills"
	}
}
