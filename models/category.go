package models

// Category is a labeled spending bucket with display metadata. The id is a
// caller-supplied slug (e.g. "alimentation") referenced by expenses and
// budgets.
type Category struct {
	ID    string `json:"id" gorm:"primaryKey;size:50"`
	Name  string `json:"name" gorm:"size:100;not null"`
	Color string `json:"color" gorm:"size:7;not null"` // hex color, #RRGGBB
	Icon  string `json:"icon" gorm:"size:10;not null"` // emoji glyph
}

// TableName sets the table name.
func (Category) TableName() string {
	return "categories"
}

// Default category display fallbacks for inconsistent data (budget rows whose
// category has gone missing).
const (
	UnknownCategoryName = "Unknown"
	UnknownCategoryIcon = "📦"
)

// DefaultCategories returns the fixed category set seeded at startup.
func DefaultCategories() []Category {
	return []Category{
		{ID: "alimentation", Name: "Alimentation", Color: "#FF6B6B", Icon: "🍽️"},
		{ID: "transport", Name: "Transport", Color: "#4ECDC4", Icon: "🚗"},
		{ID: "logement", Name: "Logement", Color: "#45B7D1", Icon: "🏠"},
		{ID: "sante", Name: "Santé", Color: "#96CEB4", Icon: "⚕️"},
		{ID: "loisirs", Name: "Loisirs", Color: "#FFEAA7", Icon: "🎯"},
		{ID: "shopping", Name: "Shopping", Color: "#DDA0DD", Icon: "🛍️"},
		{ID: "education", Name: "Éducation", Color: "#98D8C8", Icon: "📚"},
		{ID: "autres", Name: "Autres", Color: "#F7DC6F", Icon: "📦"},
	}
}
