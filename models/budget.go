package models

// Budget is a per-category spending ceiling for one calendar month. At most
// one row exists per (category_id, month, year); creation through the API is
// an upsert keyed on that triple.
type Budget struct {
	ID         uint     `json:"id" gorm:"primaryKey"`
	CategoryID string   `json:"category_id" gorm:"size:50;not null;uniqueIndex:idx_budgets_period"`
	Amount     float64  `json:"amount" gorm:"not null"`
	Month      int      `json:"month" gorm:"not null;uniqueIndex:idx_budgets_period"` // 1-12
	Year       int      `json:"year" gorm:"not null;uniqueIndex:idx_budgets_period"`  // 4-digit
	Category   Category `json:"-" gorm:"foreignKey:CategoryID"`
}

// TableName sets the table name.
func (Budget) TableName() string {
	return "budgets"
}
