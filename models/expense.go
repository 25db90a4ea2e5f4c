package models

import (
	"time"
)

// Expense is a single dated spending record attributed to one category.
// Records are immutable after creation; the only mutations are create and
// delete.
//
// Date is the user-supplied day the expense occurred; Timestamp is the
// insertion instant and drives list ordering. The category foreign key is
// exposed as "category" on the wire.
type Expense struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Amount      float64   `json:"amount" gorm:"not null"`
	Description string    `json:"description" gorm:"size:200;not null"`
	CategoryID  string    `json:"category" gorm:"size:50;not null;index"`
	Date        Date      `json:"date" gorm:"not null;index"`
	Timestamp   time.Time `json:"timestamp" gorm:"autoCreateTime"`
	Category    Category  `json:"-" gorm:"foreignKey:CategoryID"`
}

// TableName sets the table name.
func (Expense) TableName() string {
	return "expenses"
}

// CategoryFilterAll is the sentinel list-filter value meaning "no category
// filter".
const CategoryFilterAll = "all"
