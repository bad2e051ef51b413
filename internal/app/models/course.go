package models

import "github.com/shopspring/decimal"

// Course represents one learnable offering in the catalog.
type Course struct {
	ID              int64           `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Name            string          `json:"name" db:"name" gorm:"type:varchar(255);not null"`
	Description     string          `json:"description" db:"description" gorm:"type:text;not null"`
	Price           decimal.Decimal `json:"price" db:"price" gorm:"type:decimal(10,2);not null"`
	Image           string          `json:"image" db:"image" gorm:"type:varchar(255);not null"`
	Duration        int             `json:"duration" db:"duration" gorm:"not null"`
	Difficulty      string          `json:"difficulty" db:"difficulty" gorm:"type:varchar(64);not null"`
	Category        string          `json:"category" db:"category" gorm:"type:varchar(128);not null;index"`
	Instructor      *string         `json:"instructor" db:"instructor" gorm:"type:varchar(255)"` // Nullable
	EnrollmentCount int             `json:"enrollment_count" db:"enrollment_count" gorm:"not null;default:0"`
	Rating          decimal.Decimal `json:"rating" db:"rating" gorm:"type:decimal(3,2);not null;default:0"`
}

// TableName pins the table name shared by the pgx and GORM stores.
func (Course) TableName() string {
	return "courses"
}
