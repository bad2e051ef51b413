package models

import "github.com/shopspring/decimal"

// CategoryAggregate is the raw grouped row produced by the store.
type CategoryAggregate struct {
	Category  string          `db:"category"`
	Count     int64           `db:"count"`
	AvgRating decimal.Decimal `db:"avg_rating"`
}

// CategoryStats is the per-category summary returned to clients. It is derived
// on every request and never persisted.
type CategoryStats struct {
	Name      string  `json:"name" example:"Programming"`
	Count     int64   `json:"count" example:"4"`
	AvgRating float64 `json:"avg_rating" example:"4.55"`
}
