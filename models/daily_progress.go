package models

import "gorm.io/gorm"

// DailyProgress is the persisted per-day rollup of a user's food entries.
// One row per (email, date), recomputed from the entries table after every
// add or delete, so replaying either operation cannot skew the totals.
type DailyProgress struct {
	gorm.Model
	Email string `gorm:"index:idx_daily_progress_owner_date;not null" json:"email"`
	Date  string `gorm:"index:idx_daily_progress_owner_date;type:varchar(10);not null" json:"date"`

	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}
