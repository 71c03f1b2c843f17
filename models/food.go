package models

import "gorm.io/gorm"

// FoodItem is a catalog entry: nutrients per single unit.
type FoodItem struct {
	gorm.Model
	Slug     string  `gorm:"type:varchar(64);uniqueIndex;not null" json:"id"`
	Name     string  `gorm:"not null" json:"name"`
	Unit     string  `json:"unit"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

// FoodEntry is one logged food. Nutrients are a snapshot taken at creation
// (catalog value × quantity); later catalog corrections never rewrite history.
// Entries are never edited, only added and deleted.
type FoodEntry struct {
	gorm.Model
	Email    string  `gorm:"index:idx_food_entries_owner_date;not null" json:"email"`
	Date     string  `gorm:"index:idx_food_entries_owner_date;type:varchar(10);not null" json:"date"` // YYYY-MM-DD
	Meal     string  `gorm:"not null" json:"meal"` // Breakfast | Lunch | Dinner | Snacks
	Name     string  `json:"name"`
	Unit     string  `json:"unit"`
	Quantity float64 `json:"quantity"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}
