package services

import (
	"errors"
	"fmt"
	"strings"

	"nutritrack/config"
	"nutritrack/models"

	"gorm.io/gorm"
)

var (
	ErrEntryNotFound = errors.New("food entry not found")
	ErrFoodNotFound  = errors.New("food not found in catalog")
	ErrEntryInvalid  = errors.New("invalid food entry")
)

type FoodEntryInput struct {
	Email    string  `json:"email" binding:"required,email"`
	Date     string  `json:"date" binding:"required"` // YYYY-MM-DD
	Meal     string  `json:"meal" binding:"required,oneof=Breakfast Lunch Dinner Snacks"`
	FoodID   string  `json:"food_id"` // catalog slug; when set, nutrients come from the catalog
	Name     string  `json:"name"`
	Unit     string  `json:"unit"`
	Quantity float64 `json:"quantity" binding:"required,gt=0"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

// validate guards the manual path: without a catalog food the caller must
// name the entry and may not submit negative nutrients. Catalog adds need no
// checks here since their snapshot comes from the seeded table.
func (in FoodEntryInput) validate() error {
	if in.FoodID != "" {
		return nil
	}
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name required", ErrEntryInvalid)
	}
	if in.Calories < 0 || in.Protein < 0 || in.Carbs < 0 || in.Fats < 0 {
		return fmt.Errorf("%w: nutrients cannot be negative", ErrEntryInvalid)
	}
	return nil
}

// AddEntry logs a food. The nutrient snapshot is fixed here, at write time:
// either catalog-per-unit × quantity or the caller-supplied figures. Later
// catalog edits never touch logged history.
func AddEntry(input FoodEntryInput) (*models.FoodEntry, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	entry := models.FoodEntry{
		Email:    input.Email,
		Date:     input.Date,
		Meal:     input.Meal,
		Name:     input.Name,
		Unit:     input.Unit,
		Quantity: input.Quantity,
		Calories: input.Calories,
		Protein:  input.Protein,
		Carbs:    input.Carbs,
		Fats:     input.Fats,
	}

	if input.FoodID != "" {
		var item models.FoodItem
		err := config.DB.Where("slug = ?", input.FoodID).First(&item).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFoodNotFound
		}
		if err != nil {
			return nil, err
		}
		entry.Name = item.Name
		entry.Unit = item.Unit
		entry.Calories = item.Calories * input.Quantity
		entry.Protein = item.Protein * input.Quantity
		entry.Carbs = item.Carbs * input.Quantity
		entry.Fats = item.Fats * input.Quantity
	}

	if err := config.DB.Create(&entry).Error; err != nil {
		return nil, err
	}

	if err := SyncDailyProgress(entry.Email, entry.Date); err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListEntries returns one user's entries for a calendar day in creation
// order. Dates are compared as exact YYYY-MM-DD strings.
func ListEntries(email, date string) ([]models.FoodEntry, error) {
	entries := []models.FoodEntry{}
	err := config.DB.
		Where("email = ? AND date = ?", email, date).
		Order("created_at ASC, id ASC").
		Find(&entries).Error
	return entries, err
}

// DeleteEntry removes one entry by id, scoped to its owner. Deleting an
// already-deleted id reports ErrEntryNotFound rather than failing silently,
// which keeps client retries harmless.
func DeleteEntry(email string, id uint) error {
	var entry models.FoodEntry
	err := config.DB.Where("id = ? AND email = ?", id, email).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrEntryNotFound
	}
	if err != nil {
		return err
	}

	if err := config.DB.Delete(&entry).Error; err != nil {
		return err
	}
	return SyncDailyProgress(entry.Email, entry.Date)
}

func ListFoodOptions() ([]models.FoodItem, error) {
	items := []models.FoodItem{}
	err := config.DB.Order("slug ASC").Find(&items).Error
	return items, err
}
