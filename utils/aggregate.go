package utils

import (
	"math"

	"nutritrack/models"
)

// MealOrder is the fixed display order of the four meals.
var MealOrder = []string{"Breakfast", "Lunch", "Dinner", "Snacks"}

// Totals is the flat nutrient sum over a day's entries.
type Totals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

// AggregateDay sums every entry regardless of meal. An empty slice yields
// all-zero totals.
func AggregateDay(entries []models.FoodEntry) Totals {
	var t Totals
	for _, e := range entries {
		t.Calories += e.Calories
		t.Protein += e.Protein
		t.Carbs += e.Carbs
		t.Fats += e.Fats
	}
	return t
}

// MealGroup is one meal's entries plus its calorie subtotal.
type MealGroup struct {
	Meal     string             `json:"meal"`
	Items    []models.FoodEntry `json:"items"`
	Calories float64            `json:"calories"`
}

// GroupByMeal partitions entries into the four meals in MealOrder. Matching
// is case-sensitive. Every meal is always present; ones with no entries get
// an empty item list and a zero subtotal.
func GroupByMeal(entries []models.FoodEntry) []MealGroup {
	groups := make([]MealGroup, 0, len(MealOrder))
	for _, meal := range MealOrder {
		g := MealGroup{Meal: meal, Items: []models.FoodEntry{}}
		for _, e := range entries {
			if e.Meal == meal {
				g.Items = append(g.Items, e)
				g.Calories += e.Calories
			}
		}
		groups = append(groups, g)
	}
	return groups
}

// CalorieProgress reports logged calories as a percentage of the daily
// budget, capped at 100 for display. A non-positive budget reads as 0.
func CalorieProgress(totalCalories float64, tdee int) int {
	if tdee <= 0 {
		return 0
	}
	pct := int(math.Round(totalCalories / float64(tdee) * 100))
	if pct > 100 {
		return 100
	}
	return pct
}
