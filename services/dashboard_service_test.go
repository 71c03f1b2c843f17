package services

import (
	"testing"

	"nutritrack/models"
	"nutritrack/utils"
)

func TestBuildSummary_NoProfile(t *testing.T) {
	t.Parallel()

	s := BuildSummary(nil, nil, "2026-09-01")

	if s.BMI != nil {
		t.Errorf("BMI = %+v, want nil without a profile", s.BMI)
	}
	if s.Energy != (utils.Energy{}) {
		t.Errorf("Energy = %+v, want zero without a profile", s.Energy)
	}
	if len(s.Meals) != 4 {
		t.Errorf("got %d meal groups, want 4 even with no entries", len(s.Meals))
	}
	if s.CalorieProgress != 0 {
		t.Errorf("CalorieProgress = %d, want 0", s.CalorieProgress)
	}
	if s.HealthTip != utils.TipLogMeals {
		t.Errorf("HealthTip = %q, want the log-meals prompt", s.HealthTip)
	}
	if s.DeficiencyPrompt != utils.GuidancePrompt {
		t.Errorf("DeficiencyPrompt = %q, want the generic prompt", s.DeficiencyPrompt)
	}
}

func TestBuildSummary_EntriesWithoutProfile(t *testing.T) {
	t.Parallel()

	entries := []models.FoodEntry{{Meal: "Lunch", Calories: 1000}}
	s := BuildSummary(nil, entries, "2026-09-01")

	// No profile means no calorie budget; the tip must prompt for data
	// rather than claim the user is over a target that does not exist.
	if s.HealthTip != utils.TipLogMeals {
		t.Errorf("HealthTip = %q, want the log-meals prompt without a budget", s.HealthTip)
	}
	if s.CalorieProgress != 0 {
		t.Errorf("CalorieProgress = %d, want 0 without a budget", s.CalorieProgress)
	}
	if s.Totals.Calories != 1000 {
		t.Errorf("Totals.Calories = %v, want 1000", s.Totals.Calories)
	}
}

func TestBuildSummary_WithProfileAndEntries(t *testing.T) {
	t.Parallel()

	profile := &models.Profile{
		Age: 30, Gender: "male", Height: 175, Weight: 70,
		ActivityLevel: "sedentary", Goal: "maintain",
		Deficiencies: []string{"Iron", "Unknown"},
	}
	entries := []models.FoodEntry{
		{Meal: "Breakfast", Calories: 400, Protein: 20, Carbs: 40, Fats: 15},
		{Meal: "Dinner", Calories: 600, Protein: 30, Carbs: 60, Fats: 20},
	}

	s := BuildSummary(profile, entries, "2026-09-01")

	if s.BMI == nil || s.BMI.BMI != 22.9 || s.BMI.Status != "Normal" {
		t.Errorf("BMI = %+v, want 22.9 Normal", s.BMI)
	}
	if s.Energy.TDEE != 1979 {
		t.Errorf("TDEE = %d, want 1979", s.Energy.TDEE)
	}
	if s.Totals.Calories != 1000 {
		t.Errorf("Totals.Calories = %v, want 1000", s.Totals.Calories)
	}
	// 1000/1979 = 50.5% -> 51
	if s.CalorieProgress != 51 {
		t.Errorf("CalorieProgress = %d, want 51", s.CalorieProgress)
	}
	if s.HealthTip != utils.TipBelowTarget {
		t.Errorf("HealthTip = %q, want below-target", s.HealthTip)
	}
	if len(s.Deficiencies) != 1 || s.Deficiencies[0].Tag != "Iron" {
		t.Errorf("Deficiencies = %+v, want only the Iron card", s.Deficiencies)
	}
	if s.DeficiencyPrompt != "" {
		t.Errorf("DeficiencyPrompt = %q, want empty when cards exist", s.DeficiencyPrompt)
	}

	var mealSum float64
	for _, g := range s.Meals {
		mealSum += g.Calories
	}
	if mealSum != s.Totals.Calories {
		t.Errorf("meal subtotals sum %v != day total %v", mealSum, s.Totals.Calories)
	}
}

func TestBuildSummary_OverBudgetCapsProgress(t *testing.T) {
	t.Parallel()

	profile := &models.Profile{
		Age: 30, Gender: "male", Height: 175, Weight: 70,
		ActivityLevel: "sedentary", Goal: "maintain",
	}
	entries := []models.FoodEntry{{Meal: "Lunch", Calories: 5000}}

	s := BuildSummary(profile, entries, "2026-09-01")
	if s.CalorieProgress != 100 {
		t.Errorf("CalorieProgress = %d, want capped 100", s.CalorieProgress)
	}
	if s.HealthTip != utils.TipAboveTarget {
		t.Errorf("HealthTip = %q, want above-target", s.HealthTip)
	}
	// the cap is display-only; raw totals stay intact
	if s.Totals.Calories != 5000 {
		t.Errorf("Totals.Calories = %v, want raw 5000", s.Totals.Calories)
	}
}
