package utils

import (
	"testing"

	"nutritrack/models"
)

func sampleEntries() []models.FoodEntry {
	return []models.FoodEntry{
		{Meal: "Breakfast", Name: "Egg", Quantity: 2, Calories: 140, Protein: 12, Carbs: 2, Fats: 10},
		{Meal: "Lunch", Name: "Rice (1 cup)", Quantity: 1, Calories: 210, Protein: 4, Carbs: 45, Fats: 1},
		{Meal: "Lunch", Name: "Paneer (100g)", Quantity: 1, Calories: 296, Protein: 18, Carbs: 8, Fats: 22},
		{Meal: "Snacks", Name: "Banana", Quantity: 1, Calories: 89, Protein: 1, Carbs: 23, Fats: 0},
	}
}

func TestAggregateDay(t *testing.T) {
	t.Parallel()

	got := AggregateDay(sampleEntries())
	want := Totals{Calories: 735, Protein: 35, Carbs: 78, Fats: 33}
	if got != want {
		t.Errorf("AggregateDay() = %+v, want %+v", got, want)
	}
}

func TestAggregateDay_Empty(t *testing.T) {
	t.Parallel()

	if got := AggregateDay(nil); got != (Totals{}) {
		t.Errorf("AggregateDay(nil) = %+v, want zero totals", got)
	}
}

func TestGroupByMeal_EmptyKeepsAllMeals(t *testing.T) {
	t.Parallel()

	groups := GroupByMeal(nil)
	if len(groups) != 4 {
		t.Fatalf("got %d meal groups, want 4", len(groups))
	}
	for i, g := range groups {
		if g.Meal != MealOrder[i] {
			t.Errorf("group[%d].Meal = %q, want %q", i, g.Meal, MealOrder[i])
		}
		if len(g.Items) != 0 || g.Calories != 0 {
			t.Errorf("group %q not empty: %d items, %v kcal", g.Meal, len(g.Items), g.Calories)
		}
	}
}

func TestGroupByMeal_Partition(t *testing.T) {
	t.Parallel()

	groups := GroupByMeal(sampleEntries())
	counts := map[string]int{}
	for _, g := range groups {
		counts[g.Meal] = len(g.Items)
	}

	want := map[string]int{"Breakfast": 1, "Lunch": 2, "Dinner": 0, "Snacks": 1}
	for meal, n := range want {
		if counts[meal] != n {
			t.Errorf("%s has %d items, want %d", meal, counts[meal], n)
		}
	}
}

func TestGroupByMeal_CaseSensitive(t *testing.T) {
	t.Parallel()

	entries := []models.FoodEntry{{Meal: "breakfast", Calories: 100}}
	for _, g := range GroupByMeal(entries) {
		if len(g.Items) != 0 {
			t.Errorf("lowercase meal tag matched group %q", g.Meal)
		}
	}
}

// Per-meal subtotals must add back up to the flat day total.
func TestGroupByMeal_RoundTrip(t *testing.T) {
	t.Parallel()

	entries := sampleEntries()
	var sum float64
	for _, g := range GroupByMeal(entries) {
		sum += g.Calories
	}
	if total := AggregateDay(entries).Calories; sum != total {
		t.Errorf("sum of meal subtotals = %v, flat total = %v", sum, total)
	}
}

func TestCalorieProgress(t *testing.T) {
	t.Parallel()

	cases := []struct {
		calories float64
		tdee     int
		want     int
	}{
		{1800, 1800, 100},
		{2200, 1800, 100}, // capped, not 122
		{0, 1800, 0},
		{900, 1800, 50},
		{450, 1800, 25},
		{1000, 0, 0},
		{1000, -5, 0},
	}
	for _, tc := range cases {
		if got := CalorieProgress(tc.calories, tc.tdee); got != tc.want {
			t.Errorf("CalorieProgress(%v, %d) = %d, want %d", tc.calories, tc.tdee, got, tc.want)
		}
	}
}
