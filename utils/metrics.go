package utils

import (
	"math"

	"nutritrack/models"
)

// BMIResult pairs the rounded index with its classification band.
type BMIResult struct {
	BMI    float64 `json:"bmi"`
	Status string  `json:"status"`
}

// ComputeBMI expects weight in kilograms and height in centimeters.
// Returns nil when either is missing or non-positive: the metric is
// undefined, not zero.
func ComputeBMI(weightKg, heightCm float64) *BMIResult {
	if weightKg <= 0 || heightCm <= 0 {
		return nil
	}
	h := heightCm / 100.0
	bmi := math.Round(weightKg/(h*h)*10) / 10
	return &BMIResult{BMI: bmi, Status: BMIStatus(bmi)}
}

// BMIStatus classifies a BMI value. Bands are inclusive on their lower
// bound, so every value lands in exactly one band.
func BMIStatus(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal"
	case bmi < 30.0:
		return "Overweight"
	default:
		return "Obese"
	}
}

// Energy holds the resting and goal-adjusted daily expenditure, both in
// whole kcal.
type Energy struct {
	BMR  int `json:"bmr"`
	TDEE int `json:"tdee"`
}

var activityFactors = map[string]float64{
	"sedentary": 1.2,
	"light":     1.375,
	"moderate":  1.55,
	"high":      1.725,
}

// ComputeEnergy estimates BMR with the Mifflin-St Jeor equation (the male
// constant applies only to gender "male"; female and other share the -161
// offset), scales by the activity factor (unknown levels fall back to
// sedentary) and shifts by 300 kcal for a lose/gain goal.
func ComputeEnergy(p models.Profile) Energy {
	bmr := 10*p.Weight + 6.25*p.Height - 5*float64(p.Age)
	if p.Gender == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}

	factor, ok := activityFactors[p.ActivityLevel]
	if !ok {
		factor = 1.2
	}

	tdee := bmr * factor
	switch p.Goal {
	case "lose":
		tdee -= 300
	case "gain":
		tdee += 300
	}

	return Energy{
		BMR:  int(math.Round(bmr)),
		TDEE: int(math.Round(tdee)),
	}
}

// PieSlice is one wedge of the target macro split, in kcal.
type PieSlice struct {
	Name     string `json:"name"`
	Calories int    `json:"value"`
}

// MacroGrams is the same split converted to grams per macronutrient.
type MacroGrams struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fats    int `json:"fats"`
}

type MacroTargets struct {
	Pie   []PieSlice `json:"pie"`
	Grams MacroGrams `json:"grams"`
}

// ComputeMacroTargets splits a calorie budget by goal and converts to grams
// at 4 kcal/g for protein and carbs, 9 kcal/g for fat. Each figure is
// rounded independently; the rounded grams need not reconstitute the budget
// exactly.
func ComputeMacroTargets(goal string, tdeeCalories int) MacroTargets {
	proteinPct, carbPct, fatPct := 0.30, 0.45, 0.25
	switch goal {
	case "lose":
		proteinPct, carbPct, fatPct = 0.35, 0.40, 0.25
	case "gain":
		proteinPct, carbPct, fatPct = 0.30, 0.50, 0.20
	}

	total := float64(tdeeCalories)
	return MacroTargets{
		Pie: []PieSlice{
			{Name: "Protein", Calories: int(math.Round(total * proteinPct))},
			{Name: "Carbs", Calories: int(math.Round(total * carbPct))},
			{Name: "Fats", Calories: int(math.Round(total * fatPct))},
		},
		Grams: MacroGrams{
			Protein: int(math.Round(total * proteinPct / 4)),
			Carbs:   int(math.Round(total * carbPct / 4)),
			Fats:    int(math.Round(total * fatPct / 9)),
		},
	}
}
