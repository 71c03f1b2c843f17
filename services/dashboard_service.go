package services

import (
	"nutritrack/config"
	"nutritrack/models"
	"nutritrack/utils"
)

// DashboardSummary is the full computed payload for one user and day:
// derived metrics, aggregated intake and advisory text in one response, so
// the client renders without doing any nutrition math of its own.
type DashboardSummary struct {
	Date string `json:"date"`

	// nil when height or weight is missing; the client shows a
	// fill-your-profile hint instead of a number.
	BMI *utils.BMIResult `json:"bmi"`

	Energy       utils.Energy       `json:"energy"`
	MacroTargets utils.MacroTargets `json:"macro_targets"`

	Totals           utils.Totals             `json:"totals"`
	Meals            []utils.MealGroup        `json:"meals"`
	CalorieProgress  int                      `json:"calorie_progress"`
	HealthTip        string                   `json:"health_tip"`
	Deficiencies     []utils.DeficiencyAdvice `json:"deficiencies"`
	DeficiencyPrompt string                   `json:"deficiency_prompt,omitempty"`
}

// BuildSummary assembles a summary from already-loaded records. Pure, so it
// is exercised directly in tests without a database.
func BuildSummary(profile *models.Profile, entries []models.FoodEntry, date string) DashboardSummary {
	s := DashboardSummary{
		Date:   date,
		Totals: utils.AggregateDay(entries),
		Meals:  utils.GroupByMeal(entries),
	}

	if profile != nil {
		s.BMI = utils.ComputeBMI(profile.Weight, profile.Height)
		s.Energy = utils.ComputeEnergy(*profile)
		s.MacroTargets = utils.ComputeMacroTargets(profile.Goal, s.Energy.TDEE)

		s.Deficiencies = utils.DeficiencyGuidance(profile.Deficiencies)
	}
	if len(s.Deficiencies) == 0 {
		s.DeficiencyPrompt = utils.GuidancePrompt
	}

	s.CalorieProgress = utils.CalorieProgress(s.Totals.Calories, s.Energy.TDEE)
	s.HealthTip = utils.HealthTip(s.Totals.Calories, s.Energy.TDEE)
	return s
}

// GetDashboardSummary loads the user's profile and the day's entries, then
// hands off to BuildSummary.
func GetDashboardSummary(email, date string) (*DashboardSummary, error) {
	var user models.User
	if err := config.DB.Preload("Profile").Where("email = ?", email).First(&user).Error; err != nil {
		return nil, ErrUserNotFound
	}

	entries, err := ListEntries(email, date)
	if err != nil {
		return nil, err
	}

	summary := BuildSummary(user.Profile, entries, date)
	return &summary, nil
}
