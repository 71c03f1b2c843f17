package services

import (
	"errors"
	"time"

	"nutritrack/config"
	"nutritrack/models"
	"nutritrack/utils"

	"gorm.io/gorm"
)

// SyncDailyProgress recomputes the (email, date) rollup from the entries
// table and upserts it. Recomputing instead of incrementing makes the sync
// safe to replay after a retried add or delete.
func SyncDailyProgress(email, date string) error {
	entries, err := ListEntries(email, date)
	if err != nil {
		return err
	}
	totals := utils.AggregateDay(entries)

	dp := models.DailyProgress{
		Email:    email,
		Date:     date,
		Calories: totals.Calories,
		Protein:  totals.Protein,
		Carbs:    totals.Carbs,
		Fats:     totals.Fats,
	}

	var existing models.DailyProgress
	err = config.DB.Where("email = ? AND date = ?", email, date).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return config.DB.Create(&dp).Error
	}
	if err != nil {
		return err
	}

	existing.Calories = dp.Calories
	existing.Protein = dp.Protein
	existing.Carbs = dp.Carbs
	existing.Fats = dp.Fats
	return config.DB.Save(&existing).Error
}

// TrendPoint is one day of the weekly calorie trend.
type TrendPoint struct {
	Date     string  `json:"date"`
	Day      string  `json:"day"` // Mon, Tue, ...
	Calories float64 `json:"calories"`
}

// WeeklyTrend returns the seven calendar days ending at the given date,
// oldest first, from persisted daily rollups. Days with nothing logged come
// back as zero; nothing is fabricated.
func WeeklyTrend(email, date string) ([]TrendPoint, error) {
	end, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, err
	}
	start := end.AddDate(0, 0, -6)

	var rows []models.DailyProgress
	if err := config.DB.
		Where("email = ? AND date BETWEEN ? AND ?", email, start.Format("2006-01-02"), date).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	return fillTrend(rows, start, end), nil
}

// fillTrend lays rollup rows onto every day from start through end, oldest
// first. Days without a row become zero-calorie points.
func fillTrend(rows []models.DailyProgress, start, end time.Time) []TrendPoint {
	byDate := make(map[string]models.DailyProgress, len(rows))
	for _, r := range rows {
		byDate[r.Date] = r
	}

	points := make([]TrendPoint, 0, 7)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		points = append(points, TrendPoint{
			Date:     key,
			Day:      d.Format("Mon"),
			Calories: byDate[key].Calories,
		})
	}
	return points
}
