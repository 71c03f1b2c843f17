package services

import (
	"errors"

	"nutritrack/config"
	"nutritrack/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProfileInput struct {
	Age           int      `json:"age" binding:"required,gt=0"`
	Gender        string   `json:"gender" binding:"required,oneof=female male other"`
	Height        float64  `json:"height" binding:"required,gt=0"`
	Weight        float64  `json:"weight" binding:"required,gt=0"`
	ActivityLevel string   `json:"activityLevel" binding:"required,oneof=sedentary light moderate high"`
	Goal          string   `json:"goal" binding:"required,oneof=lose maintain gain"`
	Deficiencies  []string `json:"deficiencies"`
}

// SaveProfile replaces the user's profile wholesale; there is no partial
// update.
func SaveProfile(email string, input ProfileInput) (*models.Profile, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, ErrUserNotFound
	}

	profile := models.Profile{
		UserID:        user.ID,
		Age:           input.Age,
		Gender:        input.Gender,
		Height:        input.Height,
		Weight:        input.Weight,
		ActivityLevel: input.ActivityLevel,
		Goal:          input.Goal,
		Deficiencies:  datatypes.NewJSONSlice(input.Deficiencies),
	}

	var existing models.Profile
	err := config.DB.Where("user_id = ?", user.ID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := config.DB.Create(&profile).Error; err != nil {
			return nil, err
		}
		return &profile, nil
	}
	if err != nil {
		return nil, err
	}

	profile.ID = existing.ID
	profile.CreatedAt = existing.CreatedAt
	if err := config.DB.Save(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}
