package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name          string `gorm:"not null"`
	Email         string `gorm:"uniqueIndex;not null"`
	Password      string `gorm:"not null"` // bcrypt hash, never the cleartext
	ResetToken    string
	ResetTokenExp time.Time

	Profile *Profile
}

// Profile holds the body/activity data the metrics engine runs on.
// Replaced wholesale on every save, never patched field by field.
type Profile struct {
	gorm.Model
	UserID        uint    `gorm:"uniqueIndex;not null"`
	Age           int     `gorm:"not null"`
	Gender        string  `gorm:"not null"` // female | male | other
	Height        float64 `gorm:"not null"` // cm
	Weight        float64 `gorm:"not null"` // kg
	ActivityLevel string  `gorm:"not null"` // sedentary | light | moderate | high
	Goal          string  `gorm:"not null"` // lose | maintain | gain
	Deficiencies  datatypes.JSONSlice[string]
}
