package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"nutritrack/config"
	"nutritrack/models"
	"nutritrack/utils"

	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrResetTokenInvalid  = errors.New("invalid or expired token")
)

func RegisterUser(name, email, password string) (*models.User, error) {
	var existing models.User
	err := config.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: hashed,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// AuthenticateUser checks credentials and returns the user with their
// profile preloaded plus a session token. A missing account and a wrong
// password are indistinguishable to the caller.
func AuthenticateUser(email, password string) (*models.User, string, error) {
	var user models.User
	err := config.DB.Preload("Profile").Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.Email)
	if err != nil {
		return nil, "", err
	}

	return &user, token, nil
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := config.DB.Preload("Profile").Where("email = ?", email).First(&user).Error; err != nil {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

// StartPasswordReset stores a short-lived reset code and emails it. The
// caller answers the same way whether or not the account exists.
func StartPasswordReset(ctx context.Context, email string) error {
	user, err := FindUserByEmail(email)
	if err != nil {
		return err
	}

	code := utils.GenerateRandomToken(6)
	user.ResetToken = code
	user.ResetTokenExp = time.Now().Add(15 * time.Minute)
	if err := config.DB.Save(user).Error; err != nil {
		return err
	}

	if err := utils.SendResetEmail(ctx, user.Email, code); err != nil {
		slog.Error("reset email failed", "email", user.Email, "err", err)
	}
	return nil
}

func ResetPassword(token, newPassword string) error {
	var user models.User
	err := config.DB.Where("reset_token = ?", token).First(&user).Error
	if err != nil || token == "" || time.Now().After(user.ResetTokenExp) {
		return ErrResetTokenInvalid
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.Password = hashed
	user.ResetToken = ""
	user.ResetTokenExp = time.Time{}
	return config.DB.Save(&user).Error
}
