package controllers

import (
	"errors"
	"net/http"

	"nutritrack/flow"
	"nutritrack/middlewares"
	"nutritrack/services"

	"github.com/gin-gonic/gin"
)

type SaveProfileInput struct {
	Email   string                `json:"email" binding:"required,email"`
	Profile services.ProfileInput `json:"profile" binding:"required"`
}

func SaveProfile(c *gin.Context) {
	var input SaveProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email + profile required"})
		return
	}
	if !middlewares.RequireOwner(c, input.Email) {
		return
	}

	profile, err := services.SaveProfile(input.Email, input.Profile)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	next, _ := flow.Transition(flow.ProfileSetup, flow.ProfileSaved)
	c.JSON(http.StatusOK, gin.H{"profile": profile, "next_state": next})
}
