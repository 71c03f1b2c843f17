package controllers

import (
	"errors"
	"net/http"
	"time"

	"nutritrack/middlewares"
	"nutritrack/services"

	"github.com/gin-gonic/gin"
)

// parseDayQuery pulls the email/date pair every dashboard route needs.
// A missing date means today in server-local time, matching how the client
// stamps new entries.
func parseDayQuery(c *gin.Context) (email, date string, ok bool) {
	email = c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "email query param required"})
		return "", "", false
	}
	if !middlewares.RequireOwner(c, email) {
		return "", "", false
	}

	date = c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid date format, use YYYY-MM-DD"})
		return "", "", false
	}
	return email, date, true
}

func GetDashboardSummary(c *gin.Context) {
	email, date, ok := parseDayQuery(c)
	if !ok {
		return
	}

	summary, err := services.GetDashboardSummary(email, date)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func GetWeeklyTrend(c *gin.Context) {
	email, date, ok := parseDayQuery(c)
	if !ok {
		return
	}

	points, err := services.WeeklyTrend(email, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"trend": points})
}
