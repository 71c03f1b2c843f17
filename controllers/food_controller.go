package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"nutritrack/middlewares"
	"nutritrack/services"

	"github.com/gin-gonic/gin"
)

func AddFood(c *gin.Context) {
	var input services.FoodEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if !middlewares.RequireOwner(c, input.Email) {
		return
	}
	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid date format, use YYYY-MM-DD"})
		return
	}

	entry, err := services.AddEntry(input)
	if err != nil {
		if errors.Is(err, services.ErrFoodNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Unknown food"})
			return
		}
		if errors.Is(err, services.ErrEntryInvalid) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"entry": entry})
}

func ListTodayFood(c *gin.Context) {
	email := c.Query("email")
	date := c.Query("date")
	if email == "" || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "email and date query params required"})
		return
	}
	if !middlewares.RequireOwner(c, email) {
		return
	}

	entries, err := services.ListEntries(email, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func DeleteFood(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid entry id"})
		return
	}

	err = services.DeleteEntry(c.GetString("email"), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrEntryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func ListFoodOptions(c *gin.Context) {
	items, err := services.ListFoodOptions()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"options": items})
}
