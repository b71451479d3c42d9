package controllers

import (
	"net/http"
	"time"

	"github.com/appdotbuilder/smart-diet-tracker/services"

	"github.com/gin-gonic/gin"
)

func GetDailyProgress(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	date := time.Now().UTC()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	progress, err := services.GetDailyProgress(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, progress)
}
