package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/appdotbuilder/smart-diet-tracker/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type FoodLogInput struct {
	FoodItemID  uint            `json:"food_item_id" binding:"required"`
	PortionSize decimal.Decimal `json:"portion_size"`                  // grams
	ConsumedAt  string          `json:"consumed_at"`                   // RFC3339, optional
}

func LogFood(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input FoodLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	consumedAt, ok := parseConsumedAt(c, input.ConsumedAt)
	if !ok {
		return
	}

	log, err := services.LogFood(userID, input.FoodItemID, input.PortionSize, consumedAt)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, log)
}

func DeleteFoodLog(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	logID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid log id"})
		return
	}

	deleted, err := services.DeleteFoodLog(uint(logID), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// parseConsumedAt converts an optional RFC3339 string; a nil return with
// ok=true means "default to now".
func parseConsumedAt(c *gin.Context, raw string) (*time.Time, bool) {
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid consumed_at, expected RFC3339"})
		return nil, false
	}
	return &t, true
}
