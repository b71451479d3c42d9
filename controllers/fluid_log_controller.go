package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/appdotbuilder/smart-diet-tracker/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type FluidLogInput struct {
	FluidType  string          `json:"fluid_type" binding:"required"`
	Volume     decimal.Decimal `json:"volume"`        // ml
	ConsumedAt string          `json:"consumed_at"`   // RFC3339, optional
}

func LogFluid(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input FluidLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	consumedAt, ok := parseConsumedAt(c, input.ConsumedAt)
	if !ok {
		return
	}

	log, err := services.LogFluid(userID, input.FluidType, input.Volume, consumedAt)
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

func DeleteFluidLog(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	logID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid log id"})
		return
	}

	deleted, err := services.DeleteFluidLog(uint(logID), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
