package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/appdotbuilder/smart-diet-tracker/config"
	"github.com/appdotbuilder/smart-diet-tracker/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// fluidContribution: volume is logged verbatim in ml, no scaling.
func fluidContribution(volume decimal.Decimal) NutrientDeltas {
	return NutrientDeltas{
		Calories: decimal.Zero,
		Protein:  decimal.Zero,
		Carbs:    decimal.Zero,
		Fats:     decimal.Zero,
		Fluid:    volume.Round(2),
	}
}

// LogFluid mirrors LogFood with a single fluid channel and a free-text type.
func LogFluid(userID uint, fluidType string, volume decimal.Decimal, consumedAt *time.Time) (*models.FluidLog, error) {
	if strings.TrimSpace(fluidType) == "" {
		return nil, fmt.Errorf("%w: fluid_type must not be empty", ErrValidation)
	}
	if !volume.IsPositive() {
		return nil, fmt.Errorf("%w: volume must be positive", ErrValidation)
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
		}
		return nil, err
	}

	at := time.Now().UTC()
	if consumedAt != nil {
		at = consumedAt.UTC()
	}

	log := models.FluidLog{
		UserID:     userID,
		FluidType:  fluidType,
		Volume:     volume,
		ConsumedAt: at,
	}
	var summary *models.DailySummary
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&log).Error; err != nil {
			return err
		}
		s, err := ApplyDelta(tx, userID, at, fluidContribution(volume))
		if err != nil {
			return err
		}
		summary = s
		return nil
	})
	if err != nil {
		return nil, err
	}

	if summary != nil {
		Hub.BroadcastSummary(userID, summary)
	}
	return &log, nil
}

// DeleteFluidLog has the same ownership-checked, false-on-absent contract as
// DeleteFoodLog.
func DeleteFluidLog(logID, userID uint) (bool, error) {
	var log models.FluidLog
	err := config.DB.Where("id = ? AND user_id = ?", logID, userID).First(&log).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	deleted := false
	var summary *models.DailySummary
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ?", log.ID, userID).Delete(&models.FluidLog{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		deleted = true
		s, err := ApplyDelta(tx, userID, log.ConsumedAt, fluidContribution(log.Volume).Negated())
		if err != nil {
			return err
		}
		summary = s
		return nil
	})
	if err != nil {
		return false, err
	}

	if summary != nil {
		Hub.BroadcastSummary(userID, summary)
	}
	return deleted, nil
}

// ListFluidLogs returns the user's fluid logs for one UTC calendar day.
func ListFluidLogs(userID uint, date time.Time) ([]models.FluidLog, error) {
	day := CalendarDate(date)
	var logs []models.FluidLog
	err := config.DB.
		Where("user_id = ? AND consumed_at >= ? AND consumed_at < ?", userID, day, day.Add(24*time.Hour)).
		Order("consumed_at asc").
		Find(&logs).Error
	return logs, err
}
