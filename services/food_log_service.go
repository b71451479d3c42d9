package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/appdotbuilder/smart-diet-tracker/config"
	"github.com/appdotbuilder/smart-diet-tracker/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var oneHundred = decimal.NewFromInt(100)

// foodContribution scales the item's per-100g rates by portion/100. Rounded
// to two decimals to match the column precision, so a later reversal applies
// the exact same amounts.
func foodContribution(item *models.FoodItem, portion decimal.Decimal) NutrientDeltas {
	factor := portion.Div(oneHundred)
	return NutrientDeltas{
		Calories: item.CaloriesPer100g.Mul(factor).Round(2),
		Protein:  item.ProteinPer100g.Mul(factor).Round(2),
		Carbs:    item.CarbsPer100g.Mul(factor).Round(2),
		Fats:     item.FatsPer100g.Mul(factor).Round(2),
		Fluid:    decimal.Zero,
	}
}

// LogFood records a consumption event and folds its nutrient contribution
// into the day's summary. The log write and the summary adjustment commit in
// one transaction. consumedAt defaults to now when nil.
func LogFood(userID, foodItemID uint, portion decimal.Decimal, consumedAt *time.Time) (*models.FoodLog, error) {
	if !portion.IsPositive() {
		return nil, fmt.Errorf("%w: portion_size must be positive", ErrValidation)
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
		}
		return nil, err
	}
	var item models.FoodItem
	if err := config.DB.First(&item, foodItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: food item %d", ErrNotFound, foodItemID)
		}
		return nil, err
	}

	at := time.Now().UTC()
	if consumedAt != nil {
		at = consumedAt.UTC()
	}

	log := models.FoodLog{
		UserID:      userID,
		FoodItemID:  item.ID,
		PortionSize: portion,
		ConsumedAt:  at,
	}
	var summary *models.DailySummary
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&log).Error; err != nil {
			return err
		}
		s, err := ApplyDelta(tx, userID, at, foodContribution(&item, portion))
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
	log.FoodItem = &item
	return &log, nil
}

// DeleteFoodLog removes a log and reverses its contribution from the day's
// summary. Returns false, without touching anything, when the log does not
// exist or belongs to another user; the two cases are deliberately
// indistinguishable.
func DeleteFoodLog(logID, userID uint) (bool, error) {
	var log models.FoodLog
	err := config.DB.Where("id = ? AND user_id = ?", logID, userID).First(&log).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	var item models.FoodItem
	if err := config.DB.First(&item, log.FoodItemID).Error; err != nil {
		return false, err
	}

	deleted := false
	var summary *models.DailySummary
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ?", log.ID, userID).Delete(&models.FoodLog{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// lost a race with a concurrent delete
			return nil
		}
		deleted = true
		s, err := ApplyDelta(tx, userID, log.ConsumedAt, foodContribution(&item, log.PortionSize).Negated())
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

// ListFoodLogs returns the user's logs for one UTC calendar day, oldest first.
func ListFoodLogs(userID uint, date time.Time) ([]models.FoodLog, error) {
	day := CalendarDate(date)
	var logs []models.FoodLog
	err := config.DB.
		Preload("FoodItem").
		Where("user_id = ? AND consumed_at >= ? AND consumed_at < ?", userID, day, day.Add(24*time.Hour)).
		Order("consumed_at asc").
		Find(&logs).Error
	return logs, err
}
