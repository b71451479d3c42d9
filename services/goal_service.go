package services

import (
	"errors"
	"fmt"

	"github.com/appdotbuilder/smart-diet-tracker/config"
	"github.com/appdotbuilder/smart-diet-tracker/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GoalInput struct {
	DailyCalories decimal.Decimal `json:"daily_calories"`
	DailyProtein  decimal.Decimal `json:"daily_protein"`
	DailyCarbs    decimal.Decimal `json:"daily_carbs"`
	DailyFats     decimal.Decimal `json:"daily_fats"`
	DailyFluid    decimal.Decimal `json:"daily_fluid"`
}

func (in GoalInput) validate() error {
	if !in.DailyCalories.IsPositive() {
		return fmt.Errorf("%w: daily_calories must be positive", ErrValidation)
	}
	if in.DailyProtein.IsNegative() || in.DailyCarbs.IsNegative() ||
		in.DailyFats.IsNegative() || in.DailyFluid.IsNegative() {
		return fmt.Errorf("%w: nutrient goals must not be negative", ErrValidation)
	}
	return nil
}

// CreateGoals inserts a new goals row. Earlier rows are kept as history; the
// current targets are always the most recently updated row.
func CreateGoals(userID uint, in GoalInput) (*models.DailyGoal, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
		}
		return nil, err
	}

	goal := models.DailyGoal{
		UserID:        userID,
		DailyCalories: in.DailyCalories,
		DailyProtein:  in.DailyProtein,
		DailyCarbs:    in.DailyCarbs,
		DailyFats:     in.DailyFats,
		DailyFluid:    in.DailyFluid,
	}
	if err := config.DB.Create(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

// UpdateGoals edits a goals row in place and bumps updated_at, which also
// makes it the current row. A row belonging to another user reads as missing.
func UpdateGoals(goalID, userID uint, in GoalInput) (*models.DailyGoal, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var goal models.DailyGoal
	err := config.DB.Where("id = ? AND user_id = ?", goalID, userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: goals %d", ErrNotFound, goalID)
	}
	if err != nil {
		return nil, err
	}

	goal.DailyCalories = in.DailyCalories
	goal.DailyProtein = in.DailyProtein
	goal.DailyCarbs = in.DailyCarbs
	goal.DailyFats = in.DailyFats
	goal.DailyFluid = in.DailyFluid

	if err := config.DB.Save(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

// CurrentGoals picks the user's targets by recency of updated_at, nil when
// the user has never set goals.
func CurrentGoals(userID uint) (*models.DailyGoal, error) {
	var goal models.DailyGoal
	err := config.DB.
		Where("user_id = ?", userID).
		Order("updated_at desc, id desc").
		First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// GoalHistory returns every goals row the user has set, newest first.
func GoalHistory(userID uint) ([]models.DailyGoal, error) {
	var goals []models.DailyGoal
	err := config.DB.
		Where("user_id = ?", userID).
		Order("updated_at desc, id desc").
		Find(&goals).Error
	return goals, err
}
