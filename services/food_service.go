package services

import (
	"fmt"
	"strings"

	"github.com/appdotbuilder/smart-diet-tracker/config"
	"github.com/appdotbuilder/smart-diet-tracker/models"

	"github.com/shopspring/decimal"
)

type FoodItemInput struct {
	Name            string          `json:"name"`
	CaloriesPer100g decimal.Decimal `json:"calories_per_100g"`
	ProteinPer100g  decimal.Decimal `json:"protein_per_100g"`
	CarbsPer100g    decimal.Decimal `json:"carbs_per_100g"`
	FatsPer100g     decimal.Decimal `json:"fats_per_100g"`
}

// CreateFoodItem adds an entry to the food catalog. Catalog rows are
// immutable reference data once created.
func CreateFoodItem(in FoodItemInput) (*models.FoodItem, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name must not be empty", ErrValidation)
	}
	if in.CaloriesPer100g.IsNegative() || in.ProteinPer100g.IsNegative() ||
		in.CarbsPer100g.IsNegative() || in.FatsPer100g.IsNegative() {
		return nil, fmt.Errorf("%w: per-100g rates must not be negative", ErrValidation)
	}

	item := models.FoodItem{
		Name:            strings.TrimSpace(in.Name),
		CaloriesPer100g: in.CaloriesPer100g,
		ProteinPer100g:  in.ProteinPer100g,
		CarbsPer100g:    in.CarbsPer100g,
		FatsPer100g:     in.FatsPer100g,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// SearchFoods does a case-insensitive substring match on the catalog name.
func SearchFoods(query string) ([]models.FoodItem, error) {
	var items []models.FoodItem
	pattern := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
	err := config.DB.
		Where("LOWER(name) LIKE ?", pattern).
		Order("name asc").
		Find(&items).Error
	return items, err
}
