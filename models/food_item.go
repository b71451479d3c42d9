package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FoodItem is immutable catalog data: nutrient rates per 100g.
type FoodItem struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	Name            string          `gorm:"index;not null" json:"name"`
	CaloriesPer100g decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"calories_per_100g"`
	ProteinPer100g  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"protein_per_100g"`
	CarbsPer100g    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"carbs_per_100g"`
	FatsPer100g     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"fats_per_100g"`
	CreatedAt       time.Time       `json:"created_at"`
}
