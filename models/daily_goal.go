package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyGoal holds a user's daily nutrient-intake targets. Rows are never
// deleted; the user's current targets are the row with the newest UpdatedAt.
type DailyGoal struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	UserID        uint            `gorm:"index;not null" json:"user_id"`
	DailyCalories decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"daily_calories"` // kcal
	DailyProtein  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"daily_protein"`  // g
	DailyCarbs    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"daily_carbs"`    // g
	DailyFats     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"daily_fats"`     // g
	DailyFluid    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"daily_fluid"`    // ml
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `gorm:"index" json:"updated_at"`
}
