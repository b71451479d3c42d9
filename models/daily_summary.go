package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailySummary is the denormalized per-user-per-day aggregate of the food and
// fluid logs. At most one row exists per (user_id, summary_date); the date is
// the UTC calendar day of the logs' consumed_at. Totals never go negative and
// rows are never deleted, even when every total is back at zero.
type DailySummary struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	UserID        uint            `gorm:"not null;uniqueIndex:uidx_summary_user_date" json:"user_id"`
	SummaryDate   time.Time       `gorm:"type:date;not null;uniqueIndex:uidx_summary_user_date" json:"summary_date"`
	TotalCalories decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_calories"`
	TotalProtein  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_protein"`
	TotalCarbs    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_carbs"`
	TotalFats     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_fats"`
	TotalFluid    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_fluid"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
