package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type FluidLog struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	UserID     uint            `gorm:"index;not null" json:"user_id"`
	FluidType  string          `gorm:"not null" json:"fluid_type"`               // free text, e.g. "water"
	Volume     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"volume"` // ml
	ConsumedAt time.Time       `gorm:"index" json:"consumed_at"`
	CreatedAt  time.Time       `json:"created_at"`
}
