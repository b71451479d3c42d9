package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type FoodLog struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	UserID      uint            `gorm:"index;not null" json:"user_id"`
	FoodItemID  uint            `gorm:"not null" json:"food_item_id"`
	FoodItem    *FoodItem       `json:"food_item,omitempty"`
	PortionSize decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"portion_size"` // g
	ConsumedAt  time.Time       `gorm:"index" json:"consumed_at"`
	CreatedAt   time.Time       `json:"created_at"`
}
