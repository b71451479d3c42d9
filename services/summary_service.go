package services

import (
	"errors"
	"time"

	"github.com/appdotbuilder/smart-diet-tracker/config"
	"github.com/appdotbuilder/smart-diet-tracker/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NutrientDeltas is one log's signed contribution to the five daily totals:
// positive when the log is created, negated when it is deleted.
type NutrientDeltas struct {
	Calories decimal.Decimal
	Protein  decimal.Decimal
	Carbs    decimal.Decimal
	Fats     decimal.Decimal
	Fluid    decimal.Decimal
}

func (d NutrientDeltas) Negated() NutrientDeltas {
	return NutrientDeltas{
		Calories: d.Calories.Neg(),
		Protein:  d.Protein.Neg(),
		Carbs:    d.Carbs.Neg(),
		Fats:     d.Fats.Neg(),
		Fluid:    d.Fluid.Neg(),
	}
}

func (d NutrientDeltas) hasPositive() bool {
	return d.Calories.IsPositive() || d.Protein.IsPositive() ||
		d.Carbs.IsPositive() || d.Fats.IsPositive() || d.Fluid.IsPositive()
}

// CalendarDate truncates a timestamp to its UTC calendar day. Every write and
// read of a DailySummary must go through this, otherwise summaries silently
// diverge from the logs they aggregate.
func CalendarDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

func clampZero(v decimal.Decimal) decimal.Decimal {
	if v.IsNegative() {
		return decimal.Zero
	}
	return v
}

// lockSummaryRow takes a row lock where the dialect supports it. SQLite (the
// test database) serializes writers itself and rejects FOR UPDATE.
func lockSummaryRow(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// ApplyDelta keeps the DailySummary for (userID, day of `at`) consistent with
// a log mutation. It must run inside the same transaction as the log write so
// a log row is never committed without its summary adjustment.
//
// Behaviour:
//   - no row, positive delta: lazily create the row with max(0, delta) per
//     field (a fluid-only delta still yields zero nutrient fields);
//   - no row, pure reversal: no-op, not an error, so deletion stays robust to
//     prior partial failures;
//   - row exists: add each delta and clamp the result at zero. Under-counting
//     beats a negative total.
//
// Returns the summary after the mutation, or nil on the no-op path.
func ApplyDelta(tx *gorm.DB, userID uint, at time.Time, d NutrientDeltas) (*models.DailySummary, error) {
	day := CalendarDate(at)

	var summary models.DailySummary
	err := lockSummaryRow(tx).
		Where("user_id = ? AND summary_date = ?", userID, day).
		First(&summary).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if !d.hasPositive() {
			return nil, nil
		}
		summary = models.DailySummary{
			UserID:        userID,
			SummaryDate:   day,
			TotalCalories: clampZero(d.Calories),
			TotalProtein:  clampZero(d.Protein),
			TotalCarbs:    clampZero(d.Carbs),
			TotalFats:     clampZero(d.Fats),
			TotalFluid:    clampZero(d.Fluid),
		}
		if err := tx.Create(&summary).Error; err != nil {
			return nil, err
		}
		return &summary, nil
	}
	if err != nil {
		return nil, err
	}

	summary.TotalCalories = clampZero(summary.TotalCalories.Add(d.Calories))
	summary.TotalProtein = clampZero(summary.TotalProtein.Add(d.Protein))
	summary.TotalCarbs = clampZero(summary.TotalCarbs.Add(d.Carbs))
	summary.TotalFats = clampZero(summary.TotalFats.Add(d.Fats))
	summary.TotalFluid = clampZero(summary.TotalFluid.Add(d.Fluid))

	if err := tx.Save(&summary).Error; err != nil {
		return nil, err
	}
	return &summary, nil
}

// GetSummary returns the summary row for the user's UTC calendar day, or nil
// when nothing was logged that day.
func GetSummary(userID uint, date time.Time) (*models.DailySummary, error) {
	var summary models.DailySummary
	err := config.DB.
		Where("user_id = ? AND summary_date = ?", userID, CalendarDate(date)).
		First(&summary).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &summary, nil
}
