package services

import (
	"time"

	"github.com/appdotbuilder/smart-diet-tracker/models"

	"github.com/shopspring/decimal"
)

// ProgressPercentages is percentage-of-goal for the five tracked quantities,
// rounded to the nearest integer (halves round away from zero, shopspring
// semantics). A missing goal or missing summary yields 0, never an error.
type ProgressPercentages struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fats     int `json:"fats"`
	Fluid    int `json:"fluid"`
}

type DailyProgress struct {
	Date      string               `json:"date"`
	Goals     *models.DailyGoal    `json:"goals"`
	Summary   *models.DailySummary `json:"summary"`
	FoodLogs  []models.FoodLog     `json:"food_logs"`
	FluidLogs []models.FluidLog    `json:"fluid_logs"`
	Progress  ProgressPercentages  `json:"progress_percentages"`
}

func goalPct(total, target decimal.Decimal) int {
	if !target.IsPositive() {
		return 0
	}
	return int(total.Div(target).Mul(oneHundred).Round(0).IntPart())
}

// GetDailyProgress composes the user's goals, summary and logs for one UTC
// calendar day. An empty day is an expected state: absent goals or summary
// come back nil with all percentages at zero.
func GetDailyProgress(userID uint, date time.Time) (*DailyProgress, error) {
	day := CalendarDate(date)

	goals, err := CurrentGoals(userID)
	if err != nil {
		return nil, err
	}
	summary, err := GetSummary(userID, day)
	if err != nil {
		return nil, err
	}
	foodLogs, err := ListFoodLogs(userID, day)
	if err != nil {
		return nil, err
	}
	fluidLogs, err := ListFluidLogs(userID, day)
	if err != nil {
		return nil, err
	}

	var pct ProgressPercentages
	if goals != nil && summary != nil {
		pct = ProgressPercentages{
			Calories: goalPct(summary.TotalCalories, goals.DailyCalories),
			Protein:  goalPct(summary.TotalProtein, goals.DailyProtein),
			Carbs:    goalPct(summary.TotalCarbs, goals.DailyCarbs),
			Fats:     goalPct(summary.TotalFats, goals.DailyFats),
			Fluid:    goalPct(summary.TotalFluid, goals.DailyFluid),
		}
	}

	return &DailyProgress{
		Date:      day.Format("2006-01-02"),
		Goals:     goals,
		Summary:   summary,
		FoodLogs:  foodLogs,
		FluidLogs: fluidLogs,
		Progress:  pct,
	}, nil
}
