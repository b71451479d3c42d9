package services

import (
	"testing"
	"time"

	appconfig "github.com/appdotbuilder/smart-diet-tracker/config"
	"github.com/appdotbuilder/smart-diet-tracker/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points the global config.DB at a fresh in-memory SQLite
// database for the duration of one test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// a second pool connection would open a second, empty :memory: database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, appconfig.Migrate(db))

	prev := appconfig.DB
	appconfig.DB = db
	t.Cleanup(func() {
		appconfig.DB = prev
		sqlDB.Close()
	})
	return db
}

func createTestUser(t *testing.T, email string) *models.User {
	t.Helper()
	user := models.User{Name: "Test User", Email: email, Password: "hashed"}
	require.NoError(t, appconfig.DB.Create(&user).Error)
	return &user
}

func createTestFood(t *testing.T, name string, calories, protein, carbs, fats string) *models.FoodItem {
	t.Helper()
	item := models.FoodItem{
		Name:            name,
		CaloriesPer100g: dec(calories),
		ProteinPer100g:  dec(protein),
		CarbsPer100g:    dec(carbs),
		FatsPer100g:     dec(fats),
	}
	require.NoError(t, appconfig.DB.Create(&item).Error)
	return &item
}

func dbModel(value any) *gorm.DB {
	return appconfig.DB.Model(value)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// requireDecEqual compares decimals by value, not representation.
func requireDecEqual(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.True(t, dec(want).Equal(got), "want %s, got %s", want, got.String())
}

// recomputedTotals sums the nutrient contributions of every currently
// existing log for the user's day, the slow way the summary must agree with.
func recomputedTotals(t *testing.T, userID uint, day string) NutrientDeltas {
	t.Helper()
	date := mustDate(t, day)

	foodLogs, err := ListFoodLogs(userID, date)
	require.NoError(t, err)
	fluidLogs, err := ListFluidLogs(userID, date)
	require.NoError(t, err)

	total := NutrientDeltas{
		Calories: decimal.Zero, Protein: decimal.Zero, Carbs: decimal.Zero,
		Fats: decimal.Zero, Fluid: decimal.Zero,
	}
	for _, l := range foodLogs {
		c := foodContribution(l.FoodItem, l.PortionSize)
		total.Calories = total.Calories.Add(c.Calories)
		total.Protein = total.Protein.Add(c.Protein)
		total.Carbs = total.Carbs.Add(c.Carbs)
		total.Fats = total.Fats.Add(c.Fats)
	}
	for _, l := range fluidLogs {
		total.Fluid = total.Fluid.Add(l.Volume)
	}
	return total
}

// requireReconciled asserts the central invariant: the summary row equals a
// recomputation from the raw logs (a missing row means all-zero truth).
func requireReconciled(t *testing.T, userID uint, day string) {
	t.Helper()
	want := recomputedTotals(t, userID, day)

	summary, err := GetSummary(userID, mustDate(t, day))
	require.NoError(t, err)
	if summary == nil {
		require.True(t, want.Calories.IsZero() && want.Protein.IsZero() &&
			want.Carbs.IsZero() && want.Fats.IsZero() && want.Fluid.IsZero(),
			"no summary row but logs recompute to non-zero totals")
		return
	}
	require.True(t, want.Calories.Equal(summary.TotalCalories), "calories: logs %s, summary %s", want.Calories, summary.TotalCalories)
	require.True(t, want.Protein.Equal(summary.TotalProtein), "protein: logs %s, summary %s", want.Protein, summary.TotalProtein)
	require.True(t, want.Carbs.Equal(summary.TotalCarbs), "carbs: logs %s, summary %s", want.Carbs, summary.TotalCarbs)
	require.True(t, want.Fats.Equal(summary.TotalFats), "fats: logs %s, summary %s", want.Fats, summary.TotalFats)
	require.True(t, want.Fluid.Equal(summary.TotalFluid), "fluid: logs %s, summary %s", want.Fluid, summary.TotalFluid)
}

func mustDate(t *testing.T, day string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", day)
	require.NoError(t, err)
	return parsed
}
