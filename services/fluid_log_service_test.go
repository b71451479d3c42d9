package services

import (
	"testing"
	"time"

	"github.com/appdotbuilder/smart-diet-tracker/models"

	"github.com/stretchr/testify/require"
)

func TestLogFluidValidation(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "fluid-validation@example.com")

	_, err := LogFluid(user.ID, "", dec("250"), nil)
	require.ErrorIs(t, err, ErrValidation)

	_, err = LogFluid(user.ID, "   ", dec("250"), nil)
	require.ErrorIs(t, err, ErrValidation)

	_, err = LogFluid(user.ID, "water", dec("0"), nil)
	require.ErrorIs(t, err, ErrValidation)

	_, err = LogFluid(user.ID, "water", dec("-100"), nil)
	require.ErrorIs(t, err, ErrValidation)

	var count int64
	require.NoError(t, dbModel(&models.FluidLog{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestLogFluidUnknownUser(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "fluid-missing@example.com")

	_, err := LogFluid(user.ID+999, "water", dec("250"), nil)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLogFluidRecordsVolumeVerbatim(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "fluid-verbatim@example.com")
	at := mustDate(t, "2024-01-15").Add(10 * time.Hour)

	log, err := LogFluid(user.ID, "green tea", dec("330.25"), &at)
	require.NoError(t, err)
	require.Equal(t, "green tea", log.FluidType)
	requireDecEqual(t, "330.25", log.Volume)

	summary, err := GetSummary(user.ID, at)
	require.NoError(t, err)
	require.NotNil(t, summary)
	requireDecEqual(t, "330.25", summary.TotalFluid)
	requireDecEqual(t, "0", summary.TotalCalories)

	requireReconciled(t, user.ID, "2024-01-15")
}

func TestDeleteFluidLogReversesVolume(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "fluid-reverse@example.com")
	day := mustDate(t, "2024-01-15")

	first := day.Add(8 * time.Hour)
	water, err := LogFluid(user.ID, "water", dec("500"), &first)
	require.NoError(t, err)

	second := day.Add(15 * time.Hour)
	_, err = LogFluid(user.ID, "juice", dec("200"), &second)
	require.NoError(t, err)

	deleted, err := DeleteFluidLog(water.ID, user.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	summary, err := GetSummary(user.ID, day)
	require.NoError(t, err)
	requireDecEqual(t, "200", summary.TotalFluid)
	requireReconciled(t, user.ID, "2024-01-15")
}

func TestDeleteFluidLogMissingOrForeignReturnsFalse(t *testing.T) {
	setupTestDB(t)
	owner := createTestUser(t, "fluid-owner@example.com")
	other := createTestUser(t, "fluid-other@example.com")
	at := mustDate(t, "2024-01-15").Add(9 * time.Hour)

	log, err := LogFluid(owner.ID, "water", dec("500"), &at)
	require.NoError(t, err)

	deleted, err := DeleteFluidLog(log.ID+999, owner.ID)
	require.NoError(t, err)
	require.False(t, deleted)

	deleted, err = DeleteFluidLog(log.ID, other.ID)
	require.NoError(t, err)
	require.False(t, deleted)

	summary, err := GetSummary(owner.ID, at)
	require.NoError(t, err)
	requireDecEqual(t, "500", summary.TotalFluid)
}

func TestMixedFoodAndFluidShareOneSummaryRow(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "mixed@example.com")
	apple := createTestFood(t, "Apple", "52", "0.3", "14", "0.2")
	day := mustDate(t, "2024-01-15")

	morning := day.Add(8 * time.Hour)
	_, err := LogFood(user.ID, apple.ID, dec("150"), &morning)
	require.NoError(t, err)

	later := day.Add(11 * time.Hour)
	_, err = LogFluid(user.ID, "water", dec("250"), &later)
	require.NoError(t, err)

	var count int64
	require.NoError(t, countSummaries(user.ID, &count))
	require.EqualValues(t, 1, count)

	summary, err := GetSummary(user.ID, day)
	require.NoError(t, err)
	requireDecEqual(t, "78", summary.TotalCalories)
	requireDecEqual(t, "250", summary.TotalFluid)
	requireReconciled(t, user.ID, "2024-01-15")
}
