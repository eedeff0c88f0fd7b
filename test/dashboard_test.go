//go:build integration_test || all_tests

package test

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phuong-practice-projects/healthy-system/internal/dashboard"
	"github.com/phuong-practice-projects/healthy-system/internal/records/bodyrecords"
	"github.com/phuong-practice-projects/healthy-system/internal/records/exercises"
	"github.com/phuong-practice-projects/healthy-system/internal/records/meals"
)

func (s *IntegrationTestSuite) TestDashboard_NewUser() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t := s.T()
	_, token := s.newUser(ctx)

	status, respBytes := s.doRequest(ctx, http.MethodGet, "/dashboard/summary", token, nil)
	require.Equal(t, http.StatusOK, status, string(respBytes))

	var summary dashboard.Summary
	require.NoError(t, json.Unmarshal(respBytes, &summary))
	assert.Equal(t, 0, summary.Current)
	assert.Equal(t, 0, summary.Best)
	assert.Zero(t, summary.Achievement.OverallRate)
	assert.Equal(t, dashboard.MessageNewDay, summary.Achievement.Message)
}

func (s *IntegrationTestSuite) TestDashboard_AfterLogging() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t := s.T()
	_, token := s.newUser(ctx)

	now := time.Now().UTC()
	yesterday := now.AddDate(0, 0, -1)

	for _, meal := range []meals.Meal{
		{Type: meals.TypeMorning, Description: "oats", Calories: 350, EatenAt: now},
		{Type: meals.TypeLunch, Description: "salad", Calories: 500, EatenAt: now},
		{Type: meals.TypeSnack, Description: "apple", Calories: 80, EatenAt: now},
		{Type: meals.TypeDinner, Description: "soup", Calories: 400, EatenAt: yesterday},
	} {
		status, respBytes := s.doRequest(ctx, http.MethodPost, "/meals", token, meal)
		require.Equal(t, http.StatusCreated, status, string(respBytes))
	}
	for i := 0; i < 2; i++ {
		status, respBytes := s.doRequest(ctx, http.MethodPost, "/exercises", token, exercises.Exercise{
			Name:            "running",
			DurationMinutes: 30,
			CaloriesBurned:  300,
			PerformedAt:     now,
		})
		require.Equal(t, http.StatusCreated, status, string(respBytes))
	}
	status, respBytes := s.doRequest(ctx, http.MethodPost, "/bodyrecords", token, bodyrecords.BodyRecord{
		WeightKg:   72.5,
		RecordedAt: now,
	})
	require.Equal(t, http.StatusCreated, status, string(respBytes))

	status, respBytes = s.doRequest(ctx, http.MethodGet, "/dashboard/streak", token, nil)
	require.Equal(t, http.StatusOK, status, string(respBytes))

	var streak dashboard.Streak
	require.NoError(t, json.Unmarshal(respBytes, &streak))
	assert.Equal(t, 2, streak.Current)
	assert.Equal(t, 2, streak.Best)

	status, respBytes = s.doRequest(ctx, http.MethodGet, "/dashboard/achievement?date="+now.Format(time.DateOnly), token, nil)
	require.Equal(t, http.StatusOK, status, string(respBytes))

	var achievement dashboard.Achievement
	require.NoError(t, json.Unmarshal(respBytes, &achievement))
	assert.Equal(t, now.Format(time.DateOnly), achievement.Date)
	assert.Equal(t, 66.7, achievement.OverallRate)
	assert.Equal(t, dashboard.MessageGood, achievement.Message)
	require.Len(t, achievement.Categories, 4)
	assert.Equal(t, 2, achievement.Categories[0].Completed)
	assert.Equal(t, 3, achievement.Categories[0].Total)
	assert.Equal(t, 1, achievement.Categories[1].Completed)
	assert.Equal(t, 1, achievement.Categories[2].Completed)
	assert.Equal(t, 0, achievement.Categories[3].Completed)

	status, _ = s.doRequest(ctx, http.MethodGet, "/dashboard/achievement?date=yesterday", token, nil)
	assert.Equal(t, http.StatusBadRequest, status)
}
