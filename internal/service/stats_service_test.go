package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWorkoutsByDateParsesInput(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := newWorkoutService(store)
	stats := NewStatsService(store, zap.NewNop())

	workout, err := svc.StartWorkout(ctx, 42)
	require.NoError(t, err)
	_, err = svc.FinishWorkout(ctx, workout.ID)
	require.NoError(t, err)

	// Тренировка начата сегодня, запрашиваем её по сегодняшней дате
	now := time.Now()
	input := now.Format("02.01.2006")

	date, workouts, err := stats.WorkoutsByDate(ctx, 42, input)
	require.NoError(t, err)
	assert.Equal(t, now.Day(), date.Day())
	require.Len(t, workouts, 1)
	assert.Equal(t, workout.ID, workouts[0].ID)
}

func TestWorkoutsByDateInvalidInput(t *testing.T) {
	store := newFakeStore()
	stats := NewStatsService(store, zap.NewNop())

	_, _, err := stats.WorkoutsByDate(context.Background(), 42, "not a date")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestWorkoutsByDateEmptyInputUsesLastWorkout(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := newWorkoutService(store)
	stats := NewStatsService(store, zap.NewNop())

	workout, err := svc.StartWorkout(ctx, 42)
	require.NoError(t, err)
	_, err = svc.FinishWorkout(ctx, workout.ID)
	require.NoError(t, err)

	date, workouts, err := stats.WorkoutsByDate(ctx, 42, "")
	require.NoError(t, err)
	require.Len(t, workouts, 1)

	start := workout.StartTime
	assert.Equal(t, start.Year(), date.Year())
	assert.Equal(t, start.Month(), date.Month())
	assert.Equal(t, start.Day(), date.Day())
	assert.Zero(t, date.Hour())
}

func TestWorkoutsByDateEmptyInputNoHistory(t *testing.T) {
	store := newFakeStore()
	stats := NewStatsService(store, zap.NewNop())

	_, _, err := stats.WorkoutsByDate(context.Background(), 42, "")
	assert.ErrorIs(t, err, ErrNoHistory)
}

func TestWorkoutsByDateEmptyDay(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := newWorkoutService(store)
	stats := NewStatsService(store, zap.NewNop())

	workout, err := svc.StartWorkout(ctx, 42)
	require.NoError(t, err)
	_, err = svc.FinishWorkout(ctx, workout.ID)
	require.NoError(t, err)

	// Валидная дата, но тренировок в тот день не было
	_, workouts, err := stats.WorkoutsByDate(ctx, 42, "01.01.2020")
	require.NoError(t, err)
	assert.Empty(t, workouts)
}

func TestListWorkoutsPagination(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := newWorkoutService(store)
	stats := NewStatsService(store, zap.NewNop())

	base := time.Now().Add(-24 * time.Hour)
	for i := 0; i < 7; i++ {
		workout, err := svc.StartWorkout(ctx, 42)
		require.NoError(t, err)
		store.workouts[workout.ID].StartTime = base.Add(time.Duration(i) * time.Hour)
		_, err = svc.FinishWorkout(ctx, workout.ID)
		require.NoError(t, err)
	}

	page, nextOffset, hasMore, err := stats.ListWorkouts(ctx, 42, 5, 0)
	require.NoError(t, err)
	assert.Len(t, page, 5)
	assert.True(t, hasMore)
	assert.Equal(t, 5, nextOffset)

	page, _, hasMore, err = stats.ListWorkouts(ctx, 42, 5, nextOffset)
	require.NoError(t, err)
	assert.Len(t, page, 2)
	assert.False(t, hasMore)
}
