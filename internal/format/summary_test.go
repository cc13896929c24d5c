package format

import (
	"testing"
	"time"

	"github.com/Freeeeeet/gymlog_bot/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestWorkoutSummary(t *testing.T) {
	start := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(90 * time.Minute)

	workout := &model.Workout{
		ID:         1,
		StartTime:  start,
		EndTime:    &end,
		IsFinished: true,
		Exercises: []*model.Exercise{
			{
				Name: "Pull-ups",
				Sets: []*model.Set{
					{Weight: 80, Reps: 12},
					{Weight: 82.5, Reps: 10},
				},
			},
			{Name: "Dips"},
		},
	}

	text := WorkoutSummary(workout)

	assert.Contains(t, text, "**Workout at 10:00 - 11:30**")
	assert.Contains(t, text, "1. **Pull-ups**")
	assert.Contains(t, text, "- Set 1: 80kg × 12")
	assert.Contains(t, text, "- Set 2: 82.5kg × 10")
	assert.Contains(t, text, "2. **Dips**")
	assert.Contains(t, text, "(No sets recorded)")
	assert.Contains(t, text, "Session duration: 1 hour 30 minutes")
}

func TestWorkoutSummaryNoExercises(t *testing.T) {
	workout := &model.Workout{ID: 1, StartTime: time.Now()}

	assert.Equal(t, "No exercises recorded.\n", WorkoutSummary(workout))
}

func TestWorkoutSummaryUnfinished(t *testing.T) {
	workout := &model.Workout{
		StartTime: time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC),
		Exercises: []*model.Exercise{{Name: "Squats", Sets: []*model.Set{{Weight: 100, Reps: 5}}}},
	}

	text := WorkoutSummary(workout)

	assert.Contains(t, text, "**Workout at 10:00 - ...**")
	assert.NotContains(t, text, "Session duration")
}

func TestWeight(t *testing.T) {
	assert.Equal(t, "80", Weight(80))
	assert.Equal(t, "82.5", Weight(82.5))
	assert.Equal(t, "67.25", Weight(67.25))
}
