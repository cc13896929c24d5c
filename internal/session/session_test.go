package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func draftWithExercises(names ...string) *Draft {
	draft := &Draft{Name: "Test"}
	for _, name := range names {
		draft.Exercises = append(draft.Exercises, DraftExercise{Name: name})
	}
	return draft
}

func TestRemoveDraftExerciseShiftsPointerDown(t *testing.T) {
	data := NewData()
	data.TemplateDraft = draftWithExercises("Squats", "Bench", "Deadlift")
	data.TemplateCurrentExerciseIdx = intPtr(2)

	require.True(t, data.RemoveDraftExercise(0))

	assert.Len(t, data.TemplateDraft.Exercises, 2)
	assert.Equal(t, "Bench", data.TemplateDraft.Exercises[0].Name)
	require.NotNil(t, data.TemplateCurrentExerciseIdx)
	assert.Equal(t, 1, *data.TemplateCurrentExerciseIdx)
}

func TestRemoveDraftExerciseClearsExactPointer(t *testing.T) {
	data := NewData()
	data.TemplateDraft = draftWithExercises("Squats", "Bench")
	data.TemplateCurrentExerciseIdx = intPtr(1)

	require.True(t, data.RemoveDraftExercise(1))

	assert.Nil(t, data.TemplateCurrentExerciseIdx)
	assert.Len(t, data.TemplateDraft.Exercises, 1)
}

func TestRemoveDraftExerciseKeepsEarlierPointer(t *testing.T) {
	data := NewData()
	data.TemplateDraft = draftWithExercises("Squats", "Bench", "Deadlift")
	data.TemplateCurrentExerciseIdx = intPtr(0)

	require.True(t, data.RemoveDraftExercise(2))

	require.NotNil(t, data.TemplateCurrentExerciseIdx)
	assert.Equal(t, 0, *data.TemplateCurrentExerciseIdx)
}

func TestRemoveDraftExerciseOutOfRange(t *testing.T) {
	data := NewData()
	data.TemplateDraft = draftWithExercises("Squats")

	assert.False(t, data.RemoveDraftExercise(1))
	assert.False(t, data.RemoveDraftExercise(-1))
	assert.Len(t, data.TemplateDraft.Exercises, 1)
}

func TestRemoveDraftSet(t *testing.T) {
	data := NewData()
	data.TemplateDraft = &Draft{
		Name: "Test",
		Exercises: []DraftExercise{
			{Name: "Squats", Sets: []DraftSet{{Weight: 100, Reps: 5}, {Weight: 110, Reps: 3}}},
		},
	}

	require.True(t, data.RemoveDraftSet(0, 0))

	sets := data.TemplateDraft.Exercises[0].Sets
	require.Len(t, sets, 1)
	assert.Equal(t, 110.0, sets[0].Weight)

	assert.False(t, data.RemoveDraftSet(0, 5))
	assert.False(t, data.RemoveDraftSet(3, 0))
}

func TestResetTemplateDraft(t *testing.T) {
	data := NewData()
	data.TemplateDraft = draftWithExercises("Squats")
	data.TemplateStage = StageAwaitSet
	data.TemplateCurrentExerciseIdx = intPtr(0)

	data.ResetTemplateDraft()

	assert.Nil(t, data.TemplateDraft)
	assert.Equal(t, StageIdle, data.TemplateStage)
	assert.Nil(t, data.TemplateCurrentExerciseIdx)
}

func TestEnsureTemplateDraft(t *testing.T) {
	data := NewData()

	draft := data.EnsureTemplateDraft()
	require.NotNil(t, draft)
	assert.Equal(t, "New template", draft.Name)

	// Повторный вызов возвращает тот же черновик
	draft.Name = "Leg Day"
	assert.Equal(t, "Leg Day", data.EnsureTemplateDraft().Name)
}
