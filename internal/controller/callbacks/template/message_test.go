package template

import (
	"testing"

	"github.com/Freeeeeet/gymlog_bot/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func editingSession() *session.Data {
	sess := session.NewData()
	sess.EnsureTemplateDraft()
	sess.TemplateStage = session.StageEditing
	return sess
}

func TestApplyMessageIgnoredWhenIdle(t *testing.T) {
	sess := session.NewData()
	result := applyMessage(sess, "Bench press")
	assert.False(t, result.handled)
}

func TestApplyMessageIgnoredWhenNoDraft(t *testing.T) {
	sess := session.NewData()
	sess.TemplateStage = session.StageAwaitName

	result := applyMessage(sess, "Bench press")
	assert.False(t, result.handled)
}

func TestApplyMessageIgnoredWhenEditing(t *testing.T) {
	// В режиме editing свободный текст уходит обработчику тренировок
	sess := editingSession()
	result := applyMessage(sess, "Bench press")
	assert.False(t, result.handled)
}

func TestApplyMessageRename(t *testing.T) {
	sess := editingSession()
	sess.TemplateStage = session.StageAwaitName

	result := applyMessage(sess, "Pull day")
	assert.True(t, result.handled)
	assert.True(t, result.showDraft)
	assert.Equal(t, "Pull day", sess.TemplateDraft.Name)
	assert.Equal(t, session.StageEditing, sess.TemplateStage)
}

func TestApplyMessageAddExercise(t *testing.T) {
	sess := editingSession()
	sess.TemplateStage = session.StageAwaitExercise

	result := applyMessage(sess, "Squat")
	assert.True(t, result.handled)
	require.Len(t, sess.TemplateDraft.Exercises, 1)
	assert.Equal(t, "Squat", sess.TemplateDraft.Exercises[0].Name)
	assert.Equal(t, session.StageEditing, sess.TemplateStage)
}

func TestApplyMessageAddSet(t *testing.T) {
	sess := editingSession()
	sess.TemplateDraft.Exercises = []session.DraftExercise{{Name: "Squat"}}
	idx := 0
	sess.TemplateCurrentExerciseIdx = &idx
	sess.TemplateStage = session.StageAwaitSet

	result := applyMessage(sess, "102.5, 5")
	assert.True(t, result.handled)
	assert.True(t, result.showDraft)

	sets := sess.TemplateDraft.Exercises[0].Sets
	require.Len(t, sets, 1)
	assert.Equal(t, 102.5, sets[0].Weight)
	assert.Equal(t, 5, sets[0].Reps)
	assert.Equal(t, session.StageEditing, sess.TemplateStage)
}

func TestApplyMessageAddSetRejectsGarbage(t *testing.T) {
	sess := editingSession()
	sess.TemplateDraft.Exercises = []session.DraftExercise{{Name: "Squat"}}
	idx := 0
	sess.TemplateCurrentExerciseIdx = &idx
	sess.TemplateStage = session.StageAwaitSet

	result := applyMessage(sess, "a lot x few")
	assert.True(t, result.handled)
	assert.False(t, result.showDraft)
	assert.NotEmpty(t, result.reply)

	// Этап не сбрасывается: пользователь может повторить ввод
	assert.Equal(t, session.StageAwaitSet, sess.TemplateStage)
	assert.Empty(t, sess.TemplateDraft.Exercises[0].Sets)
}

func TestApplyMessageAddSetWithoutTarget(t *testing.T) {
	sess := editingSession()
	sess.TemplateDraft.Exercises = []session.DraftExercise{{Name: "Squat"}}
	sess.TemplateStage = session.StageAwaitSet

	result := applyMessage(sess, "100 5")
	assert.True(t, result.handled)
	assert.False(t, result.showDraft)
	assert.Empty(t, sess.TemplateDraft.Exercises[0].Sets)
}
