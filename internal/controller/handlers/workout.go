package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/Freeeeeet/gymlog_bot/internal/controller/callbacks/template"
	"github.com/Freeeeeet/gymlog_bot/internal/format"
	"github.com/Freeeeeet/gymlog_bot/internal/parse"
	"github.com/Freeeeeet/gymlog_bot/internal/service"
	"github.com/Freeeeeet/gymlog_bot/internal/session"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// loadSession возвращает сессию автора сообщения
func (h *Handlers) loadSession(update *models.Update) (*session.Data, bool) {
	sess, err := h.deps.Sessions.Get(update.Message.From.ID)
	if err != nil {
		h.deps.Logger.Error("Failed to load session",
			zap.Error(err),
			zap.Int64("telegram_id", update.Message.From.ID))
		return nil, false
	}
	return sess, true
}

// saveSession сохраняет сессию автора сообщения
func (h *Handlers) saveSession(update *models.Update, sess *session.Data) {
	if err := h.deps.Sessions.Set(update.Message.From.ID, sess); err != nil {
		h.deps.Logger.Error("Failed to save session",
			zap.Error(err),
			zap.Int64("telegram_id", update.Message.From.ID))
	}
}

// HandleNew обрабатывает команду /new - начало тренировки
func (h *Handlers) HandleNew(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	sess, ok := h.loadSession(update)
	if !ok {
		return
	}

	if sess.ActiveWorkoutID != nil {
		h.reply(ctx, b, update, "A workout session is already in progress. Please complete or cancel the current session before starting a new one.")
		return
	}

	workout, err := h.deps.WorkoutService.StartWorkout(ctx, update.Message.From.ID)
	if err != nil {
		h.deps.Logger.Error("Failed to start workout", zap.Error(err))
		h.reply(ctx, b, update, "Failed to start workout.")
		return
	}

	sess.ActiveWorkoutID = &workout.ID
	h.saveSession(update, sess)

	h.reply(ctx, b, update, `Workout session initiated. Please enter the name of your first exercise (e.g., "Pull-ups").`)
}

// HandleFinish обрабатывает команду /finish - завершение тренировки
func (h *Handlers) HandleFinish(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	sess, ok := h.loadSession(update)
	if !ok {
		return
	}

	if sess.ActiveWorkoutID == nil {
		h.reply(ctx, b, update, "No active workout session detected. Use /new to begin a new session.")
		return
	}

	workout, err := h.deps.WorkoutService.FinishWorkout(ctx, *sess.ActiveWorkoutID)
	if err != nil {
		h.deps.Logger.Error("Failed to finish workout", zap.Error(err))
		h.reply(ctx, b, update, "Failed to finish workout.")
		return
	}

	sess.ActiveWorkoutID = nil
	sess.CurrentExerciseID = nil
	h.saveSession(update, sess)

	seconds, ok := format.Duration(workout.StartTime, workout.EndTime)
	if !ok {
		return
	}

	duration, err := format.FormatDuration(seconds)
	if err != nil {
		h.deps.Logger.Error("Failed to format duration", zap.Error(err), zap.Int("seconds", seconds))
		return
	}

	h.reply(ctx, b, update, "Workout session successfully completed and recorded.\nSession duration: "+duration)
}

// HandleCancelWorkout обрабатывает команду /cancel - отмена тренировки
// без сохранения
func (h *Handlers) HandleCancelWorkout(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	sess, ok := h.loadSession(update)
	if !ok {
		return
	}

	if sess.ActiveWorkoutID == nil {
		h.reply(ctx, b, update, "No active workout session found. Use /new to start a new session.")
		return
	}

	if err := h.deps.WorkoutService.CancelWorkout(ctx, *sess.ActiveWorkoutID); err != nil {
		h.deps.Logger.Error("Failed to cancel workout", zap.Error(err))
		h.reply(ctx, b, update, "Failed to cancel workout.")
		return
	}

	sess.ActiveWorkoutID = nil
	sess.CurrentExerciseID = nil
	h.saveSession(update, sess)

	h.reply(ctx, b, update, "Workout session has been canceled successfully.")
}

// HandleUndo обрабатывает команду /undo - откат последней записи
func (h *Handlers) HandleUndo(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	sess, ok := h.loadSession(update)
	if !ok {
		return
	}

	if sess.ActiveWorkoutID == nil {
		h.reply(ctx, b, update, "No active workout session found. Use /new to start a new session.")
		return
	}

	if sess.CurrentExerciseID == nil {
		h.reply(ctx, b, update, "No exercise in progress. Please add an exercise first.")
		return
	}

	result, err := h.deps.WorkoutService.UndoLastLog(ctx, *sess.CurrentExerciseID)
	if err != nil {
		h.deps.Logger.Error("Failed to undo last log", zap.Error(err))
		h.reply(ctx, b, update, "Failed to undo last change")
		return
	}

	switch result.Type {
	case service.UndoSetDeleted:
		h.reply(ctx, b, update, fmt.Sprintf("Last set (%skg × %d) has been removed.", format.Weight(result.Weight), result.Reps))

	case service.UndoExerciseDeleted:
		sess.CurrentExerciseID = nil
		h.saveSession(update, sess)
		h.reply(ctx, b, update, fmt.Sprintf("Exercise %q has been removed (no sets were recorded).", result.ExerciseName))

	case service.UndoNothingToDelete:
		h.reply(ctx, b, update, "Error: Could not find item to delete.")
	}
}

// HandleTextMessage обрабатывает свободный текст. Сначала сообщение
// предлагается редактору шаблонов; непотреблённый текст трактуется как
// запись тренировки: подход для текущего упражнения или имя нового.
func (h *Handlers) HandleTextMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}

	// Команды обрабатываются своими handlers
	if strings.HasPrefix(update.Message.Text, "/") {
		return
	}

	sess, ok := h.loadSession(update)
	if !ok {
		return
	}

	if template.HandleMessage(ctx, b, update, h.deps, sess) {
		return
	}

	text := strings.TrimSpace(update.Message.Text)
	if text == "" {
		return
	}

	if sess.ActiveWorkoutID == nil {
		h.reply(ctx, b, update, "No active workout session. Please use /new to begin a new session.")
		return
	}

	if input, isSet := parse.Set(text); isSet {
		if sess.CurrentExerciseID == nil {
			h.reply(ctx, b, update, "Exercise name required. Please specify an exercise before logging sets.")
			return
		}

		if _, err := h.deps.WorkoutService.AddSet(ctx, *sess.CurrentExerciseID, input.Weight, input.Reps); err != nil {
			h.deps.Logger.Error("Failed to add set", zap.Error(err))
			h.reply(ctx, b, update, "Failed to add set")
		}
		return
	}

	exercise, err := h.deps.WorkoutService.AddExercise(ctx, *sess.ActiveWorkoutID, text)
	if err != nil {
		h.deps.Logger.Error("Failed to add exercise", zap.Error(err))
		h.reply(ctx, b, update, "Failed to add exercise")
		return
	}

	sess.CurrentExerciseID = &exercise.ID
	h.saveSession(update, sess)

	h.reply(ctx, b, update, fmt.Sprintf("Exercise %q has been added.\nPlease enter the weight and repetitions (e.g., 50, 5).", text))
}
