package stats

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/gymlog_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/gymlog_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/gymlog_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/gymlog_bot/internal/format"
	"github.com/Freeeeeet/gymlog_bot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// PageSize количество тренировок на одной странице браузера истории
const PageSize = 5

func browserKeyboard(workouts []*model.Workout, nextOffset int, hasMore bool) *models.InlineKeyboardMarkup {
	b := keyboard.NewBuilder()
	for _, workout := range workouts {
		label := fmt.Sprintf("Workout for %s", workout.StartTime.Format("02.01.2006"))
		b.Row(keyboard.Button(label, fmt.Sprintf("stats:get_workout:%d", workout.ID)))
	}
	if hasMore {
		b.Row(keyboard.Button("Load more", fmt.Sprintf("stats:load_more:%d", nextOffset)))
	}
	return b.Build()
}

// SendBrowser отправляет страницу истории тренировок с кнопками выбора
func SendBrowser(ctx context.Context, b *bot.Bot, chatID int64, userID int64, offset int, h *callbacktypes.Handler) {
	workouts, nextOffset, hasMore, err := h.StatsService.ListWorkouts(ctx, userID, PageSize, offset)
	if err != nil {
		h.Logger.Error("Failed to list workouts", zap.Error(err), zap.Int64("user_id", userID))
		sendBrowserMessage(ctx, b, h, &bot.SendMessageParams{ChatID: chatID, Text: common.ErrorMessage(err)})
		return
	}

	if len(workouts) == 0 {
		sendBrowserMessage(ctx, b, h, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "You don't have any finished workouts yet.",
		})
		return
	}

	sendBrowserMessage(ctx, b, h, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        "Choose a workout to get.",
		ReplyMarkup: browserKeyboard(workouts, nextOffset, hasMore),
	})
}

func sendBrowserMessage(ctx context.Context, b *bot.Bot, h *callbacktypes.Handler, params *bot.SendMessageParams) {
	if _, err := b.SendMessage(ctx, params); err != nil {
		h.Logger.Error("Failed to send workout browser message", zap.Error(err))
	}
}

// HandleLoadMore показывает следующую страницу истории
func HandleLoadMore(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler, offset int) {
	message := common.GetMessageFromCallback(callback)
	if message == nil {
		return
	}

	SendBrowser(ctx, b, message.Chat.ID, callback.From.ID, offset, h)
}

// HandleGetWorkout присылает сводку выбранной тренировки
func HandleGetWorkout(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler, workoutID int64) {
	workout, err := h.WorkoutService.GetWorkoutByID(ctx, workoutID)
	if err != nil {
		h.Logger.Error("Failed to load workout", zap.Error(err), zap.Int64("workout_id", workoutID))
		common.ReplyText(ctx, b, callback, common.ErrorMessage(err), nil)
		return
	}
	if workout == nil {
		common.ReplyText(ctx, b, callback, common.ErrorMessage(common.ErrWorkoutNotFound), nil)
		return
	}

	message := common.GetMessageFromCallback(callback)
	if message == nil {
		return
	}

	_, err = b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    message.Chat.ID,
		Text:      format.WorkoutSummary(workout),
		ParseMode: models.ParseModeMarkdown,
	})
	if err != nil {
		h.Logger.Error("Failed to send workout summary", zap.Error(err))
	}
}
