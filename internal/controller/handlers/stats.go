package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Freeeeeet/gymlog_bot/internal/controller/callbacks/stats"
	"github.com/Freeeeeet/gymlog_bot/internal/format"
	"github.com/Freeeeeet/gymlog_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// commandArgument возвращает аргумент команды: срезает саму команду и
// @упоминание бота, которое Telegram добавляет к командам в группах
// ("/find@GymlogBot 01.03")
func commandArgument(text, command string) string {
	rest := strings.TrimPrefix(text, command)
	if strings.HasPrefix(rest, "@") {
		idx := strings.IndexByte(rest, ' ')
		if idx < 0 {
			return ""
		}
		rest = rest[idx:]
	}
	return strings.TrimSpace(rest)
}

// HandleFind обрабатывает команду /find - поиск тренировок по дате.
// Без аргумента показывает день последней завершённой тренировки.
func (h *Handlers) HandleFind(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	input := commandArgument(update.Message.Text, "/find")

	date, workouts, err := h.deps.StatsService.WorkoutsByDate(ctx, update.Message.From.ID, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDate):
			h.reply(ctx, b, update, "Invalid date format. Try: DD.MM.YYYY (e.g., 30 01)")
		case errors.Is(err, service.ErrNoHistory):
			h.reply(ctx, b, update, "No completed workouts found in history")
		default:
			h.deps.Logger.Error("Failed to find workouts", zap.Error(err))
			h.reply(ctx, b, update, "Error while loading.")
		}
		return
	}

	dateString := date.Format("02.01.2006")

	if len(workouts) == 0 {
		h.reply(ctx, b, update, fmt.Sprintf("No workout sessions found for %s.", dateString))
		return
	}

	var sb strings.Builder
	if len(workouts) >= 2 {
		fmt.Fprintf(&sb, "**Workouts for %s:**\n\n", dateString)
	} else {
		fmt.Fprintf(&sb, "**Workout for %s:**\n", dateString)
	}

	for _, workout := range workouts {
		sb.WriteString(format.WorkoutSummary(workout))
	}

	_, err = b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    update.Message.Chat.ID,
		Text:      sb.String(),
		ParseMode: models.ParseModeMarkdown,
	})
	if err != nil {
		h.deps.Logger.Error("Failed to send find results", zap.Error(err))
	}
}

// HandleWorkouts обрабатывает команду /workouts - браузер истории
// тренировок
func (h *Handlers) HandleWorkouts(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	stats.SendBrowser(ctx, b, update.Message.Chat.ID, update.Message.From.ID, 0, h.deps)
}
