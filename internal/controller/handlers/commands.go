package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

const welcomeText = "Welcome to the Workout Logging System. This service helps you track and manage your training sessions.\n\n" +
	"Available Commands:\n" +
	"/new - Start a new workout session\n" +
	"/finish - Complete the current workout session\n" +
	"/cancel - Cancel the current workout session\n" +
	"/undo - Remove the last set or exercise if empty\n" +
	"/find - Retrieve workouts by date (format: DD.MM.YYYY, DD MM YYYY, or DD.MM.YY)\n" +
	"/workouts - Browse your workout history\n" +
	"/new_template - Create a workout template\n" +
	"/templates - Manage your saved templates\n\n" +
	"Usage Instructions:\n" +
	"1. Enter the exercise name (e.g., 'Pull-ups')\n" +
	"2. Enter the weight and repetitions (e.g., '80, 12')\n" +
	"3. Continue with additional exercises as needed\n"

// HandleStart обрабатывает команду /start
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	h.reply(ctx, b, update, welcomeText)
}

// HandleHelp обрабатывает команду /help
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	h.reply(ctx, b, update, welcomeText)
}

// reply отправляет текст в чат, из которого пришло сообщение
func (h *Handlers) reply(ctx context.Context, b *bot.Bot, update *models.Update, text string) {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   text,
	})
	if err != nil {
		h.deps.Logger.Error("Failed to send message",
			zap.Error(err),
			zap.Int64("chat_id", update.Message.Chat.ID))
	}
}
