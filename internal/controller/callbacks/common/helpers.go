package common

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// Helper functions для всех callback handlers

// AnswerCallback отвечает на callback query (без alert). Ответ на
// устаревший callback query (кнопка из старого сообщения) не ошибка:
// Telegram отклоняет его с "query is too old", и мы его проглатываем.
func AnswerCallback(ctx context.Context, b *bot.Bot, callbackID string, text string, logger *zap.Logger) {
	_, err := b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       false,
	})
	if err != nil {
		if strings.Contains(err.Error(), "query is too old") {
			logger.Warn("Ignoring old callback query", zap.String("callback_id", callbackID))
			return
		}
		logger.Error("Failed to answer callback query", zap.Error(err))
	}
}

// GetMessageFromCallback извлекает сообщение из callback query
func GetMessageFromCallback(callback *models.CallbackQuery) *models.Message {
	if callback.Message.Message != nil {
		return callback.Message.Message
	}
	return nil
}

// EditText заменяет текст сообщения, из которого пришёл callback
func EditText(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, text string, markup *models.InlineKeyboardMarkup) error {
	message := GetMessageFromCallback(callback)
	if message == nil {
		return ErrNoMessage
	}

	_, err := b.EditMessageText(ctx, &bot.EditMessageTextParams{
		ChatID:      message.Chat.ID,
		MessageID:   message.ID,
		Text:        text,
		ReplyMarkup: markup,
	})
	return err
}

// ReplyText отправляет новое сообщение в чат callback query
func ReplyText(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, text string, markup *models.InlineKeyboardMarkup) error {
	message := GetMessageFromCallback(callback)
	if message == nil {
		return ErrNoMessage
	}

	params := &bot.SendMessageParams{
		ChatID: message.Chat.ID,
		Text:   text,
	}
	if markup != nil {
		params.ReplyMarkup = markup
	}

	_, err := b.SendMessage(ctx, params)
	return err
}
