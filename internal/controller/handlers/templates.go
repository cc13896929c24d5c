package handlers

import (
	"context"

	"github.com/Freeeeeet/gymlog_bot/internal/controller/callbacks/template"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleNewTemplate обрабатывает команду /new_template - начало
// создания шаблона
func (h *Handlers) HandleNewTemplate(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	sess, ok := h.loadSession(update)
	if !ok {
		return
	}

	sess.ResetTemplateDraft()
	h.saveSession(update, sess)

	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      update.Message.Chat.ID,
		Text:        "Choose how to create a template: ",
		ReplyMarkup: template.CreatingMenuKeyboard(),
	})
	if err != nil {
		h.deps.Logger.Error("Failed to send template menu", zap.Error(err))
	}
}

// HandleTemplates обрабатывает команду /templates - список сохранённых
// шаблонов
func (h *Handlers) HandleTemplates(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	templates, err := h.deps.TemplateService.FindAllTemplates(ctx, update.Message.From.ID)
	if err != nil {
		h.deps.Logger.Error("Failed to load templates", zap.Error(err))
		h.reply(ctx, b, update, "Error while loading.")
		return
	}

	if len(templates) == 0 {
		h.reply(ctx, b, update, "You don't have any templates yet. You can create one using /new_template.")
		return
	}

	_, err = b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      update.Message.Chat.ID,
		Text:        "Choose a template from the list to manage it.",
		ReplyMarkup: template.ManageListKeyboard(templates),
	})
	if err != nil {
		h.deps.Logger.Error("Failed to send templates list", zap.Error(err))
	}
}
