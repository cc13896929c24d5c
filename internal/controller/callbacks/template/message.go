package template

import (
	"context"

	"github.com/Freeeeeet/gymlog_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/gymlog_bot/internal/parse"
	"github.com/Freeeeeet/gymlog_bot/internal/session"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// messageResult итог обработки текстового сообщения редактором
type messageResult struct {
	handled bool
	// reply текст ответа; пустой при showDraft
	reply string
	// showDraft ответить текущим черновиком с клавиатурой редактора
	showDraft bool
}

// applyMessage применяет текстовое сообщение к черновику в сессии.
// Чистая функция над сессией: не трогает Telegram и хранилище.
// Возвращает handled=false, если редактор не ждёт текста и сообщение
// должно уйти дальше (в обработчик тренировок).
func applyMessage(sess *session.Data, text string) messageResult {
	if sess.TemplateStage == session.StageIdle || sess.TemplateDraft == nil {
		return messageResult{}
	}

	switch sess.TemplateStage {
	case session.StageAwaitName:
		draft := sess.EnsureTemplateDraft()
		draft.Name = text
		sess.TemplateStage = session.StageEditing
		return messageResult{handled: true, showDraft: true}

	case session.StageAwaitExercise:
		draft := sess.EnsureTemplateDraft()
		draft.Exercises = append(draft.Exercises, session.DraftExercise{Name: text})
		sess.TemplateStage = session.StageEditing
		return messageResult{handled: true, showDraft: true}

	case session.StageAwaitSet:
		draft := sess.EnsureTemplateDraft()

		idx := sess.TemplateCurrentExerciseIdx
		if idx == nil || *idx < 0 || *idx >= len(draft.Exercises) {
			return messageResult{handled: true, reply: "Please provide weight and reps (e.g., 50 10)"}
		}

		input, ok := parse.Set(text)
		if !ok {
			return messageResult{handled: true, reply: "Please provide weight and reps (e.g., 50 10)"}
		}

		exercise := &draft.Exercises[*idx]
		exercise.Sets = append(exercise.Sets, session.DraftSet{Weight: input.Weight, Reps: input.Reps})
		sess.TemplateStage = session.StageEditing
		return messageResult{handled: true, showDraft: true}
	}

	return messageResult{}
}

// HandleMessage обрабатывает текстовое сообщение, если редактор шаблонов
// ждёт ввода. Возвращает true, если сообщение потреблено.
func HandleMessage(ctx context.Context, b *bot.Bot, update *models.Update, h *callbacktypes.Handler, sess *session.Data) bool {
	text := update.Message.Text

	result := applyMessage(sess, text)
	if !result.handled {
		return false
	}

	if err := h.Sessions.Set(update.Message.From.ID, sess); err != nil {
		h.Logger.Error("Failed to save session",
			zap.Error(err),
			zap.Int64("telegram_id", update.Message.From.ID))
	}

	params := &bot.SendMessageParams{ChatID: update.Message.Chat.ID}
	if result.showDraft {
		draft := sess.TemplateDraft
		params.Text = FormatDraft(draft)
		params.ReplyMarkup = editingKeyboard(draft)
	} else {
		params.Text = result.reply
	}

	if _, err := b.SendMessage(ctx, params); err != nil {
		h.Logger.Error("Failed to send editor reply", zap.Error(err))
	}

	return true
}
