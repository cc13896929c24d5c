package callbacks

import (
	"context"

	"github.com/Freeeeeet/gymlog_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/gymlog_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/gymlog_bot/internal/controller/callbacks/stats"
	"github.com/Freeeeeet/gymlog_bot/internal/controller/callbacks/template"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// Route распределяет callback query по соответствующим обработчикам.
// Payload разбирается один раз, дальше диспетчеризация идёт по
// закрытому перечню команд.
func Route(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	data := callback.Data

	h.Logger.Info("Routing callback",
		zap.String("data", data),
		zap.Int64("user_id", callback.From.ID))

	// Отвечаем сразу, чтобы кнопка не висела в состоянии загрузки
	common.AnswerCallback(ctx, b, callback.ID, "", h.Logger)

	sess, err := h.Sessions.Get(callback.From.ID)
	if err != nil {
		h.Logger.Error("Failed to load session",
			zap.Error(err),
			zap.Int64("telegram_id", callback.From.ID))
		return
	}

	cmd := Parse(data)

	switch cmd.Kind {
	case KindTemplateManually:
		template.HandleManually(ctx, b, callback, h, sess)
	case KindTemplateFromPast:
		template.HandleFromPast(ctx, b, callback, h, sess)
	case KindTemplatePickWorkout:
		template.HandlePickWorkout(ctx, b, callback, h, sess, cmd.ID)
	case KindTemplateManage:
		template.HandleManage(ctx, b, callback, h, sess, cmd.ID)
	case KindTemplateMainMenu:
		template.HandleMainMenu(ctx, b, callback, h)
	case KindTemplateRename:
		template.HandleRename(ctx, b, callback, h, sess)
	case KindTemplateAddExercise:
		template.HandleAddExercise(ctx, b, callback, h, sess)
	case KindTemplateAddSetMenu:
		template.HandleAddSetMenu(ctx, b, callback, h, sess)
	case KindTemplateAddSetToExercise:
		template.HandleAddSetToExercise(ctx, b, callback, h, sess, cmd.Index)
	case KindTemplateRemoveExerciseMenu:
		template.HandleRemoveExerciseMenu(ctx, b, callback, h, sess)
	case KindTemplateRemoveExercise:
		template.HandleRemoveExercise(ctx, b, callback, h, sess, cmd.Index)
	case KindTemplateRemoveSetMenu:
		template.HandleRemoveSetMenu(ctx, b, callback, h, sess)
	case KindTemplatePickSetToRemove:
		template.HandlePickSetToRemove(ctx, b, callback, h, sess, cmd.Index)
	case KindTemplateRemoveSet:
		template.HandleRemoveSet(ctx, b, callback, h, sess, cmd.Index, cmd.SetIndex)
	case KindTemplateBack:
		template.HandleBack(ctx, b, callback, h, sess)
	case KindTemplateSave:
		template.HandleSave(ctx, b, callback, h, sess)
	case KindTemplateDiscard:
		template.HandleDiscard(ctx, b, callback, h, sess)
	case KindTemplateDelete:
		template.HandleDelete(ctx, b, callback, h, sess)

	case KindStatsGetWorkout:
		stats.HandleGetWorkout(ctx, b, callback, h, cmd.ID)
	case KindStatsLoadMore:
		stats.HandleLoadMore(ctx, b, callback, h, cmd.Offset)

	default:
		// Кнопка из сообщения, собранного другой версией бота
		h.Logger.Warn("Unknown callback",
			zap.String("data", data),
			zap.Int64("user_id", callback.From.ID))
	}
}
