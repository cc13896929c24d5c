package template

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/gymlog_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/gymlog_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/gymlog_bot/internal/model"
	"github.com/Freeeeeet/gymlog_bot/internal/session"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// Обработчики кнопок редактора шаблонов. Каждый получает уже
// загруженную сессию, мутирует её и сохраняет сам.

// pastWorkoutsLimit сколько последних тренировок предлагается как
// заготовка для шаблона
const pastWorkoutsLimit = 5

func saveSession(callback *models.CallbackQuery, h *callbacktypes.Handler, sess *session.Data) {
	if err := h.Sessions.Set(callback.From.ID, sess); err != nil {
		h.Logger.Error("Failed to save session",
			zap.Error(err),
			zap.Int64("telegram_id", callback.From.ID))
	}
}

func showDraft(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler, draft *session.Draft) {
	if err := common.EditText(ctx, b, callback, FormatDraft(draft), editingKeyboard(draft)); err != nil {
		h.Logger.Error("Failed to show template draft", zap.Error(err))
	}
}

// HandleManually начинает ручное редактирование пустого черновика
func HandleManually(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler, sess *session.Data) {
	draft := sess.EnsureTemplateDraft()
	// Черновик открыт, но этап idle: свободный текст продолжает уходить
	// обработчику тренировок, редактор потребляет его только на этапах
	// await_*
	sess.TemplateStage = session.StageIdle
	saveSession(callback, h, sess)

	showDraft(ctx, b, callback, h, draft)
}

// HandleFromPast показывает прошлые тренировки как заготовки для шаблона
func HandleFromPast(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler, sess *session.Data) {
	sess.ResetTemplateDraft()
	saveSession(callback, h, sess)

	workouts, err := h.WorkoutService.FindLastWorkouts(ctx, callback.From.ID, pastWorkoutsLimit, 0)
	if err != nil {
		h.Logger.Error("Failed to load past workouts", zap.Error(err))
		common.ReplyText(ctx, b, callback, common.ErrorMessage(err), nil)
		return
	}

	if len(workouts) == 0 {
		common.EditText(ctx, b, callback, "You don't have any past workouts", CreatingMenuKeyboard())
		return
	}

	common.EditText(ctx, b, callback, "Choose a workout to create new template: ", workoutPickKeyboard(workouts))
}

// HandlePickWorkout копирует выбранную тренировку в черновик
func HandlePickWorkout(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler, sess *session.Data, workoutID int64) {
	workout, err := h.WorkoutService.GetWorkoutByID(ctx, workoutID)
	if err != nil {
		h.Logger.Error("Failed to load workout for template", zap.Error(err), zap.Int64("workout_id", workoutID))
		common.ReplyText(ctx, b, callback, common.ErrorMessage(err), nil)
		return
	}
	if workout == nil {
		common.ReplyText(ctx, b, callback, common.ErrorMessage(common.ErrWorkoutNotFound), nil)
		return
	}

	draft := draftFromWorkout(workout)
	sess.TemplateDraft = draft
	sess.TemplateStage = session.StageEditing
	sess.TemplateCurrentExerciseIdx = nil
	saveSession(callback, h, sess)

	showDraft(ctx, b, callback, h, draft)
}

// HandleManage открывает сохранённый шаблон в редакторе
func HandleManage(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler, sess *session.Data, templateID int64) {
	template, err := h.TemplateService.FindTemplateByID(ctx, templateID)
	if err != nil {
		h.Logger.Error("Failed to load template", zap.Error(err), zap.Int64("template_id", templateID))
		common.ReplyText(ctx, b, callback, common.ErrorMessage(err), nil)
		return
	}
	if template == nil {
		common.ReplyText(ctx, b, callback, common.ErrorMessage(common.ErrTemplateNotFound), nil)
		return
	}

	draft := draftFromTemplate(template)
	sess.TemplateDraft = draft
	sess.TemplateStage = session.StageEditing
	sess.TemplateCurrentExerciseIdx = nil
	saveSession(callback, h, sess)

	showDraft(ctx, b, callback, h, draft)
}

// HandleMainMenu возвращает к выбору способа создания шаблона
func HandleMainMenu(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.EditText(ctx, b, callback, "Choose how to create a template: ", CreatingMenuKeyboard())
}

// HandleRename просит ввести новое имя шаблона
func HandleRename(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler, sess *session.Data) {
	if sess.TemplateDraft == nil {
		return
	}

	common.EditText(ctx, b, callback, "Enter name for the template: ", backKeyboard())
	sess.TemplateStage = session.StageAwaitName
	saveSession(callback, h, sess)
}

// HandleDiscard выбрасывает черновик
func HandleDiscard(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler, sess *session.Data) {
	sess.ResetTemplateDraft()
	saveSession(callback, h, sess)

	common.EditText(ctx, b, callback, "Your template was discarded.", nil)
}

// HandleAddExercise просит ввести имя нового упражнения
func HandleAddExercise(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler, sess *session.Data) {
	if sess.TemplateDraft == nil {
		return
	}

	common.ReplyText(ctx, b, callback, "Enter name for the new exercise: ", backKeyboard())
	sess.TemplateStage = session.StageAwaitExercise
	saveSession(callback, h, sess)
}

// HandleAddSetMenu показывает выбор упражнения для нового подхода
func HandleAddSetMenu(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler, sess *session.Data) {
	draft := sess.TemplateDraft
	if draft == nil || len(draft.Exercises) == 0 {
		common.ReplyText(ctx, b, callback, "No exercises yet. Add an exercise first.", nil)
		return
	}

	common.EditText(ctx, b, callback, "Choose an exercise to add a set", exercisePickKeyboard(draft, "tpl:add_set_to_ex"))
}

// HandleAddSetToExercise запоминает выбранное упражнение и ждёт ввода
// подхода
func HandleAddSetToExercise(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler, sess *session.Data, exerciseIdx int) {
	draft := sess.TemplateDraft
	if draft == nil || len(draft.Exercises) == 0 {
		common.ReplyText(ctx, b, callback, "No exercises yet. Add an exercise first.", nil)
		return
	}
	if exerciseIdx < 0 || exerciseIdx >= len(draft.Exercises) {
		return
	}

	sess.TemplateCurrentExerciseIdx = &exerciseIdx
	sess.TemplateStage = session.StageAwaitSet
	saveSession(callback, h, sess)

	common.EditText(ctx, b, callback, "Enter weight and reps (e.g. 50 10).", backKeyboard())
}

// HandleRemoveExerciseMenu показывает выбор упражнения для удаления
func HandleRemoveExerciseMenu(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler, sess *session.Data) {
	draft := sess.TemplateDraft
	if draft == nil || len(draft.Exercises) == 0 {
		common.ReplyText(ctx, b, callback, "No exercises yet. Add an exercise first.", nil)
		return
	}

	common.EditText(ctx, b, callback, "Choose an exercise to remove.", exercisePickKeyboard(draft, "tpl:remove_ex"))
}

// HandleRemoveExercise удаляет упражнение черновика по индексу
func HandleRemoveExercise(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler, sess *session.Data, exerciseIdx int) {
	draft := sess.TemplateDraft
	if draft == nil || len(draft.Exercises) == 0 {
		common.ReplyText(ctx, b, callback, "No exercises yet. Add an exercise first.", nil)
		return
	}

	if !sess.RemoveDraftExercise(exerciseIdx) {
		return
	}
	saveSession(callback, h, sess)

	showDraft(ctx, b, callback, h, draft)
}

// HandleRemoveSetMenu показывает выбор упражнения, из которого удалять
// подход
func HandleRemoveSetMenu(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler, sess *session.Data) {
	draft := sess.TemplateDraft
	if draft == nil || len(draft.Exercises) == 0 {
		common.ReplyText(ctx, b, callback, "No exercises yet. Add an exercise first.", nil)
		return
	}

	common.EditText(ctx, b, callback, "Choose exercise to remove the set.", exercisePickKeyboard(draft, "tpl:ex_set_to_remove"))
}

// HandlePickSetToRemove показывает подходы выбранного упражнения
func HandlePickSetToRemove(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler, sess *session.Data, exerciseIdx int) {
	draft := sess.TemplateDraft
	if draft == nil || len(draft.Exercises) == 0 {
		common.ReplyText(ctx, b, callback, "No exercises yet. Add an exercise first.", nil)
		return
	}
	if exerciseIdx < 0 || exerciseIdx >= len(draft.Exercises) {
		return
	}

	exercise := draft.Exercises[exerciseIdx]
	if len(exercise.Sets) == 0 {
		common.ReplyText(ctx, b, callback, fmt.Sprintf("%s don't contain any sets yet.", exercise.Name), nil)
		return
	}

	common.EditText(ctx, b, callback, "Choose set to remove.", setPickKeyboard(exercise, exerciseIdx))
}

// HandleRemoveSet удаляет подход черновика по позиции
func HandleRemoveSet(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler, sess *session.Data, exerciseIdx, setIdx int) {
	draft := sess.TemplateDraft
	if draft == nil || len(draft.Exercises) == 0 {
		common.ReplyText(ctx, b, callback, "No exercises yet. Add an exercise first.", nil)
		return
	}

	if !sess.RemoveDraftSet(exerciseIdx, setIdx) {
		return
	}
	saveSession(callback, h, sess)

	showDraft(ctx, b, callback, h, draft)
}

// HandleBack возвращает из режима ввода в редактор черновика
func HandleBack(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler, sess *session.Data) {
	// idle, а не editing: см. HandleManually
	sess.TemplateStage = session.StageIdle
	draft := sess.EnsureTemplateDraft()
	saveSession(callback, h, sess)

	showDraft(ctx, b, callback, h, draft)
}

// HandleSave сохраняет черновик: создаёт новый шаблон или обновляет
// существующий
func HandleSave(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler, sess *session.Data) {
	draft := sess.TemplateDraft
	if draft == nil || len(draft.Exercises) == 0 {
		common.ReplyText(ctx, b, callback, "No exercises yet. Add an exercise first.", nil)
		return
	}

	if draft.Name == "" {
		sess.TemplateStage = session.StageAwaitName
		saveSession(callback, h, sess)
		common.EditText(ctx, b, callback, "Provide the name for a template before saving", backKeyboard())
		return
	}

	exercises := draftToModel(draft)

	if draft.TemplateID != nil {
		if err := h.TemplateService.UpdateTemplate(ctx, *draft.TemplateID, draft.Name, exercises); err != nil {
			h.Logger.Error("Failed to update template", zap.Error(err), zap.Int64("template_id", *draft.TemplateID))
			common.ReplyText(ctx, b, callback, common.ErrorMessage(err), nil)
			return
		}

		sess.ResetTemplateDraft()
		saveSession(callback, h, sess)
		common.EditText(ctx, b, callback, "Template was successfully updated.", nil)
		return
	}

	if _, err := h.TemplateService.CreateTemplate(ctx, callback.From.ID, draft.Name, exercises); err != nil {
		h.Logger.Error("Failed to create template", zap.Error(err), zap.Int64("user_id", callback.From.ID))
		common.ReplyText(ctx, b, callback, common.ErrorMessage(err), nil)
		return
	}

	sess.ResetTemplateDraft()
	saveSession(callback, h, sess)
	common.EditText(ctx, b, callback, "Template was successfully created.", nil)
}

// HandleDelete удаляет редактируемый сохранённый шаблон
func HandleDelete(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler, sess *session.Data) {
	draft := sess.TemplateDraft
	if draft == nil || draft.TemplateID == nil {
		return
	}

	if err := h.TemplateService.DeleteTemplate(ctx, *draft.TemplateID); err != nil {
		h.Logger.Error("Failed to delete template", zap.Error(err), zap.Int64("template_id", *draft.TemplateID))
		common.ReplyText(ctx, b, callback, "Couldn't able to delete this template.", nil)
		return
	}

	common.EditText(ctx, b, callback, "The template was deleted successfully.", nil)
	sess.ResetTemplateDraft()
	saveSession(callback, h, sess)
}

// draftFromWorkout строит черновик из завершённой тренировки
func draftFromWorkout(workout *model.Workout) *session.Draft {
	draft := &session.Draft{
		Name:            fmt.Sprintf("Template from %s", workout.StartTime.Format("02.01.2006")),
		SourceWorkoutID: &workout.ID,
	}

	for _, exercise := range workout.Exercises {
		draftExercise := session.DraftExercise{Name: exercise.Name}
		for _, set := range exercise.Sets {
			draftExercise.Sets = append(draftExercise.Sets, session.DraftSet{Weight: set.Weight, Reps: set.Reps})
		}
		draft.Exercises = append(draft.Exercises, draftExercise)
	}

	return draft
}

// draftFromTemplate строит черновик из сохранённого шаблона
func draftFromTemplate(template *model.Template) *session.Draft {
	draft := &session.Draft{
		TemplateID: &template.ID,
		Name:       template.Name,
	}

	for _, exercise := range template.Exercises {
		draftExercise := session.DraftExercise{Name: exercise.Name}
		for _, set := range exercise.Sets {
			draftExercise.Sets = append(draftExercise.Sets, session.DraftSet{Weight: set.Weight, Reps: set.Reps})
		}
		draft.Exercises = append(draft.Exercises, draftExercise)
	}

	return draft
}

// draftToModel конвертирует черновик в модель для сохранения
func draftToModel(draft *session.Draft) []*model.TemplateExercise {
	exercises := make([]*model.TemplateExercise, 0, len(draft.Exercises))
	for _, draftExercise := range draft.Exercises {
		exercise := &model.TemplateExercise{Name: draftExercise.Name}
		for _, draftSet := range draftExercise.Sets {
			exercise.Sets = append(exercise.Sets, &model.TemplateSet{Weight: draftSet.Weight, Reps: draftSet.Reps})
		}
		exercises = append(exercises, exercise)
	}
	return exercises
}
