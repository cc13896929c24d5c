package template

import (
	"fmt"

	"github.com/Freeeeeet/gymlog_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/gymlog_bot/internal/format"
	"github.com/Freeeeeet/gymlog_bot/internal/model"
	"github.com/Freeeeeet/gymlog_bot/internal/session"
	"github.com/go-telegram/bot/models"
)

// CreatingMenuKeyboard клавиатура выбора способа создания шаблона
func CreatingMenuKeyboard() *models.InlineKeyboardMarkup {
	return keyboard.NewBuilder().
		Row(
			keyboard.Button("Manually", "tpl:manually"),
			keyboard.Button("From past workouts", "tpl:from_past"),
		).
		Build()
}

// editingKeyboard главная клавиатура редактора черновика. Кнопка Delete
// появляется только для уже сохранённого шаблона.
func editingKeyboard(draft *session.Draft) *models.InlineKeyboardMarkup {
	b := keyboard.NewBuilder().
		Row(
			keyboard.Button("Rename", "tpl:rename"),
			keyboard.Button("Add exercise", "tpl:add_ex"),
			keyboard.Button("Add set", "tpl:add_set"),
		).
		Row(
			keyboard.Button("Remove exercise", "tpl:remove_ex"),
			keyboard.Button("Remove set", "tpl:remove_set"),
		)

	if draft.TemplateID != nil {
		b.Row(
			keyboard.Button("Save", "tpl:save"),
			keyboard.Button("Discard", "tpl:discard"),
			keyboard.Button("Delete", "tpl:delete"),
		)
	} else {
		b.Row(
			keyboard.Button("Save", "tpl:save"),
			keyboard.Button("Discard", "tpl:discard"),
		)
	}

	return b.Build()
}

func backKeyboard() *models.InlineKeyboardMarkup {
	return keyboard.NewBuilder().
		Row(keyboard.Button("Back", "tpl:back")).
		Build()
}

// exercisePickKeyboard список упражнений черновика, payload собирается
// из префикса и индекса
func exercisePickKeyboard(draft *session.Draft, payloadPrefix string) *models.InlineKeyboardMarkup {
	b := keyboard.NewBuilder()
	for idx, exercise := range draft.Exercises {
		b.Row(keyboard.Button(exercise.Name, fmt.Sprintf("%s:%d", payloadPrefix, idx)))
	}
	b.Row(keyboard.Button("Back", "tpl:back"))
	return b.Build()
}

// setPickKeyboard список подходов одного упражнения черновика
func setPickKeyboard(exercise session.DraftExercise, exerciseIdx int) *models.InlineKeyboardMarkup {
	b := keyboard.NewBuilder()
	for idx, set := range exercise.Sets {
		label := fmt.Sprintf("%d. %s x %d", idx+1, format.Weight(set.Weight), set.Reps)
		b.Row(keyboard.Button(label, fmt.Sprintf("tpl:remove_set:%d:%d", exerciseIdx, idx)))
	}
	b.Row(keyboard.Button("Back", "tpl:back"))
	return b.Build()
}

// ManageListKeyboard список сохранённых шаблонов пользователя
func ManageListKeyboard(templates []*model.Template) *models.InlineKeyboardMarkup {
	b := keyboard.NewBuilder()
	for _, tmpl := range templates {
		b.Row(keyboard.Button(tmpl.Name, fmt.Sprintf("tpl:mng_tpl:%d", tmpl.ID)))
	}
	b.Row(keyboard.Button("Discard", "tpl:discard"))
	return b.Build()
}

// workoutPickKeyboard список прошлых тренировок для копирования в черновик
func workoutPickKeyboard(workouts []*model.Workout) *models.InlineKeyboardMarkup {
	b := keyboard.NewBuilder()
	for _, workout := range workouts {
		label := fmt.Sprintf("Workout for %s", workout.StartTime.Format("02.01.2006"))
		b.Row(keyboard.Button(label, fmt.Sprintf("tpl:pick:%d", workout.ID)))
	}
	b.Row(keyboard.Button("Discard", "tpl:discard"))
	return b.Build()
}
