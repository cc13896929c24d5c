package callbacks

import (
	"strconv"
	"strings"
)

// Kind тип нажатой inline-кнопки
type Kind int

const (
	KindUnknown Kind = iota

	// Меню создания шаблона
	KindTemplateManually
	KindTemplateFromPast
	KindTemplatePickWorkout
	KindTemplateManage
	KindTemplateMainMenu

	// Редактор черновика
	KindTemplateRename
	KindTemplateAddExercise
	KindTemplateAddSetMenu
	KindTemplateAddSetToExercise
	KindTemplateRemoveExerciseMenu
	KindTemplateRemoveExercise
	KindTemplateRemoveSetMenu
	KindTemplatePickSetToRemove
	KindTemplateRemoveSet
	KindTemplateBack
	KindTemplateSave
	KindTemplateDiscard
	KindTemplateDelete

	// Просмотр истории тренировок
	KindStatsGetWorkout
	KindStatsLoadMore
)

// Command разобранный payload callback query. Числовые поля заполнены
// только для своих Kind.
type Command struct {
	Kind     Kind
	ID       int64 // KindTemplatePickWorkout, KindTemplateManage, KindStatsGetWorkout
	Index    int   // индекс упражнения черновика
	SetIndex int   // индекс подхода внутри упражнения
	Offset   int   // KindStatsLoadMore
}

// Parse разбирает callback data в команду. Непонятный payload даёт
// KindUnknown, а не ошибку: протокол кнопок меняется между версиями,
// и старые сообщения с устаревшими кнопками должны молча игнорироваться.
func Parse(data string) Command {
	parts := strings.Split(data, ":")

	switch {
	case data == "tpl:manually":
		return Command{Kind: KindTemplateManually}
	case data == "tpl:from_past":
		return Command{Kind: KindTemplateFromPast}
	case data == "tpl:main_menu":
		return Command{Kind: KindTemplateMainMenu}
	case data == "tpl:rename":
		return Command{Kind: KindTemplateRename}
	case data == "tpl:add_ex":
		return Command{Kind: KindTemplateAddExercise}
	case data == "tpl:add_set":
		return Command{Kind: KindTemplateAddSetMenu}
	case data == "tpl:remove_ex":
		return Command{Kind: KindTemplateRemoveExerciseMenu}
	case data == "tpl:remove_set":
		return Command{Kind: KindTemplateRemoveSetMenu}
	case data == "tpl:back":
		return Command{Kind: KindTemplateBack}
	case data == "tpl:save":
		return Command{Kind: KindTemplateSave}
	case data == "tpl:discard":
		return Command{Kind: KindTemplateDiscard}
	case data == "tpl:delete":
		return Command{Kind: KindTemplateDelete}
	}

	switch {
	case strings.HasPrefix(data, "tpl:pick:") && len(parts) == 3:
		if id, err := strconv.ParseInt(parts[2], 10, 64); err == nil {
			return Command{Kind: KindTemplatePickWorkout, ID: id}
		}
	case strings.HasPrefix(data, "tpl:mng_tpl:") && len(parts) == 3:
		if id, err := strconv.ParseInt(parts[2], 10, 64); err == nil {
			return Command{Kind: KindTemplateManage, ID: id}
		}
	case strings.HasPrefix(data, "tpl:add_set_to_ex:") && len(parts) == 3:
		if idx, err := strconv.Atoi(parts[2]); err == nil {
			return Command{Kind: KindTemplateAddSetToExercise, Index: idx}
		}
	case strings.HasPrefix(data, "tpl:remove_ex:") && len(parts) == 3:
		if idx, err := strconv.Atoi(parts[2]); err == nil {
			return Command{Kind: KindTemplateRemoveExercise, Index: idx}
		}
	case strings.HasPrefix(data, "tpl:ex_set_to_remove:") && len(parts) == 3:
		if idx, err := strconv.Atoi(parts[2]); err == nil {
			return Command{Kind: KindTemplatePickSetToRemove, Index: idx}
		}
	case strings.HasPrefix(data, "tpl:remove_set:") && len(parts) == 4:
		idx, err := strconv.Atoi(parts[2])
		if err != nil {
			break
		}
		setIdx, err := strconv.Atoi(parts[3])
		if err != nil {
			break
		}
		return Command{Kind: KindTemplateRemoveSet, Index: idx, SetIndex: setIdx}
	case strings.HasPrefix(data, "stats:get_workout:") && len(parts) == 3:
		if id, err := strconv.ParseInt(parts[2], 10, 64); err == nil {
			return Command{Kind: KindStatsGetWorkout, ID: id}
		}
	case strings.HasPrefix(data, "stats:load_more:") && len(parts) == 3:
		if offset, err := strconv.Atoi(parts[2]); err == nil {
			return Command{Kind: KindStatsLoadMore, Offset: offset}
		}
	}

	return Command{Kind: KindUnknown}
}
