package session

// Stage режим диалогового редактора шаблонов. Определяет, как будет
// истолковано следующее текстовое сообщение пользователя.
type Stage string

const (
	StageIdle          Stage = "idle"
	StageEditing       Stage = "editing"
	StageAwaitName     Stage = "await_name"
	StageAwaitExercise Stage = "await_exercise"
	StageAwaitSet      Stage = "await_set"
)

// DraftSet подход внутри черновика шаблона
type DraftSet struct {
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
}

// DraftExercise упражнение внутри черновика шаблона
type DraftExercise struct {
	Name string     `json:"name"`
	Sets []DraftSet `json:"sets"`
}

// Draft несохранённый черновик шаблона. Живёт целиком в сессии,
// пока пользователь явно не сохранит или не отменит его.
type Draft struct {
	// TemplateID заполнен при редактировании уже сохранённого шаблона:
	// сохранение станет обновлением, а не вставкой
	TemplateID *int64 `json:"template_id,omitempty"`
	// SourceWorkoutID тренировка, из которой скопирован черновик
	SourceWorkoutID *int64          `json:"source_workout_id,omitempty"`
	Name            string          `json:"name"`
	Exercises       []DraftExercise `json:"exercises"`
}

// Data состояние диалога одного пользователя между сообщениями
type Data struct {
	ActiveWorkoutID   *int64 `json:"active_workout_id"`
	CurrentExerciseID *int64 `json:"current_exercise_id"`

	TemplateDraft *Draft `json:"template_draft,omitempty"`
	TemplateStage Stage  `json:"template_stage"`
	// TemplateCurrentExerciseIdx указывает на упражнение черновика,
	// в которое добавляется подход
	TemplateCurrentExerciseIdx *int `json:"template_current_exercise_idx,omitempty"`
}

// NewData возвращает свежую сессию
func NewData() *Data {
	return &Data{TemplateStage: StageIdle}
}

// ResetTemplateDraft сбрасывает черновик, этап и указатель
func (d *Data) ResetTemplateDraft() {
	d.TemplateDraft = nil
	d.TemplateStage = StageIdle
	d.TemplateCurrentExerciseIdx = nil
}

// EnsureTemplateDraft возвращает текущий черновик, создавая пустой при
// необходимости
func (d *Data) EnsureTemplateDraft() *Draft {
	if d.TemplateDraft == nil {
		d.TemplateDraft = &Draft{Name: "New template"}
	}
	return d.TemplateDraft
}

// RemoveDraftExercise удаляет упражнение черновика по индексу и чинит
// указатель текущего упражнения: ссылка на удалённый элемент
// сбрасывается, ссылки правее сдвигаются на единицу влево.
func (d *Data) RemoveDraftExercise(idx int) bool {
	draft := d.TemplateDraft
	if draft == nil || idx < 0 || idx >= len(draft.Exercises) {
		return false
	}

	draft.Exercises = append(draft.Exercises[:idx], draft.Exercises[idx+1:]...)

	if ptr := d.TemplateCurrentExerciseIdx; ptr != nil {
		switch {
		case *ptr == idx:
			d.TemplateCurrentExerciseIdx = nil
		case *ptr > idx:
			shifted := *ptr - 1
			d.TemplateCurrentExerciseIdx = &shifted
		}
	}

	return true
}

// RemoveDraftSet удаляет подход по позиции внутри упражнения черновика
func (d *Data) RemoveDraftSet(exerciseIdx, setIdx int) bool {
	draft := d.TemplateDraft
	if draft == nil || exerciseIdx < 0 || exerciseIdx >= len(draft.Exercises) {
		return false
	}

	exercise := &draft.Exercises[exerciseIdx]
	if setIdx < 0 || setIdx >= len(exercise.Sets) {
		return false
	}

	exercise.Sets = append(exercise.Sets[:setIdx], exercise.Sets[setIdx+1:]...)
	return true
}
