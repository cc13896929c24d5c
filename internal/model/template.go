package model

import "time"

// Template сохранённый шаблон тренировки. Живёт независимо от Workout:
// может быть создан вручную или скопирован из прошедшей тренировки.
type Template struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`

	Exercises []*TemplateExercise `json:"exercises,omitempty"`
}

// TemplateExercise упражнение шаблона (без привязки ко времени)
type TemplateExercise struct {
	ID         int64  `json:"id"`
	TemplateID int64  `json:"template_id"`
	Name       string `json:"name"`

	Sets []*TemplateSet `json:"sets,omitempty"`
}

// TemplateSet подход шаблона
type TemplateSet struct {
	ID                 int64   `json:"id"`
	TemplateExerciseID int64   `json:"template_exercise_id"`
	Weight             float64 `json:"weight"`
	Reps               int     `json:"reps"`
}
