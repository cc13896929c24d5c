package model

import "time"

// Workout одна тренировка пользователя
type Workout struct {
	ID         int64      `json:"id"`
	UserID     int64      `json:"user_id"`
	StartTime  time.Time  `json:"start_time"`
	EndTime    *time.Time `json:"end_time"` // NULL пока тренировка не завершена
	IsFinished bool       `json:"is_finished"`
	CreatedAt  time.Time  `json:"created_at"`

	// Заполняется на read path (не колонка таблицы)
	Exercises []*Exercise `json:"exercises,omitempty"`
}

// Exercise упражнение внутри тренировки
type Exercise struct {
	ID        int64  `json:"id"`
	WorkoutID int64  `json:"workout_id"`
	Name      string `json:"name"`

	Sets []*Set `json:"sets,omitempty"`
}

// Set один подход: вес × повторения
type Set struct {
	ID         int64   `json:"id"`
	ExerciseID int64   `json:"exercise_id"`
	Weight     float64 `json:"weight"`
	Reps       int     `json:"reps"`
}
