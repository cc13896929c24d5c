package common

import "errors"

// Общие ошибки для обработчиков
var (
	ErrNoMessage        = errors.New("no message in callback")
	ErrWorkoutNotFound  = errors.New("workout not found")
	ErrTemplateNotFound = errors.New("template not found")
)

// ErrorMessage возвращает пользовательское сообщение для ошибки
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrWorkoutNotFound):
		return "Workout wasn't found."
	case errors.Is(err, ErrTemplateNotFound):
		return "Couldn't find the template."
	default:
		return "Something went wrong. Please try again."
	}
}
