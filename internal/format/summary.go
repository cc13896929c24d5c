package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Freeeeeet/gymlog_bot/internal/model"
)

// Weight форматирует вес без лишних нулей: 80 -> "80", 82.5 -> "82.5"
func Weight(weight float64) string {
	return strconv.FormatFloat(weight, 'f', -1, 64)
}

// WorkoutSummary рендерит тренировку с упражнениями и подходами в текст
// для отправки в чат (Markdown). Длительность считается из отметок самой
// тренировки, дополнительных запросов не требуется.
func WorkoutSummary(workout *model.Workout) string {
	var sb strings.Builder

	if len(workout.Exercises) == 0 {
		sb.WriteString("No exercises recorded.\n")
		return sb.String()
	}

	startTime := "Unknown"
	if !workout.StartTime.IsZero() {
		startTime = workout.StartTime.Format("15:04")
	}
	endTime := "..."
	if workout.EndTime != nil {
		endTime = workout.EndTime.Format("15:04")
	}

	sb.WriteString(fmt.Sprintf("**Workout at %s - %s**\n", startTime, endTime))

	for i, exercise := range workout.Exercises {
		sb.WriteString(fmt.Sprintf("\n%d. **%s**\n", i+1, exercise.Name))

		if len(exercise.Sets) == 0 {
			sb.WriteString("   (No sets recorded)\n")
			continue
		}
		for j, set := range exercise.Sets {
			sb.WriteString(fmt.Sprintf("   - Set %d: %skg × %d\n", j+1, Weight(set.Weight), set.Reps))
		}
	}

	if seconds, ok := Duration(workout.StartTime, workout.EndTime); ok {
		if duration, err := FormatDuration(seconds); err == nil {
			sb.WriteString(fmt.Sprintf("\nSession duration: %s\n\n", duration))
		}
	}

	return sb.String()
}
