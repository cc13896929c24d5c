package format

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Duration возвращает длительность тренировки в целых секундах.
// Второе значение false, если одна из отметок времени отсутствует.
func Duration(start time.Time, end *time.Time) (int, bool) {
	if start.IsZero() || end == nil {
		return 0, false
	}
	return int(math.Round(end.Sub(start).Seconds())), true
}

// FormatDuration форматирует длительность в человекочитаемую строку:
// 59 -> "59 seconds", 90 -> "1 minute", 5400 -> "1 hour 30 minutes".
// Отрицательная длительность - ошибка валидации.
func FormatDuration(totalSeconds int) (string, error) {
	if totalSeconds < 0 {
		return "", fmt.Errorf("duration cannot be negative: %d", totalSeconds)
	}

	if totalSeconds < 60 {
		return fmt.Sprintf("%d %s", totalSeconds, pluralize("second", totalSeconds)), nil
	}

	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60

	var parts []string
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", hours, pluralize("hour", hours)))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", minutes, pluralize("minute", minutes)))
	}

	return strings.Join(parts, " "), nil
}

// pluralize возвращает слово с "s" для любого количества, кроме одного
func pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}
