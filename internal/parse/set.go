package parse

import (
	"regexp"
	"strconv"
)

// setPattern шаблон ввода подхода: "<вес>[,| ]<повторения>".
// Вес допускает дробную часть, разделитель - запятая и/или пробелы.
var setPattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)[,\s]+(\d+)$`)

// SetInput разобранный ввод подхода
type SetInput struct {
	Weight float64
	Reps   int
}

// Set разбирает строку вида "80, 12" в вес и количество повторений.
// Строка должна быть уже обрезана от пробелов по краям.
func Set(text string) (SetInput, bool) {
	match := setPattern.FindStringSubmatch(text)
	if match == nil {
		return SetInput{}, false
	}

	weight, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return SetInput{}, false
	}

	reps, err := strconv.Atoi(match[2])
	if err != nil {
		return SetInput{}, false
	}

	return SetInput{Weight: weight, Reps: reps}, true
}

// IsSet проверяет, похож ли текст на ввод подхода (без разбора значений)
func IsSet(text string) bool {
	return setPattern.MatchString(text)
}
