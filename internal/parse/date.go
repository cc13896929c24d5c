package parse

import (
	"regexp"
	"strconv"
	"time"
)

// datePattern шаблон даты: "день[.| ]месяц[[.| ]год]".
// День и месяц - 1-2 цифры, год - 2 или 4 цифры. RE2 не поддерживает
// обратные ссылки, поэтому совпадение разделителей проверяется отдельно.
var datePattern = regexp.MustCompile(`^(\d{1,2})([.\s])(\d{1,2})(?:([.\s])(\d{2}|\d{4}))?$`)

// Date разбирает пользовательский ввод даты: "01.03.2024", "1 3 24",
// "01.03" (год по умолчанию - текущий, двузначный год - 2000+гг).
// Месяц вне 1-12 и день вне 1-31 отклоняются; день и месяц местами
// не переставляются, даже если месяц > 12.
func Date(input string, now time.Time) (time.Time, bool) {
	match := datePattern.FindStringSubmatch(input)
	if match == nil {
		return time.Time{}, false
	}

	// Разделители должны совпадать: "01.03 2024" - не дата
	if match[4] != "" && match[4] != match[2] {
		return time.Time{}, false
	}

	day, _ := strconv.Atoi(match[1])
	month, _ := strconv.Atoi(match[3])

	if month < 1 || month > 12 {
		return time.Time{}, false
	}
	if day < 1 || day > 31 {
		return time.Time{}, false
	}

	year := now.Year()
	if match[5] != "" {
		year, _ = strconv.Atoi(match[5])
		if len(match[5]) == 2 {
			year += 2000
		}
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location()), true
}
