package calendar

import (
	"time"

	"github.com/Freeeeeet/lesson_planner/internal/model"
)

// IsInstructionalDay сообщает, учебный ли день по календарю исключений.
// Без календаря любой день учебный: бот должен работать до настройки года.
// Все границы имеют точность до дня, поэтому сравниваются строки YYYY-MM-DD.
func IsInstructionalDay(day time.Time, cal *model.ExclusionCalendar) bool {
	if cal == nil {
		return true
	}

	key := DayKey(day)

	if cal.YearStart != "" && key < cal.YearStart {
		return false
	}
	if cal.YearEnd != "" && key > cal.YearEnd {
		return false
	}

	for _, r := range cal.Ranges {
		if key >= r.Start && key <= r.End {
			return false
		}
	}

	return true
}

// ExcludedBy возвращает диапазон, которым исключён день (nil, если такого нет)
func ExcludedBy(day time.Time, cal *model.ExclusionCalendar) *model.ExclusionRange {
	if cal == nil {
		return nil
	}

	key := DayKey(day)
	for i := range cal.Ranges {
		if key >= cal.Ranges[i].Start && key <= cal.Ranges[i].End {
			return &cal.Ranges[i]
		}
	}
	return nil
}
