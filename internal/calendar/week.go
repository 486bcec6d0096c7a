package calendar

import (
	"fmt"
	"time"
)

// DayLayout формат календарного дня во всех документах
const DayLayout = "2006-01-02"

// WeekNumber возвращает номер недели по ISO-8601 (неделя начинается в понедельник,
// номер определяется четвергом этой недели)
func WeekNumber(t time.Time) int {
	_, week := t.ISOWeek()
	return week
}

// YearWeek возвращает ISO-год и ISO-неделю. Для 31 декабря это может быть
// неделя 1 следующего года.
func YearWeek(t time.Time) (int, int) {
	return t.ISOWeek()
}

// StartOfWeek возвращает полночь понедельника ISO-недели week года year.
// 4 января всегда лежит в неделе 1. Номера вне 1-53 не проверяются.
func StartOfWeek(year, week int, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}

	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, loc)
	sinceMonday := (int(jan4.Weekday()) + 6) % 7
	monday := jan4.AddDate(0, 0, -sinceMonday)

	return monday.AddDate(0, 0, (week-1)*7)
}

// DayKey нормализует момент времени до строки календарного дня в его часовом поясе
func DayKey(t time.Time) string {
	return t.Format(DayLayout)
}

// StartOfDay возвращает полночь того же календарного дня
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ParseDay разбирает YYYY-MM-DD в полночь указанного пояса
func ParseDay(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	day, err := time.ParseInLocation(DayLayout, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse day %q: %w", value, err)
	}
	return day, nil
}
