package calendar

import (
	"time"

	"github.com/Freeeeeet/lesson_planner/internal/model"
)

// YearCalendars календари исключений пользователя по календарному году
type YearCalendars map[int]*model.ExclusionCalendar

// IsInstructional проверяет день по календарю его года. Диапазоны прошлого
// года тоже учитываются: каникулы, начатые в декабре, продолжаются в январе.
// Год без календаря целиком учебный.
func (c YearCalendars) IsInstructional(day time.Time) bool {
	if !IsInstructionalDay(day, c[day.Year()]) {
		return false
	}
	return ExcludedBy(day, c[day.Year()-1]) == nil
}

// YearsBetween перечисляет календарные годы, которые задевает [from, to)
func YearsBetween(from, to time.Time) []int {
	last := to.Add(-time.Nanosecond).Year()
	if last < from.Year() {
		return nil
	}

	years := make([]int, 0, last-from.Year()+1)
	for y := from.Year(); y <= last; y++ {
		years = append(years, y)
	}
	return years
}
