package calendar

import (
	"testing"
	"time"

	"github.com/Freeeeeet/lesson_planner/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestYearCalendars_WinterBreakFiledUnderStartYear(t *testing.T) {
	cals := YearCalendars{
		2025: {Year: 2025, Ranges: []model.ExclusionRange{
			{Title: "Зимние каникулы", Start: "2025-12-22", End: "2026-01-04"},
		}},
		2026: {Year: 2026, YearStart: "2026-01-01"},
	}

	assert.True(t, cals.IsInstructional(day("2025-12-19")))
	assert.False(t, cals.IsInstructional(day("2025-12-29")))
	assert.False(t, cals.IsInstructional(day("2026-01-04")))
	assert.True(t, cals.IsInstructional(day("2026-01-05")))
}

func TestYearCalendars_BoundsOfEachYear(t *testing.T) {
	cals := YearCalendars{
		2025: {Year: 2025, YearEnd: "2025-12-20"},
		2026: {Year: 2026, YearStart: "2026-01-09"},
	}

	assert.True(t, cals.IsInstructional(day("2025-12-20")))
	assert.False(t, cals.IsInstructional(day("2025-12-22")))
	assert.False(t, cals.IsInstructional(day("2026-01-08")))
	assert.True(t, cals.IsInstructional(day("2026-01-09")))
	assert.True(t, cals.IsInstructional(day("2027-06-01")), "year without a calendar")
}

func TestYearCalendars_Nil(t *testing.T) {
	var cals YearCalendars
	assert.True(t, cals.IsInstructional(day("2025-03-03")))
}

func TestYearsBetween(t *testing.T) {
	from := time.Date(2025, 12, 8, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, []int{2025}, YearsBetween(from, from.AddDate(0, 0, 7)))
	assert.Equal(t, []int{2025, 2026, 2027}, YearsBetween(from, from.AddDate(0, 0, 731)))
	assert.Equal(t, []int{2025}, YearsBetween(from, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Nil(t, YearsBetween(from, from))
}
