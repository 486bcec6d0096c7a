package timetable

import (
	"testing"
	"time"

	"github.com/Freeeeeet/lesson_planner/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func docs() []*model.TimetableDocument {
	return []*model.TimetableDocument{
		{ID: 1, Title: "autumn", EffectiveFrom: "2025-09-01"},
		{ID: 3, Title: "old licence reimported", EffectiveFrom: "2024-09-01"},
		{ID: 2, Title: "spring", EffectiveFrom: "2026-01-12"},
	}
}

func TestAuthoritativeTimetable_LatestCreatedWins(t *testing.T) {
	got := AuthoritativeTimetable(docs())
	require.NotNil(t, got)
	assert.Equal(t, int64(3), got.ID)
}

func TestAuthoritativeTimetable_Empty(t *testing.T) {
	assert.Nil(t, AuthoritativeTimetable(nil))
	assert.Nil(t, AuthoritativeTimetable([]*model.TimetableDocument{nil}))
}

func TestDisplayTimetableForDate(t *testing.T) {
	cases := []struct {
		date string
		want int64
	}{
		{"2025-10-15", 1},
		{"2026-01-12", 2},
		{"2026-03-01", 2},
		{"2025-08-31", 3},
		// раньше всех документов: берётся самый старый по effective_from
		{"2020-01-01", 3},
	}

	for _, tc := range cases {
		date, err := time.Parse("2006-01-02", tc.date)
		require.NoError(t, err)

		got, err := DisplayTimetableForDate(date, docs())
		require.NoError(t, err)
		require.NotNil(t, got, tc.date)
		assert.Equal(t, tc.want, got.ID, tc.date)
	}
}

func TestDisplayTimetableForDate_DisagreesWithAuthoritative(t *testing.T) {
	date := time.Date(2026, time.February, 2, 0, 0, 0, 0, time.UTC)

	display, err := DisplayTimetableForDate(date, docs())
	require.NoError(t, err)

	assert.Equal(t, int64(2), display.ID)
	assert.Equal(t, int64(3), AuthoritativeTimetable(docs()).ID)
}

func TestDisplayTimetableForDate_MalformedDate(t *testing.T) {
	bad := []*model.TimetableDocument{{ID: 1, EffectiveFrom: "01.09.2025"}}

	_, err := DisplayTimetableForDate(time.Now(), bad)
	assert.Error(t, err)
}

func TestDisplayTimetableForDate_Empty(t *testing.T) {
	got, err := DisplayTimetableForDate(time.Now(), nil)
	assert.NoError(t, err)
	assert.Nil(t, got)
}
