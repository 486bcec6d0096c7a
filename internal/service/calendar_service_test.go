package service

import (
	"context"
	"testing"

	"github.com/Freeeeeet/lesson_planner/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeCalendarStore struct {
	calendars map[int]*model.ExclusionCalendar
	nextID    int64
}

func newFakeCalendarStore() *fakeCalendarStore {
	return &fakeCalendarStore{calendars: make(map[int]*model.ExclusionCalendar)}
}

func (f *fakeCalendarStore) UpsertYear(_ context.Context, cal *model.ExclusionCalendar) error {
	if existing, ok := f.calendars[cal.Year]; ok {
		existing.YearStart, existing.YearEnd = cal.YearStart, cal.YearEnd
		cal.ID = existing.ID
		return nil
	}
	f.nextID++
	cal.ID = f.nextID
	f.calendars[cal.Year] = cal
	return nil
}

func (f *fakeCalendarStore) EnsureYear(ctx context.Context, userID int64, year int) (int64, error) {
	if existing, ok := f.calendars[year]; ok {
		return existing.ID, nil
	}
	cal := &model.ExclusionCalendar{UserID: userID, Year: year}
	err := f.UpsertYear(ctx, cal)
	return cal.ID, err
}

func (f *fakeCalendarStore) AddRange(_ context.Context, calendarID int64, rng *model.ExclusionRange) error {
	for _, cal := range f.calendars {
		if cal.ID == calendarID {
			f.nextID++
			rng.ID = f.nextID
			cal.Ranges = append(cal.Ranges, *rng)
		}
	}
	return nil
}

func (f *fakeCalendarStore) DeleteRange(_ context.Context, _, rangeID int64) (bool, error) {
	for _, cal := range f.calendars {
		for i, rng := range cal.Ranges {
			if rng.ID == rangeID {
				cal.Ranges = append(cal.Ranges[:i], cal.Ranges[i+1:]...)
				return true, nil
			}
		}
	}
	return false, nil
}

func (f *fakeCalendarStore) Get(_ context.Context, _ int64, year int) (*model.ExclusionCalendar, error) {
	return f.calendars[year], nil
}

func TestCalendarService_SetYearAndRanges(t *testing.T) {
	svc := NewCalendarService(newFakeCalendarStore(), zap.NewNop())
	ctx := context.Background()

	_, err := svc.SetYear(ctx, 42, 2025, "2025-01-09", "2025-12-20")
	require.NoError(t, err)

	rng, err := svc.AddRange(ctx, 42, 2025, "Spring break", "2025-03-24", "2025-03-30")
	require.NoError(t, err)
	assert.NotZero(t, rng.ID)

	cal, err := svc.Get(ctx, 42, 2025)
	require.NoError(t, err)
	assert.Equal(t, "2025-01-09", cal.YearStart)
	require.Len(t, cal.Ranges, 1)
	assert.Equal(t, "Spring break", cal.Ranges[0].Title)

	deleted, err := svc.RemoveRange(ctx, 42, rng.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Empty(t, cal.Ranges)

	deleted, err = svc.RemoveRange(ctx, 42, rng.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestCalendarService_AddRangeCreatesYear(t *testing.T) {
	svc := NewCalendarService(newFakeCalendarStore(), zap.NewNop())

	_, err := svc.AddRange(context.Background(), 42, 2026, "New year", "2026-01-01", "2026-01-08")
	require.NoError(t, err)

	cal, err := svc.Get(context.Background(), 42, 2026)
	require.NoError(t, err)
	require.NotNil(t, cal)
	assert.Empty(t, cal.YearStart)
	assert.Len(t, cal.Ranges, 1)
}

func TestCalendarService_RejectsInvalidInput(t *testing.T) {
	svc := NewCalendarService(newFakeCalendarStore(), zap.NewNop())
	ctx := context.Background()

	_, err := svc.SetYear(ctx, 42, 2025, "2025-12-20", "2025-01-09")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.SetYear(ctx, 42, 2025, "09.01.2025", "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.AddRange(ctx, 42, 2025, "", "2025-03-24", "2025-03-30")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.AddRange(ctx, 42, 2025, "Backwards", "2025-03-30", "2025-03-24")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCalendarService_GetMissingYear(t *testing.T) {
	svc := NewCalendarService(newFakeCalendarStore(), zap.NewNop())

	cal, err := svc.Get(context.Background(), 42, 2030)
	require.NoError(t, err)
	assert.Nil(t, cal)
}
