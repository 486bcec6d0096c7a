package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Freeeeeet/lesson_planner/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeTimetableStore struct {
	docs []*model.TimetableDocument
}

func (f *fakeTimetableStore) Create(_ context.Context, doc *model.TimetableDocument) error {
	doc.ID = int64(len(f.docs) + 1)
	f.docs = append(f.docs, doc)
	return nil
}

func (f *fakeTimetableStore) ListByUser(context.Context, int64) ([]*model.TimetableDocument, error) {
	return f.docs, nil
}

const weeklyJSON = `{
	"5th Grade": {
		"Math": [{"weekday": 1, "start": "10:00", "duration": 45}]
	}
}`

func newTimetableService(store *fakeTimetableStore) *TimetableService {
	svc := NewTimetableService(store, time.UTC, zap.NewNop())
	svc.now = func() time.Time { return time.Date(2025, 2, 14, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestTimetableService_ImportJSON(t *testing.T) {
	store := &fakeTimetableStore{}
	svc := newTimetableService(store)

	doc, err := svc.ImportJSON(context.Background(), 42, ImportRequest{Title: "Spring"}, strings.NewReader(weeklyJSON))
	require.NoError(t, err)
	assert.Equal(t, int64(1), doc.ID)
	assert.Equal(t, int64(42), doc.UserID)
	assert.Equal(t, "2025-02-14", doc.EffectiveFrom)
	require.Len(t, doc.Blocks["5th Grade"]["Math"], 1)
	assert.Equal(t, time.Monday, doc.Blocks["5th Grade"]["Math"][0].Weekday)
}

func TestTimetableService_ImportRejectsBadInput(t *testing.T) {
	svc := newTimetableService(&fakeTimetableStore{})

	_, err := svc.ImportJSON(context.Background(), 42, ImportRequest{}, strings.NewReader(`{"x": 1}`))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.ImportJSON(context.Background(), 42, ImportRequest{EffectiveFrom: "14/02/2025"}, strings.NewReader(weeklyJSON))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.ImportICS(context.Background(), 42, ImportRequest{}, strings.NewReader("not a calendar"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestTimetableService_ActiveAndForDate(t *testing.T) {
	store := &fakeTimetableStore{}
	svc := newTimetableService(store)
	ctx := context.Background()

	_, err := svc.ImportJSON(ctx, 42, ImportRequest{Title: "autumn", EffectiveFrom: "2025-09-01"}, strings.NewReader(weeklyJSON))
	require.NoError(t, err)
	_, err = svc.ImportJSON(ctx, 42, ImportRequest{Title: "spring", EffectiveFrom: "2025-01-10"}, strings.NewReader(weeklyJSON))
	require.NoError(t, err)

	active, err := svc.Active(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, "spring", active.Title)

	shown, err := svc.ForDate(ctx, 42, time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "autumn", shown.Title)
}

func TestTimetableService_ActiveWithoutDocuments(t *testing.T) {
	svc := newTimetableService(&fakeTimetableStore{})

	active, err := svc.Active(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, active)
}
