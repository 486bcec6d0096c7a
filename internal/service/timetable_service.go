package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/Freeeeeet/lesson_planner/internal/calendar"
	"github.com/Freeeeeet/lesson_planner/internal/model"
	"github.com/Freeeeeet/lesson_planner/internal/timetable"
	"go.uber.org/zap"
)

type timetableStore interface {
	Create(ctx context.Context, doc *model.TimetableDocument) error
	ListByUser(ctx context.Context, userID int64) ([]*model.TimetableDocument, error)
}

// ImportRequest метаданные загружаемого расписания
type ImportRequest struct {
	Title         string `validate:"max=200"`
	EffectiveFrom string `validate:"omitempty,datetime=2006-01-02"` // пусто: сегодня
}

type TimetableService struct {
	repo     timetableStore
	location *time.Location
	now      func() time.Time
	logger   *zap.Logger
}

func NewTimetableService(repo timetableStore, location *time.Location, logger *zap.Logger) *TimetableService {
	return &TimetableService{
		repo:     repo,
		location: location,
		now:      time.Now,
		logger:   logger,
	}
}

// ImportJSON сохраняет расписание из JSON-документа
func (s *TimetableService) ImportJSON(ctx context.Context, userID int64, req ImportRequest, r io.Reader) (*model.TimetableDocument, error) {
	schedule, err := timetable.DecodeJSON(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return s.save(ctx, userID, req, schedule, "json")
}

// ImportICS сохраняет расписание из iCalendar-файла с еженедельными событиями
func (s *TimetableService) ImportICS(ctx context.Context, userID int64, req ImportRequest, r io.Reader) (*model.TimetableDocument, error) {
	schedule, err := timetable.DecodeICS(r, s.location)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return s.save(ctx, userID, req, schedule, "ics")
}

func (s *TimetableService) save(ctx context.Context, userID int64, req ImportRequest, schedule model.Schedule, source string) (*model.TimetableDocument, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	effectiveFrom := req.EffectiveFrom
	if effectiveFrom == "" {
		effectiveFrom = calendar.DayKey(s.now().In(s.location))
	}

	doc := &model.TimetableDocument{
		UserID:        userID,
		Title:         req.Title,
		EffectiveFrom: effectiveFrom,
		Blocks:        schedule,
	}

	if err := s.repo.Create(ctx, doc); err != nil {
		return nil, err
	}

	s.logger.Info("Timetable imported",
		zap.Int64("user_id", userID),
		zap.Int64("timetable_id", doc.ID),
		zap.String("source", source),
		zap.String("effective_from", effectiveFrom),
		zap.Int("pairs", len(timetable.Pairs(doc))),
	)

	return doc, nil
}

// Active возвращает расписание, по которому идёт генерация (nil, если его нет)
func (s *TimetableService) Active(ctx context.Context, userID int64) (*model.TimetableDocument, error) {
	docs, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return timetable.AuthoritativeTimetable(docs), nil
}

// ForDate возвращает расписание, действующее на дату, для отображения.
// Генерация всегда использует Active.
func (s *TimetableService) ForDate(ctx context.Context, userID int64, date time.Time) (*model.TimetableDocument, error) {
	docs, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return timetable.DisplayTimetableForDate(date.In(s.location), docs)
}
