package service

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/lesson_planner/internal/model"
	"go.uber.org/zap"
)

type calendarStore interface {
	UpsertYear(ctx context.Context, cal *model.ExclusionCalendar) error
	EnsureYear(ctx context.Context, userID int64, year int) (int64, error)
	AddRange(ctx context.Context, calendarID int64, rng *model.ExclusionRange) error
	DeleteRange(ctx context.Context, userID, rangeID int64) (bool, error)
	Get(ctx context.Context, userID int64, year int) (*model.ExclusionCalendar, error)
}

type yearInput struct {
	Year  int    `validate:"min=2000,max=2100"`
	Start string `validate:"omitempty,datetime=2006-01-02"`
	End   string `validate:"omitempty,datetime=2006-01-02"`
}

type rangeInput struct {
	Year  int    `validate:"min=2000,max=2100"`
	Title string `validate:"required,max=200"`
	Start string `validate:"required,datetime=2006-01-02"`
	End   string `validate:"required,datetime=2006-01-02"`
}

type CalendarService struct {
	repo   calendarStore
	logger *zap.Logger
}

func NewCalendarService(repo calendarStore, logger *zap.Logger) *CalendarService {
	return &CalendarService{
		repo:   repo,
		logger: logger,
	}
}

// SetYear задаёт границы учебного года. Пустая граница означает, что
// ограничения с этой стороны нет.
func (s *CalendarService) SetYear(ctx context.Context, userID int64, year int, start, end string) (*model.ExclusionCalendar, error) {
	if err := validateStruct(yearInput{Year: year, Start: start, End: end}); err != nil {
		return nil, err
	}
	if start != "" && end != "" && end < start {
		return nil, fmt.Errorf("%w: year ends before it starts", ErrInvalidInput)
	}

	cal := &model.ExclusionCalendar{
		UserID:    userID,
		Year:      year,
		YearStart: start,
		YearEnd:   end,
	}
	if err := s.repo.UpsertYear(ctx, cal); err != nil {
		return nil, err
	}

	s.logger.Info("Academic year set",
		zap.Int64("user_id", userID),
		zap.Int("year", year),
		zap.String("start", start),
		zap.String("end", end),
	)

	return cal, nil
}

// AddRange добавляет каникулы или праздник в календарь года
func (s *CalendarService) AddRange(ctx context.Context, userID int64, year int, title, start, end string) (*model.ExclusionRange, error) {
	if err := validateStruct(rangeInput{Year: year, Title: title, Start: start, End: end}); err != nil {
		return nil, err
	}
	if end < start {
		return nil, fmt.Errorf("%w: range ends before it starts", ErrInvalidInput)
	}

	calendarID, err := s.repo.EnsureYear(ctx, userID, year)
	if err != nil {
		return nil, err
	}

	rng := &model.ExclusionRange{Title: title, Start: start, End: end}
	if err := s.repo.AddRange(ctx, calendarID, rng); err != nil {
		return nil, err
	}

	s.logger.Info("Exclusion range added",
		zap.Int64("user_id", userID),
		zap.Int("year", year),
		zap.Int64("range_id", rng.ID),
		zap.String("title", title),
	)

	return rng, nil
}

// RemoveRange удаляет диапазон; false, если у пользователя такого нет
func (s *CalendarService) RemoveRange(ctx context.Context, userID, rangeID int64) (bool, error) {
	deleted, err := s.repo.DeleteRange(ctx, userID, rangeID)
	if err != nil {
		return false, err
	}
	if deleted {
		s.logger.Info("Exclusion range removed",
			zap.Int64("user_id", userID),
			zap.Int64("range_id", rangeID))
	}
	return deleted, nil
}

// Get возвращает календарь года или nil, если он не настроен
func (s *CalendarService) Get(ctx context.Context, userID int64, year int) (*model.ExclusionCalendar, error) {
	return s.repo.Get(ctx, userID, year)
}
