package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Freeeeeet/lesson_planner/internal/calendar"
	"github.com/Freeeeeet/lesson_planner/internal/metrics"
	"github.com/Freeeeeet/lesson_planner/internal/model"
	"github.com/Freeeeeet/lesson_planner/internal/planner"
	"github.com/Freeeeeet/lesson_planner/internal/repository"
	"github.com/Freeeeeet/lesson_planner/internal/timetable"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type planningStore interface {
	WithUserLock(ctx context.Context, userID int64, fn func(ctx context.Context, tx repository.PlanningTx) error) error
}

type sessionStore interface {
	ListByUserBetween(ctx context.Context, userID int64, from, to time.Time) ([]model.ClassSession, error)
	DeleteBatch(ctx context.Context, userID int64, batchID uuid.UUID) (int64, error)
}

// GenerateRequest запрос учителя на раскладку уроков юнита по расписанию
type GenerateRequest struct {
	Course   string            `validate:"required,max=100"`
	Subject  string            `validate:"required,max=100"`
	Payloads []json.RawMessage `validate:"min=1,max=200"`
	Year     int               `validate:"min=2000,max=2100"`
	Week     int               `validate:"min=1,max=53"`
	UnitEnd  string            `validate:"omitempty,datetime=2006-01-02"` // последний день юнита
}

// GenerateResponse результат генерации и ID партии для отмены
type GenerateResponse struct {
	planner.Result
	BatchID uuid.UUID `json:"batch_id,omitempty"`
}

type PlanningService struct {
	store    planningStore
	sessions sessionStore
	metrics  *metrics.Metrics
	location *time.Location
	logger   *zap.Logger
}

func NewPlanningService(
	store planningStore,
	sessions sessionStore,
	m *metrics.Metrics,
	location *time.Location,
	logger *zap.Logger,
) *PlanningService {
	return &PlanningService{
		store:    store,
		sessions: sessions,
		metrics:  m,
		location: location,
		logger:   logger,
	}
}

// Generate раскладывает уроки и сохраняет их одной партией.
// Бизнес-отказы возвращаются в GenerateResponse, error только для сбоев.
func (s *PlanningService) Generate(ctx context.Context, userID int64, req GenerateRequest) (*GenerateResponse, error) {
	return s.run(ctx, userID, req, true)
}

// Preview выполняет ту же генерацию без сохранения
func (s *PlanningService) Preview(ctx context.Context, userID int64, req GenerateRequest) (*GenerateResponse, error) {
	return s.run(ctx, userID, req, false)
}

func (s *PlanningService) run(ctx context.Context, userID int64, req GenerateRequest, persist bool) (*GenerateResponse, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	var unitEnd *time.Time
	if req.UnitEnd != "" {
		day, err := calendar.ParseDay(req.UnitEnd, s.location)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		unitEnd = &day
	}

	logger := s.logger.With(
		zap.Int64("user_id", userID),
		zap.String("course", req.Course),
		zap.String("subject", req.Subject),
		zap.Int("year", req.Year),
		zap.Int("week", req.Week),
		zap.Int("requested", len(req.Payloads)),
		zap.Bool("persist", persist),
	)

	var resp GenerateResponse
	err := s.store.WithUserLock(ctx, userID, func(ctx context.Context, tx repository.PlanningTx) error {
		from := calendar.StartOfWeek(req.Year, req.Week, s.location)
		to := from.AddDate(0, 0, planner.SearchWindowDays+1)

		existing, err := tx.ListSessions(ctx, userID, from, to)
		if err != nil {
			return fmt.Errorf("load sessions: %w", err)
		}

		timetables, err := tx.ListTimetables(ctx, userID)
		if err != nil {
			return fmt.Errorf("load timetables: %w", err)
		}

		// прошлый год тоже нужен: его каникулы могут заходить в начало обхода
		calendars := make(calendar.YearCalendars)
		for _, year := range append([]int{from.Year() - 1}, calendar.YearsBetween(from, to)...) {
			cal, err := tx.GetCalendar(ctx, userID, year)
			if err != nil {
				return fmt.Errorf("load calendar %d: %w", year, err)
			}
			if cal != nil {
				calendars[year] = cal
			}
		}

		result, err := planner.NewResult(planner.Generate(planner.Request{
			Course:    req.Course,
			Subject:   req.Subject,
			Payloads:  req.Payloads,
			Year:      req.Year,
			Week:      req.Week,
			UnitEnd:   unitEnd,
			Timetable: timetable.AuthoritativeTimetable(timetables),
			Calendars: calendars,
			Existing:  existing,
			Location:  s.location,
		}))
		if err != nil {
			return fmt.Errorf("generate sessions: %w", err)
		}

		resp.Result = result
		if !result.Success || !persist {
			return nil
		}

		resp.BatchID = uuid.New()
		for i := range resp.Sessions {
			resp.Sessions[i].UserID = userID
			resp.Sessions[i].BatchID = resp.BatchID
		}

		if err := tx.InsertSessions(ctx, resp.Sessions); err != nil {
			return fmt.Errorf("save sessions: %w", err)
		}
		return nil
	})
	if err != nil {
		if persist {
			s.metrics.ObserveFailure("error")
		}
		logger.Error("Generation failed", zap.Error(err))
		return nil, err
	}

	if !resp.Success {
		if persist {
			s.metrics.ObserveFailure(string(resp.ErrorKind))
		}
		logger.Warn("Generation rejected",
			zap.String("error_kind", string(resp.ErrorKind)),
			zap.String("message", resp.Message))
		return &resp, nil
	}

	if resp.Shortfall > 0 {
		logger.Warn("Unit end truncated generation",
			zap.Int("created", len(resp.Sessions)),
			zap.Int("shortfall", resp.Shortfall),
			zap.String("unit_end", req.UnitEnd))
	}

	if persist {
		s.metrics.ObserveSuccess(len(resp.Sessions), resp.Shortfall)
		logger.Info("Sessions generated",
			zap.String("batch_id", resp.BatchID.String()),
			zap.Int("created", len(resp.Sessions)))
	}

	return &resp, nil
}

// WeekSessions возвращает уроки пользователя за ISO-неделю
func (s *PlanningService) WeekSessions(ctx context.Context, userID int64, year, week int) ([]model.ClassSession, error) {
	from := calendar.StartOfWeek(year, week, s.location)
	sessions, err := s.sessions.ListByUserBetween(ctx, userID, from, from.AddDate(0, 0, 7))
	if err != nil {
		return nil, fmt.Errorf("week sessions: %w", err)
	}

	for i := range sessions {
		sessions[i].DateTime = sessions[i].DateTime.In(s.location)
	}
	return sessions, nil
}

// UndoBatch удаляет уроки, созданные одним вызовом генерации
func (s *PlanningService) UndoBatch(ctx context.Context, userID int64, batchID uuid.UUID) (int64, error) {
	deleted, err := s.sessions.DeleteBatch(ctx, userID, batchID)
	if err != nil {
		return 0, err
	}

	s.logger.Info("Session batch deleted",
		zap.Int64("user_id", userID),
		zap.String("batch_id", batchID.String()),
		zap.Int64("deleted", deleted),
	)

	return deleted, nil
}
