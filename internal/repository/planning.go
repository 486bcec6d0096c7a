package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/lesson_planner/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// PlanningTx набор операций, доступных генерации внутри одной транзакции
type PlanningTx interface {
	ListSessions(ctx context.Context, userID int64, from, to time.Time) ([]model.ClassSession, error)
	ListTimetables(ctx context.Context, userID int64) ([]*model.TimetableDocument, error)
	GetCalendar(ctx context.Context, userID int64, year int) (*model.ExclusionCalendar, error)
	InsertSessions(ctx context.Context, sessions []model.ClassSession) error
}

// PlanningStore открывает транзакции генерации с блокировкой на пользователя
type PlanningStore struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// NewPlanningStore создаёт хранилище для генерации
func NewPlanningStore(pool *pgxpool.Pool, logger *zap.Logger) *PlanningStore {
	return &PlanningStore{
		pool:   pool,
		logger: logger,
	}
}

// WithUserLock выполняет fn в транзакции, удерживая advisory lock пользователя.
// Две генерации одного учителя никогда не идут одновременно, поэтому снимок,
// прочитанный в fn, не меняется до коммита.
func (s *PlanningStore) WithUserLock(ctx context.Context, userID int64, fn func(ctx context.Context, tx PlanningTx) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, userID); err != nil {
		return fmt.Errorf("acquire user lock: %w", err)
	}

	if err := fn(ctx, newPlanningTx(tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	s.logger.Debug("Planning transaction committed", zap.Int64("user_id", userID))
	return nil
}

type planningTx struct {
	sessions   *SessionRepository
	timetables *TimetableRepository
	calendars  *ExclusionCalendarRepository
}

func newPlanningTx(tx pgx.Tx) *planningTx {
	return &planningTx{
		sessions:   NewSessionRepository(tx),
		timetables: NewTimetableRepository(tx),
		calendars:  NewExclusionCalendarRepository(tx),
	}
}

func (t *planningTx) ListSessions(ctx context.Context, userID int64, from, to time.Time) ([]model.ClassSession, error) {
	return t.sessions.ListByUserBetween(ctx, userID, from, to)
}

func (t *planningTx) ListTimetables(ctx context.Context, userID int64) ([]*model.TimetableDocument, error) {
	return t.timetables.ListByUser(ctx, userID)
}

func (t *planningTx) GetCalendar(ctx context.Context, userID int64, year int) (*model.ExclusionCalendar, error) {
	return t.calendars.Get(ctx, userID, year)
}

func (t *planningTx) InsertSessions(ctx context.Context, sessions []model.ClassSession) error {
	return t.sessions.InsertBatch(ctx, sessions)
}
