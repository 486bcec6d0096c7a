package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Freeeeeet/lesson_planner/internal/model"
	"github.com/Freeeeeet/lesson_planner/internal/repository/base"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ErrSlotTaken у пользователя уже есть урок на это время
var ErrSlotTaken = errors.New("session slot already taken")

// SessionRepository управляет уроками в базе данных
type SessionRepository struct {
	*base.Repository
}

func NewSessionRepository(db base.DBTX) *SessionRepository {
	return &SessionRepository{Repository: base.NewRepository(db)}
}

const sessionColumns = `id, user_id, batch_id, starts_at, course, subject, duration_minutes,
	payload, status, executed, week_number, year, created_at`

// InsertBatch сохраняет уроки одним батчем и заполняет ID и created_at
func (r *SessionRepository) InsertBatch(ctx context.Context, sessions []model.ClassSession) error {
	if len(sessions) == 0 {
		return nil
	}

	query := `
		INSERT INTO class_sessions (user_id, batch_id, starts_at, course, subject, duration_minutes,
			payload, status, executed, week_number, year)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at
	`

	batch := &pgx.Batch{}
	for _, s := range sessions {
		batch.Queue(query,
			s.UserID,
			s.BatchID,
			s.DateTime,
			s.Course,
			s.Subject,
			s.DurationMinutes,
			[]byte(s.Payload),
			s.Status,
			s.Executed,
			s.WeekNumber,
			s.Year,
		)
	}

	results := r.DB().SendBatch(ctx, batch)
	for i := range sessions {
		if err := results.QueryRow().Scan(&sessions[i].ID, &sessions[i].CreatedAt); err != nil {
			results.Close()
			if base.IsUniqueViolation(err) {
				return fmt.Errorf("insert session at %s: %w", sessions[i].DateTime, ErrSlotTaken)
			}
			return fmt.Errorf("insert session: %w", err)
		}
	}

	if err := results.Close(); err != nil {
		return fmt.Errorf("insert sessions: %w", err)
	}

	return nil
}

// ListByUserBetween получает уроки пользователя с началом в [from, to)
func (r *SessionRepository) ListByUserBetween(ctx context.Context, userID int64, from, to time.Time) ([]model.ClassSession, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM class_sessions
		WHERE user_id = $1
		  AND starts_at >= $2
		  AND starts_at < $3
		ORDER BY starts_at
	`

	rows, err := r.DB().Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []model.ClassSession
	for rows.Next() {
		var s model.ClassSession
		err := rows.Scan(
			&s.ID,
			&s.UserID,
			&s.BatchID,
			&s.DateTime,
			&s.Course,
			&s.Subject,
			&s.DurationMinutes,
			&s.Payload,
			&s.Status,
			&s.Executed,
			&s.WeekNumber,
			&s.Year,
			&s.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sessions = append(sessions, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	return sessions, nil
}

// DeleteBatch удаляет все уроки одного вызова генерации
func (r *SessionRepository) DeleteBatch(ctx context.Context, userID int64, batchID uuid.UUID) (int64, error) {
	query := `DELETE FROM class_sessions WHERE user_id = $1 AND batch_id = $2`

	affected, err := r.ExecAffected(ctx, query, userID, batchID)
	if err != nil {
		return 0, fmt.Errorf("delete session batch: %w", err)
	}

	return affected, nil
}
