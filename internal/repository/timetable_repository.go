package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/lesson_planner/internal/calendar"
	"github.com/Freeeeeet/lesson_planner/internal/model"
	"github.com/Freeeeeet/lesson_planner/internal/repository/base"
	"github.com/jackc/pgx/v5"
)

// TimetableRepository хранит импортированные расписания
type TimetableRepository struct {
	*base.Repository
}

func NewTimetableRepository(db base.DBTX) *TimetableRepository {
	return &TimetableRepository{Repository: base.NewRepository(db)}
}

// Create сохраняет новый документ расписания
func (r *TimetableRepository) Create(ctx context.Context, doc *model.TimetableDocument) error {
	effectiveFrom, err := calendar.ParseDay(doc.EffectiveFrom, time.UTC)
	if err != nil {
		return fmt.Errorf("create timetable: %w", err)
	}

	query := `
		INSERT INTO timetables (user_id, title, effective_from, blocks)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err = r.DB().QueryRow(ctx, query,
		doc.UserID,
		doc.Title,
		effectiveFrom,
		doc.Blocks,
	).Scan(&doc.ID, &doc.CreatedAt)

	if err != nil {
		return fmt.Errorf("create timetable: %w", err)
	}

	return nil
}

// ListByUser получает все расписания учителя, самые свежие первыми
func (r *TimetableRepository) ListByUser(ctx context.Context, userID int64) ([]*model.TimetableDocument, error) {
	query := `
		SELECT id, user_id, title, effective_from, blocks, created_at
		FROM timetables
		WHERE user_id = $1
		ORDER BY id DESC
	`

	rows, err := r.DB().Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list timetables: %w", err)
	}
	defer rows.Close()

	var docs []*model.TimetableDocument
	for rows.Next() {
		doc, err := scanTimetable(rows)
		if err != nil {
			return nil, fmt.Errorf("scan timetable: %w", err)
		}
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list timetables: %w", err)
	}

	return docs, nil
}

func scanTimetable(row pgx.Row) (*model.TimetableDocument, error) {
	var (
		doc           model.TimetableDocument
		effectiveFrom time.Time
	)

	err := row.Scan(
		&doc.ID,
		&doc.UserID,
		&doc.Title,
		&effectiveFrom,
		&doc.Blocks,
		&doc.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	doc.EffectiveFrom = calendar.DayKey(effectiveFrom)
	return &doc, nil
}
