package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/lesson_planner/internal/calendar"
	"github.com/Freeeeeet/lesson_planner/internal/model"
	"github.com/Freeeeeet/lesson_planner/internal/repository/base"
)

// ExclusionCalendarRepository хранит учебные календари и каникулы
type ExclusionCalendarRepository struct {
	*base.Repository
}

func NewExclusionCalendarRepository(db base.DBTX) *ExclusionCalendarRepository {
	return &ExclusionCalendarRepository{Repository: base.NewRepository(db)}
}

// UpsertYear задаёт границы учебного года; пустая строка снимает границу
func (r *ExclusionCalendarRepository) UpsertYear(ctx context.Context, cal *model.ExclusionCalendar) error {
	start, err := optionalDay(cal.YearStart)
	if err != nil {
		return fmt.Errorf("upsert calendar: %w", err)
	}
	end, err := optionalDay(cal.YearEnd)
	if err != nil {
		return fmt.Errorf("upsert calendar: %w", err)
	}

	query := `
		INSERT INTO exclusion_calendars (user_id, year, year_start, year_end)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, year)
		DO UPDATE SET year_start = EXCLUDED.year_start, year_end = EXCLUDED.year_end
		RETURNING id
	`

	err = r.DB().QueryRow(ctx, query, cal.UserID, cal.Year, start, end).Scan(&cal.ID)
	if err != nil {
		return fmt.Errorf("upsert calendar: %w", err)
	}

	return nil
}

// EnsureYear создаёт пустой календарь года, если его ещё нет, и возвращает его ID
func (r *ExclusionCalendarRepository) EnsureYear(ctx context.Context, userID int64, year int) (int64, error) {
	query := `
		INSERT INTO exclusion_calendars (user_id, year)
		VALUES ($1, $2)
		ON CONFLICT (user_id, year) DO UPDATE SET year = EXCLUDED.year
		RETURNING id
	`

	var id int64
	if err := r.DB().QueryRow(ctx, query, userID, year).Scan(&id); err != nil {
		return 0, fmt.Errorf("ensure calendar: %w", err)
	}
	return id, nil
}

// AddRange добавляет диапазон неучебных дней
func (r *ExclusionCalendarRepository) AddRange(ctx context.Context, calendarID int64, rng *model.ExclusionRange) error {
	start, err := calendar.ParseDay(rng.Start, time.UTC)
	if err != nil {
		return fmt.Errorf("add range: %w", err)
	}
	end, err := calendar.ParseDay(rng.End, time.UTC)
	if err != nil {
		return fmt.Errorf("add range: %w", err)
	}

	query := `
		INSERT INTO exclusion_ranges (calendar_id, title, start_date, end_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	if err := r.DB().QueryRow(ctx, query, calendarID, rng.Title, start, end).Scan(&rng.ID); err != nil {
		return fmt.Errorf("add range: %w", err)
	}

	return nil
}

// DeleteRange удаляет диапазон, принадлежащий пользователю
func (r *ExclusionCalendarRepository) DeleteRange(ctx context.Context, userID, rangeID int64) (bool, error) {
	query := `
		DELETE FROM exclusion_ranges er
		USING exclusion_calendars ec
		WHERE er.id = $2 AND er.calendar_id = ec.id AND ec.user_id = $1
	`

	affected, err := r.ExecAffected(ctx, query, userID, rangeID)
	if err != nil {
		return false, fmt.Errorf("delete range: %w", err)
	}
	return affected > 0, nil
}

// Get получает календарь пользователя на год вместе с диапазонами
func (r *ExclusionCalendarRepository) Get(ctx context.Context, userID int64, year int) (*model.ExclusionCalendar, error) {
	query := `
		SELECT id, user_id, year, year_start, year_end
		FROM exclusion_calendars
		WHERE user_id = $1 AND year = $2
	`

	var (
		cal        model.ExclusionCalendar
		start, end *time.Time
	)
	err := r.DB().QueryRow(ctx, query, userID, year).Scan(&cal.ID, &cal.UserID, &cal.Year, &start, &end)
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get calendar: %w", err)
	}

	if start != nil {
		cal.YearStart = calendar.DayKey(*start)
	}
	if end != nil {
		cal.YearEnd = calendar.DayKey(*end)
	}

	rows, err := r.DB().Query(ctx, `
		SELECT id, title, start_date, end_date
		FROM exclusion_ranges
		WHERE calendar_id = $1
		ORDER BY start_date, id
	`, cal.ID)
	if err != nil {
		return nil, fmt.Errorf("get calendar ranges: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			rng              model.ExclusionRange
			rngStart, rngEnd time.Time
		)
		if err := rows.Scan(&rng.ID, &rng.Title, &rngStart, &rngEnd); err != nil {
			return nil, fmt.Errorf("scan range: %w", err)
		}
		rng.Start = calendar.DayKey(rngStart)
		rng.End = calendar.DayKey(rngEnd)
		cal.Ranges = append(cal.Ranges, rng)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get calendar ranges: %w", err)
	}

	return &cal, nil
}

func optionalDay(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	day, err := calendar.ParseDay(value, time.UTC)
	if err != nil {
		return nil, err
	}
	return &day, nil
}
