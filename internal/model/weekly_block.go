package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// DefaultBlockDuration длительность урока по умолчанию (в минутах)
const DefaultBlockDuration = 90

// WeeklyBlock один повторяющийся слот в расписании.
// Weekday хранится в нумерации time.Weekday (0 = Sunday, 6 = Saturday).
type WeeklyBlock struct {
	Weekday         time.Weekday
	StartHour       int // 0-23
	StartMinute     int // 0-59
	DurationMinutes int
}

// Start возвращает время начала в формате HH:MM
func (b WeeklyBlock) Start() string {
	return fmt.Sprintf("%02d:%02d", b.StartHour, b.StartMinute)
}

// At возвращает момент начала блока в указанный день (по стенным часам дня)
func (b WeeklyBlock) At(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), b.StartHour, b.StartMinute, 0, 0, day.Location())
}

// Duration возвращает длительность с учётом значения по умолчанию
func (b WeeklyBlock) Duration() int {
	if b.DurationMinutes <= 0 {
		return DefaultBlockDuration
	}
	return b.DurationMinutes
}

// weeklyBlockJSON внешний формат блока: weekday в ISO-нумерации (1 = Monday, 7 = Sunday)
type weeklyBlockJSON struct {
	Weekday  *int   `json:"weekday"`
	Start    string `json:"start"`
	Duration int    `json:"duration,omitempty"`
}

// MarshalJSON единственное место, где внутренняя нумерация дней переводится в ISO
func (b WeeklyBlock) MarshalJSON() ([]byte, error) {
	iso := int(b.Weekday)
	if b.Weekday == time.Sunday {
		iso = 7
	}
	return json.Marshal(weeklyBlockJSON{
		Weekday:  &iso,
		Start:    b.Start(),
		Duration: b.Duration(),
	})
}

// UnmarshalJSON принимает ISO-нумерацию (1-7), 0 трактуется как воскресенье
func (b *WeeklyBlock) UnmarshalJSON(data []byte) error {
	var raw weeklyBlockJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if raw.Weekday == nil {
		return fmt.Errorf("weekday is required")
	}
	if *raw.Weekday < 0 || *raw.Weekday > 7 {
		return fmt.Errorf("weekday %d out of range 1-7", *raw.Weekday)
	}

	start, err := time.Parse("15:04", raw.Start)
	if err != nil {
		return fmt.Errorf("parse start %q: %w", raw.Start, err)
	}

	if raw.Duration < 0 {
		return fmt.Errorf("duration %d must be positive", raw.Duration)
	}

	*b = WeeklyBlock{
		Weekday:         time.Weekday(*raw.Weekday % 7),
		StartHour:       start.Hour(),
		StartMinute:     start.Minute(),
		DurationMinutes: raw.Duration,
	}
	if b.DurationMinutes == 0 {
		b.DurationMinutes = DefaultBlockDuration
	}
	return nil
}
