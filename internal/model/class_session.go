package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type SessionStatus string

const (
	SessionStatusActive    SessionStatus = "active"
	SessionStatusSuspended SessionStatus = "suspended"
	SessionStatusArchived  SessionStatus = "archived"
)

// ClassSession конкретный урок с датой, созданный из WeeklyBlock
type ClassSession struct {
	ID              int64           `json:"id"`
	UserID          int64           `json:"user_id"`
	BatchID         uuid.UUID       `json:"batch_id"` // один вызов генерации = одна партия
	DateTime        time.Time       `json:"date_time"`
	Course          string          `json:"course"`
	Subject         string          `json:"subject"`
	DurationMinutes int             `json:"duration_minutes"`
	Payload         json.RawMessage `json:"payload"` // содержимое урока, движок его не разбирает
	Status          SessionStatus   `json:"status"`
	Executed        bool            `json:"executed"`
	WeekNumber      int             `json:"week_number"`
	Year            int             `json:"year"`
	CreatedAt       time.Time       `json:"created_at"`
}

// EndTime возвращает время окончания урока
func (s *ClassSession) EndTime() time.Time {
	return s.DateTime.Add(time.Duration(s.DurationMinutes) * time.Minute)
}
