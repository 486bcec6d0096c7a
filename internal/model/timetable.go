package model

import "time"

// Schedule вложенное отображение course -> subject -> блоки в порядке объявления
type Schedule map[string]map[string][]WeeklyBlock

// TimetableDocument импортированное недельное расписание учителя
type TimetableDocument struct {
	ID            int64     `json:"id"` // растёт монотонно, используется как признак свежести
	UserID        int64     `json:"user_id"`
	Title         string    `json:"title"`
	EffectiveFrom string    `json:"effective_from"` // YYYY-MM-DD
	Blocks        Schedule  `json:"blocks"`
	CreatedAt     time.Time `json:"created_at"`
}

// BlocksFor возвращает блоки для пары course/subject (nil, если их нет)
func (t *TimetableDocument) BlocksFor(course, subject string) []WeeklyBlock {
	if t == nil || t.Blocks == nil {
		return nil
	}
	return t.Blocks[course][subject]
}
