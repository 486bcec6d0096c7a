package state

import "time"

// UserState текущее состояние пользователя в диалоге
type UserState string

const (
	StateNone UserState = "" // Нет активного диалога

	// Ждём файл расписания после /import
	StateAwaitingTimetable UserState = "awaiting_timetable"
)

// DialogTTL сколько живёт незавершённый диалог
const DialogTTL = 15 * time.Minute

// Dialog данные незавершённого диалога
type Dialog struct {
	State         UserState
	Title         string
	EffectiveFrom string
	StartedAt     time.Time
}
