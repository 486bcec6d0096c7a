package planner

import (
	"errors"
	"fmt"
)

// Kind вид ожидаемого отказа генерации
type Kind string

const (
	KindNoActiveTimetable  Kind = "no_active_timetable"
	KindNoBlocksConfigured Kind = "no_blocks_configured"
	KindDuplicateBooking   Kind = "duplicate_booking"
	KindTeacherConflict    Kind = "teacher_conflict"
	KindInsufficientSlots  Kind = "insufficient_slots"
)

// Failure бизнес-отказ генерации. Это ожидаемое состояние, которое
// показывается пользователю как есть; всё остальное - настоящие ошибки.
type Failure struct {
	Kind    Kind
	Message string
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

// AsFailure извлекает Failure из цепочки ошибок
func AsFailure(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

// IsKind проверяет вид отказа
func IsKind(err error, kind Kind) bool {
	f, ok := AsFailure(err)
	return ok && f.Kind == kind
}

func failf(kind Kind, format string, args ...any) *Failure {
	return &Failure{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
