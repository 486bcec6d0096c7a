package planner

import (
	"encoding/json"
	"time"

	"github.com/Freeeeeet/lesson_planner/internal/calendar"
	"github.com/Freeeeeet/lesson_planner/internal/model"
	"github.com/Freeeeeet/lesson_planner/internal/timetable"
)

// SearchWindowDays сколько календарных дней максимум просматривает генерация
const SearchWindowDays = 730

const slotLayout = "2006-01-02 15:04"

// Request входные данные одного вызова генерации.
// Все срезы и документы - снимок, который не меняется во время вызова.
type Request struct {
	Course   string
	Subject  string
	Payloads []json.RawMessage
	Year     int
	Week     int

	// UnitEnd последний допустимый день юнита (включительно); nil - без границы
	UnitEnd *time.Time

	Timetable *model.TimetableDocument
	Existing  []model.ClassSession

	// Calendars календари исключений по годам; каждый день проверяется по своему году
	Calendars calendar.YearCalendars

	// Location пояс, в котором трактуется время начала блоков
	Location *time.Location
}

// Verdict итог проверочного прохода
type Verdict struct {
	Requested int
	Available int  // сколько слотов найдено (не больше Requested)
	Truncated bool // обход остановлен границей юнита раньше, чем набралось Requested
}

// Shortfall сколько уроков не поместилось до границы юнита
func (v Verdict) Shortfall() int {
	return v.Requested - v.Available
}

// Plan результат успешной генерации
type Plan struct {
	Verdict
	Sessions []model.ClassSession
}

type stopReason int

const (
	stopSatisfied stopReason = iota
	stopAborted
	stopBoundary
	stopWindow
)

type slot struct {
	at    time.Time
	block model.WeeklyBlock
}

// Generate проверяет запрос и, если проверка прошла, создаёт уроки.
// Ожидаемые отказы возвращаются как *Failure.
func Generate(req Request) (*Plan, error) {
	verdict, err := Validate(req)
	if err != nil {
		return nil, err
	}

	blocks := timetable.Bucket(req.Timetable, req.Course, req.Subject)
	sessions := commit(req, blocks, verdict.Available)

	return &Plan{Verdict: verdict, Sessions: sessions}, nil
}

// Validate проверочный проход: тот же обход дней, что и при создании,
// но без создания записей. Чистая функция - повторный вызов с теми же
// данными даёт тот же результат.
//
// Блоки дня проверяются не в порядке объявления в расписании, а после
// схлопывания повторов и сортировки по времени начала, как и при создании.
// Поэтому занятый слот, объявленный первым, но стоящий позже в дне, не
// мешает, если до него набралось нужное число уроков.
func Validate(req Request) (Verdict, error) {
	verdict := Verdict{Requested: len(req.Payloads)}

	if req.Timetable == nil {
		return verdict, failf(KindNoActiveTimetable, "no active timetable: import a timetable first")
	}

	blocks := timetable.Bucket(req.Timetable, req.Course, req.Subject)
	if len(blocks) == 0 {
		return verdict, failf(KindNoBlocksConfigured, "no blocks configured for %s / %s", req.Course, req.Subject)
	}

	occupied := make(map[int64]model.ClassSession, len(req.Existing))
	for _, s := range req.Existing {
		occupied[s.DateTime.UnixMilli()] = s
	}

	var conflict *Failure
	placed, reason := walk(req, blocks, verdict.Requested, func(s slot) bool {
		existing, busy := occupied[s.at.UnixMilli()]
		if !busy {
			return true
		}
		when := s.at.Format(slotLayout)
		if existing.Course == req.Course {
			conflict = failf(KindDuplicateBooking, "%s already has a session on %s", req.Course, when)
		} else {
			conflict = failf(KindTeacherConflict, "%s is already scheduled on %s", existing.Course, when)
		}
		return false
	})
	if conflict != nil {
		return verdict, conflict
	}

	verdict.Available = placed
	if placed == verdict.Requested {
		return verdict, nil
	}

	if reason == stopBoundary && placed > 0 {
		verdict.Truncated = true
		return verdict, nil
	}

	if reason == stopBoundary {
		return verdict, failf(KindInsufficientSlots,
			"no free %s / %s slots before the unit end %s",
			req.Course, req.Subject, calendar.DayKey(*req.UnitEnd))
	}

	return verdict, failf(KindInsufficientSlots,
		"only %d of %d %s / %s sessions fit within %d days",
		placed, verdict.Requested, req.Course, req.Subject, SearchWindowDays)
}

// commit проход создания: payload-ы раздаются по слотам в хронологическом порядке
func commit(req Request, blocks []model.WeeklyBlock, count int) []model.ClassSession {
	sessions := make([]model.ClassSession, 0, count)

	walk(req, blocks, count, func(s slot) bool {
		year, week := calendar.YearWeek(s.at)
		sessions = append(sessions, model.ClassSession{
			DateTime:        s.at,
			Course:          req.Course,
			Subject:         req.Subject,
			DurationMinutes: s.block.Duration(),
			Payload:         req.Payloads[len(sessions)],
			Status:          model.SessionStatusActive,
			Executed:        true,
			WeekNumber:      week,
			Year:            year,
		})
		return true
	})

	return sessions
}

// walk обходит дни начиная с понедельника целевой недели и отдаёт visit слоты
// в хронологическом порядке, пока не наберётся need слотов. visit возвращает
// false, чтобы прервать обход. Возвращает число принятых слотов и причину остановки.
func walk(req Request, blocks []model.WeeklyBlock, need int, visit func(slot) bool) (int, stopReason) {
	if need <= 0 {
		return 0, stopSatisfied
	}

	loc := req.Location
	if loc == nil {
		loc = time.UTC
	}

	var unitEnd string
	if req.UnitEnd != nil {
		unitEnd = calendar.DayKey(*req.UnitEnd)
	}

	start := calendar.StartOfWeek(req.Year, req.Week, loc)
	placed := 0

	for i := 0; i < SearchWindowDays; i++ {
		day := start.AddDate(0, 0, i)

		if unitEnd != "" && calendar.DayKey(day) > unitEnd {
			return placed, stopBoundary
		}

		if !req.Calendars.IsInstructional(day) {
			continue
		}

		for _, block := range timetable.On(blocks, day.Weekday()) {
			if !visit(slot{at: block.At(day), block: block}) {
				return placed, stopAborted
			}
			placed++
			if placed == need {
				return placed, stopSatisfied
			}
		}
	}

	return placed, stopWindow
}
