package timetable

import (
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/Freeeeeet/lesson_planner/internal/model"
)

// DefaultICSCourse курс для событий без CATEGORIES и LOCATION
const DefaultICSCourse = "General"

// DecodeICS строит расписание из iCalendar-файла.
// Каждое событие VEVENT даёт один недельный блок: день и время берутся из DTSTART,
// длительность из DTEND, предмет из SUMMARY, курс из CATEGORIES (или LOCATION).
// Повторы одного урока на разных неделях схлопываются в один блок.
func DecodeICS(r io.Reader, loc *time.Location) (model.Schedule, error) {
	if loc == nil {
		loc = time.UTC
	}

	cal, err := ics.ParseCalendar(io.LimitReader(r, maxImportSize))
	if err != nil {
		return nil, fmt.Errorf("parse ics: %w", err)
	}

	schedule := make(model.Schedule)
	for _, evt := range cal.Events() {
		course, subject, block, ok := parseEvent(evt, loc)
		if !ok {
			continue
		}
		if schedule[course] == nil {
			schedule[course] = make(map[string][]model.WeeklyBlock)
		}
		schedule[course][subject] = append(schedule[course][subject], block)
	}

	schedule = Normalize(schedule)
	if len(schedule) == 0 {
		return nil, fmt.Errorf("ics contains no usable events")
	}

	return schedule, nil
}

func parseEvent(evt *ics.VEvent, loc *time.Location) (string, string, model.WeeklyBlock, bool) {
	subject := propertyValue(evt, ics.ComponentPropertySummary)
	if subject == "" {
		return "", "", model.WeeklyBlock{}, false
	}

	// Разовые события с ежедневным или месячным повтором в недельную сетку не ложатся
	if rrule := propertyValue(evt, ics.ComponentPropertyRrule); rrule != "" &&
		!strings.Contains(strings.ToUpper(rrule), "FREQ=WEEKLY") {
		return "", "", model.WeeklyBlock{}, false
	}

	start, err := parseDateTime(evt, ics.ComponentPropertyDtStart, loc)
	if err != nil {
		return "", "", model.WeeklyBlock{}, false
	}

	duration := model.DefaultBlockDuration
	if end, err := parseDateTime(evt, ics.ComponentPropertyDtEnd, loc); err == nil && end.After(start) {
		duration = int(end.Sub(start).Minutes())
	}

	course := firstCategory(propertyValue(evt, ics.ComponentPropertyCategories))
	if course == "" {
		course = propertyValue(evt, ics.ComponentPropertyLocation)
	}
	if course == "" {
		course = DefaultICSCourse
	}

	return course, subject, model.WeeklyBlock{
		Weekday:         start.Weekday(),
		StartHour:       start.Hour(),
		StartMinute:     start.Minute(),
		DurationMinutes: duration,
	}, true
}

func propertyValue(evt *ics.VEvent, name ics.ComponentProperty) string {
	prop := evt.GetProperty(name)
	if prop == nil {
		return ""
	}
	return strings.TrimSpace(prop.Value)
}

func firstCategory(value string) string {
	if value == "" {
		return ""
	}
	return strings.TrimSpace(strings.Split(value, ",")[0])
}

// parseDateTime разбирает DTSTART/DTEND с учётом TZID
func parseDateTime(evt *ics.VEvent, name ics.ComponentProperty, loc *time.Location) (time.Time, error) {
	prop := evt.GetProperty(name)
	if prop == nil {
		return time.Time{}, fmt.Errorf("missing property %s", name)
	}

	tzLoc := loc
	for k, v := range prop.ICalParameters {
		if strings.EqualFold(k, "TZID") && len(v) > 0 {
			if l, err := time.LoadLocation(v[0]); err == nil {
				tzLoc = l
			}
		}
	}

	if t, err := time.Parse("20060102T150405Z", prop.Value); err == nil {
		return t.In(loc), nil
	}
	for _, layout := range []string{"20060102T150405", "20060102"} {
		if t, err := time.ParseInLocation(layout, prop.Value, tzLoc); err == nil {
			return t.In(loc), nil
		}
	}

	return time.Time{}, fmt.Errorf("unsupported date %q", prop.Value)
}
