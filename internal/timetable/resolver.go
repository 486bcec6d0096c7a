package timetable

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Freeeeeet/lesson_planner/internal/calendar"
	"github.com/Freeeeeet/lesson_planner/internal/model"
)

// AuthoritativeTimetable возвращает расписание, по которому идёт генерация:
// самый свежий документ (наибольший ID), effective_from не учитывается.
// Для пустого списка возвращает nil.
func AuthoritativeTimetable(docs []*model.TimetableDocument) *model.TimetableDocument {
	var latest *model.TimetableDocument
	for _, doc := range docs {
		if doc == nil {
			continue
		}
		if latest == nil || doc.ID > latest.ID {
			latest = doc
		}
	}
	return latest
}

// DisplayTimetableForDate старая политика выбора для экранов (подсказки курсов и предметов).
// Документы упорядочиваются по effective_from по убыванию; берётся первый,
// у которого effective_from <= date. Если такого нет, возвращается самый старый.
// Не совпадает с AuthoritativeTimetable и не должен использоваться для генерации.
func DisplayTimetableForDate(date time.Time, docs []*model.TimetableDocument) (*model.TimetableDocument, error) {
	type dated struct {
		doc *model.TimetableDocument
		key int
	}

	items := make([]dated, 0, len(docs))
	for _, doc := range docs {
		if doc == nil {
			continue
		}
		key, err := dayNumber(doc.EffectiveFrom)
		if err != nil {
			return nil, fmt.Errorf("timetable %d: %w", doc.ID, err)
		}
		items = append(items, dated{doc: doc, key: key})
	}

	if len(items) == 0 {
		return nil, nil
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].key > items[j].key
	})

	target, err := dayNumber(calendar.DayKey(date))
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		if item.key <= target {
			return item.doc, nil
		}
	}

	return items[len(items)-1].doc, nil
}

// dayNumber превращает YYYY-MM-DD в целое YYYYMMDD
func dayNumber(value string) (int, error) {
	if _, err := time.Parse(calendar.DayLayout, value); err != nil {
		return 0, fmt.Errorf("invalid effective_from %q: %w", value, err)
	}
	return strconv.Atoi(strings.ReplaceAll(value, "-", ""))
}
