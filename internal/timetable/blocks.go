package timetable

import (
	"sort"
	"time"

	"github.com/Freeeeeet/lesson_planner/internal/model"
)

// Bucket возвращает блоки course/subject без дублей (weekday, start).
// Первое вхождение побеждает, порядок объявления сохраняется.
func Bucket(doc *model.TimetableDocument, course, subject string) []model.WeeklyBlock {
	return Dedup(doc.BlocksFor(course, subject))
}

// Dedup схлопывает повторы по (weekday, start)
func Dedup(blocks []model.WeeklyBlock) []model.WeeklyBlock {
	type key struct {
		weekday time.Weekday
		hour    int
		minute  int
	}

	seen := make(map[key]bool, len(blocks))
	result := make([]model.WeeklyBlock, 0, len(blocks))
	for _, b := range blocks {
		k := key{b.Weekday, b.StartHour, b.StartMinute}
		if seen[k] {
			continue
		}
		seen[k] = true
		if b.DurationMinutes <= 0 {
			b.DurationMinutes = model.DefaultBlockDuration
		}
		result = append(result, b)
	}
	return result
}

// On возвращает блоки указанного дня недели, отсортированные по времени начала
func On(blocks []model.WeeklyBlock, weekday time.Weekday) []model.WeeklyBlock {
	var day []model.WeeklyBlock
	for _, b := range blocks {
		if b.Weekday == weekday {
			day = append(day, b)
		}
	}

	sort.SliceStable(day, func(i, j int) bool {
		if day[i].StartHour != day[j].StartHour {
			return day[i].StartHour < day[j].StartHour
		}
		return day[i].StartMinute < day[j].StartMinute
	})
	return day
}

// Normalize схлопывает дубли во всех корзинах документа и убирает пустые
func Normalize(schedule model.Schedule) model.Schedule {
	result := make(model.Schedule, len(schedule))
	for course, subjects := range schedule {
		for subject, blocks := range subjects {
			blocks = Dedup(blocks)
			if len(blocks) == 0 {
				continue
			}
			if result[course] == nil {
				result[course] = make(map[string][]model.WeeklyBlock)
			}
			result[course][subject] = blocks
		}
	}
	return result
}

// Pair курс и предмет из расписания
type Pair struct {
	Course  string
	Subject string
	Blocks  int
}

// Pairs перечисляет пары course/subject в стабильном порядке
func Pairs(doc *model.TimetableDocument) []Pair {
	if doc == nil {
		return nil
	}

	var pairs []Pair
	for course, subjects := range doc.Blocks {
		for subject, blocks := range subjects {
			pairs = append(pairs, Pair{Course: course, Subject: subject, Blocks: len(blocks)})
		}
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Course != pairs[j].Course {
			return pairs[i].Course < pairs[j].Course
		}
		return pairs[i].Subject < pairs[j].Subject
	})
	return pairs
}
