package timetable

import (
	"testing"
	"time"

	"github.com/Freeeeeet/lesson_planner/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestBucket_CollapsesDuplicates(t *testing.T) {
	doc := &model.TimetableDocument{
		Blocks: model.Schedule{
			"5th Grade": {
				"Math": {
					{Weekday: time.Monday, StartHour: 10, DurationMinutes: 45},
					{Weekday: time.Monday, StartHour: 10, DurationMinutes: 90},
					{Weekday: time.Wednesday, StartHour: 8, StartMinute: 30},
				},
			},
		},
	}

	blocks := Bucket(doc, "5th Grade", "Math")
	if assert.Len(t, blocks, 2) {
		assert.Equal(t, 45, blocks[0].DurationMinutes, "first occurrence wins")
		assert.Equal(t, model.DefaultBlockDuration, blocks[1].DurationMinutes)
	}

	assert.Empty(t, Bucket(doc, "5th Grade", "History"))
	assert.Empty(t, Bucket(nil, "5th Grade", "Math"))
}

func TestOn_SortsByStart(t *testing.T) {
	blocks := []model.WeeklyBlock{
		{Weekday: time.Tuesday, StartHour: 14},
		{Weekday: time.Tuesday, StartHour: 9, StartMinute: 45},
		{Weekday: time.Thursday, StartHour: 8},
		{Weekday: time.Tuesday, StartHour: 9, StartMinute: 5},
	}

	day := On(blocks, time.Tuesday)
	if assert.Len(t, day, 3) {
		assert.Equal(t, "09:05", day[0].Start())
		assert.Equal(t, "09:45", day[1].Start())
		assert.Equal(t, "14:00", day[2].Start())
	}
	assert.Empty(t, On(blocks, time.Sunday))
}

func TestPairs(t *testing.T) {
	doc := &model.TimetableDocument{
		Blocks: model.Schedule{
			"6th Grade": {"Science": {{Weekday: time.Friday}}},
			"5th Grade": {"Math": {{Weekday: time.Monday}, {Weekday: time.Tuesday}}, "Art": {{Weekday: time.Friday}}},
		},
	}

	pairs := Pairs(doc)
	assert.Equal(t, []Pair{
		{Course: "5th Grade", Subject: "Art", Blocks: 1},
		{Course: "5th Grade", Subject: "Math", Blocks: 2},
		{Course: "6th Grade", Subject: "Science", Blocks: 1},
	}, pairs)
}
