package timetable

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Freeeeeet/lesson_planner/internal/model"
)

// maxImportSize ограничение на размер загружаемого файла расписания
const maxImportSize = 5 * 1024 * 1024

// DecodeJSON разбирает расписание вида
//
//	{"5th Grade": {"Math": [{"weekday": 1, "start": "10:00", "duration": 90}]}}
//
// Дни недели в ISO-нумерации, перевод во внутреннюю делает model.WeeklyBlock.
func DecodeJSON(r io.Reader) (model.Schedule, error) {
	var schedule model.Schedule

	dec := json.NewDecoder(io.LimitReader(r, maxImportSize))
	if err := dec.Decode(&schedule); err != nil {
		return nil, fmt.Errorf("decode timetable json: %w", err)
	}

	schedule = Normalize(schedule)
	if len(schedule) == 0 {
		return nil, fmt.Errorf("timetable has no blocks")
	}

	return schedule, nil
}
