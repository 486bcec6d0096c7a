package timetable

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	src := `{
		"5th Grade": {
			"Math": [
				{"weekday": 1, "start": "10:00"},
				{"weekday": 1, "start": "10:00", "duration": 45},
				{"weekday": 3, "start": "08:30", "duration": 45}
			],
			"Art": []
		},
		"6th Grade": {
			"Science": [{"weekday": 7, "start": "12:15", "duration": 60}]
		}
	}`

	schedule, err := DecodeJSON(strings.NewReader(src))
	require.NoError(t, err)

	math := schedule["5th Grade"]["Math"]
	require.Len(t, math, 2)
	assert.Equal(t, time.Monday, math[0].Weekday)
	assert.Equal(t, 90, math[0].DurationMinutes)
	assert.Equal(t, time.Wednesday, math[1].Weekday)
	assert.Equal(t, 30, math[1].StartMinute)

	_, hasArt := schedule["5th Grade"]["Art"]
	assert.False(t, hasArt, "empty buckets are dropped")

	science := schedule["6th Grade"]["Science"]
	require.Len(t, science, 1)
	assert.Equal(t, time.Sunday, science[0].Weekday)
}

func TestDecodeJSON_Invalid(t *testing.T) {
	cases := map[string]string{
		"syntax":          `{"5th Grade":`,
		"weekday range":   `{"A": {"B": [{"weekday": 8, "start": "10:00"}]}}`,
		"missing weekday": `{"A": {"B": [{"start": "10:00"}]}}`,
		"bad start":       `{"A": {"B": [{"weekday": 1, "start": "10am"}]}}`,
		"empty":           `{}`,
	}

	for name, src := range cases {
		_, err := DecodeJSON(strings.NewReader(src))
		assert.Error(t, err, name)
	}
}

const testICS = "BEGIN:VCALENDAR\r\n" +
	"VERSION:2.0\r\n" +
	"PRODID:-//Test//Test//EN\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:1\r\n" +
	"SUMMARY:Math\r\n" +
	"CATEGORIES:5th Grade\r\n" +
	"DTSTART;TZID=Europe/Moscow:20250303T100000\r\n" +
	"DTEND;TZID=Europe/Moscow:20250303T113000\r\n" +
	"RRULE:FREQ=WEEKLY;COUNT=16\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:2\r\n" +
	"SUMMARY:Math\r\n" +
	"CATEGORIES:5th Grade\r\n" +
	"DTSTART;TZID=Europe/Moscow:20250310T100000\r\n" +
	"DTEND;TZID=Europe/Moscow:20250310T113000\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:3\r\n" +
	"SUMMARY:Science\r\n" +
	"LOCATION:6th Grade\r\n" +
	"DTSTART;TZID=Europe/Moscow:20250305T083000\r\n" +
	"DTEND;TZID=Europe/Moscow:20250305T091500\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:4\r\n" +
	"SUMMARY:Daily standup\r\n" +
	"DTSTART;TZID=Europe/Moscow:20250305T080000\r\n" +
	"RRULE:FREQ=DAILY\r\n" +
	"END:VEVENT\r\n" +
	"END:VCALENDAR\r\n"

func TestDecodeICS(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)

	schedule, err := DecodeICS(strings.NewReader(testICS), loc)
	require.NoError(t, err)

	math := schedule["5th Grade"]["Math"]
	require.Len(t, math, 1, "same lesson on two weeks is one block")
	assert.Equal(t, time.Monday, math[0].Weekday)
	assert.Equal(t, "10:00", math[0].Start())
	assert.Equal(t, 90, math[0].DurationMinutes)

	science := schedule["6th Grade"]["Science"]
	require.Len(t, science, 1)
	assert.Equal(t, time.Wednesday, science[0].Weekday)
	assert.Equal(t, 45, science[0].DurationMinutes)

	_, hasGeneral := schedule[DefaultICSCourse]
	assert.False(t, hasGeneral, "daily events are skipped")
}

func TestDecodeICS_Garbage(t *testing.T) {
	_, err := DecodeICS(strings.NewReader("not a calendar"), time.UTC)
	assert.Error(t, err)
}
