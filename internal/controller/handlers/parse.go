package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Freeeeeet/lesson_planner/internal/calendar"
	"github.com/Freeeeeet/lesson_planner/internal/service"
)

var errUsage = errors.New("usage")

// commandArgs отрезает "/command" (и "@bot") от первой строки сообщения
func commandArgs(text string) (string, string) {
	firstLine, rest, _ := strings.Cut(text, "\n")
	_, args, _ := strings.Cut(strings.TrimSpace(firstLine), " ")
	return strings.TrimSpace(args), rest
}

// parseGenerate разбирает сообщение вида
//
//	/generate 5th Grade | Math | 2025 | 10 [| 2025-05-30]
//	Дроби: сложение
//	{"objective": "Дроби: вычитание", "homework": "стр. 12"}
//
// Каждая следующая непустая строка становится содержимым одного урока.
// JSON-объект берётся как есть, обычный текст оборачивается в {"objective": ...}.
func parseGenerate(text string) (service.GenerateRequest, error) {
	var req service.GenerateRequest

	header, body := commandArgs(text)
	fields := strings.Split(header, "|")
	if len(fields) < 4 || len(fields) > 5 {
		return req, errUsage
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	year, err := strconv.Atoi(fields[2])
	if err != nil {
		return req, fmt.Errorf("год должен быть числом: %q", fields[2])
	}
	week, err := strconv.Atoi(fields[3])
	if err != nil {
		return req, fmt.Errorf("неделя должна быть числом: %q", fields[3])
	}

	req.Course = fields[0]
	req.Subject = fields[1]
	req.Year = year
	req.Week = week
	if len(fields) == 5 {
		req.UnitEnd = fields[4]
	}

	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		payload, err := linePayload(line)
		if err != nil {
			return req, err
		}
		req.Payloads = append(req.Payloads, payload)
	}

	if len(req.Payloads) == 0 {
		return req, errors.New("добавьте хотя бы одну строку с темой урока")
	}

	return req, nil
}

func linePayload(line string) (json.RawMessage, error) {
	if strings.HasPrefix(line, "{") {
		if !json.Valid([]byte(line)) {
			return nil, fmt.Errorf("некорректный JSON: %s", line)
		}
		return json.RawMessage(line), nil
	}
	return json.Marshal(map[string]string{"objective": line})
}

// parseYearWeek читает "YYYY WW"; без аргументов берёт текущую ISO-неделю
func parseYearWeek(args string, now time.Time) (int, int, error) {
	fields := strings.Fields(args)
	switch len(fields) {
	case 0:
		year, week := calendar.YearWeek(now)
		return year, week, nil
	case 2:
		year, err := strconv.Atoi(fields[0])
		if err != nil {
			return 0, 0, errUsage
		}
		week, err := strconv.Atoi(fields[1])
		if err != nil || week < 1 || week > 53 {
			return 0, 0, errUsage
		}
		return year, week, nil
	default:
		return 0, 0, errUsage
	}
}

// parseImport читает "[YYYY-MM-DD] [название]"
func parseImport(args string) (effectiveFrom, title string) {
	first, rest, _ := strings.Cut(args, " ")
	if _, err := time.Parse(calendar.DayLayout, first); err == nil {
		return first, strings.TrimSpace(rest)
	}
	return "", args
}

// parseRange читает "YYYY-MM-DD YYYY-MM-DD название"
func parseRange(args string) (start, end, title string, err error) {
	fields := strings.SplitN(args, " ", 3)
	if len(fields) < 3 {
		return "", "", "", errUsage
	}
	return fields[0], fields[1], strings.TrimSpace(fields[2]), nil
}
