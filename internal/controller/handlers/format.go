package handlers

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Freeeeeet/lesson_planner/internal/calendar"
	"github.com/Freeeeeet/lesson_planner/internal/model"
	"github.com/Freeeeeet/lesson_planner/internal/planner"
	"github.com/Freeeeeet/lesson_planner/internal/service"
	"github.com/Freeeeeet/lesson_planner/internal/timetable"
)

const msgInternalError = "❌ Произошла ошибка. Попробуйте позже."

var weekdayNames = [...]string{
	"Воскресенье",
	"Понедельник",
	"Вторник",
	"Среда",
	"Четверг",
	"Пятница",
	"Суббота",
}

var weekdayShortNames = [...]string{"Вс", "Пн", "Вт", "Ср", "Чт", "Пт", "Сб"}

// formatDuration форматирует длительность в минутах
func formatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d мин", minutes)
	}
	hours := minutes / 60
	mins := minutes % 60
	if mins == 0 {
		return fmt.Sprintf("%d ч", hours)
	}
	return fmt.Sprintf("%d ч %d мин", hours, mins)
}

// pluralizeLessons склоняет слово "урок"
func pluralizeLessons(count int) string {
	if count%10 == 1 && count%100 != 11 {
		return "урок"
	}
	if count%10 >= 2 && count%10 <= 4 && (count%100 < 10 || count%100 >= 20) {
		return "урока"
	}
	return "уроков"
}

// failureText переводит вид отказа генерации в сообщение пользователю
func failureText(kind planner.Kind) string {
	switch kind {
	case planner.KindNoActiveTimetable:
		return "Нет расписания. Загрузите его командой /import."
	case planner.KindNoBlocksConfigured:
		return "В расписании нет такого курса и предмета. Проверьте /timetable."
	case planner.KindDuplicateBooking:
		return "Этот курс уже занят в одном из слотов."
	case planner.KindTeacherConflict:
		return "В одном из слотов у вас уже стоит другой курс."
	case planner.KindInsufficientSlots:
		return "Не хватает свободных слотов."
	default:
		return "Не удалось разложить уроки."
	}
}

// formatGenerate описывает результат генерации или предпросмотра
func formatGenerate(resp *service.GenerateResponse, persisted bool) string {
	var sb strings.Builder

	if !resp.Success {
		sb.WriteString("❌ " + failureText(resp.ErrorKind) + "\n\n")
		sb.WriteString(resp.Message)
		return sb.String()
	}

	if persisted {
		fmt.Fprintf(&sb, "✅ Создано %d %s\n", len(resp.Sessions), pluralizeLessons(len(resp.Sessions)))
	} else {
		fmt.Fprintf(&sb, "👀 Предпросмотр: %d %s\n", len(resp.Sessions), pluralizeLessons(len(resp.Sessions)))
	}
	if resp.Shortfall > 0 {
		fmt.Fprintf(&sb, "⚠️ Юнит заканчивается раньше: не поместилось %d из %d\n", resp.Shortfall, resp.Requested)
	}
	sb.WriteString("\n")

	for i, s := range resp.Sessions {
		fmt.Fprintf(&sb, "%d. %s %s (%s)\n",
			i+1,
			weekdayShortNames[s.DateTime.Weekday()],
			s.DateTime.Format("02.01.2006 15:04"),
			formatDuration(s.DurationMinutes),
		)
	}

	if persisted {
		fmt.Fprintf(&sb, "\nОтменить: /undo %s", resp.BatchID)
	}
	return sb.String()
}

// formatWeek выводит уроки недели по дням
func formatWeek(year, week int, sessions []model.ClassSession) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "🗓 Неделя %d, %d\n", week, year)

	if len(sessions) == 0 {
		sb.WriteString("\nУроков нет.")
		return sb.String()
	}

	var currentDay string
	for _, s := range sessions {
		day := calendar.DayKey(s.DateTime)
		if day != currentDay {
			currentDay = day
			fmt.Fprintf(&sb, "\n%s, %s\n", weekdayNames[s.DateTime.Weekday()], s.DateTime.Format("02.01"))
		}
		fmt.Fprintf(&sb, "  %s-%s %s / %s\n",
			s.DateTime.Format("15:04"),
			s.EndTime().Format("15:04"),
			s.Course,
			s.Subject,
		)
	}
	return sb.String()
}

// formatTimetable выводит недельные блоки документа по парам курс/предмет
func formatTimetable(doc *model.TimetableDocument) string {
	var sb strings.Builder

	title := doc.Title
	if title == "" {
		title = fmt.Sprintf("#%d", doc.ID)
	}
	fmt.Fprintf(&sb, "📚 Расписание %s (действует с %s)\n", title, doc.EffectiveFrom)

	for _, pair := range timetable.Pairs(doc) {
		fmt.Fprintf(&sb, "\n%s / %s\n", pair.Course, pair.Subject)
		blocks := timetable.Bucket(doc, pair.Course, pair.Subject)
		sort.Slice(blocks, func(i, j int) bool {
			return blockOrder(blocks[i]) < blockOrder(blocks[j])
		})
		for _, block := range blocks {
			fmt.Fprintf(&sb, "  %s %s, %s\n",
				weekdayShortNames[block.Weekday],
				block.Start(),
				formatDuration(block.Duration()),
			)
		}
	}
	return sb.String()
}

// formatCalendar выводит границы учебного года и неучебные диапазоны
func formatCalendar(cal *model.ExclusionCalendar) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "📆 Учебный год %d\n", cal.Year)

	start, end := cal.YearStart, cal.YearEnd
	if start == "" {
		start = "…"
	}
	if end == "" {
		end = "…"
	}
	fmt.Fprintf(&sb, "Занятия: %s - %s\n", start, end)

	if len(cal.Ranges) == 0 {
		sb.WriteString("\nКаникул нет.")
		return sb.String()
	}

	sb.WriteString("\nКаникулы и праздники:\n")
	for _, rng := range cal.Ranges {
		fmt.Fprintf(&sb, "  #%d %s: %s - %s\n", rng.ID, rng.Title, rng.Start, rng.End)
	}
	return sb.String()
}

// blockOrder порядок блока в неделе, начиная с понедельника
func blockOrder(b model.WeeklyBlock) int {
	return ((int(b.Weekday)+6)%7)*24*60 + b.StartHour*60 + b.StartMinute
}

func localNow(loc *time.Location) time.Time {
	return time.Now().In(loc)
}
