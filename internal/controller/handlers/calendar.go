package handlers

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// HandleCalendar показывает календарь года или задаёт его границы:
// /calendar 2025 или /calendar 2025 2025-01-09 2025-12-20
func (h *Handlers) HandleCalendar(ctx context.Context, b *bot.Bot, update *models.Update) {
	user, ok := h.requireUser(ctx, b, update)
	if !ok {
		return
	}
	chatID := update.Message.Chat.ID

	args, _ := commandArgs(update.Message.Text)
	fields := strings.Fields(args)

	year := localNow(h.location).Year()
	if len(fields) > 0 {
		parsed, err := strconv.Atoi(fields[0])
		if err != nil {
			h.sendMessage(ctx, b, chatID, "❌ Формат: /calendar YYYY [начало конец]")
			return
		}
		year = parsed
	}

	switch len(fields) {
	case 0, 1:
		cal, err := h.calendarService.Get(ctx, user.ID, year)
		if err != nil {
			h.replyError(ctx, b, chatID, "get calendar", err)
			return
		}
		if cal == nil {
			h.sendMessage(ctx, b, chatID, fmt.Sprintf("📆 Календарь %d не настроен: все дни учебные.", year))
			return
		}
		h.sendMessage(ctx, b, chatID, formatCalendar(cal))
	case 3:
		cal, err := h.calendarService.SetYear(ctx, user.ID, year, fields[1], fields[2])
		if err != nil {
			h.replyError(ctx, b, chatID, "set year", err)
			return
		}
		h.sendMessage(ctx, b, chatID, fmt.Sprintf("✅ Учебный год %d: %s - %s", cal.Year, cal.YearStart, cal.YearEnd))
	default:
		h.sendMessage(ctx, b, chatID, "❌ Формат: /calendar YYYY [начало конец]")
	}
}

// HandleHoliday добавляет неучебный диапазон в календарь года его начала
func (h *Handlers) HandleHoliday(ctx context.Context, b *bot.Bot, update *models.Update) {
	user, ok := h.requireUser(ctx, b, update)
	if !ok {
		return
	}
	chatID := update.Message.Chat.ID

	args, _ := commandArgs(update.Message.Text)
	start, end, title, err := parseRange(args)
	if err != nil {
		h.sendMessage(ctx, b, chatID, "❌ Формат: /holiday 2025-03-24 2025-03-30 Весенние каникулы")
		return
	}

	year, err := strconv.Atoi(start[:min(4, len(start))])
	if err != nil {
		h.sendMessage(ctx, b, chatID, "❌ Дата в формате YYYY-MM-DD")
		return
	}

	rng, err := h.calendarService.AddRange(ctx, user.ID, year, title, start, end)
	if err != nil {
		h.replyError(ctx, b, chatID, "add holiday", err)
		return
	}

	h.sendMessage(ctx, b, chatID, fmt.Sprintf("✅ #%d %s: %s - %s", rng.ID, rng.Title, rng.Start, rng.End))
}

// HandleUnholiday удаляет неучебный диапазон по ID
func (h *Handlers) HandleUnholiday(ctx context.Context, b *bot.Bot, update *models.Update) {
	user, ok := h.requireUser(ctx, b, update)
	if !ok {
		return
	}
	chatID := update.Message.Chat.ID

	args, _ := commandArgs(update.Message.Text)
	rangeID, err := strconv.ParseInt(strings.TrimPrefix(args, "#"), 10, 64)
	if err != nil {
		h.sendMessage(ctx, b, chatID, "❌ Формат: /unholiday ID")
		return
	}

	deleted, err := h.calendarService.RemoveRange(ctx, user.ID, rangeID)
	if err != nil {
		h.replyError(ctx, b, chatID, "remove holiday", err)
		return
	}
	if !deleted {
		h.sendMessage(ctx, b, chatID, "❌ Диапазон не найден.")
		return
	}

	h.sendMessage(ctx, b, chatID, "✅ Диапазон удалён.")
}
