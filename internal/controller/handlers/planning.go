package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/google/uuid"
)

const generateUsage = "❌ Формат:\n/generate курс | предмет | год | неделя [| конец юнита YYYY-MM-DD]\nтема урока 1\nтема урока 2"

// HandleGenerate раскладывает уроки юнита и сохраняет их
func (h *Handlers) HandleGenerate(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.generate(ctx, b, update, true)
}

// HandlePreview показывает раскладку без сохранения
func (h *Handlers) HandlePreview(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.generate(ctx, b, update, false)
}

func (h *Handlers) generate(ctx context.Context, b *bot.Bot, update *models.Update, persist bool) {
	user, ok := h.requireUser(ctx, b, update)
	if !ok {
		return
	}
	chatID := update.Message.Chat.ID

	req, err := parseGenerate(update.Message.Text)
	if errors.Is(err, errUsage) {
		h.sendMessage(ctx, b, chatID, generateUsage)
		return
	}
	if err != nil {
		h.sendMessage(ctx, b, chatID, "❌ "+err.Error())
		return
	}

	run := h.planningService.Generate
	if !persist {
		run = h.planningService.Preview
	}

	resp, err := run(ctx, user.ID, req)
	if err != nil {
		h.replyError(ctx, b, chatID, "generate", err)
		return
	}

	h.sendMessage(ctx, b, chatID, formatGenerate(resp, persist))
}

// HandleWeek показывает уроки ISO-недели
func (h *Handlers) HandleWeek(ctx context.Context, b *bot.Bot, update *models.Update) {
	user, ok := h.requireUser(ctx, b, update)
	if !ok {
		return
	}
	chatID := update.Message.Chat.ID

	args, _ := commandArgs(update.Message.Text)
	year, week, err := parseYearWeek(args, localNow(h.location))
	if err != nil {
		h.sendMessage(ctx, b, chatID, "❌ Формат: /week [YYYY WW]")
		return
	}

	sessions, err := h.planningService.WeekSessions(ctx, user.ID, year, week)
	if err != nil {
		h.replyError(ctx, b, chatID, "week sessions", err)
		return
	}

	h.sendMessage(ctx, b, chatID, formatWeek(year, week, sessions))
}

// HandleUndo удаляет уроки одной генерации
func (h *Handlers) HandleUndo(ctx context.Context, b *bot.Bot, update *models.Update) {
	user, ok := h.requireUser(ctx, b, update)
	if !ok {
		return
	}
	chatID := update.Message.Chat.ID

	args, _ := commandArgs(update.Message.Text)
	batchID, err := uuid.Parse(args)
	if err != nil {
		h.sendMessage(ctx, b, chatID, "❌ Формат: /undo ID (его присылает /generate)")
		return
	}

	deleted, err := h.planningService.UndoBatch(ctx, user.ID, batchID)
	if err != nil {
		h.replyError(ctx, b, chatID, "undo batch", err)
		return
	}
	if deleted == 0 {
		h.sendMessage(ctx, b, chatID, "❌ Генерация не найдена или уже отменена.")
		return
	}

	h.sendMessage(ctx, b, chatID, fmt.Sprintf("✅ Удалено %d %s", deleted, pluralizeLessons(int(deleted))))
}
