package handlers

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/lesson_planner/internal/controller/state"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

const helpText = "📚 Справка по командам:\n\n" +
	"Расписание:\n" +
	"/import [YYYY-MM-DD] [название] - Загрузить расписание (.json или .ics)\n" +
	"/timetable [YYYY-MM-DD] - Показать расписание\n\n" +
	"Учебный календарь:\n" +
	"/calendar YYYY [начало конец] - Показать или задать учебный год\n" +
	"/holiday начало конец название - Добавить каникулы\n" +
	"/unholiday ID - Удалить каникулы\n\n" +
	"Уроки:\n" +
	"/generate курс | предмет | год | неделя [| конец юнита] - Разложить уроки\n" +
	"/preview ... - То же без сохранения\n" +
	"/week [YYYY WW] - Уроки недели\n" +
	"/undo ID - Отменить генерацию\n\n" +
	"/cancel - Отменить текущий диалог\n\n" +
	"После строки /generate каждая строка - тема одного урока, например:\n" +
	"/generate 5th Grade | Math | 2025 | 10\n" +
	"Дроби: сложение\n" +
	"Дроби: вычитание"

// HandleStart обрабатывает команду /start
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	user := update.Message.From

	registeredUser, err := h.userService.RegisterUser(
		ctx,
		user.ID,
		user.Username,
		user.FirstName,
		user.LastName,
		user.LanguageCode,
	)
	if err != nil {
		h.logger.Error("Failed to register user", zap.Error(err))
		h.sendMessage(ctx, b, update.Message.Chat.ID, "❌ Произошла ошибка при регистрации. Попробуйте позже.")
		return
	}

	welcomeText := fmt.Sprintf(
		"👋 Привет, %s!\n\n"+
			"Я раскладываю уроки юнита по вашему недельному расписанию с учётом каникул.\n\n"+
			"1. Загрузите расписание: /import\n"+
			"2. Отметьте каникулы: /holiday\n"+
			"3. Разложите уроки: /generate\n\n"+
			"Подробнее: /help",
		registeredUser.FirstName,
	)

	h.sendMessage(ctx, b, update.Message.Chat.ID, welcomeText)
}

// HandleHelp обрабатывает команду /help
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	h.sendMessage(ctx, b, update.Message.Chat.ID, helpText)
}

// HandleCancel обрабатывает команду /cancel - отмена текущего диалога
func (h *Handlers) HandleCancel(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	telegramID := update.Message.From.ID
	if h.stateManager.GetState(telegramID) == state.StateNone {
		h.sendMessage(ctx, b, update.Message.Chat.ID, "❌ Нет активных операций для отмены.")
		return
	}

	h.stateManager.ClearState(telegramID)
	h.sendMessage(ctx, b, update.Message.Chat.ID, "✅ Операция отменена.\n\nИспользуйте /help для просмотра доступных команд.")
}
