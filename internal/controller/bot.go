package controller

import (
	"context"

	"github.com/Freeeeeet/lesson_planner/internal/controller/handlers"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

type BotController struct {
	bot      *bot.Bot
	handlers *handlers.Handlers
	logger   *zap.Logger
}

func NewBotController(botInstance *bot.Bot, cmdHandlers *handlers.Handlers, logger *zap.Logger) *BotController {
	return &BotController{
		bot:      botInstance,
		handlers: cmdHandlers,
		logger:   logger,
	}
}

// RegisterHandlers регистрирует все обработчики команд
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, c.handlers.HandleStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, c.handlers.HandleHelp)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/cancel", bot.MatchTypeExact, c.handlers.HandleCancel)

	// Расписание
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/import", bot.MatchTypePrefix, c.handlers.HandleImport)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/timetable", bot.MatchTypePrefix, c.handlers.HandleTimetable)
	c.bot.RegisterHandlerMatchFunc(handlers.IsTimetableUpload, c.handlers.HandleDocument)

	// Учебный календарь
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/calendar", bot.MatchTypePrefix, c.handlers.HandleCalendar)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/holiday", bot.MatchTypePrefix, c.handlers.HandleHoliday)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/unholiday", bot.MatchTypePrefix, c.handlers.HandleUnholiday)

	// Уроки
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/generate", bot.MatchTypePrefix, c.handlers.HandleGenerate)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/preview", bot.MatchTypePrefix, c.handlers.HandlePreview)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/week", bot.MatchTypePrefix, c.handlers.HandleWeek)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/undo", bot.MatchTypePrefix, c.handlers.HandleUndo)

	return c.setCommands(ctx)
}

// setCommands устанавливает список команд в меню бота
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "start", Description: "🚀 Начать работу с ботом"},
		{Command: "help", Description: "❓ Справка по командам"},
		{Command: "import", Description: "📎 Загрузить расписание"},
		{Command: "timetable", Description: "📚 Текущее расписание"},
		{Command: "calendar", Description: "📆 Учебный год и каникулы"},
		{Command: "holiday", Description: "🏖 Добавить каникулы"},
		{Command: "generate", Description: "🗓 Разложить уроки юнита"},
		{Command: "preview", Description: "👀 Предпросмотр раскладки"},
		{Command: "week", Description: "📅 Уроки недели"},
		{Command: "undo", Description: "↩️ Отменить генерацию"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})
	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("✅ Bot commands menu set")
	return nil
}

// Start запускает бота и блокируется до отмены ctx
func (c *BotController) Start(ctx context.Context) {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
	c.logger.Info("Bot stopped")
}
