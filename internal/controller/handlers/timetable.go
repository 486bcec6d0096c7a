package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/Freeeeeet/lesson_planner/internal/calendar"
	"github.com/Freeeeeet/lesson_planner/internal/controller/state"
	"github.com/Freeeeeet/lesson_planner/internal/model"
	"github.com/Freeeeeet/lesson_planner/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

const maxTimetableFileSize = 5 << 20

// HandleImport начинает загрузку расписания: следующим сообщением ждём файл
func (h *Handlers) HandleImport(ctx context.Context, b *bot.Bot, update *models.Update) {
	if _, ok := h.requireUser(ctx, b, update); !ok {
		return
	}

	args, _ := commandArgs(update.Message.Text)
	effectiveFrom, title := parseImport(args)

	h.stateManager.Begin(update.Message.From.ID, state.Dialog{
		State:         state.StateAwaitingTimetable,
		Title:         title,
		EffectiveFrom: effectiveFrom,
	})

	h.sendMessage(ctx, b, update.Message.Chat.ID,
		"📎 Пришлите файл расписания: .json (курс → предмет → блоки) или .ics с еженедельными событиями.\n\n"+
			"Отмена: /cancel")
}

// IsTimetableUpload проверяет, что сообщение содержит документ
func IsTimetableUpload(update *models.Update) bool {
	return update.Message != nil && update.Message.Document != nil
}

// HandleDocument принимает файл расписания в диалоге /import
func (h *Handlers) HandleDocument(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message.From == nil {
		return
	}

	telegramID := update.Message.From.ID
	chatID := update.Message.Chat.ID

	dialog, ok := h.stateManager.Get(telegramID)
	if !ok || dialog.State != state.StateAwaitingTimetable {
		h.sendMessage(ctx, b, chatID, "Чтобы загрузить расписание, сначала отправьте /import")
		return
	}

	user, ok := h.requireUser(ctx, b, update)
	if !ok {
		return
	}

	doc := update.Message.Document
	if doc.FileSize > maxTimetableFileSize {
		h.sendMessage(ctx, b, chatID, "❌ Файл слишком большой.")
		return
	}

	body, err := h.download(ctx, b, doc.FileID)
	if err != nil {
		h.logger.Error("Failed to download timetable",
			zap.Int64("telegram_id", telegramID),
			zap.String("file_name", doc.FileName),
			zap.Error(err))
		h.sendMessage(ctx, b, chatID, "❌ Не удалось скачать файл. Попробуйте ещё раз.")
		return
	}
	defer body.Close()

	req := service.ImportRequest{Title: dialog.Title, EffectiveFrom: dialog.EffectiveFrom}
	if req.Title == "" {
		req.Title = strings.TrimSuffix(doc.FileName, path.Ext(doc.FileName))
	}

	var imported *model.TimetableDocument
	if isICS(doc) {
		imported, err = h.timetableService.ImportICS(ctx, user.ID, req, body)
	} else {
		imported, err = h.timetableService.ImportJSON(ctx, user.ID, req, body)
	}
	if err != nil {
		h.replyError(ctx, b, chatID, "import timetable", err)
		return
	}

	h.stateManager.ClearState(telegramID)
	h.sendMessage(ctx, b, chatID, "✅ Расписание загружено.\n\n"+formatTimetable(imported))
}

func isICS(doc *models.Document) bool {
	return strings.EqualFold(path.Ext(doc.FileName), ".ics") || doc.MimeType == "text/calendar"
}

// download скачивает файл, присланный пользователем
func (h *Handlers) download(ctx context.Context, b *bot.Bot, fileID string) (io.ReadCloser, error) {
	file, err := b.GetFile(ctx, &bot.GetFileParams{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.FileDownloadLink(file), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("download file: status %d", resp.StatusCode)
	}

	return resp.Body, nil
}

// HandleTimetable показывает расписание. Без даты - то, по которому идёт
// генерация; с датой - действующее на этот день.
func (h *Handlers) HandleTimetable(ctx context.Context, b *bot.Bot, update *models.Update) {
	user, ok := h.requireUser(ctx, b, update)
	if !ok {
		return
	}
	chatID := update.Message.Chat.ID

	args, _ := commandArgs(update.Message.Text)

	var doc *model.TimetableDocument
	var err error
	if args == "" {
		doc, err = h.timetableService.Active(ctx, user.ID)
	} else {
		date, parseErr := calendar.ParseDay(args, h.location)
		if parseErr != nil {
			h.sendMessage(ctx, b, chatID, "❌ Дата в формате YYYY-MM-DD, например /timetable 2025-03-03")
			return
		}
		doc, err = h.timetableService.ForDate(ctx, user.ID, date)
	}
	if err != nil {
		h.replyError(ctx, b, chatID, "show timetable", err)
		return
	}

	if doc == nil {
		h.sendMessage(ctx, b, chatID, "📭 Расписание не найдено. Загрузите его командой /import")
		return
	}

	h.sendMessage(ctx, b, chatID, formatTimetable(doc))
}
