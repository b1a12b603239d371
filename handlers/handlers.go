package handlers

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"hourlogger/config"
	"hourlogger/database"
	"hourlogger/excel"
	"hourlogger/tracker"
	"hourlogger/utils"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	stateWaitingName   = "waiting_employee_name"
	stateWaitingPhrase = "waiting_clear_phrase"
)

// BotAPI - часть *tgbotapi.BotAPI, которой пользуется обработчик
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetFileDirectURL(fileID string) (string, error)
}

type BotHandler struct {
	bot            BotAPI
	svc            *tracker.Service
	excelProcessor *excel.ExcelProcessor
	flash          *Flasher
	userStates     map[int64]string
	config         *config.Config
}

func NewBotHandler(bot BotAPI, svc *tracker.Service, cfg *config.Config) *BotHandler {
	return &BotHandler{
		bot:            bot,
		svc:            svc,
		excelProcessor: excel.NewExcelProcessor(svc, cfg.Location),
		flash:          NewFlasher(bot, cfg.MessageTTL),
		userStates:     make(map[int64]string),
		config:         cfg,
	}
}

// Close освобождает таймеры уведомлений
func (h *BotHandler) Close() {
	h.flash.Close()
}

func (h *BotHandler) HandleMessage(update tgbotapi.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID
	text := update.Message.Text

	// Документ с подписью /add_excel - импорт списка сотрудников
	if update.Message.Document != nil && strings.HasPrefix(update.Message.Caption, "/add_excel") {
		if !h.checkAdmin(chatID) {
			return
		}
		h.handleAddExcel(chatID, update.Message.Document)
		return
	}

	switch {
	case text == "/start":
		delete(h.userStates, chatID)
		h.handleStart(chatID)
	case text == btnAddEmployee:
		h.userStates[chatID] = stateWaitingName
		h.send(tgbotapi.NewMessage(chatID, "📝 Enter new employee's name:"))
	case text == btnCheckIn:
		delete(h.userStates, chatID)
		h.handleSelectEmployee(chatID, actionCheckIn)
	case text == btnCheckOut:
		delete(h.userStates, chatID)
		h.handleSelectEmployee(chatID, actionCheckOut)
	case text == btnTodayLogs:
		h.showLogs(chatID)
	case text == btnExportCSV:
		h.handleExportCSV(chatID)
	case text == btnClearLogs:
		h.userStates[chatID] = stateWaitingPhrase
		msg := tgbotapi.NewMessage(chatID, "🔒 Enter password to confirm clearing the logs")
		msg.ReplyMarkup = CreateClearCancelKeyboard()
		h.send(msg)
	case text == "/export_xlsx":
		if h.checkAdmin(chatID) {
			h.handleExportExcel(chatID)
		}
	case strings.HasPrefix(text, "/add_excel"):
		h.showError(chatID, "Attach an Excel file to the /add_excel command")
	case h.userStates[chatID] == stateWaitingName:
		delete(h.userStates, chatID)
		h.addEmployee(chatID, text)
	case h.userStates[chatID] == stateWaitingPhrase:
		delete(h.userStates, chatID)
		// Пароль не должен оставаться в истории чата
		h.request(tgbotapi.NewDeleteMessage(chatID, update.Message.MessageID))
		h.clearLogs(chatID, text)
	default:
		h.send(tgbotapi.NewMessage(chatID, "Unknown command. Use the buttons below."))
	}
}

func (h *BotHandler) HandleCallback(update tgbotapi.Update) {
	callback := update.CallbackQuery
	if callback == nil || callback.Message == nil {
		return
	}

	data := callback.Data
	chatID := callback.Message.Chat.ID
	h.request(tgbotapi.NewCallback(callback.ID, ""))

	switch {
	case data == callbackClearStop:
		delete(h.userStates, chatID)
		h.request(tgbotapi.NewDeleteMessage(chatID, callback.Message.MessageID))
	case strings.HasPrefix(data, actionCheckIn+"_"):
		h.handleSessionCallback(chatID, callback.Message.MessageID, strings.TrimPrefix(data, actionCheckIn+"_"), h.checkIn)
	case strings.HasPrefix(data, actionCheckOut+"_"):
		h.handleSessionCallback(chatID, callback.Message.MessageID, strings.TrimPrefix(data, actionCheckOut+"_"), h.checkOut)
	}
}

func (h *BotHandler) handleStart(chatID int64) {
	msg := tgbotapi.NewMessage(chatID, "Hour logger is ready. Use the buttons below.")
	msg.ReplyMarkup = GetMainKeyboard()
	h.send(msg)
}

// handleSelectEmployee предлагает только тех, для кого действие допустимо
func (h *BotHandler) handleSelectEmployee(chatID int64, action string) {
	employees := h.svc.Employees()
	if len(employees) == 0 {
		h.showError(chatID, "No employees yet. Add one first.")
		return
	}

	loggedIn := tracker.LoggedIn(h.svc.Logs())
	var candidates []database.Employee
	for _, e := range employees {
		if loggedIn[e.ID] == (action == actionCheckOut) {
			candidates = append(candidates, e)
		}
	}

	if len(candidates) == 0 {
		if action == actionCheckIn {
			h.showError(chatID, "Everyone is already logged in!")
		} else {
			h.showError(chatID, "Nobody is logged in!")
		}
		return
	}

	prompt := "👥 Select employee to check in:"
	if action == actionCheckOut {
		prompt = "👥 Select employee to check out:"
	}

	msg := tgbotapi.NewMessage(chatID, prompt)
	msg.ReplyMarkup = CreateEmployeeSelectionKeyboard(candidates, action)
	h.send(msg)
}

func (h *BotHandler) handleSessionCallback(chatID int64, messageID int, rawID string, apply func(int64, int)) {
	// Удаляем сообщение с кнопками
	h.request(tgbotapi.NewDeleteMessage(chatID, messageID))

	employeeID, err := strconv.Atoi(rawID)
	if err != nil {
		h.flash.Show(chatID, tracker.MessageFor(tracker.ErrUnknownEmployee))
		return
	}
	apply(chatID, employeeID)
}

func (h *BotHandler) addEmployee(chatID int64, name string) {
	employee, err := h.svc.AddEmployee(name)
	if err != nil {
		h.flash.Show(chatID, tracker.MessageFor(err))
		return
	}
	h.flash.Show(chatID, tracker.AddedMessage(employee.Name))
}

func (h *BotHandler) checkIn(chatID int64, employeeID int) {
	if _, err := h.svc.CheckIn(employeeID); err != nil {
		h.flash.Show(chatID, tracker.MessageFor(err))
		return
	}
	h.flash.Show(chatID, tracker.CheckedInMessage)
}

func (h *BotHandler) checkOut(chatID int64, employeeID int) {
	if _, err := h.svc.CheckOut(employeeID); err != nil {
		h.flash.Show(chatID, tracker.MessageFor(err))
		return
	}
	h.flash.Show(chatID, tracker.CheckedOutMessage)
}

func (h *BotHandler) clearLogs(chatID int64, phrase string) {
	if _, err := h.svc.ClearToday(phrase); err != nil {
		h.flash.Show(chatID, tracker.MessageFor(err))
		return
	}
	h.flash.Show(chatID, tracker.ClearedMessage)
}

func (h *BotHandler) showLogs(chatID int64) {
	logs := h.svc.Logs()
	if len(logs) == 0 {
		h.send(tgbotapi.NewMessage(chatID, "📋 Today's Logs\n\nNo entries yet."))
		return
	}

	var b strings.Builder
	b.WriteString("📋 Today's Logs\n\n")
	for _, l := range logs {
		checkOut := "Currently Logged In"
		if l.CheckOut != nil {
			checkOut = utils.FormatLocale(*l.CheckOut, h.config.Location)
		}
		fmt.Fprintf(&b, "%s | %s | %s\n", l.EmployeeName, utils.FormatLocale(l.CheckIn, h.config.Location), checkOut)

		// Ограничиваем длину сообщения
		if b.Len() > 3500 {
			b.WriteString("\n... and more, export to CSV for the full log")
			break
		}
	}

	h.send(tgbotapi.NewMessage(chatID, b.String()))
}

func (h *BotHandler) showError(chatID int64, text string) {
	h.flash.Show(chatID, tracker.Message{Text: text, Severity: tracker.SeverityError})
}

func (h *BotHandler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		log.Printf("Failed to send: %v", err)
	}
}

func (h *BotHandler) request(c tgbotapi.Chattable) {
	if _, err := h.bot.Request(c); err != nil {
		log.Printf("Request failed: %v", err)
	}
}

func (h *BotHandler) isAdmin(chatID int64) bool {
	return h.config.IsAdmin(chatID)
}

func (h *BotHandler) checkAdmin(chatID int64) bool {
	if !h.isAdmin(chatID) {
		h.showError(chatID, "You are not allowed to run this command")
		return false
	}
	return true
}
