package handlers

import (
	"fmt"

	"hourlogger/database"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	btnAddEmployee = "Add Employee"
	btnCheckIn     = "Check In"
	btnCheckOut    = "Check Out"
	btnTodayLogs   = "Today's Logs"
	btnExportCSV   = "Export to CSV"
	btnClearLogs   = "Clear Logs"
)

const (
	actionCheckIn     = "checkin"
	actionCheckOut    = "checkout"
	callbackClearStop = "clear_cancel"
)

func GetMainKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnCheckIn),
			tgbotapi.NewKeyboardButton(btnCheckOut),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnAddEmployee),
			tgbotapi.NewKeyboardButton(btnTodayLogs),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnExportCSV),
			tgbotapi.NewKeyboardButton(btnClearLogs),
		),
	)
}

// CreateEmployeeSelectionKeyboard строит кнопки выбора сотрудника в две колонки
func CreateEmployeeSelectionKeyboard(employees []database.Employee, action string) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	for i := 0; i < len(employees); i += 2 {
		var row []tgbotapi.InlineKeyboardButton

		row = append(row, tgbotapi.NewInlineKeyboardButtonData(
			employees[i].Name,
			fmt.Sprintf("%s_%d", action, employees[i].ID),
		))

		// Вторая кнопка в ряду (если есть)
		if i+1 < len(employees) {
			row = append(row, tgbotapi.NewInlineKeyboardButtonData(
				employees[i+1].Name,
				fmt.Sprintf("%s_%d", action, employees[i+1].ID),
			))
		}

		rows = append(rows, row)
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func CreateClearCancelKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Cancel", callbackClearStop),
		),
	)
}
