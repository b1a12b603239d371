package handlers

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"hourlogger/export"
	"hourlogger/utils"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (h *BotHandler) handleExportCSV(chatID int64) {
	name := export.FileName(h.svc.Today(), "csv")
	content := export.ToDelimitedText(h.svc.Logs(), h.config.Location)

	log.Printf("Sending %s (%d bytes) to %d", name, len(content), chatID)

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: name, Bytes: []byte(content)})
	doc.Caption = "📊 " + name
	if _, err := h.bot.Send(doc); err != nil {
		h.showError(chatID, "Failed to send file: "+err.Error())
	}
}

func (h *BotHandler) handleExportExcel(chatID int64) {
	path, err := h.excelProcessor.ExportWorkbook(h.svc.Logs(), h.config.ExportDir, h.svc.Today())
	if err != nil {
		h.showError(chatID, "Failed to create Excel file: "+err.Error())
		return
	}
	defer os.Remove(path) // Удаляем временный файл

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FilePath(path))
	doc.Caption = "📊 " + filepath.Base(path)
	if _, err := h.bot.Send(doc); err != nil {
		h.showError(chatID, "Failed to send file: "+err.Error())
	}
}

func (h *BotHandler) handleAddExcel(chatID int64, document *tgbotapi.Document) {
	if !utils.IsExcelFile(document.FileName) {
		h.showError(chatID, "File must be an Excel workbook (.xlsx or .xls)")
		return
	}

	// Получаем прямую ссылку на файл
	fileURL, err := h.bot.GetFileDirectURL(document.FileID)
	if err != nil {
		h.showError(chatID, "Failed to get file: "+err.Error())
		return
	}

	// Расширение сохраняем: от него зависит способ чтения
	tmpFile := filepath.Join(os.TempDir(),
		fmt.Sprintf("roster_%s%s", document.FileID, utils.GetFileExtension(document.FileName)))
	defer os.Remove(tmpFile)

	if err := utils.DownloadFile(fileURL, tmpFile); err != nil {
		h.showError(chatID, "Failed to download file: "+err.Error())
		return
	}

	added, err := h.excelProcessor.ImportRoster(tmpFile)
	if err != nil {
		h.showError(chatID, "Failed to import roster: "+err.Error())
		return
	}

	if len(added) == 0 {
		h.send(tgbotapi.NewMessage(chatID, "✅ No new employees found. Everyone is already on the roster."))
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "✅ Added %d new employees:\n\n", len(added))
	for i, e := range added {
		fmt.Fprintf(&b, "%d. %s\n", i+1, e.Name)

		// Ограничиваем длину сообщения
		if b.Len() > 3500 && i < len(added)-1 {
			b.WriteString("\n... and more")
			break
		}
	}
	h.send(tgbotapi.NewMessage(chatID, b.String()))
}
