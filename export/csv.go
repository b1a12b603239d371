package export

import (
	"fmt"
	"strings"
	"time"

	"hourlogger/database"
	"hourlogger/utils"
)

// MIMEType - тип выгрузки. В Telegram FileBytes уходит без типа, клиент определяет его по расширению .csv
const MIMEType = "text/csv"

// Header совпадает с исходным форматом: дата и время каждой отметки идут отдельными колонками
var Header = []string{"Employee", "Check In", "Time", "Check Out", "Time"}

// ToDelimitedText собирает CSV без экранирования. Имя с запятой сломает строку -
// это известное ограничение формата.
func ToDelimitedText(logs []database.WorkLog, loc *time.Location) string {
	lines := make([]string, 0, len(logs)+1)
	lines = append(lines, strings.Join(Header, ","))

	for _, l := range logs {
		lines = append(lines, strings.Join([]string{
			l.EmployeeName,
			utils.FormatLocale(l.CheckIn, loc),
			utils.FormatLocalePtr(l.CheckOut, loc),
		}, ","))
	}

	return strings.Join(lines, "\n")
}

// FileName возвращает имя файла выгрузки: employee_log_<YYYY-MM-DD>.<ext>
func FileName(today, ext string) string {
	return fmt.Sprintf("employee_log_%s.%s", today, ext)
}
