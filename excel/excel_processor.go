package excel

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"hourlogger/database"
	"hourlogger/export"
	"hourlogger/tracker"
	"hourlogger/utils"

	"github.com/extrame/xls"
	"github.com/tealeg/xlsx"
	"github.com/xuri/excelize/v2"
)

const (
	sheetName   = "Log"
	maxXLSRows  = 100000
	nameColumns = 3
)

type ExcelProcessor struct {
	svc *tracker.Service
	loc *time.Location
}

func NewExcelProcessor(svc *tracker.Service, loc *time.Location) *ExcelProcessor {
	return &ExcelProcessor{svc: svc, loc: loc}
}

// ImportRoster добавляет сотрудников из первого листа файла. Первая строка - заголовок,
// имя собирается из первых трёх колонок (фамилия, имя, отчество или одно полное имя).
// Уже существующие имена пропускаются.
func (ep *ExcelProcessor) ImportRoster(filePath string) ([]database.Employee, error) {
	rows, err := readRows(filePath)
	if err != nil {
		return nil, err
	}

	// Создаем мапу для быстрой проверки существующих сотрудников
	existing := make(map[string]bool)
	for _, e := range ep.svc.Employees() {
		existing[normalizeName(e.Name)] = true
	}

	var added []database.Employee
	for rowIndex, row := range rows {
		// Пропускаем заголовок (первую строку)
		if rowIndex == 0 {
			continue
		}

		name := rowName(row)
		if name == "" {
			continue
		}

		key := normalizeName(name)
		if existing[key] {
			log.Printf("Employee already exists: %s", name)
			continue
		}

		employee, err := ep.svc.AddEmployee(name)
		if err != nil {
			return added, fmt.Errorf("row %d: %w", rowIndex+1, err)
		}

		added = append(added, employee)
		existing[key] = true
	}

	log.Printf("Imported %d employees from %s", len(added), filepath.Base(filePath))
	return added, nil
}

func readRows(filePath string) ([][]string, error) {
	switch utils.GetFileExtension(filePath) {
	case ".xls":
		workbook, err := xls.Open(filePath, "utf-8")
		if err != nil {
			return nil, fmt.Errorf("failed to open xls file: %w", err)
		}
		if workbook == nil {
			return nil, fmt.Errorf("no workbook stream in xls file")
		}
		sheet := workbook.GetSheet(0)
		if sheet == nil {
			return nil, fmt.Errorf("no sheets found in excel file")
		}
		return firstSheetRows(sheet.MaxRow, workbook.ReadAllCells(maxXLSRows)), nil
	case ".xlsx":
		f, err := excelize.OpenFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open excel file: %w", err)
		}
		defer f.Close()

		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("no sheets found in excel file")
		}

		rows, err := f.GetRows(sheets[0])
		if err != nil {
			return nil, fmt.Errorf("failed to get rows: %w", err)
		}
		return rows, nil
	default:
		return nil, fmt.Errorf("unsupported file type %q", utils.GetFileExtension(filePath))
	}
}

// firstSheetRows отрезает строки первого листа из ReadAllCells, который склеивает все листы подряд.
// Первый лист занимает MaxRow+1 строк; лист с MaxRow == 0 библиотека не выдаёт вовсе,
// а в нём может быть только заголовок.
func firstSheetRows(maxRow uint16, all [][]string) [][]string {
	if maxRow == 0 {
		return nil
	}
	n := int(maxRow) + 1
	if n > len(all) {
		n = len(all)
	}
	return all[:n]
}

func rowName(row []string) string {
	var parts []string
	for i := 0; i < len(row) && i < nameColumns; i++ {
		if part := strings.TrimSpace(row[i]); part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " ")
}

func normalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// ExportWorkbook сохраняет журнал в xlsx в каталоге dir и возвращает путь к файлу
func (ep *ExcelProcessor) ExportWorkbook(logs []database.WorkLog, dir, today string) (string, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(sheetName)
	if err != nil {
		return "", err
	}

	// Заголовки
	headerRow := sheet.AddRow()
	for _, header := range export.Header {
		headerRow.AddCell().Value = header
	}

	// Данные
	for _, l := range logs {
		row := sheet.AddRow()
		row.AddCell().Value = l.EmployeeName

		inDate, inTime := splitLocale(utils.FormatLocale(l.CheckIn, ep.loc))
		row.AddCell().Value = inDate
		row.AddCell().Value = inTime

		outDate, outTime := splitLocale(utils.FormatLocalePtr(l.CheckOut, ep.loc))
		row.AddCell().Value = outDate
		row.AddCell().Value = outTime
	}

	path := filepath.Join(dir, export.FileName(today, "xlsx"))
	if err := file.Save(path); err != nil {
		return "", err
	}

	return path, nil
}

func splitLocale(s string) (string, string) {
	date, clock, _ := strings.Cut(s, ", ")
	return date, clock
}
