package utils

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	dateKeyLayout = "2006-01-02"
	// Аналог toLocaleString() в en-US: дата и время разделены запятой
	localeLayout = "1/2/2006, 3:04:05 PM"
)

// DateKey возвращает дату в UTC в формате YYYY-MM-DD
func DateKey(t time.Time) string {
	return t.UTC().Format(dateKeyLayout)
}

// FormatLocale форматирует время для людей; нулевое время даёт пустую строку
func FormatLocale(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(localeLayout)
}

// FormatLocalePtr - то же для необязательного времени (nil -> "")
func FormatLocalePtr(t *time.Time, loc *time.Location) string {
	if t == nil {
		return ""
	}
	return FormatLocale(*t, loc)
}

func DownloadFile(url, filepath string) error {
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}

	out, err := os.Create(filepath)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, resp.Body)
	return err
}

func GetFileExtension(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

func IsExcelFile(filename string) bool {
	ext := GetFileExtension(filename)
	return ext == ".xlsx" || ext == ".xls"
}
