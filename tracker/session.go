package tracker

import (
	"slices"
	"time"

	"hourlogger/database"
)

// Status - производное состояние сотрудника. Нигде не хранится,
// всегда вычисляется по журналу.
type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

// openIndex возвращает индекс первой открытой записи сотрудника или -1
func openIndex(employeeID int, logs []database.WorkLog) int {
	for i, l := range logs {
		if l.EmployeeID == employeeID && l.IsOpen() {
			return i
		}
	}
	return -1
}

func DeriveStatus(employeeID int, logs []database.WorkLog) Status {
	if openIndex(employeeID, logs) >= 0 {
		return StatusOpen
	}
	return StatusClosed
}

// CheckIn открывает новую сессию. Имя копируется из списка сотрудников в момент входа
// и больше не пересчитывается.
func CheckIn(employeeID int, roster []database.Employee, logs []database.WorkLog, now time.Time) ([]database.WorkLog, error) {
	if DeriveStatus(employeeID, logs) == StatusOpen {
		return logs, ErrAlreadyOpen.WithMessagef("employee %d already has an open session", employeeID)
	}

	employee, ok := FindEmployee(employeeID, roster)
	if !ok {
		return logs, ErrUnknownEmployee.WithMessagef("employee %d not found", employeeID)
	}

	entry := database.WorkLog{
		EmployeeID:   employee.ID,
		EmployeeName: employee.Name,
		CheckIn:      now.UTC(),
	}

	return append(slices.Clone(logs), entry), nil
}

// CheckOut закрывает открытую сессию сотрудника. Если из-за ошибки открытых
// сессий несколько, закрывается только первая по порядку журнала.
func CheckOut(employeeID int, logs []database.WorkLog, now time.Time) ([]database.WorkLog, error) {
	idx := openIndex(employeeID, logs)
	if idx < 0 {
		return logs, ErrNotOpen.WithMessagef("employee %d has no open session", employeeID)
	}

	updated := slices.Clone(logs)

	checkOut := now.UTC()
	if checkOut.Before(updated[idx].CheckIn) {
		checkOut = updated[idx].CheckIn
	}
	updated[idx].CheckOut = &checkOut

	return updated, nil
}

// LoggedIn возвращает множество сотрудников с открытой сессией
func LoggedIn(logs []database.WorkLog) map[int]bool {
	open := make(map[int]bool)
	for _, l := range logs {
		if l.IsOpen() {
			open[l.EmployeeID] = true
		}
	}
	return open
}
