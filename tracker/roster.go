package tracker

import (
	"slices"
	"strings"

	"hourlogger/database"
)

// AddEmployee добавляет сотрудника в конец списка. ID = длина списка + 1,
// совпадающие имена допускаются. Исходный срез не изменяется.
func AddEmployee(name string, roster []database.Employee) ([]database.Employee, database.Employee, error) {
	if strings.TrimSpace(name) == "" {
		return roster, database.Employee{}, ErrEmptyName
	}

	employee := database.Employee{
		ID:   len(roster) + 1,
		Name: name,
	}

	updated := append(slices.Clone(roster), employee)
	return updated, employee, nil
}

func FindEmployee(id int, roster []database.Employee) (database.Employee, bool) {
	for _, e := range roster {
		if e.ID == id {
			return e, true
		}
	}
	return database.Employee{}, false
}
