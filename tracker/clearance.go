package tracker

import (
	"hourlogger/database"
	"hourlogger/utils"
)

// ClearancePhrase задаётся при сборке и не хранится в базе.
const ClearancePhrase = "pass1234"

// ClearToday удаляет все записи, у которых дата входа (UTC) равна today (YYYY-MM-DD),
// включая открытые сессии. Порядок оставшихся записей сохраняется.
func ClearToday(logs []database.WorkLog, supplied, expected, today string) ([]database.WorkLog, error) {
	if supplied != expected {
		return logs, ErrIncorrectSecret
	}

	kept := make([]database.WorkLog, 0, len(logs))
	for _, l := range logs {
		if utils.DateKey(l.CheckIn) == today {
			continue
		}
		kept = append(kept, l)
	}

	return kept, nil
}
