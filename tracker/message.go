package tracker

import (
	"errors"
	"fmt"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Message - короткое уведомление для пользователя
type Message struct {
	Text     string
	Severity Severity
}

func Success(text string) Message {
	return Message{Text: text, Severity: SeveritySuccess}
}

// MessageFor переводит ошибку в уведомление. Ни одна ошибка не скрывается.
func MessageFor(err error) Message {
	var text string

	switch {
	case errors.Is(err, ErrEmptyName):
		text = "Employee name is required!"
	case errors.Is(err, ErrUnknownEmployee):
		text = "Employee not found!"
	case errors.Is(err, ErrAlreadyOpen):
		text = "Employee is already logged in!"
	case errors.Is(err, ErrNotOpen):
		text = "Employee is not logged in!"
	case errors.Is(err, ErrIncorrectSecret):
		text = "Incorrect password"
	default:
		text = fmt.Sprintf("Something went wrong: %v", err)
	}

	return Message{Text: text, Severity: SeverityError}
}

func AddedMessage(name string) Message {
	return Success(fmt.Sprintf("%s added successfully!", name))
}

var (
	CheckedInMessage  = Success("Employee logged in successfully!")
	CheckedOutMessage = Success("Employee logged out successfully!")
	ClearedMessage    = Success("All logs for today cleared successfully!")
)
