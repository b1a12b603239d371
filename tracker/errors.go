package tracker

import "fmt"

// Error - класс ошибки валидации с устойчивым кодом.
// Все такие ошибки восстановимы и показываются пользователю.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is сравнивает только коды, поэтому errors.Is(err, ErrNotOpen) работает и с уточнённым сообщением.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && e.Code == t.Code
}

func (e *Error) WithMessagef(format string, args ...any) *Error {
	return &Error{Code: e.Code, Message: fmt.Sprintf(format, args...)}
}

var (
	ErrEmptyName       = &Error{Code: "E_EMPTY_NAME"}
	ErrUnknownEmployee = &Error{Code: "E_UNKNOWN_EMPLOYEE"}
	ErrAlreadyOpen     = &Error{Code: "E_ALREADY_OPEN"}
	ErrNotOpen         = &Error{Code: "E_NOT_OPEN"}
	ErrIncorrectSecret = &Error{Code: "E_INCORRECT_SECRET"}
)
