package notifier

import "errors"

var (
	// ErrInvalidReminder возвращается, когда в напоминании не хватает данных
	ErrInvalidReminder = errors.New("notifier: invalid reminder")
)
