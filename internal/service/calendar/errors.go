package calendar

import "errors"

var (
	// ErrDateDisabled возвращается при выборе прошедшей или закрытой даты
	ErrDateDisabled = errors.New("calendar: date is disabled")

	// ErrNoDateSelected возвращается при закрытии даты без выбранного дня
	ErrNoDateSelected = errors.New("calendar: no date selected")

	// ErrDateAlreadyBlocked возвращается при повторном закрытии даты
	ErrDateAlreadyBlocked = errors.New("calendar: date is already blocked")

	// ErrBlockedDateNotFound возвращается при некорректном индексе закрытой даты
	ErrBlockedDateNotFound = errors.New("calendar: blocked date not found")

	// ErrAdminModeRequired возвращается, если страница не в режиме администратора
	ErrAdminModeRequired = errors.New("calendar: admin mode required")

	// ErrSessionNotFound возвращается, когда сессия посетителя не найдена
	ErrSessionNotFound = errors.New("calendar: session not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("calendar: internal error")
)
