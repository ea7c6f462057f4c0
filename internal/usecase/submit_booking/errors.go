package submit_booking

import "errors"

var (
	// ErrNoDateSelected возвращается, когда дата не выбрана
	ErrNoDateSelected = errors.New("submit_booking: no date selected")

	// ErrDateUnavailable возвращается, когда выбранная дата в прошлом или закрыта
	ErrDateUnavailable = errors.New("submit_booking: selected date is unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("submit_booking: invalid input data")

	// ErrSessionNotFound возвращается, когда сессия посетителя не найдена
	ErrSessionNotFound = errors.New("submit_booking: session not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_booking: internal error")
)
