package configure_reminder

import "errors"

var (
	// ErrAdminModeRequired возвращается, если страница не в режиме администратора
	ErrAdminModeRequired = errors.New("configure_reminder: admin mode required")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("configure_reminder: booking not found")

	// ErrInvalidLeadTime возвращается при неизвестном сроке напоминания
	ErrInvalidLeadTime = errors.New("configure_reminder: invalid lead time")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("configure_reminder: invalid input data")

	// ErrSessionNotFound возвращается, когда сессия посетителя не найдена
	ErrSessionNotFound = errors.New("configure_reminder: session not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("configure_reminder: internal error")
)
