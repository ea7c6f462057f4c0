package page

import "errors"

var (
	// ErrAdminToggleDisabled возвращается, когда переключатель режима выключен в конфигурации
	ErrAdminToggleDisabled = errors.New("page: admin toggle is disabled")

	// ErrSessionNotFound возвращается, когда сессия посетителя не найдена
	ErrSessionNotFound = errors.New("page: session not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("page: internal error")
)
