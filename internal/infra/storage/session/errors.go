package session

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("session.repository: session not found")

	// ErrEmptySessionID возвращается при пустом идентификаторе сессии
	ErrEmptySessionID = errors.New("session.repository: empty session id")
)
