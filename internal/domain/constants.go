package domain

// Форматы дат
const (
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)

// Ограничения на поля формы бронирования
const (
	MaxNameLength    = 100
	MaxPhoneLength   = 32
	MaxCommentLength = 1000
	MaxMessageLength = 1000
)

// DefaultPhoneRegion регион для разбора телефонов без кода страны
const DefaultPhoneRegion = "RU"

// ReminderSendHour час отправки напоминания (локальное время студии)
const ReminderSendHour = 10
