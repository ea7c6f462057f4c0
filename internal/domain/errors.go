package domain

import "errors"

var (
	// ErrNoDateSelected возвращается при попытке действия без выбранной даты
	ErrNoDateSelected = errors.New("domain: no date selected")

	// ErrDateDisabled возвращается при выборе прошедшей или закрытой даты
	ErrDateDisabled = errors.New("domain: date is disabled")

	// ErrDateUnavailable возвращается, когда выбранная дата стала недоступной после выбора
	ErrDateUnavailable = errors.New("domain: selected date is no longer available")

	// ErrDateAlreadyBlocked возвращается при повторном закрытии уже закрытой даты
	ErrDateAlreadyBlocked = errors.New("domain: date is already blocked")

	// ErrBlockedDateNotFound возвращается при некорректном индексе закрытой даты
	ErrBlockedDateNotFound = errors.New("domain: blocked date not found")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("domain: booking not found")

	// ErrMissingContact возвращается, когда имя или телефон пустые
	ErrMissingContact = errors.New("domain: name and phone are required")

	// ErrInvalidLeadTime возвращается при неизвестном сроке напоминания
	ErrInvalidLeadTime = errors.New("domain: invalid reminder lead time")

	// ErrInvalidDay возвращается при некорректном формате даты
	ErrInvalidDay = errors.New("domain: invalid day, expected YYYY-MM-DD")

	// ErrInvalidMonth возвращается при некорректном формате месяца
	ErrInvalidMonth = errors.New("domain: invalid month, expected YYYY-MM")
)
