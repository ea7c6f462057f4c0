package domain

import "time"

// Booking заявка клиента на съёмку в конкретный календарный день.
// Создается только формой бронирования и больше не изменяется.
type Booking struct {
	ID        string
	Date      Day
	Name      string
	Phone     string
	CreatedAt time.Time
}
