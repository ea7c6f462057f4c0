package domain

import (
	"strings"
	"time"
)

// ViewMode режим отображения страницы. Не является механизмом авторизации:
// переключается без проверки учетных данных и влияет только на отрисовку.
type ViewMode string

const (
	ModeGuest ViewMode = "guest"
	ModeAdmin ViewMode = "admin"
)

// PageState состояние страницы одного посетителя.
// Все изменения выполняются через методы ниже, каждый соответствует одной операции.
type PageState struct {
	Selected  *Day
	Mode      ViewMode
	Bookings  []Booking
	Blocked   []Day
	Reminders map[string]Reminder
}

// NewPageState создает начальное состояние: выбран сегодняшний день, гостевой режим
func NewPageState(today Day) *PageState {
	selected := today
	return &PageState{
		Selected:  &selected,
		Mode:      ModeGuest,
		Bookings:  []Booking{},
		Blocked:   []Day{},
		Reminders: map[string]Reminder{},
	}
}

// Clone возвращает независимую копию состояния
func (s *PageState) Clone() *PageState {
	c := &PageState{
		Mode:      s.Mode,
		Bookings:  append([]Booking{}, s.Bookings...),
		Blocked:   append([]Day{}, s.Blocked...),
		Reminders: make(map[string]Reminder, len(s.Reminders)),
	}
	if s.Selected != nil {
		selected := *s.Selected
		c.Selected = &selected
	}
	for k, v := range s.Reminders {
		c.Reminders[k] = v
	}
	return c
}

func (s *PageState) IsAdmin() bool {
	return s.Mode == ModeAdmin
}

// IsBlocked проверяет, закрыт ли день администратором
func (s *PageState) IsBlocked(d Day) bool {
	for _, blocked := range s.Blocked {
		if blocked == d {
			return true
		}
	}
	return false
}

// IsDisabled возвращает true для дней раньше сегодняшнего и закрытых дней
func (s *PageState) IsDisabled(d Day, today Day) bool {
	return d.Before(today) || s.IsBlocked(d)
}

// SelectDate выбирает доступный день
func (s *PageState) SelectDate(d Day, today Day) error {
	if s.IsDisabled(d, today) {
		return ErrDateDisabled
	}
	s.Selected = &d
	return nil
}

// ClearSelection снимает выбор даты
func (s *PageState) ClearSelection() {
	s.Selected = nil
}

// SubmitBooking добавляет бронирование на выбранную дату.
// Без выбранной даты состояние не меняется.
func (s *PageState) SubmitBooking(id, name, phone string, createdAt time.Time, today Day) (Booking, error) {
	if s.Selected == nil {
		return Booking{}, ErrNoDateSelected
	}
	if strings.TrimSpace(name) == "" || strings.TrimSpace(phone) == "" {
		return Booking{}, ErrMissingContact
	}
	if s.IsDisabled(*s.Selected, today) {
		return Booking{}, ErrDateUnavailable
	}

	booking := Booking{
		ID:        id,
		Date:      *s.Selected,
		Name:      name,
		Phone:     phone,
		CreatedAt: createdAt,
	}
	s.Bookings = append(s.Bookings, booking)
	return booking, nil
}

// CanBlockSelected возвращает true, если выбранную дату можно закрыть
func (s *PageState) CanBlockSelected() bool {
	return s.Selected != nil && !s.IsBlocked(*s.Selected)
}

// BlockSelected закрывает выбранную дату. Повторное закрытие не создает дубликат.
func (s *PageState) BlockSelected() (Day, error) {
	if s.Selected == nil {
		return Day{}, ErrNoDateSelected
	}
	day := *s.Selected
	if s.IsBlocked(day) {
		return day, ErrDateAlreadyBlocked
	}
	s.Blocked = append(s.Blocked, day)
	return day, nil
}

// Unblock открывает дату по ее позиции в списке закрытых дат
func (s *PageState) Unblock(index int) (Day, error) {
	if index < 0 || index >= len(s.Blocked) {
		return Day{}, ErrBlockedDateNotFound
	}
	day := s.Blocked[index]
	s.Blocked = append(s.Blocked[:index:index], s.Blocked[index+1:]...)
	return day, nil
}

// ToggleAdmin переключает режим отображения и возвращает новый режим
func (s *PageState) ToggleAdmin() ViewMode {
	if s.Mode == ModeAdmin {
		s.Mode = ModeGuest
	} else {
		s.Mode = ModeAdmin
	}
	return s.Mode
}

// FindBooking ищет бронирование по ID
func (s *PageState) FindBooking(id string) (Booking, bool) {
	for _, b := range s.Bookings {
		if b.ID == id {
			return b, true
		}
	}
	return Booking{}, false
}

// ConfigureReminder сохраняет настройку напоминания для существующего бронирования
func (s *PageState) ConfigureReminder(r Reminder) error {
	if _, ok := s.FindBooking(r.BookingID); !ok {
		return ErrBookingNotFound
	}
	if r.LeadTime.Days() == 0 {
		return ErrInvalidLeadTime
	}
	if s.Reminders == nil {
		s.Reminders = map[string]Reminder{}
	}
	s.Reminders[r.BookingID] = r
	return nil
}
