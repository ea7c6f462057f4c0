package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-FotoStudio/internal/domain"
	calendarModels "github.com/m04kA/SMC-FotoStudio/internal/service/calendar/models"
)

// Response модели

// ServiceResponse услуга каталога
type ServiceResponse struct {
	Title           string `json:"title"`
	PriceRub        int    `json:"priceRub"`
	PriceLabel      string `json:"priceLabel"`
	DurationMinutes int    `json:"durationMinutes"`
	DurationLabel   string `json:"durationLabel"`
	Description     string `json:"description"`
	Icon            string `json:"icon"`
}

// ContactsResponse контакты студии
type ContactsResponse struct {
	StudioName   string `json:"studioName"`
	Phone        string `json:"phone"`
	PhoneDisplay string `json:"phoneDisplay"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	InstagramURL string `json:"instagramUrl"`
	TelegramURL  string `json:"telegramUrl"`
}

// SelectedDayResponse выбранный день и состояние кнопки "Закрыть дату"
type SelectedDayResponse struct {
	Date     string `json:"date"`
	Label    string `json:"label"`
	Blocked  bool   `json:"blocked"`
	CanBlock bool   `json:"canBlock"`
}

// ReminderResponse сохраненная настройка напоминания
type ReminderResponse struct {
	LeadTime      string `json:"leadTime"`
	LeadTimeLabel string `json:"leadTimeLabel"`
	Message       string `json:"message"`
}

// BookingResponse бронирование в панели администратора
type BookingResponse struct {
	ID        string            `json:"id"`
	Date      string            `json:"date"`
	DateLabel string            `json:"dateLabel"`
	Name      string            `json:"name"`
	Phone     string            `json:"phone"`
	CreatedAt time.Time         `json:"createdAt"`
	Reminder  *ReminderResponse `json:"reminder,omitempty"`
}

// NoticeResponse всплывающее уведомление
type NoticeResponse struct {
	Level string `json:"level"`
	Text  string `json:"text"`
}

// PageResponse все данные для отрисовки страницы
type PageResponse struct {
	Mode          string                               `json:"mode"`
	IsAdmin       bool                                 `json:"isAdmin"`
	ToggleEnabled bool                                 `json:"toggleEnabled"`
	Today         string                               `json:"today"`
	Selected      *SelectedDayResponse                 `json:"selected"`
	Services      []ServiceResponse                    `json:"services"`
	Contacts      ContactsResponse                     `json:"contacts"`
	Calendar      *calendarModels.CalendarResponse     `json:"calendar"`
	Bookings      []BookingResponse                    `json:"bookings,omitempty"`
	BlockedDates  []calendarModels.BlockedDateResponse `json:"blockedDates,omitempty"`
	Notices       []NoticeResponse                     `json:"notices,omitempty"`
}

// ToggleResponse режим страницы после переключения
type ToggleResponse struct {
	Mode    string `json:"mode"`
	IsAdmin bool   `json:"isAdmin"`
}

// Конвертеры из domain в response

// FromDomainService конвертирует услугу каталога
func FromDomainService(s domain.Service) ServiceResponse {
	return ServiceResponse{
		Title:           s.Title,
		PriceRub:        s.PriceRub,
		PriceLabel:      FormatPrice(s.PriceRub),
		DurationMinutes: s.DurationMinutes,
		DurationLabel:   FormatDuration(s.DurationMinutes),
		Description:     s.Description,
		Icon:            s.Icon,
	}
}

// FromDomainCatalog конвертирует каталог с сохранением порядка
func FromDomainCatalog(services []domain.Service) []ServiceResponse {
	result := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		result = append(result, FromDomainService(s))
	}
	return result
}

// FromDomainContacts конвертирует контакты
func FromDomainContacts(c domain.Contacts) ContactsResponse {
	return ContactsResponse{
		StudioName:   c.StudioName,
		Phone:        c.Phone,
		PhoneDisplay: c.PhoneDisplay,
		Email:        c.Email,
		Address:      c.Address,
		InstagramURL: c.InstagramURL,
		TelegramURL:  c.TelegramURL,
	}
}

// FromDomainSelected конвертирует выбранный день
func FromDomainSelected(state *domain.PageState) *SelectedDayResponse {
	if state.Selected == nil {
		return nil
	}
	d := *state.Selected
	return &SelectedDayResponse{
		Date:     d.String(),
		Label:    d.FormatLong(),
		Blocked:  state.IsBlocked(d),
		CanBlock: state.CanBlockSelected(),
	}
}

// FromDomainBookings конвертирует бронирования вместе с настройками напоминаний
func FromDomainBookings(bookings []domain.Booking, reminders map[string]domain.Reminder) []BookingResponse {
	result := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp := BookingResponse{
			ID:        b.ID,
			Date:      b.Date.String(),
			DateLabel: b.Date.FormatShort(),
			Name:      b.Name,
			Phone:     b.Phone,
			CreatedAt: b.CreatedAt,
		}
		if r, ok := reminders[b.ID]; ok {
			resp.Reminder = &ReminderResponse{
				LeadTime:      string(r.LeadTime),
				LeadTimeLabel: leadTimeLabel(r.LeadTime),
				Message:       r.Message,
			}
		}
		result = append(result, resp)
	}
	return result
}

// FromDomainNotices конвертирует уведомления
func FromDomainNotices(notices []domain.Notice) []NoticeResponse {
	if len(notices) == 0 {
		return nil
	}
	result := make([]NoticeResponse, 0, len(notices))
	for _, n := range notices {
		result = append(result, NoticeResponse{Level: string(n.Level), Text: n.Text})
	}
	return result
}

// FormatPrice форматирует цену с разделителем разрядов: 5000 -> "5 000 ₽"
func FormatPrice(rub int) string {
	digits := strconv.Itoa(rub)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return b.String() + " ₽"
}

// FormatDuration форматирует длительность: 60 -> "1 час", 180 -> "3 часа", 90 -> "1 ч 30 мин"
func FormatDuration(minutes int) string {
	hours, rest := minutes/60, minutes%60
	switch {
	case hours == 0:
		return fmt.Sprintf("%d мин", rest)
	case rest == 0:
		return fmt.Sprintf("%d %s", hours, pluralHours(hours))
	default:
		return fmt.Sprintf("%d ч %d мин", hours, rest)
	}
}

func pluralHours(n int) string {
	if n%100 >= 11 && n%100 <= 14 {
		return "часов"
	}
	switch n % 10 {
	case 1:
		return "час"
	case 2, 3, 4:
		return "часа"
	default:
		return "часов"
	}
}

func leadTimeLabel(lt domain.LeadTime) string {
	for _, opt := range domain.LeadTimeOptions {
		if opt.Value == lt {
			return opt.Label
		}
	}
	return string(lt)
}
