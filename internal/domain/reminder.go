package domain

import (
	"fmt"
	"time"
)

// LeadTime за сколько до съёмки отправить напоминание
type LeadTime string

const (
	LeadTimeOneDay    LeadTime = "1d"
	LeadTimeTwoDays   LeadTime = "2d"
	LeadTimeThreeDays LeadTime = "3d"
	LeadTimeOneWeek   LeadTime = "1w"
)

// DefaultLeadTime срок, выбранный в диалоге по умолчанию
const DefaultLeadTime = LeadTimeOneDay

// LeadTimeOption вариант в списке выбора срока
type LeadTimeOption struct {
	Value LeadTime
	Label string
	Days  int
}

// LeadTimeOptions варианты в порядке отображения
var LeadTimeOptions = []LeadTimeOption{
	{Value: LeadTimeOneDay, Label: "1 день", Days: 1},
	{Value: LeadTimeTwoDays, Label: "2 дня", Days: 2},
	{Value: LeadTimeThreeDays, Label: "3 дня", Days: 3},
	{Value: LeadTimeOneWeek, Label: "1 неделю", Days: 7},
}

// ParseLeadTime проверяет, что значение входит в список вариантов
func ParseLeadTime(s string) (LeadTime, error) {
	for _, opt := range LeadTimeOptions {
		if string(opt.Value) == s {
			return opt.Value, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidLeadTime, s)
}

// Days возвращает срок в днях (0 для неизвестного значения)
func (lt LeadTime) Days() int {
	for _, opt := range LeadTimeOptions {
		if opt.Value == lt {
			return opt.Days
		}
	}
	return 0
}

// Reminder сохраненная настройка напоминания по бронированию
type Reminder struct {
	BookingID    string
	LeadTime     LeadTime
	Message      string
	ConfiguredAt time.Time
}

// SendAt момент отправки: день съёмки в ReminderSendHour минус срок напоминания
func (r Reminder) SendAt(date Day, loc *time.Location) time.Time {
	return date.AddDays(-r.LeadTime.Days()).Time(loc).Add(ReminderSendHour * time.Hour)
}

// DefaultReminderMessage текст напоминания, подставляемый в диалог
func DefaultReminderMessage(b Booking) string {
	return fmt.Sprintf("Привет, %s! Напоминаю о нашей фотосессии %s. Жду встречи! 📸",
		b.Name, b.Date.FormatShort())
}
