package notifier

import "time"

// Channel канал доставки напоминания
type Channel string

const (
	ChannelWhatsApp Channel = "whatsapp"
	ChannelTelegram Channel = "telegram"
)

// Reminder напоминание, передаваемое шлюзу уведомлений
type Reminder struct {
	BookingID  string
	ClientName string
	Phone      string
	SendAt     time.Time
	Message    string
	Channel    Channel
}
