package notifier

import (
	"context"
	"fmt"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Noop шлюз уведомлений без доставки: проверяет напоминание и пишет его в лог.
// Реальная доставка (WhatsApp, Telegram) подключается другой реализацией
// интерфейса NotificationGateway у потребителя.
type Noop struct {
	log Logger
}

func NewNoop(log Logger) *Noop {
	return &Noop{log: log}
}

// Schedule принимает напоминание к "отправке"
func (n *Noop) Schedule(ctx context.Context, r Reminder) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if r.BookingID == "" || r.Message == "" || r.SendAt.IsZero() {
		return fmt.Errorf("%w: booking_id, message and send_at are required", ErrInvalidReminder)
	}

	n.log.Info("Notifier: reminder accepted without delivery: booking_id=%s, channel=%s, send_at=%s",
		r.BookingID, r.Channel, r.SendAt.Format(time.RFC3339))
	return nil
}
