package get_page

import (
	configureReminder "github.com/m04kA/SMC-FotoStudio/internal/usecase/configure_reminder"
	"github.com/m04kA/SMC-FotoStudio/internal/web"
)

// ToReminderDialog конвертирует черновик напоминания в данные диалога
func ToReminderDialog(d *configureReminder.Draft) *web.ReminderDialog {
	return &web.ReminderDialog{
		BookingID:  d.BookingID,
		ClientName: d.ClientName,
		DateLabel:  d.Date.FormatShort(),
		Options:    d.Options,
		LeadTime:   string(d.LeadTime),
		Message:    d.Message,
	}
}
