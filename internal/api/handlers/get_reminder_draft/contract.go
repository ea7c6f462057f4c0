package get_reminder_draft

import (
	"context"

	configureReminder "github.com/m04kA/SMC-FotoStudio/internal/usecase/configure_reminder"
)

type ReminderUseCase interface {
	Draft(ctx context.Context, req *configureReminder.DraftRequest) (*configureReminder.Draft, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
