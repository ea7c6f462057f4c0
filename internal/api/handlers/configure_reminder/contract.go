package configure_reminder

import (
	"context"

	"github.com/m04kA/SMC-FotoStudio/internal/domain"
	configureReminder "github.com/m04kA/SMC-FotoStudio/internal/usecase/configure_reminder"
)

type ConfigureReminderUseCase interface {
	Execute(ctx context.Context, req *configureReminder.Request) (*configureReminder.Response, error)
}

type NoticeStore interface {
	PushNotice(ctx context.Context, sessionID string, notice domain.Notice) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
