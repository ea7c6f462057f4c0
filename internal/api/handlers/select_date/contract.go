package select_date

import (
	"context"

	"github.com/m04kA/SMC-FotoStudio/internal/domain"
	"github.com/m04kA/SMC-FotoStudio/internal/service/calendar/models"
)

type CalendarService interface {
	SelectDate(ctx context.Context, sessionID string, date *domain.Day) (*models.SelectionResponse, error)
}

type NoticeStore interface {
	PushNotice(ctx context.Context, sessionID string, notice domain.Notice) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
