package get_calendar

import (
	"context"

	"github.com/m04kA/SMC-FotoStudio/internal/domain"
	"github.com/m04kA/SMC-FotoStudio/internal/service/calendar/models"
)

type CalendarService interface {
	GetMonth(ctx context.Context, sessionID string, month *domain.Month) (*models.CalendarResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
