package toggle_admin

import (
	"context"

	"github.com/m04kA/SMC-FotoStudio/internal/domain"
	"github.com/m04kA/SMC-FotoStudio/internal/service/page/models"
)

type PageService interface {
	ToggleAdmin(ctx context.Context, sessionID string) (*models.ToggleResponse, error)
}

type NoticeStore interface {
	PushNotice(ctx context.Context, sessionID string, notice domain.Notice) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
