package get_page

import (
	"context"
	"io"

	"github.com/m04kA/SMC-FotoStudio/internal/domain"
	"github.com/m04kA/SMC-FotoStudio/internal/service/page/models"
	configureReminder "github.com/m04kA/SMC-FotoStudio/internal/usecase/configure_reminder"
	"github.com/m04kA/SMC-FotoStudio/internal/web"
)

type PageService interface {
	GetPage(ctx context.Context, sessionID string, month *domain.Month) (*models.PageResponse, error)
}

type ReminderUseCase interface {
	Draft(ctx context.Context, req *configureReminder.DraftRequest) (*configureReminder.Draft, error)
}

type Renderer interface {
	RenderPage(w io.Writer, view web.PageView) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
