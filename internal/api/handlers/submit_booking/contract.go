package submit_booking

import (
	"context"

	"github.com/m04kA/SMC-FotoStudio/internal/domain"
	submitBooking "github.com/m04kA/SMC-FotoStudio/internal/usecase/submit_booking"
)

type SubmitBookingUseCase interface {
	Execute(ctx context.Context, req *submitBooking.Request) (*submitBooking.Response, error)
}

type NoticeStore interface {
	PushNotice(ctx context.Context, sessionID string, notice domain.Notice) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
