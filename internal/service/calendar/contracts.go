package calendar

import (
	"context"
	"time"

	"github.com/m04kA/SMC-FotoStudio/internal/domain"
)

// SessionRepository интерфейс хранилища состояния страниц
type SessionRepository interface {
	Snapshot(ctx context.Context, id string) (*domain.PageState, error)
	Update(ctx context.Context, id string, fn func(state *domain.PageState) error) error
}

// Metrics интерфейс метрик закрытия дат
type Metrics interface {
	IncDatesBlocked()
	IncDatesUnblocked()
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
