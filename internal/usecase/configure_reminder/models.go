package configure_reminder

import (
	"time"

	"github.com/m04kA/SMC-FotoStudio/internal/domain"
)

// DraftRequest запрос на открытие диалога напоминания
type DraftRequest struct {
	SessionID string
	BookingID string
}

// Draft данные для диалога напоминания: сохраненная настройка или значения по умолчанию
type Draft struct {
	BookingID  string
	ClientName string
	Date       domain.Day
	Options    []domain.LeadTimeOption
	LeadTime   domain.LeadTime
	Message    string
	Configured bool // true, если напоминание уже настраивалось
}

// Request модель запроса на настройку напоминания
type Request struct {
	SessionID string
	BookingID string
	LeadTime  string
	Message   string
}

// Response модель ответа
type Response struct {
	BookingID string
	LeadTime  domain.LeadTime
	Message   string
	SendAt    time.Time
}
