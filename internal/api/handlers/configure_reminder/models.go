package configure_reminder

import (
	"net/http"
	"time"

	configureReminder "github.com/m04kA/SMC-FotoStudio/internal/usecase/configure_reminder"
)

// ConfigureReminderRequest HTTP request model
type ConfigureReminderRequest struct {
	LeadTime string `json:"leadTime"`
	Message  string `json:"message"`
}

// ReminderResponse HTTP response model
type ReminderResponse struct {
	BookingID string `json:"bookingId"`
	LeadTime  string `json:"leadTime"`
	Message   string `json:"message"`
	SendAt    string `json:"sendAt"`
}

// FromForm читает поля HTML формы диалога
func FromForm(r *http.Request) ConfigureReminderRequest {
	return ConfigureReminderRequest{
		LeadTime: r.PostFormValue("leadTime"),
		Message:  r.PostFormValue("message"),
	}
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ConfigureReminderRequest) ToUseCaseRequest(sessionID, bookingID string) *configureReminder.Request {
	return &configureReminder.Request{
		SessionID: sessionID,
		BookingID: bookingID,
		LeadTime:  r.LeadTime,
		Message:   r.Message,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *configureReminder.Response) *ReminderResponse {
	return &ReminderResponse{
		BookingID: resp.BookingID,
		LeadTime:  string(resp.LeadTime),
		Message:   resp.Message,
		SendAt:    resp.SendAt.Format(time.RFC3339),
	}
}
