package submit_booking

import (
	"net/http"

	submitBooking "github.com/m04kA/SMC-FotoStudio/internal/usecase/submit_booking"
)

// SubmitBookingRequest HTTP request model
type SubmitBookingRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Comment string `json:"comment,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	DateLabel string `json:"dateLabel"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Message   string `json:"message"`
}

// FromForm читает поля HTML формы
func FromForm(r *http.Request) SubmitBookingRequest {
	return SubmitBookingRequest{
		Name:    r.PostFormValue("name"),
		Phone:   r.PostFormValue("phone"),
		Comment: r.PostFormValue("comment"),
	}
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SubmitBookingRequest) ToUseCaseRequest(sessionID string) *submitBooking.Request {
	return &submitBooking.Request{
		SessionID: sessionID,
		Name:      r.Name,
		Phone:     r.Phone,
		Comment:   r.Comment,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:        resp.ID,
		Date:      resp.Date.String(),
		DateLabel: resp.Date.FormatLong(),
		Name:      resp.Name,
		Phone:     resp.Phone,
		Message:   msgBookingCreated,
	}
}
