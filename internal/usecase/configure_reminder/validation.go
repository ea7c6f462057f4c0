package configure_reminder

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-FotoStudio/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type reminderInput struct {
	SessionID string `validate:"required"`
	BookingID string `validate:"required"`
	Message   string `validate:"required,max=1000"`
	LeadTime  domain.LeadTime
}

// validateRequest проверяет срок и текст напоминания
func validateRequest(req *Request) (*reminderInput, error) {
	leadTime, err := domain.ParseLeadTime(strings.TrimSpace(req.LeadTime))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLeadTime, err)
	}

	input := &reminderInput{
		SessionID: req.SessionID,
		BookingID: strings.TrimSpace(req.BookingID),
		Message:   strings.TrimSpace(req.Message),
		LeadTime:  leadTime,
	}

	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return input, nil
}
