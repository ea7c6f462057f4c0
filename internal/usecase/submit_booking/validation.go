package submit_booking

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/nyaruka/phonenumbers"

	"github.com/m04kA/SMC-FotoStudio/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// bookingInput очищенные поля формы
type bookingInput struct {
	SessionID string `validate:"required"`
	Name      string `validate:"required,max=100"`
	Phone     string `validate:"required,max=32"`
	Comment   string `validate:"max=1000"`
}

// validateRequest обрезает пробелы и проверяет обязательные поля и длины
func validateRequest(req *Request) (*bookingInput, error) {
	input := &bookingInput{
		SessionID: req.SessionID,
		Name:      strings.TrimSpace(req.Name),
		Phone:     strings.TrimSpace(req.Phone),
		Comment:   strings.TrimSpace(req.Comment),
	}

	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return input, nil
}

// normalizePhone приводит телефон к E.164, если он распознан как корректный номер.
// Нераспознанный номер сохраняется в том виде, в котором его ввел клиент.
func normalizePhone(phone, region string) string {
	if region == "" {
		region = domain.DefaultPhoneRegion
	}

	num, err := phonenumbers.Parse(phone, region)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return phone
	}

	return phonenumbers.Format(num, phonenumbers.E164)
}
