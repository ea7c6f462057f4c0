package select_date

import (
	"strings"

	"github.com/m04kA/SMC-FotoStudio/internal/domain"
)

// SelectDateRequest HTTP request model. null или пустая строка снимают выбор.
type SelectDateRequest struct {
	Date *string `json:"date"`
}

// ToDomainDay разбирает дату запроса
func (r *SelectDateRequest) ToDomainDay() (*domain.Day, error) {
	if r.Date == nil || strings.TrimSpace(*r.Date) == "" {
		return nil, nil
	}
	day, err := domain.ParseDay(strings.TrimSpace(*r.Date))
	if err != nil {
		return nil, err
	}
	return &day, nil
}
