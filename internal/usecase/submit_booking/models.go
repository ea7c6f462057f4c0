package submit_booking

import "github.com/m04kA/SMC-FotoStudio/internal/domain"

// Request модель запроса на создание бронирования
type Request struct {
	SessionID string // Сессия посетителя, чье состояние страницы меняется
	Name      string // Имя клиента
	Phone     string // Телефон клиента
	Comment   string // Комментарий принимается, но не сохраняется в бронировании
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID    string
	Date  domain.Day
	Name  string
	Phone string
}
