package domain

// Contacts статичные контакты студии
type Contacts struct {
	StudioName   string
	Phone        string // для ссылки tel:, например +79991234567
	PhoneDisplay string // +7 (999) 123-45-67
	Email        string
	Address      string
	InstagramURL string
	TelegramURL  string
}

// DefaultContacts контакты по умолчанию
func DefaultContacts() Contacts {
	return Contacts{
		StudioName:   "FotoStudio",
		Phone:        "+79991234567",
		PhoneDisplay: "+7 (999) 123-45-67",
		Email:        "info@fotostudio.ru",
		Address:      "г. Москва, ул. Примерная, 123",
		InstagramURL: "https://instagram.com",
		TelegramURL:  "https://t.me",
	}
}
