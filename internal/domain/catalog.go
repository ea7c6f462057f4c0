package domain

// Service услуга студии в каталоге
type Service struct {
	Title           string
	PriceRub        int
	DurationMinutes int
	Description     string
	Icon            string
}

var catalog = []Service{
	{
		Title:           "Семейная фотосессия",
		PriceRub:        5000,
		DurationMinutes: 120,
		Description:     "Естественные кадры с близкими людьми",
		Icon:            "Users",
	},
	{
		Title:           "Индивидуальная съёмка",
		PriceRub:        3500,
		DurationMinutes: 60,
		Description:     "Портфолио или личная фотосессия",
		Icon:            "User",
	},
	{
		Title:           "Love Story",
		PriceRub:        6000,
		DurationMinutes: 180,
		Description:     "Романтичная прогулка для двоих",
		Icon:            "Heart",
	},
}

// Catalog возвращает копию фиксированного списка услуг
func Catalog() []Service {
	result := make([]Service, len(catalog))
	copy(result, catalog)
	return result
}
