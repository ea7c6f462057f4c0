package models

import (
	"github.com/m04kA/SMC-FotoStudio/internal/domain"
)

// Response модели

// SelectionResponse текущая выбранная дата
type SelectionResponse struct {
	Date      *string `json:"date"`
	DateLabel string  `json:"dateLabel,omitempty"`
}

// DayCellResponse ячейка календаря
type DayCellResponse struct {
	Date     string `json:"date,omitempty"`
	Day      int    `json:"day,omitempty"`
	Padding  bool   `json:"padding,omitempty"`
	Disabled bool   `json:"disabled"`
	Blocked  bool   `json:"blocked"`
	Selected bool   `json:"selected"`
	Today    bool   `json:"today"`
}

// CalendarResponse сетка месяца
type CalendarResponse struct {
	Month    string              `json:"month"`
	Title    string              `json:"title"`
	Prev     string              `json:"prev"`
	Next     string              `json:"next"`
	Weekdays []string            `json:"weekdays"`
	Weeks    [][]DayCellResponse `json:"weeks"`
}

// BlockedDateResponse закрытая дата с позицией в списке
type BlockedDateResponse struct {
	Index int    `json:"index"`
	Date  string `json:"date"`
	Label string `json:"label"`
}

// Конвертеры из domain в response

// FromDomainSelection конвертирует выбранный день
func FromDomainSelection(selected *domain.Day) *SelectionResponse {
	if selected == nil {
		return &SelectionResponse{}
	}
	date := selected.String()
	return &SelectionResponse{
		Date:      &date,
		DateLabel: selected.FormatLong(),
	}
}

// FromDomainGrid конвертирует сетку месяца
func FromDomainGrid(grid domain.MonthGrid) *CalendarResponse {
	resp := &CalendarResponse{
		Month:    grid.Month.String(),
		Title:    grid.Month.Title(),
		Prev:     grid.Prev.String(),
		Next:     grid.Next.String(),
		Weekdays: append([]string{}, domain.WeekdayLabels...),
		Weeks:    make([][]DayCellResponse, 0, len(grid.Weeks)),
	}

	for _, week := range grid.Weeks {
		cells := make([]DayCellResponse, 0, len(week))
		for _, c := range week {
			if c.IsPadding() {
				cells = append(cells, DayCellResponse{Padding: true, Disabled: true})
				continue
			}
			cells = append(cells, DayCellResponse{
				Date:     c.Date.String(),
				Day:      c.Date.Day,
				Disabled: c.Disabled,
				Blocked:  c.Blocked,
				Selected: c.Selected,
				Today:    c.Today,
			})
		}
		resp.Weeks = append(resp.Weeks, cells)
	}

	return resp
}

// FromDomainBlocked конвертирует закрытую дату
func FromDomainBlocked(index int, d domain.Day) BlockedDateResponse {
	return BlockedDateResponse{
		Index: index,
		Date:  d.String(),
		Label: d.FormatLong(),
	}
}

// FromDomainBlockedList конвертирует список закрытых дат с сохранением порядка
func FromDomainBlockedList(days []domain.Day) []BlockedDateResponse {
	result := make([]BlockedDateResponse, 0, len(days))
	for i, d := range days {
		result = append(result, FromDomainBlocked(i, d))
	}
	return result
}
