package domain

import (
	"fmt"
	"time"
)

// Month календарный месяц, отображаемый в виджете выбора даты
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf возвращает месяц, в который попадает день
func MonthOf(d Day) Month {
	return Month{Year: d.Year, Month: d.Month}
}

// ParseMonth разбирает месяц в формате YYYY-MM
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(MonthFormat, s)
	if err != nil {
		return Month{}, fmt.Errorf("%w: %q", ErrInvalidMonth, s)
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

func (m Month) FirstDay() Day {
	return Day{Year: m.Year, Month: m.Month, Day: 1}
}

// DaysIn возвращает количество дней в месяце
func (m Month) DaysIn() int {
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (m Month) Next() Month {
	return MonthOf(NewDay(m.Year, m.Month+1, 1))
}

func (m Month) Prev() Month {
	return MonthOf(NewDay(m.Year, m.Month-1, 1))
}

// String возвращает месяц в формате YYYY-MM
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Title возвращает заголовок месяца, например "Июль 2024"
func (m Month) Title() string {
	return fmt.Sprintf("%s %d", monthNominative[m.Month], m.Year)
}

// WeekdayLabels заголовки колонок сетки (неделя начинается с понедельника)
var WeekdayLabels = []string{"Пн", "Вт", "Ср", "Чт", "Пт", "Сб", "Вс"}

// CalendarCell ячейка сетки месяца. Пустые ячейки (выравнивание) имеют нулевой Date.
type CalendarCell struct {
	Date     Day
	Disabled bool
	Blocked  bool
	Selected bool
	Today    bool
}

// IsPadding возвращает true для ячейки-заполнителя вне месяца
func (c CalendarCell) IsPadding() bool {
	return c.Date.IsZero()
}

// MonthGrid сетка месяца по неделям
type MonthGrid struct {
	Month Month
	Prev  Month
	Next  Month
	Weeks [][]CalendarCell
}

// BuildMonthGrid строит сетку месяца с флагами доступности по состоянию страницы
func BuildMonthGrid(m Month, state *PageState, today Day) MonthGrid {
	grid := MonthGrid{
		Month: m,
		Prev:  m.Prev(),
		Next:  m.Next(),
	}

	// Смещение первого дня: понедельник = 0, воскресенье = 6
	offset := (int(m.FirstDay().Weekday()) + 6) % 7
	daysIn := m.DaysIn()

	week := make([]CalendarCell, 0, 7)
	for i := 0; i < offset; i++ {
		week = append(week, CalendarCell{})
	}

	for day := 1; day <= daysIn; day++ {
		d := Day{Year: m.Year, Month: m.Month, Day: day}
		cell := CalendarCell{
			Date:     d,
			Disabled: state.IsDisabled(d, today),
			Blocked:  state.IsBlocked(d),
			Today:    d == today,
		}
		if state.Selected != nil && *state.Selected == d {
			cell.Selected = true
		}
		week = append(week, cell)

		if len(week) == 7 {
			grid.Weeks = append(grid.Weeks, week)
			week = make([]CalendarCell, 0, 7)
		}
	}

	if len(week) > 0 {
		for len(week) < 7 {
			week = append(week, CalendarCell{})
		}
		grid.Weeks = append(grid.Weeks, week)
	}

	return grid
}
