package web

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FotoStudio/internal/domain"
	calendarModels "github.com/m04kA/SMC-FotoStudio/internal/service/calendar/models"
	"github.com/m04kA/SMC-FotoStudio/internal/service/page/models"
)

func testPage(admin bool) *models.PageResponse {
	today := domain.NewDay(2024, time.July, 1)
	state := domain.NewPageState(today)
	state.Blocked = []domain.Day{domain.NewDay(2024, time.July, 4)}
	state.Bookings = []domain.Booking{{ID: "b1", Date: domain.NewDay(2024, time.July, 5), Name: "Ivan", Phone: "+79990000000"}}
	if admin {
		state.Mode = domain.ModeAdmin
	}

	page := &models.PageResponse{
		Mode:          string(state.Mode),
		IsAdmin:       admin,
		ToggleEnabled: true,
		Today:         today.String(),
		Selected:      models.FromDomainSelected(state),
		Services:      models.FromDomainCatalog(domain.Catalog()),
		Contacts:      models.FromDomainContacts(domain.DefaultContacts()),
		Calendar:      calendarModels.FromDomainGrid(domain.BuildMonthGrid(domain.MonthOf(today), state, today)),
		Notices:       models.FromDomainNotices([]domain.Notice{domain.SuccessNotice("Дата открыта")}),
	}
	if admin {
		page.Bookings = models.FromDomainBookings(state.Bookings, state.Reminders)
		page.BlockedDates = calendarModels.FromDomainBlockedList(state.Blocked)
	}
	return page
}

func render(t *testing.T, view PageView) string {
	t.Helper()
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.RenderPage(&buf, view))
	return buf.String()
}

func TestRenderPage_Guest(t *testing.T) {
	html := render(t, PageView{Page: testPage(false), CSRFField: `<input type="hidden" name="gorilla.csrf.Token" value="tok">`, Year: 2024})

	assert.Contains(t, html, `id="services"`)
	assert.Contains(t, html, `id="calendar"`)
	assert.Contains(t, html, `id="contacts"`)
	assert.NotContains(t, html, `id="admin"`)
	assert.Contains(t, html, "Семейная фотосессия")
	assert.Contains(t, html, "5 000 ₽")
	assert.Contains(t, html, "Июль 2024")
	assert.Contains(t, html, "1 июля 2024 г.")
	assert.Regexp(t, `href="tel:(\+|&#43;)79991234567"`, html)
	assert.Contains(t, html, `href="mailto:info@fotostudio.ru"`)
	assert.Contains(t, html, `target="_blank" rel="noopener noreferrer"`)
	assert.Contains(t, html, `name="gorilla.csrf.Token"`)
	assert.Contains(t, html, "Дата открыта")
	assert.Contains(t, html, "Войти")
}

func TestRenderPage_Admin(t *testing.T) {
	view := PageView{
		Page: testPage(true),
		Reminder: &ReminderDialog{
			BookingID:  "b1",
			ClientName: "Ivan",
			DateLabel:  "05.07.2024",
			Options:    domain.LeadTimeOptions,
			LeadTime:   "2d",
			Message:    "Привет, Ivan!",
		},
		Year: 2024,
	}

	html := render(t, view)

	assert.Contains(t, html, `id="admin"`)
	assert.Contains(t, html, "Бронирования (1)")
	assert.Contains(t, html, "05.07.2024")
	assert.Contains(t, html, "Закрытые даты (1)")
	assert.Contains(t, html, "4 июля 2024 г.")
	assert.Contains(t, html, `action="/admin/blocked-dates/0/unblock"`)
	assert.Contains(t, html, `action="/admin/bookings/b1/reminder"`)
	assert.Contains(t, html, `<option value="2d" selected>2 дня</option>`)
	assert.Contains(t, html, "Закрыть дату")
}

func TestTelURL(t *testing.T) {
	assert.Equal(t, "tel:+79991234567", string(telURL("+7999 123 45 67")))
}
