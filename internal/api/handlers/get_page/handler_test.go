package get_page

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FotoStudio/internal/api/middleware"
	"github.com/m04kA/SMC-FotoStudio/internal/domain"
	"github.com/m04kA/SMC-FotoStudio/internal/service/page"
	"github.com/m04kA/SMC-FotoStudio/internal/service/page/models"
	configureReminder "github.com/m04kA/SMC-FotoStudio/internal/usecase/configure_reminder"
	"github.com/m04kA/SMC-FotoStudio/internal/web"
	"github.com/m04kA/SMC-FotoStudio/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) GetPage(ctx context.Context, sessionID string, month *domain.Month) (*models.PageResponse, error) {
	args := m.Called(ctx, sessionID, month)
	if resp, ok := args.Get(0).(*models.PageResponse); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockReminders struct {
	mock.Mock
}

func (m *mockReminders) Draft(ctx context.Context, req *configureReminder.DraftRequest) (*configureReminder.Draft, error) {
	args := m.Called(ctx, req)
	if resp, ok := args.Get(0).(*configureReminder.Draft); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

// recordingRenderer запоминает последнее представление
type recordingRenderer struct {
	view web.PageView
}

func (r *recordingRenderer) RenderPage(w io.Writer, view web.PageView) error {
	r.view = view
	_, err := io.WriteString(w, "<html>ok</html>")
	return err
}

func request(target string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	return req.WithContext(middleware.WithSessionID(req.Context(), "s1"))
}

func TestHandleHTML(t *testing.T) {
	svc := &mockService{}
	renderer := &recordingRenderer{}
	h := NewHandler(svc, &mockReminders{}, renderer, logger.NewNop())
	month := domain.Month{Year: 2024, Month: time.August}
	svc.On("GetPage", mock.Anything, "s1", &month).Return(&models.PageResponse{Mode: "guest", Today: "2024-07-01"}, nil)

	rec := httptest.NewRecorder()
	h.HandleHTML(rec, request("/?month=2024-08"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "<html>ok</html>", rec.Body.String())
	assert.Equal(t, 2024, renderer.view.Year)
	assert.Nil(t, renderer.view.Reminder)
}

func TestHandleHTML_InvalidMonthFallsBack(t *testing.T) {
	svc := &mockService{}
	h := NewHandler(svc, &mockReminders{}, &recordingRenderer{}, logger.NewNop())
	svc.On("GetPage", mock.Anything, "s1", (*domain.Month)(nil)).Return(&models.PageResponse{Today: "2024-07-01"}, nil)

	rec := httptest.NewRecorder()
	h.HandleHTML(rec, request("/?month=garbage"))

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestHandleHTML_ReminderDialog(t *testing.T) {
	svc := &mockService{}
	reminders := &mockReminders{}
	renderer := &recordingRenderer{}
	h := NewHandler(svc, reminders, renderer, logger.NewNop())
	svc.On("GetPage", mock.Anything, "s1", (*domain.Month)(nil)).Return(&models.PageResponse{IsAdmin: true, Today: "2024-07-01"}, nil)
	reminders.On("Draft", mock.Anything, &configureReminder.DraftRequest{SessionID: "s1", BookingID: "b1"}).Return(&configureReminder.Draft{
		BookingID:  "b1",
		ClientName: "Анна",
		Date:       domain.NewDay(2024, time.July, 5),
		Options:    domain.LeadTimeOptions,
		LeadTime:   domain.LeadTimeOneDay,
		Message:    "Привет",
	}, nil)

	rec := httptest.NewRecorder()
	h.HandleHTML(rec, request("/?reminder=b1"))

	require.NotNil(t, renderer.view.Reminder)
	assert.Equal(t, "05.07.2024", renderer.view.Reminder.DateLabel)
	assert.Equal(t, "1d", renderer.view.Reminder.LeadTime)
}

func TestHandleHTML_ReminderIgnoredForGuest(t *testing.T) {
	svc := &mockService{}
	reminders := &mockReminders{}
	renderer := &recordingRenderer{}
	h := NewHandler(svc, reminders, renderer, logger.NewNop())
	svc.On("GetPage", mock.Anything, "s1", (*domain.Month)(nil)).Return(&models.PageResponse{Today: "2024-07-01"}, nil)

	rec := httptest.NewRecorder()
	h.HandleHTML(rec, request("/?reminder=b1"))

	assert.Nil(t, renderer.view.Reminder)
	reminders.AssertNotCalled(t, "Draft", mock.Anything, mock.Anything)
}

func TestHandleJSON(t *testing.T) {
	svc := &mockService{}
	h := NewHandler(svc, &mockReminders{}, &recordingRenderer{}, logger.NewNop())
	svc.On("GetPage", mock.Anything, "s1", (*domain.Month)(nil)).Return(&models.PageResponse{Mode: "guest", Today: "2024-07-01"}, nil).Once()

	rec := httptest.NewRecorder()
	h.HandleJSON(rec, request("/api/v1/page"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"mode":"guest"`)

	rec = httptest.NewRecorder()
	h.HandleJSON(rec, request("/api/v1/page?month=07-2024"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	svc.On("GetPage", mock.Anything, "s1", (*domain.Month)(nil)).Return(nil, page.ErrSessionNotFound).Once()
	rec = httptest.NewRecorder()
	h.HandleJSON(rec, request("/api/v1/page"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
