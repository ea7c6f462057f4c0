package select_date

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FotoStudio/internal/api/middleware"
	"github.com/m04kA/SMC-FotoStudio/internal/domain"
	"github.com/m04kA/SMC-FotoStudio/internal/service/calendar"
	"github.com/m04kA/SMC-FotoStudio/internal/service/calendar/models"
	"github.com/m04kA/SMC-FotoStudio/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) SelectDate(ctx context.Context, sessionID string, date *domain.Day) (*models.SelectionResponse, error) {
	args := m.Called(ctx, sessionID, date)
	if resp, ok := args.Get(0).(*models.SelectionResponse); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

type fakeNotices struct {
	pushed []domain.Notice
}

func (f *fakeNotices) PushNotice(_ context.Context, _ string, n domain.Notice) error {
	f.pushed = append(f.pushed, n)
	return nil
}

func formRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/calendar/select", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req.WithContext(middleware.WithSessionID(req.Context(), "s1"))
}

func TestHandleForm_Select(t *testing.T) {
	svc := &mockService{}
	notices := &fakeNotices{}
	h := NewHandler(svc, notices, logger.NewNop())
	day := domain.NewDay(2024, time.July, 5)
	svc.On("SelectDate", mock.Anything, "s1", &day).Return(models.FromDomainSelection(&day), nil)

	rec := httptest.NewRecorder()
	h.HandleForm(rec, formRequest("date=2024-07-05"))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/#calendar", rec.Header().Get("Location"))
	assert.Empty(t, notices.pushed)
	svc.AssertExpectations(t)
}

func TestHandleForm_EmptyDateClears(t *testing.T) {
	svc := &mockService{}
	h := NewHandler(svc, &fakeNotices{}, logger.NewNop())
	svc.On("SelectDate", mock.Anything, "s1", (*domain.Day)(nil)).Return(&models.SelectionResponse{}, nil)

	rec := httptest.NewRecorder()
	h.HandleForm(rec, formRequest("date="))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	svc.AssertExpectations(t)
}

func TestHandleForm_DisabledDate(t *testing.T) {
	svc := &mockService{}
	notices := &fakeNotices{}
	h := NewHandler(svc, notices, logger.NewNop())
	svc.On("SelectDate", mock.Anything, "s1", mock.Anything).Return(nil, calendar.ErrDateDisabled)

	rec := httptest.NewRecorder()
	h.HandleForm(rec, formRequest("date=2024-06-01"))

	require.Len(t, notices.pushed, 1)
	assert.Equal(t, domain.NoticeError, notices.pushed[0].Level)
}

func TestHandleForm_InvalidDate(t *testing.T) {
	svc := &mockService{}
	notices := &fakeNotices{}
	h := NewHandler(svc, notices, logger.NewNop())

	rec := httptest.NewRecorder()
	h.HandleForm(rec, formRequest("date=05.07.2024"))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	require.Len(t, notices.pushed, 1)
	svc.AssertNotCalled(t, "SelectDate", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleJSON(t *testing.T) {
	svc := &mockService{}
	h := NewHandler(svc, &fakeNotices{}, logger.NewNop())
	day := domain.NewDay(2024, time.July, 5)
	svc.On("SelectDate", mock.Anything, "s1", &day).Return(models.FromDomainSelection(&day), nil)
	svc.On("SelectDate", mock.Anything, "s1", (*domain.Day)(nil)).Return(&models.SelectionResponse{}, nil)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/calendar/selection", strings.NewReader(`{"date":"2024-07-05"}`))
	rec := httptest.NewRecorder()
	h.HandleJSON(rec, req.WithContext(middleware.WithSessionID(req.Context(), "s1")))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"date":"2024-07-05","dateLabel":"5 июля 2024 г."}`, rec.Body.String())

	req = httptest.NewRequest(http.MethodPut, "/api/v1/calendar/selection", strings.NewReader(`{"date":null}`))
	rec = httptest.NewRecorder()
	h.HandleJSON(rec, req.WithContext(middleware.WithSessionID(req.Context(), "s1")))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"date":null}`, rec.Body.String())
}

func TestHandleJSON_Disabled(t *testing.T) {
	svc := &mockService{}
	h := NewHandler(svc, &fakeNotices{}, logger.NewNop())
	svc.On("SelectDate", mock.Anything, "s1", mock.Anything).Return(nil, calendar.ErrDateDisabled)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/calendar/selection", strings.NewReader(`{"date":"2024-06-01"}`))
	rec := httptest.NewRecorder()
	h.HandleJSON(rec, req.WithContext(middleware.WithSessionID(req.Context(), "s1")))

	assert.Equal(t, http.StatusConflict, rec.Code)
}
