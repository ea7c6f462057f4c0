package block_date

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

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

func (m *mockService) BlockSelected(ctx context.Context, sessionID string) (*models.BlockedDateResponse, error) {
	args := m.Called(ctx, sessionID)
	if resp, ok := args.Get(0).(*models.BlockedDateResponse); ok {
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

func request(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	return req.WithContext(middleware.WithSessionID(req.Context(), "s1"))
}

func TestHandleForm_Success(t *testing.T) {
	svc := &mockService{}
	notices := &fakeNotices{}
	h := NewHandler(svc, notices, logger.NewNop())
	svc.On("BlockSelected", mock.Anything, "s1").Return(&models.BlockedDateResponse{Index: 0, Date: "2024-07-04"}, nil)

	rec := httptest.NewRecorder()
	h.HandleForm(rec, request(http.MethodPost, "/admin/blocked-dates"))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/#admin", rec.Header().Get("Location"))
	require.Len(t, notices.pushed, 1)
	assert.Equal(t, domain.SuccessNotice("Дата закрыта для бронирования"), notices.pushed[0])
}

func TestHandleJSON(t *testing.T) {
	tests := []struct {
		name       string
		resp       *models.BlockedDateResponse
		err        error
		wantStatus int
	}{
		{name: "created", resp: &models.BlockedDateResponse{Date: "2024-07-04"}, wantStatus: http.StatusCreated},
		{name: "guest", err: calendar.ErrAdminModeRequired, wantStatus: http.StatusForbidden},
		{name: "no selection", err: calendar.ErrNoDateSelected, wantStatus: http.StatusBadRequest},
		{name: "duplicate", err: calendar.ErrDateAlreadyBlocked, wantStatus: http.StatusConflict},
		{name: "internal", err: calendar.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			h := NewHandler(svc, &fakeNotices{}, logger.NewNop())
			svc.On("BlockSelected", mock.Anything, "s1").Return(tt.resp, tt.err)

			rec := httptest.NewRecorder()
			h.HandleJSON(rec, request(http.MethodPost, "/api/v1/admin/blocked-dates"))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
