package get_own_requests

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mdemidkin1992/shareit/internal/api/middleware"
	"github.com/mdemidkin1992/shareit/internal/service/requests"
	"github.com/mdemidkin1992/shareit/internal/service/requests/models"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) ListOwn(ctx context.Context, userID int64) ([]models.RequestResponse, error) {
	args := m.Called(ctx, userID)
	resp, _ := args.Get(0).([]models.RequestResponse)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc RequestService) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/requests", nil)
	req.Header.Set(middleware.UserIDHeader, "1")
	rec := httptest.NewRecorder()
	middleware.Auth(http.HandlerFunc(NewHandler(svc, nopLogger{}).Handle)).ServeHTTP(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	svc := &mockService{}
	svc.On("ListOwn", mock.Anything, int64(1)).Return([]models.RequestResponse{{
		ID:          3,
		Description: "Need a ladder",
		Created:     "2026-05-01T12:00:00",
		Items: []models.RequestItemResponse{
			{ID: 11, Name: "Ladder", Description: "Tall", Available: true, RequestID: 3},
		},
	}}, nil)

	rec := serve(svc)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{
		"id":3,"description":"Need a ladder","created":"2026-05-01T12:00:00",
		"items":[{"id":11,"name":"Ladder","description":"Tall","available":true,"requestId":3}]
	}]`, rec.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "user not found", err: requests.ErrUserNotFound, want: http.StatusNotFound},
		{name: "internal", err: errors.New("db is down"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("ListOwn", mock.Anything, int64(1)).Return(nil, tt.err)

			assert.Equal(t, tt.want, serve(svc).Code)
		})
	}
}
