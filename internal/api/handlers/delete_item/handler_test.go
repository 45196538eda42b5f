package delete_item

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mdemidkin1992/shareit/internal/api/middleware"
	"github.com/mdemidkin1992/shareit/internal/service/items"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Delete(ctx context.Context, itemID, userID int64) error {
	return m.Called(ctx, itemID, userID).Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "deleted", want: http.StatusNoContent},
		{name: "item not found", err: items.ErrItemNotFound, want: http.StatusNotFound},
		{name: "not owner", err: items.ErrAccessDenied, want: http.StatusForbidden},
		{name: "internal", err: errors.New("db is down"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("Delete", mock.Anything, int64(5), int64(2)).Return(tt.err)

			r := mux.NewRouter()
			r.Use(middleware.Auth)
			r.HandleFunc("/items/{itemId}", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodDelete)

			req := httptest.NewRequest(http.MethodDelete, "/items/5", nil)
			req.Header.Set(middleware.UserIDHeader, "2")
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}
