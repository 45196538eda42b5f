package get_users

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mdemidkin1992/shareit/internal/service/users/models"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) GetAll(ctx context.Context) ([]models.UserResponse, error) {
	args := m.Called(ctx)
	resp, _ := args.Get(0).([]models.UserResponse)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc UserService) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/users", nil))
	return rec
}

func TestHandle_OK(t *testing.T) {
	svc := &mockService{}
	svc.On("GetAll", mock.Anything).Return([]models.UserResponse{
		{ID: 1, Name: "Ann", Email: "ann@example.com"},
		{ID: 2, Name: "Bob", Email: "bob@example.com"},
	}, nil)

	rec := serve(svc)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[
		{"id":1,"name":"Ann","email":"ann@example.com"},
		{"id":2,"name":"Bob","email":"bob@example.com"}
	]`, rec.Body.String())
}

func TestHandle_Empty(t *testing.T) {
	svc := &mockService{}
	svc.On("GetAll", mock.Anything).Return([]models.UserResponse{}, nil)

	rec := serve(svc)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestHandle_InternalError(t *testing.T) {
	svc := &mockService{}
	svc.On("GetAll", mock.Anything).Return(nil, errors.New("db is down"))

	assert.Equal(t, http.StatusInternalServerError, serve(svc).Code)
}
