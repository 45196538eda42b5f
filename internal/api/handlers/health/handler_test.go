package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakePinger struct {
	err error
}

func (p fakePinger) PingContext(context.Context) error { return p.err }

type nopLogger struct{}

func (nopLogger) Error(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(fakePinger{}, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","database":"up"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	NewHandler(fakePinger{err: errors.New("refused")}, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
