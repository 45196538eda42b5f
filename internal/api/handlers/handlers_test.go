package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdemidkin1992/shareit/internal/domain"
)

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondNotFound(rec, "не найдено")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "не найдено", body.Error)
}

func TestRespondNoContent(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondNoContent(rec)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Drill"}`))
	require.NoError(t, DecodeJSON(r, &dst))
	assert.Equal(t, "Drill", dst.Name)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
	assert.Error(t, DecodeJSON(r, &dst))

	r = httptest.NewRequest(http.MethodPost, "/", nil)
	assert.ErrorIs(t, DecodeJSON(r, &dst), ErrEmptyBody)
}

func TestPathInt64(t *testing.T) {
	tests := []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{raw: "42", want: 42},
		{raw: "0", wantErr: true},
		{raw: "-1", wantErr: true},
		{raw: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			r := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": tt.raw})
			got, err := PathInt64(r, "id")
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidParam)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePage(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    domain.Page
		wantErr bool
	}{
		{name: "defaults", query: "", want: domain.Page{From: 0, Size: 10}},
		{name: "explicit", query: "from=20&size=5", want: domain.Page{From: 20, Size: 5}},
		{name: "negative from", query: "from=-1&size=5", wantErr: true},
		{name: "zero size", query: "from=0&size=0", wantErr: true},
		{name: "not a number", query: "from=x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)
			got, err := ParsePage(r, 10)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidate(t *testing.T) {
	type dto struct {
		Name  string `validate:"required,max=5"`
		Email string `validate:"required,email"`
	}

	assert.NoError(t, Validate(dto{Name: "Ann", Email: "ann@example.com"}))

	err := Validate(dto{Name: "Annabelle", Email: "nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Email: некорректный email")
	assert.Contains(t, err.Error(), "Name: максимальная длина 5")
}

func TestValidate_NotBlank(t *testing.T) {
	type dto struct {
		Text string `validate:"notblank"`
	}

	assert.NoError(t, Validate(dto{Text: "ok"}))
	assert.EqualError(t, Validate(dto{Text: "   "}), "Text: не может быть пустым")
}
