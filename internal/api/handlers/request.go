package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/mdemidkin1992/shareit/internal/domain"
)

var (
	// ErrEmptyBody тело запроса отсутствует
	ErrEmptyBody = errors.New("handlers: empty request body")

	// ErrInvalidParam некорректный параметр пути или запроса
	ErrInvalidParam = errors.New("handlers: invalid parameter")
)

// DecodeJSON декодирует тело запроса в dst
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil || r.Body == http.NoBody {
		return ErrEmptyBody
	}
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("handlers: decode body: %w", err)
	}
	return nil
}

// PathInt64 достаёт положительный int64 из переменной пути
func PathInt64(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidParam, name, raw)
	}
	return id, nil
}

// ParsePage читает from/size из query, пустые значения заменяются на значения по умолчанию
func ParsePage(r *http.Request, defaultSize int) (domain.Page, error) {
	q := r.URL.Query()

	from, err := queryInt(q.Get("from"), domain.DefaultFrom)
	if err != nil {
		return domain.Page{}, fmt.Errorf("%w: from", ErrInvalidParam)
	}

	size, err := queryInt(q.Get("size"), defaultSize)
	if err != nil {
		return domain.Page{}, fmt.Errorf("%w: size", ErrInvalidParam)
	}

	return domain.NewPage(from, size)
}

// ParseDateTime разбирает время в формате 2006-01-02T15:04:05 в локальной зоне сервера
func ParseDateTime(s string) (time.Time, error) {
	return time.ParseInLocation(domain.DateTimeFormat, s, time.Local)
}

func queryInt(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
