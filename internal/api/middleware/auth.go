package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/mdemidkin1992/shareit/internal/api/handlers"
)

// UserIDHeader заголовок с ID текущего пользователя
const UserIDHeader = "X-Sharer-User-Id"

const (
	msgMissingUserID = "отсутствует заголовок X-Sharer-User-Id"
	msgInvalidUserID = "некорректный заголовок X-Sharer-User-Id"
)

type contextKey string

const userIDKey contextKey = "userID"

// Auth извлекает ID пользователя из заголовка и кладёт его в контекст.
// Без заголовка или с некорректным значением запрос отклоняется с 401
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(UserIDHeader)
		if raw == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgInvalidUserID)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}

// GetUserID возвращает ID пользователя, сохранённый Auth
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}

// WithUserID кладёт ID пользователя в контекст
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}
