package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/mdemidkin1992/shareit/internal/api/handlers"
)

const msgTooManyRequests = "слишком много запросов"

// Ограничения на число хранимых лимитеров
const (
	DefaultLimiterIdleTTL = 10 * time.Minute
	DefaultMaxLimiters    = 10000
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter ограничивает частоту запросов отдельно для каждого пользователя.
// Лимитеры, к которым не обращались дольше idleTTL, удаляются;
// при достижении maxKeys вытесняется самый давно использованный
type RateLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*limiterEntry
	lastSweep time.Time

	rps     float64
	burst   int
	idleTTL time.Duration
	maxKeys int
	now     func() time.Time
}

// NewRateLimiter создает ограничитель; burst <= 0 заменяется на 5
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	if burst <= 0 {
		burst = 5
	}
	return &RateLimiter{
		limiters: make(map[string]*limiterEntry),
		rps:      rps,
		burst:    burst,
		idleTTL:  DefaultLimiterIdleTTL,
		maxKeys:  DefaultMaxLimiters,
		now:      time.Now,
	}
}

// WithEviction задаёт время простоя и максимальное число лимитеров
func (l *RateLimiter) WithEviction(idleTTL time.Duration, maxKeys int) *RateLimiter {
	if idleTTL > 0 {
		l.idleTTL = idleTTL
	}
	if maxKeys > 0 {
		l.maxKeys = maxKeys
	}
	return l
}

// Len число хранимых лимитеров
func (l *RateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

func (l *RateLimiter) getLimiter(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if e, ok := l.limiters[key]; ok {
		e.lastSeen = now
		return e.limiter
	}

	if now.Sub(l.lastSweep) >= l.idleTTL || len(l.limiters) >= l.maxKeys {
		l.sweep(now)
	}
	if len(l.limiters) >= l.maxKeys {
		l.evictOldest()
	}

	e := &limiterEntry{limiter: rate.NewLimiter(rate.Limit(l.rps), l.burst), lastSeen: now}
	l.limiters[key] = e
	return e.limiter
}

// sweep удаляет простаивающие лимитеры, вызывается под mu
func (l *RateLimiter) sweep(now time.Time) {
	for key, e := range l.limiters {
		if now.Sub(e.lastSeen) >= l.idleTTL {
			delete(l.limiters, key)
		}
	}
	l.lastSweep = now
}

func (l *RateLimiter) evictOldest() {
	var (
		oldestKey string
		oldest    time.Time
	)
	for key, e := range l.limiters {
		if oldestKey == "" || e.lastSeen.Before(oldest) {
			oldestKey, oldest = key, e.lastSeen
		}
	}
	delete(l.limiters, oldestKey)
}

// Middleware отвечает 429, когда пользователь превысил лимит.
// Ставится после Auth; без пользователя в контексте ключом служит адрес клиента
func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.RemoteAddr
		if userID, ok := GetUserID(r.Context()); ok {
			key = "user:" + strconv.FormatInt(userID, 10)
		}

		if !l.getLimiter(key).Allow() {
			handlers.RespondTooManyRequests(w, msgTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
