package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mdemidkin1992/shareit/internal/domain"
	"github.com/mdemidkin1992/shareit/pkg/ptr"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

func (m *mockRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

func (m *mockRepo) GetAll(ctx context.Context) ([]*domain.User, error) {
	args := m.Called(ctx)
	u, _ := args.Get(0).([]*domain.User)
	return u, args.Error(1)
}

func (m *mockRepo) Update(ctx context.Context, id int64, upd domain.UserUpdate) (*domain.User, error) {
	args := m.Called(ctx, id, upd)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

func (m *mockRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type countingMetrics struct {
	counts map[string]int
}

func (m *countingMetrics) IncCache(_, result string) {
	m.counts[result]++
}

type nopLogger struct{}

func (nopLogger) Warn(string, ...interface{}) {}

func setup(t *testing.T) (*Users, *mockRepo, *countingMetrics, *miniredis.Miniredis) {
	s, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(s.Close)

	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	repo := &mockRepo{}
	m := &countingMetrics{counts: map[string]int{}}
	return NewUsers(repo, client, time.Minute, m, nopLogger{}), repo, m, s
}

func TestUsers_GetByID_ReadThrough(t *testing.T) {
	c, repo, m, s := setup(t)
	ctx := context.Background()

	alice := &domain.User{ID: 1, Name: "Alice", Email: "alice@example.com"}
	repo.On("GetByID", ctx, int64(1)).Return(alice, nil).Once()

	got, err := c.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, alice, got)
	assert.True(t, s.Exists("shareit:user:1"))

	got, err = c.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, alice, got)

	repo.AssertNumberOfCalls(t, "GetByID", 1)
	assert.Equal(t, 1, m.counts[resultMiss])
	assert.Equal(t, 1, m.counts[resultHit])

	s.FastForward(2 * time.Minute)
	assert.False(t, s.Exists("shareit:user:1"))
}

func TestUsers_GetByID_NotFoundIsNotCached(t *testing.T) {
	c, repo, _, s := setup(t)
	ctx := context.Background()
	errNotFound := errors.New("not found")

	repo.On("GetByID", ctx, int64(5)).Return(nil, errNotFound)

	_, err := c.GetByID(ctx, 5)
	assert.ErrorIs(t, err, errNotFound)
	assert.False(t, s.Exists("shareit:user:5"))
}

func TestUsers_GetByID_RedisDown(t *testing.T) {
	c, repo, m, s := setup(t)
	ctx := context.Background()
	s.Close()

	alice := &domain.User{ID: 1, Name: "Alice", Email: "alice@example.com"}
	repo.On("GetByID", ctx, int64(1)).Return(alice, nil)

	got, err := c.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, alice, got)
	assert.Equal(t, 1, m.counts[resultError])
}

func TestUsers_UpdateAndDeleteInvalidate(t *testing.T) {
	c, repo, _, s := setup(t)
	ctx := context.Background()

	require.NoError(t, s.Set("shareit:user:1", `{"id":1,"name":"Alice","email":"a@x"}`))

	upd := domain.UserUpdate{Name: ptr.Ptr("Alicia")}
	repo.On("Update", ctx, int64(1), upd).Return(&domain.User{ID: 1, Name: "Alicia", Email: "a@x"}, nil)

	_, err := c.Update(ctx, 1, upd)
	require.NoError(t, err)
	assert.False(t, s.Exists("shareit:user:1"))

	require.NoError(t, s.Set("shareit:user:1", `{"id":1,"name":"Alicia","email":"a@x"}`))
	repo.On("Delete", ctx, int64(1)).Return(nil)

	require.NoError(t, c.Delete(ctx, 1))
	assert.False(t, s.Exists("shareit:user:1"))
}
