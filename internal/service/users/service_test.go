package users

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mdemidkin1992/shareit/internal/domain"
	userRepo "github.com/mdemidkin1992/shareit/internal/infra/storage/user"
	"github.com/mdemidkin1992/shareit/internal/service/users/models"
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

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestCreate(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, nopLogger{})
	ctx := context.Background()

	repo.On("Create", ctx, &domain.User{Name: "Alice", Email: "alice@example.com"}).
		Return(&domain.User{ID: 1, Name: "Alice", Email: "alice@example.com"}, nil).Once()

	resp, err := svc.Create(ctx, &models.CreateUserRequest{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)
	assert.Equal(t, &models.UserResponse{ID: 1, Name: "Alice", Email: "alice@example.com"}, resp)

	repo.On("Create", ctx, &domain.User{Name: "Bob", Email: "alice@example.com"}).
		Return(nil, userRepo.ErrEmailAlreadyExists)

	_, err = svc.Create(ctx, &models.CreateUserRequest{Name: "Bob", Email: "alice@example.com"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestGetByID(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, nopLogger{})
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(404)).Return(nil, userRepo.ErrUserNotFound)
	repo.On("GetByID", ctx, int64(500)).Return(nil, errors.New("broken pipe"))

	_, err := svc.GetByID(ctx, 404)
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.GetByID(ctx, 500)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestGetAll_Empty(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, nopLogger{})
	ctx := context.Background()

	repo.On("GetAll", ctx).Return([]*domain.User{}, nil)

	resp, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Empty(t, resp)
}

func TestUpdate(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, nopLogger{})
	ctx := context.Background()

	upd := domain.UserUpdate{Email: ptr.Ptr("new@example.com")}
	repo.On("Update", ctx, int64(1), upd).Return(&domain.User{ID: 1, Name: "Alice", Email: "new@example.com"}, nil)

	resp, err := svc.Update(ctx, 1, &models.UpdateUserRequest{Email: ptr.Ptr("new@example.com")})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", resp.Email)
}

func TestDelete(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, nopLogger{})
	ctx := context.Background()

	repo.On("Delete", ctx, int64(1)).Return(nil)
	repo.On("Delete", ctx, int64(2)).Return(userRepo.ErrUserNotFound)

	require.NoError(t, svc.Delete(ctx, 1))
	assert.ErrorIs(t, svc.Delete(ctx, 2), ErrUserNotFound)
}
