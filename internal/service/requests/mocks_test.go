package requests

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/mdemidkin1992/shareit/internal/domain"
)

type mockRequestRepo struct {
	mock.Mock
}

func (m *mockRequestRepo) Create(ctx context.Context, req *domain.ItemRequest) (*domain.ItemRequest, error) {
	args := m.Called(ctx, req)
	r, _ := args.Get(0).(*domain.ItemRequest)
	return r, args.Error(1)
}

func (m *mockRequestRepo) GetByID(ctx context.Context, id int64) (*domain.ItemRequest, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*domain.ItemRequest)
	return r, args.Error(1)
}

func (m *mockRequestRepo) GetByRequester(ctx context.Context, requesterID int64) ([]*domain.ItemRequest, error) {
	args := m.Called(ctx, requesterID)
	r, _ := args.Get(0).([]*domain.ItemRequest)
	return r, args.Error(1)
}

func (m *mockRequestRepo) GetOthers(ctx context.Context, userID int64, page domain.Page) ([]*domain.ItemRequest, error) {
	args := m.Called(ctx, userID, page)
	r, _ := args.Get(0).([]*domain.ItemRequest)
	return r, args.Error(1)
}

type mockItemRepo struct {
	mock.Mock
}

func (m *mockItemRepo) GetByRequests(ctx context.Context, requestIDs []int64) (map[int64][]*domain.Item, error) {
	args := m.Called(ctx, requestIDs)
	it, _ := args.Get(0).(map[int64][]*domain.Item)
	return it, args.Error(1)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
