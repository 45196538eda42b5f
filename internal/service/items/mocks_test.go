package items

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/mdemidkin1992/shareit/internal/domain"
)

type mockItemRepo struct {
	mock.Mock
}

func (m *mockItemRepo) Create(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	args := m.Called(ctx, item)
	it, _ := args.Get(0).(*domain.Item)
	return it, args.Error(1)
}

func (m *mockItemRepo) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	args := m.Called(ctx, id)
	it, _ := args.Get(0).(*domain.Item)
	return it, args.Error(1)
}

func (m *mockItemRepo) GetByOwner(ctx context.Context, ownerID int64, page domain.Page) ([]*domain.Item, error) {
	args := m.Called(ctx, ownerID, page)
	it, _ := args.Get(0).([]*domain.Item)
	return it, args.Error(1)
}

func (m *mockItemRepo) Search(ctx context.Context, text string, page domain.Page) ([]*domain.Item, error) {
	args := m.Called(ctx, text, page)
	it, _ := args.Get(0).([]*domain.Item)
	return it, args.Error(1)
}

func (m *mockItemRepo) Update(ctx context.Context, id int64, upd domain.ItemUpdate) (*domain.Item, error) {
	args := m.Called(ctx, id, upd)
	it, _ := args.Get(0).(*domain.Item)
	return it, args.Error(1)
}

func (m *mockItemRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) GetLastAndNext(ctx context.Context, itemIDs []int64, now time.Time) (map[int64]*domain.BookingShort, map[int64]*domain.BookingShort, error) {
	args := m.Called(ctx, itemIDs, now)
	last, _ := args.Get(0).(map[int64]*domain.BookingShort)
	next, _ := args.Get(1).(map[int64]*domain.BookingShort)
	return last, next, args.Error(2)
}

func (m *mockBookingRepo) HasFinishedApproved(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error) {
	args := m.Called(ctx, bookerID, itemID, now)
	return args.Bool(0), args.Error(1)
}

type mockCommentRepo struct {
	mock.Mock
}

func (m *mockCommentRepo) Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	args := m.Called(ctx, comment)
	c, _ := args.Get(0).(*domain.Comment)
	return c, args.Error(1)
}

func (m *mockCommentRepo) GetByItems(ctx context.Context, itemIDs []int64) (map[int64][]*domain.Comment, error) {
	args := m.Called(ctx, itemIDs)
	c, _ := args.Get(0).(map[int64][]*domain.Comment)
	return c, args.Error(1)
}

type mockRequestRepo struct {
	mock.Mock
}

func (m *mockRequestRepo) GetByID(ctx context.Context, id int64) (*domain.ItemRequest, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*domain.ItemRequest)
	return r, args.Error(1)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

type inlineTx struct{}

func (inlineTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
