package requests

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mdemidkin1992/shareit/internal/domain"
	requestRepo "github.com/mdemidkin1992/shareit/internal/infra/storage/request"
	userRepo "github.com/mdemidkin1992/shareit/internal/infra/storage/user"
	"github.com/mdemidkin1992/shareit/internal/service/requests/models"
	"github.com/mdemidkin1992/shareit/pkg/ptr"
)

const (
	requesterID int64 = 1
	ownerID     int64 = 2
)

var now = time.Date(2026, 5, 1, 12, 0, 0, 0, time.Local)

type env struct {
	svc      *Service
	requests *mockRequestRepo
	items    *mockItemRepo
	users    *mockUserRepo
}

func newEnv() *env {
	e := &env{
		requests: &mockRequestRepo{},
		items:    &mockItemRepo{},
		users:    &mockUserRepo{},
	}
	e.svc = NewService(e.requests, e.items, e.users, nopLogger{}).
		WithTimeProvider(fixedTime{now: now})
	return e
}

func TestCreate(t *testing.T) {
	e := newEnv()
	e.users.On("GetByID", mock.Anything, requesterID).Return(&domain.User{ID: requesterID}, nil)
	e.requests.On("Create", mock.Anything, mock.MatchedBy(func(r *domain.ItemRequest) bool {
		return r.RequesterID == requesterID && r.Description == "Need a ladder" && r.Created.Equal(now)
	})).Return(&domain.ItemRequest{ID: 5, Description: "Need a ladder", RequesterID: requesterID, Created: now}, nil)

	resp, err := e.svc.Create(context.Background(), &models.CreateRequest{
		RequesterID: requesterID,
		Description: "Need a ladder",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.ID)
	assert.Equal(t, now.Format(domain.DateTimeFormat), resp.Created)
	assert.NotNil(t, resp.Items)
	assert.Empty(t, resp.Items)
}

func TestCreate_Failures(t *testing.T) {
	tests := []struct {
		name        string
		description string
		userErr     error
		wantErr     error
	}{
		{name: "blank description", description: "  ", wantErr: ErrInvalidInput},
		{name: "unknown user", description: "Need a ladder", userErr: userRepo.ErrUserNotFound, wantErr: ErrUserNotFound},
		{name: "user lookup fails", description: "Need a ladder", userErr: errors.New("timeout"), wantErr: ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv()
			e.users.On("GetByID", mock.Anything, requesterID).Return(nil, tt.userErr)

			_, err := e.svc.Create(context.Background(), &models.CreateRequest{
				RequesterID: requesterID,
				Description: tt.description,
			})

			assert.ErrorIs(t, err, tt.wantErr)
			e.requests.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestListOwn_AttachesItems(t *testing.T) {
	e := newEnv()
	e.users.On("GetByID", mock.Anything, requesterID).Return(&domain.User{ID: requesterID}, nil)
	e.requests.On("GetByRequester", mock.Anything, requesterID).Return([]*domain.ItemRequest{
		{ID: 8, Description: "newer", RequesterID: requesterID, Created: now},
		{ID: 3, Description: "older", RequesterID: requesterID, Created: now.Add(-time.Hour)},
	}, nil)
	e.items.On("GetByRequests", mock.Anything, []int64{8, 3}).Return(map[int64][]*domain.Item{
		3: {{ID: 11, Name: "Ladder", Description: "Tall", Available: true, OwnerID: ownerID, RequestID: ptr.Ptr(int64(3))}},
	}, nil)

	resp, err := e.svc.ListOwn(context.Background(), requesterID)

	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, int64(8), resp[0].ID)
	assert.Empty(t, resp[0].Items)
	require.Len(t, resp[1].Items, 1)
	assert.Equal(t, models.RequestItemResponse{
		ID: 11, Name: "Ladder", Description: "Tall", Available: true, RequestID: 3,
	}, resp[1].Items[0])
}

func TestListOwn_UnknownUser(t *testing.T) {
	e := newEnv()
	e.users.On("GetByID", mock.Anything, int64(99)).Return(nil, userRepo.ErrUserNotFound)

	_, err := e.svc.ListOwn(context.Background(), 99)

	assert.ErrorIs(t, err, ErrUserNotFound)
	e.requests.AssertNotCalled(t, "GetByRequester", mock.Anything, mock.Anything)
}

func TestListOthers_PassesPage(t *testing.T) {
	e := newEnv()
	page := domain.Page{From: 4, Size: 2}
	e.users.On("GetByID", mock.Anything, requesterID).Return(&domain.User{ID: requesterID}, nil)
	e.requests.On("GetOthers", mock.Anything, requesterID, page).Return([]*domain.ItemRequest{
		{ID: 20, Description: "someone else", RequesterID: ownerID, Created: now},
	}, nil)
	e.items.On("GetByRequests", mock.Anything, []int64{20}).Return(map[int64][]*domain.Item{}, nil)

	resp, err := e.svc.ListOthers(context.Background(), requesterID, page)

	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, int64(20), resp[0].ID)
	e.requests.AssertExpectations(t)
}

func TestListOthers_ItemLookupFails(t *testing.T) {
	e := newEnv()
	page := domain.Page{From: 0, Size: 10}
	e.users.On("GetByID", mock.Anything, requesterID).Return(&domain.User{ID: requesterID}, nil)
	e.requests.On("GetOthers", mock.Anything, requesterID, page).Return([]*domain.ItemRequest{{ID: 20}}, nil)
	e.items.On("GetByRequests", mock.Anything, []int64{20}).Return(nil, errors.New("db is down"))

	_, err := e.svc.ListOthers(context.Background(), requesterID, page)

	assert.ErrorIs(t, err, ErrInternal)
}

func TestGetByID(t *testing.T) {
	e := newEnv()
	e.users.On("GetByID", mock.Anything, ownerID).Return(&domain.User{ID: ownerID}, nil)
	e.requests.On("GetByID", mock.Anything, int64(3)).
		Return(&domain.ItemRequest{ID: 3, Description: "Need a ladder", RequesterID: requesterID, Created: now}, nil)
	e.items.On("GetByRequests", mock.Anything, []int64{3}).Return(map[int64][]*domain.Item{}, nil)

	resp, err := e.svc.GetByID(context.Background(), 3, ownerID)

	require.NoError(t, err)
	assert.Equal(t, "Need a ladder", resp.Description)
}

func TestGetByID_Failures(t *testing.T) {
	tests := []struct {
		name    string
		userErr error
		repoErr error
		wantErr error
	}{
		{name: "unknown user", userErr: userRepo.ErrUserNotFound, wantErr: ErrUserNotFound},
		{name: "unknown request", repoErr: requestRepo.ErrRequestNotFound, wantErr: ErrRequestNotFound},
		{name: "repository fails", repoErr: errors.New("db is down"), wantErr: ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv()
			var user *domain.User
			if tt.userErr == nil {
				user = &domain.User{ID: ownerID}
			}
			e.users.On("GetByID", mock.Anything, ownerID).Return(user, tt.userErr)
			e.requests.On("GetByID", mock.Anything, int64(3)).Return(nil, tt.repoErr)

			_, err := e.svc.GetByID(context.Background(), 3, ownerID)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
