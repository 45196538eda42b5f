package request

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdemidkin1992/shareit/internal/domain"
	"github.com/mdemidkin1992/shareit/internal/infra/storage/storagetest"
)

func TestRepository_CreateAndGet(t *testing.T) {
	db := storagetest.Open(t)
	repo := NewRepository(db)
	ctx := context.Background()

	requester := storagetest.MustUser(t, db, "Requester", "requester@example.com")
	created := time.Date(2026, 3, 1, 10, 30, 0, 0, time.Local)

	req, err := repo.Create(ctx, &domain.ItemRequest{
		Description: "Need a ladder",
		RequesterID: requester.ID,
		Created:     created,
	})
	require.NoError(t, err)
	assert.NotZero(t, req.ID)

	got, err := repo.GetByID(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, "Need a ladder", got.Description)
	assert.Equal(t, requester.ID, got.RequesterID)
	assert.True(t, created.Equal(got.Created), "created %s, got %s", created, got.Created)

	_, err = repo.GetByID(ctx, 999)
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestRepository_OwnAndOthers(t *testing.T) {
	db := storagetest.Open(t)
	repo := NewRepository(db)
	ctx := context.Background()

	ann := storagetest.MustUser(t, db, "Ann", "ann@example.com")
	bob := storagetest.MustUser(t, db, "Bob", "bob@example.com")
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.Local)

	annOld := storagetest.MustRequest(t, db, ann.ID, "ann old", base)
	annNew := storagetest.MustRequest(t, db, ann.ID, "ann new", base.Add(time.Hour))
	bob1 := storagetest.MustRequest(t, db, bob.ID, "bob 1", base.Add(2*time.Hour))
	bob2 := storagetest.MustRequest(t, db, bob.ID, "bob 2", base.Add(3*time.Hour))
	bob3 := storagetest.MustRequest(t, db, bob.ID, "bob 3", base.Add(4*time.Hour))

	own, err := repo.GetByRequester(ctx, ann.ID)
	require.NoError(t, err)
	require.Len(t, own, 2)
	assert.Equal(t, annNew.ID, own[0].ID)
	assert.Equal(t, annOld.ID, own[1].ID)

	page, _ := domain.NewPage(0, 10)
	others, err := repo.GetOthers(ctx, ann.ID, page)
	require.NoError(t, err)
	require.Len(t, others, 3)
	assert.Equal(t, []int64{bob3.ID, bob2.ID, bob1.ID}, []int64{others[0].ID, others[1].ID, others[2].ID})

	second, _ := domain.NewPage(2, 2)
	others, err = repo.GetOthers(ctx, ann.ID, second)
	require.NoError(t, err)
	require.Len(t, others, 1)
	assert.Equal(t, bob1.ID, others[0].ID)

	none, err := repo.GetByRequester(ctx, 999)
	require.NoError(t, err)
	assert.Empty(t, none)
}
