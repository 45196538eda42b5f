package comment

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

	owner := storagetest.MustUser(t, db, "Owner", "owner@example.com")
	author := storagetest.MustUser(t, db, "Author", "author@example.com")
	item := storagetest.MustItem(t, db, owner.ID, "Drill", true)

	created := time.Now().Truncate(time.Second)
	c, err := repo.Create(ctx, &domain.Comment{
		Text:     "Great drill",
		ItemID:   item.ID,
		AuthorID: author.ID,
		Created:  created,
	})
	require.NoError(t, err)
	assert.NotZero(t, c.ID)

	byItem, err := repo.GetByItems(ctx, []int64{item.ID, 999})
	require.NoError(t, err)
	require.Len(t, byItem[item.ID], 1)
	assert.Equal(t, "Author", byItem[item.ID][0].AuthorName)
	assert.True(t, created.Equal(byItem[item.ID][0].Created))
	assert.Empty(t, byItem[999])
}
