package comment

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/mdemidkin1992/shareit/internal/domain"
	"github.com/mdemidkin1992/shareit/pkg/dbmetrics"
	"github.com/mdemidkin1992/shareit/pkg/psqlbuilder"
	"github.com/mdemidkin1992/shareit/pkg/types"
)

// Repository репозиторий отзывов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория отзывов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет отзыв. AuthorName не пишется в таблицу, его заполняет вызывающая сторона
func (r *Repository) Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("comments").
		Columns("text", "item_id", "author_id", "created").
		Values(comment.Text, comment.ItemID, comment.AuthorID, types.ToDB(comment.Created)).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&comment.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return comment, nil
}

// GetByItems возвращает отзывы к вещам, сгруппированные по ID вещи, в порядке создания
func (r *Repository) GetByItems(ctx context.Context, itemIDs []int64) (map[int64][]*domain.Comment, error) {
	result := make(map[int64][]*domain.Comment, len(itemIDs))
	if len(itemIDs) == 0 {
		return result, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("c.id", "c.text", "c.item_id", "c.author_id", "u.name", "c.created").
		From("comments c").
		Join("users u ON u.id = c.author_id").
		Where(squirrel.Eq{"c.item_id": itemIDs}).
		OrderBy("c.created", "c.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByItems - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByItems - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.Text, &c.ItemID, &c.AuthorID, &c.AuthorName, &c.Created); err != nil {
			return nil, fmt.Errorf("%w: GetByItems - scan row: %v", ErrScanRow, err)
		}
		c.Created = types.FromDB(c.Created)
		result[c.ItemID] = append(result[c.ItemID], &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByItems - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}
