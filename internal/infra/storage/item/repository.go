package item

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/mdemidkin1992/shareit/internal/domain"
	"github.com/mdemidkin1992/shareit/pkg/dbmetrics"
	"github.com/mdemidkin1992/shareit/pkg/psqlbuilder"
)

var itemColumns = []string{"id", "name", "description", "available", "owner_id", "request_id"}

// Repository репозиторий вещей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория вещей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет вещь и заполняет ID
func (r *Repository) Create(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("items").
		Columns("name", "description", "available", "owner_id", "request_id").
		Values(item.Name, item.Description, item.Available, item.OwnerID, item.RequestID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&item.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return item, nil
}

// GetByID получает вещь по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(itemColumns...).
		From("items").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	item, err := scanItem(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan item: %v", ErrScanRow, err)
	}

	return item, nil
}

// GetByOwner возвращает вещи владельца по возрастанию ID
func (r *Repository) GetByOwner(ctx context.Context, ownerID int64, page domain.Page) ([]*domain.Item, error) {
	query, args, err := psqlbuilder.Select(itemColumns...).
		From("items").
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("id").
		Offset(page.Offset()).
		Limit(page.Limit()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOwner - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, "GetByOwner", query, args)
}

// GetByRequests возвращает вещи, добавленные в ответ на запросы, сгруппированные по ID запроса
func (r *Repository) GetByRequests(ctx context.Context, requestIDs []int64) (map[int64][]*domain.Item, error) {
	result := make(map[int64][]*domain.Item, len(requestIDs))
	if len(requestIDs) == 0 {
		return result, nil
	}

	query, args, err := psqlbuilder.Select(itemColumns...).
		From("items").
		Where(squirrel.Eq{"request_id": requestIDs}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRequests - build select query: %v", ErrBuildQuery, err)
	}

	items, err := r.query(ctx, "GetByRequests", query, args)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		result[*it.RequestID] = append(result[*it.RequestID], it)
	}

	return result, nil
}

// Search ищет доступные вещи, в названии или описании которых есть text (без учёта регистра)
func (r *Repository) Search(ctx context.Context, text string, page domain.Page) ([]*domain.Item, error) {
	pattern := "%" + escapeLike(text) + "%"

	query, args, err := psqlbuilder.Select(itemColumns...).
		From("items").
		Where(squirrel.Eq{"available": true}).
		Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"description": pattern},
		}).
		OrderBy("id").
		Offset(page.Offset()).
		Limit(page.Limit()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Search - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, "Search", query, args)
}

// Update применяет частичное обновление и возвращает вещь целиком
func (r *Repository) Update(ctx context.Context, id int64, upd domain.ItemUpdate) (*domain.Item, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	set := map[string]interface{}{}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Available != nil {
		set["available"] = *upd.Available
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	query, args, err := psqlbuilder.Update("items").
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(itemColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	item, err := scanItem(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return item, nil
}

// Delete удаляет вещь
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("items").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrItemNotFound
	}

	return nil
}

func (r *Repository) query(ctx context.Context, op string, query string, args []interface{}) ([]*domain.Item, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	items := make([]*domain.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return items, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanItem(s scanner) (*domain.Item, error) {
	var (
		item      domain.Item
		requestID sql.NullInt64
	)
	if err := s.Scan(&item.ID, &item.Name, &item.Description, &item.Available, &item.OwnerID, &requestID); err != nil {
		return nil, err
	}
	if requestID.Valid {
		item.RequestID = &requestID.Int64
	}
	return &item, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
