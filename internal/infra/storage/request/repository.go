package request

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/mdemidkin1992/shareit/internal/domain"
	"github.com/mdemidkin1992/shareit/pkg/dbmetrics"
	"github.com/mdemidkin1992/shareit/pkg/psqlbuilder"
	"github.com/mdemidkin1992/shareit/pkg/types"
)

var requestColumns = []string{"id", "description", "requester_id", "created"}

// Repository репозиторий запросов на вещи
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория запросов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет запрос и заполняет ID
func (r *Repository) Create(ctx context.Context, req *domain.ItemRequest) (*domain.ItemRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("item_requests").
		Columns("description", "requester_id", "created").
		Values(req.Description, req.RequesterID, types.ToDB(req.Created)).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&req.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return req, nil
}

// GetByID получает запрос по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ItemRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(requestColumns...).
		From("item_requests").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	req, err := scanRequest(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan request: %v", ErrScanRow, err)
	}

	return req, nil
}

// GetByRequester возвращает все запросы пользователя, новые первыми
func (r *Repository) GetByRequester(ctx context.Context, requesterID int64) ([]*domain.ItemRequest, error) {
	query, args, err := psqlbuilder.Select(requestColumns...).
		From("item_requests").
		Where(squirrel.Eq{"requester_id": requesterID}).
		OrderBy("created DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRequester - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, "GetByRequester", query, args)
}

// GetOthers возвращает страницу чужих запросов, новые первыми
func (r *Repository) GetOthers(ctx context.Context, userID int64, page domain.Page) ([]*domain.ItemRequest, error) {
	query, args, err := psqlbuilder.Select(requestColumns...).
		From("item_requests").
		Where(squirrel.NotEq{"requester_id": userID}).
		OrderBy("created DESC", "id DESC").
		Offset(page.Offset()).
		Limit(page.Limit()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOthers - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, "GetOthers", query, args)
}

func (r *Repository) query(ctx context.Context, op string, query string, args []interface{}) ([]*domain.ItemRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	requests := make([]*domain.ItemRequest, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return requests, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRequest(s scanner) (*domain.ItemRequest, error) {
	var req domain.ItemRequest
	if err := s.Scan(&req.ID, &req.Description, &req.RequesterID, &req.Created); err != nil {
		return nil, err
	}
	req.Created = types.FromDB(req.Created)
	return &req, nil
}
