package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/mdemidkin1992/shareit/internal/domain"
	"github.com/mdemidkin1992/shareit/pkg/dbmetrics"
	"github.com/mdemidkin1992/shareit/pkg/psqlbuilder"
	"github.com/mdemidkin1992/shareit/pkg/types"
)

// Бронь читается вместе с вещью и автором
var bookingColumns = []string{
	"b.id",
	"b.start_date",
	"b.end_date",
	"b.status",
	"i.id",
	"i.name",
	"i.description",
	"i.available",
	"i.owner_id",
	"u.id",
	"u.name",
	"u.email",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет бронирование и заполняет ID.
// Item и Booker должны быть заполнены вызывающей стороной
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns("start_date", "end_date", "item_id", "booker_id", "status").
		Values(
			types.ToDB(booking.Start),
			types.ToDB(booking.End),
			booking.Item.ID,
			booking.Booker.ID,
			booking.Status,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&booking.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return booking, nil
}

// GetByID получает бронирование вместе с вещью и автором
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBookings().
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// UpdateStatus переводит бронирование в status одним условным UPDATE.
// Если бронь уже в этом статусе, возвращает ErrStatusUnchanged
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.NotEq{"status": status}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrStatusUnchanged
	}

	return nil
}

// List возвращает бронирования автора или владельца вещей по фильтру состояния,
// отсортированные по началу (сначала поздние)
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectBookings()

	switch {
	case filter.BookerID != nil:
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.booker_id": *filter.BookerID})
	case filter.OwnerID != nil:
		selectBuilder = selectBuilder.Where(squirrel.Eq{"i.owner_id": *filter.OwnerID})
	default:
		return nil, fmt.Errorf("%w: List - neither booker nor owner set", ErrBuildQuery)
	}

	cond, err := stateCondition(filter.State, types.ToDB(filter.Now))
	if err != nil {
		return nil, err
	}
	if cond != nil {
		selectBuilder = selectBuilder.Where(cond)
	}

	query, args, err := selectBuilder.
		OrderBy("b.start_date DESC").
		Offset(filter.Page.Offset()).
		Limit(filter.Page.Limit()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetLastAndNext возвращает для каждой вещи последнюю начавшуюся и ближайшую будущую
// одобренную бронь относительно now
func (r *Repository) GetLastAndNext(ctx context.Context, itemIDs []int64, now time.Time) (map[int64]*domain.BookingShort, map[int64]*domain.BookingShort, error) {
	last := make(map[int64]*domain.BookingShort)
	next := make(map[int64]*domain.BookingShort)
	if len(itemIDs) == 0 {
		return last, next, nil
	}

	dbNow := types.ToDB(now)

	// DISTINCT ON оставляет первую строку каждой вещи согласно ORDER BY
	lastQuery := psqlbuilder.Select("DISTINCT ON (item_id) item_id", "id", "booker_id", "start_date", "end_date").
		From("bookings").
		Where(squirrel.Eq{"item_id": itemIDs, "status": domain.StatusApproved}).
		Where(squirrel.Lt{"start_date": dbNow}).
		OrderBy("item_id", "start_date DESC")

	nextQuery := psqlbuilder.Select("DISTINCT ON (item_id) item_id", "id", "booker_id", "start_date", "end_date").
		From("bookings").
		Where(squirrel.Eq{"item_id": itemIDs, "status": domain.StatusApproved}).
		Where(squirrel.Gt{"start_date": dbNow}).
		OrderBy("item_id", "start_date ASC")

	if err := r.collectShort(ctx, "GetLastAndNext(last)", lastQuery, last); err != nil {
		return nil, nil, err
	}
	if err := r.collectShort(ctx, "GetLastAndNext(next)", nextQuery, next); err != nil {
		return nil, nil, err
	}

	return last, next, nil
}

// HasFinishedApproved проверяет, что у пользователя есть одобренная бронь вещи, завершившаяся до now
func (r *Repository) HasFinishedApproved(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("bookings").
		Where(squirrel.Eq{
			"booker_id": bookerID,
			"item_id":   itemID,
			"status":    domain.StatusApproved,
		}).
		Where(squirrel.Lt{"end_date": types.ToDB(now)}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: HasFinishedApproved - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: HasFinishedApproved - scan: %v", ErrScanRow, err)
	}

	return true, nil
}

func (r *Repository) collectShort(ctx context.Context, op string, builder squirrel.SelectBuilder, dst map[int64]*domain.BookingShort) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	for rows.Next() {
		var itemID int64
		var short domain.BookingShort
		if err := rows.Scan(&itemID, &short.ID, &short.BookerID, &short.Start, &short.End); err != nil {
			return fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		short.Start = types.FromDB(short.Start)
		short.End = types.FromDB(short.End)
		dst[itemID] = &short
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return nil
}

func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(s scanner) (*domain.Booking, error) {
	var b domain.Booking
	err := s.Scan(
		&b.ID,
		&b.Start,
		&b.End,
		&b.Status,
		&b.Item.ID,
		&b.Item.Name,
		&b.Item.Description,
		&b.Item.Available,
		&b.Item.OwnerID,
		&b.Booker.ID,
		&b.Booker.Name,
		&b.Booker.Email,
	)
	if err != nil {
		return nil, err
	}

	b.Start = types.FromDB(b.Start)
	b.End = types.FromDB(b.End)
	return &b, nil
}

func selectBookings() squirrel.SelectBuilder {
	return psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		Join("items i ON i.id = b.item_id").
		Join("users u ON u.id = b.booker_id")
}

// stateCondition условие WHERE для фильтра состояния; nil для ALL
func stateCondition(state domain.BookingState, now time.Time) (squirrel.Sqlizer, error) {
	switch state {
	case domain.StateAll:
		return nil, nil
	case domain.StateCurrent:
		return squirrel.And{
			squirrel.Lt{"b.start_date": now},
			squirrel.Gt{"b.end_date": now},
		}, nil
	case domain.StatePast:
		return squirrel.Lt{"b.end_date": now}, nil
	case domain.StateFuture:
		return squirrel.Gt{"b.start_date": now}, nil
	case domain.StateWaiting:
		return squirrel.Eq{"b.status": domain.StatusWaiting}, nil
	case domain.StateRejected:
		return squirrel.Eq{"b.status": domain.StatusRejected}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedState, state)
	}
}
