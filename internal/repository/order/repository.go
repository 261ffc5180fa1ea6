package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yakkt/campervan-configurator/internal/model"
)

type repository struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

func NewOrderRepository(pool *pgxpool.Pool) *repository {
	return &repository{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *repository) Create(ctx context.Context, ord *model.Order) (uuid.UUID, error) {
	const op = "repository.Create"

	q := r.sb.
		Insert("orders").
		Columns(
			"session_id", "chassis_id", "chassis_name", "option_ids",
			"total_price", "final_price", "woo_order_id", "checkout_url", "status",
		).
		Values(
			ord.SessionID, ord.ChassisID, ord.ChassisName, ord.OptionIDs,
			ord.TotalPrice, ord.FinalPrice, ord.WooOrderID, ord.CheckoutURL, ord.Status,
		).
		Suffix("RETURNING id")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	var orderID uuid.UUID
	if err := r.pool.QueryRow(ctx, sqlStr, args...).Scan(&orderID); err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return orderID, nil
}

func (r *repository) OrderByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	const op = "repository.OrderByID"

	q := r.sb.
		Select(
			"id", "session_id", "chassis_id", "chassis_name", "option_ids",
			"total_price", "final_price", "woo_order_id", "checkout_url", "status", "created_at",
		).
		From("orders").
		Where(sq.Eq{"id": id})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var ord model.Order
	err = r.pool.QueryRow(ctx, sqlStr, args...).Scan(
		&ord.ID,
		&ord.SessionID,
		&ord.ChassisID,
		&ord.ChassisName,
		&ord.OptionIDs,
		&ord.TotalPrice,
		&ord.FinalPrice,
		&ord.WooOrderID,
		&ord.CheckoutURL,
		&ord.Status,
		&ord.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrOrderNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &ord, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) error {
	const op = "repository.UpdateStatus"

	q := r.sb.
		Update("orders").
		Set("status", status).
		Where(sq.Eq{"id": id})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	ct, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if ct.RowsAffected() == 0 {
		return model.ErrOrderNotFound
	}

	return nil
}
