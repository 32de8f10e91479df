package repository

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/you-humble/field-service/internal/model"
)

const uniqueViolation = "23505"

type repository struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

func NewWorkOrderRepository(pool *pgxpool.Pool) *repository {
	return &repository{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *repository) Create(ctx context.Context, wo *model.WorkOrder) (uuid.UUID, error) {
	q := r.sb.
		Insert("work_orders").
		Columns("external_id", "assignee_id", "status").
		Values(wo.ExternalID, wo.AssigneeID, wo.Status).
		Suffix("RETURNING id")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return uuid.Nil, err
	}

	var workOrderID uuid.UUID
	if err := r.pool.QueryRow(ctx, sqlStr, args...).Scan(&workOrderID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return uuid.Nil, model.ErrWorkOrderConflict
		}
		return uuid.Nil, err
	}

	return workOrderID, nil
}

func (r *repository) WorkOrderByID(ctx context.Context, id uuid.UUID) (*model.WorkOrder, error) {
	return r.workOrderBy(ctx, sq.Eq{"id": id})
}

func (r *repository) WorkOrderByExternalID(ctx context.Context, externalID string) (*model.WorkOrder, error) {
	return r.workOrderBy(ctx, sq.Eq{"external_id": externalID})
}

func (r *repository) workOrderBy(ctx context.Context, where sq.Eq) (*model.WorkOrder, error) {
	q := r.sb.
		Select(
			"id", "external_id", "assignee_id", "status",
			"last_delivery_error", "created_at", "completed_at", "reconciled_at",
		).
		From("work_orders").
		Where(where)

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	var wo model.WorkOrder
	err = r.pool.QueryRow(ctx, sqlStr, args...).Scan(
		&wo.ID,
		&wo.ExternalID,
		&wo.AssigneeID,
		&wo.Status,
		&wo.LastDeliveryError,
		&wo.CreatedAt,
		&wo.CompletedAt,
		&wo.ReconciledAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrWorkOrderNotFound
		}
		return nil, err
	}

	return &wo, nil
}

// MarkLocallyComplete flips OPEN to LOCALLY_COMPLETE and stamps completed_at.
// Idempotent: a work order that already left OPEN keeps its original
// completion timestamp and the call is a no-op.
func (r *repository) MarkLocallyComplete(ctx context.Context, id uuid.UUID, completedAt time.Time) error {
	q := r.sb.
		Update("work_orders").
		Set("status", model.StatusLocallyComplete).
		Set("completed_at", completedAt).
		Where(sq.Eq{"id": id, "status": model.StatusOpen})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return err
	}

	ct, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return r.ensureExists(ctx, id)
	}

	return nil
}

// MarkReconciled flips LOCALLY_COMPLETE to the terminal RECONCILED state and
// clears the last delivery error.
func (r *repository) MarkReconciled(ctx context.Context, id uuid.UUID, reconciledAt time.Time) error {
	q := r.sb.
		Update("work_orders").
		Set("status", model.StatusReconciled).
		Set("reconciled_at", reconciledAt).
		Set("last_delivery_error", nil).
		Where(sq.Eq{"id": id, "status": model.StatusLocallyComplete})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return err
	}

	ct, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return r.ensureExists(ctx, id)
	}

	return nil
}

func (r *repository) SetDeliveryError(ctx context.Context, id uuid.UUID, cause string) error {
	q := r.sb.
		Update("work_orders").
		Set("last_delivery_error", cause).
		Where(sq.Eq{"id": id})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return err
	}

	ct, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return model.ErrWorkOrderNotFound
	}

	return nil
}

func (r *repository) ensureExists(ctx context.Context, id uuid.UUID) error {
	sqlStr, args, err := r.sb.
		Select("1").
		From("work_orders").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	var one int
	if err := r.pool.QueryRow(ctx, sqlStr, args...).Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrWorkOrderNotFound
		}
		return err
	}

	return nil
}
