package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/you-humble/field-service/internal/model"
)

type repository struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

func NewPartRepository(pool *pgxpool.Pool) *repository {
	return &repository{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *repository) CreateBatch(ctx context.Context, usages []model.PartUsage) error {
	if len(usages) == 0 {
		return nil
	}

	q := r.sb.
		Insert("part_usages").
		Columns("intervention_id", "work_order_id", "name", "quantity")

	for _, u := range usages {
		q = q.Values(u.InterventionID, u.WorkOrderID, u.Name, u.Quantity)
	}

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return err
	}

	if _, err := r.pool.Exec(ctx, sqlStr, args...); err != nil {
		return err
	}

	return nil
}

// ListByWorkOrder returns part usages in insertion order.
func (r *repository) ListByWorkOrder(ctx context.Context, workOrderID uuid.UUID) ([]model.PartUsage, error) {
	q := r.sb.
		Select("id", "intervention_id", "work_order_id", "name", "quantity", "recorded_at").
		From("part_usages").
		Where(sq.Eq{"work_order_id": workOrderID}).
		OrderBy("id ASC")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var usages []model.PartUsage
	for rows.Next() {
		var u model.PartUsage
		if err := rows.Scan(
			&u.ID,
			&u.InterventionID,
			&u.WorkOrderID,
			&u.Name,
			&u.Quantity,
			&u.RecordedAt,
		); err != nil {
			return nil, err
		}
		usages = append(usages, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return usages, nil
}
