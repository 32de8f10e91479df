package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/you-humble/field-service/internal/model"
)

type repository struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

func NewInterventionRepository(pool *pgxpool.Pool) *repository {
	return &repository{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *repository) Create(ctx context.Context, iv *model.Intervention) (int64, error) {
	q := r.sb.
		Insert("interventions").
		Columns("work_order_id", "type", "category", "payload").
		Values(iv.WorkOrderID, iv.Type, iv.Category, iv.Payload).
		Suffix("RETURNING id")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return 0, err
	}

	var interventionID int64
	if err := r.pool.QueryRow(ctx, sqlStr, args...).Scan(&interventionID); err != nil {
		return 0, err
	}

	return interventionID, nil
}

func (r *repository) InterventionByID(ctx context.Context, id int64) (*model.Intervention, error) {
	q := r.sb.
		Select("id", "work_order_id", "type", "category", "payload", "submitted_at").
		From("interventions").
		Where(sq.Eq{"id": id})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	var iv model.Intervention
	err = r.pool.QueryRow(ctx, sqlStr, args...).Scan(
		&iv.ID,
		&iv.WorkOrderID,
		&iv.Type,
		&iv.Category,
		&iv.Payload,
		&iv.SubmittedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrInterventionNotFound
		}
		return nil, err
	}

	return &iv, nil
}

// ListByWorkOrder returns interventions in insertion order, which keeps
// payload assembly deterministic.
func (r *repository) ListByWorkOrder(ctx context.Context, workOrderID uuid.UUID) ([]model.Intervention, error) {
	q := r.sb.
		Select("id", "work_order_id", "type", "category", "payload", "submitted_at").
		From("interventions").
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

	var interventions []model.Intervention
	for rows.Next() {
		var iv model.Intervention
		if err := rows.Scan(
			&iv.ID,
			&iv.WorkOrderID,
			&iv.Type,
			&iv.Category,
			&iv.Payload,
			&iv.SubmittedAt,
		); err != nil {
			return nil, err
		}
		interventions = append(interventions, iv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return interventions, nil
}
