package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/you-humble/field-service/internal/model"
	"github.com/you-humble/field-service/internal/registry"
	"github.com/you-humble/field-service/pkg/logger"
)

type WorkOrderRepository interface {
	Create(ctx context.Context, wo *model.WorkOrder) (uuid.UUID, error)
	WorkOrderByID(ctx context.Context, id uuid.UUID) (*model.WorkOrder, error)
	WorkOrderByExternalID(ctx context.Context, externalID string) (*model.WorkOrder, error)
	MarkLocallyComplete(ctx context.Context, id uuid.UUID, completedAt time.Time) error
	MarkReconciled(ctx context.Context, id uuid.UUID, reconciledAt time.Time) error
	SetDeliveryError(ctx context.Context, id uuid.UUID, cause string) error
}

type InterventionRepository interface {
	Create(ctx context.Context, iv *model.Intervention) (int64, error)
	InterventionByID(ctx context.Context, id int64) (*model.Intervention, error)
	ListByWorkOrder(ctx context.Context, workOrderID uuid.UUID) ([]model.Intervention, error)
}

type PartRepository interface {
	CreateBatch(ctx context.Context, usages []model.PartUsage) error
	ListByWorkOrder(ctx context.Context, workOrderID uuid.UUID) ([]model.PartUsage, error)
}

type ReconcilerClient interface {
	Deliver(ctx context.Context, payload *model.ReconciliationPayload) error
}

type ReconciledSender interface {
	SendWorkOrderReconciled(ctx context.Context, event model.ReconciledWorkOrder) error
}

type service struct {
	repo          WorkOrderRepository
	interventions InterventionRepository
	parts         PartRepository
	reconciler    ReconcilerClient
	events        ReconciledSender
	registry      *registry.Registry

	// Collapses concurrent Complete calls per work order.
	completions singleflight.Group

	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewWorkOrderService(
	repo WorkOrderRepository,
	interventions InterventionRepository,
	parts PartRepository,
	reconciler ReconcilerClient,
	events ReconciledSender,
	reg *registry.Registry,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		repo:           repo,
		interventions:  interventions,
		parts:          parts,
		reconciler:     reconciler,
		events:         events,
		registry:       reg,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

// Begin originates a work order from a scheduling-feed record. Idempotent on
// the external id: a redelivered record returns the existing work order as
// long as the assignee matches.
func (svc *service) Begin(ctx context.Context, job model.ScheduledJob) (*model.WorkOrder, error) {
	const op string = "workorder.service.Begin"
	log := logger.With(
		logger.String("external_id", job.ExternalID),
		logger.String("assignee_id", job.AssigneeID),
	)

	if strings.TrimSpace(job.ExternalID) == "" || strings.TrimSpace(job.AssigneeID) == "" {
		log.Error(ctx, "wrong params")
		return nil, fmt.Errorf("%s: %w", op, model.ErrValidation)
	}

	wctx, wcancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer wcancel()

	workOrderID, err := svc.repo.Create(wctx, &model.WorkOrder{
		ExternalID: job.ExternalID,
		AssigneeID: job.AssigneeID,
		Status:     model.StatusOpen,
	})
	if err != nil {
		if !errors.Is(err, model.ErrWorkOrderConflict) {
			log.Error(ctx, "repository create work order", logger.ErrorF(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		rctx, rcancel := context.WithTimeout(ctx, svc.readDBTimeout)
		defer rcancel()

		wo, err := svc.repo.WorkOrderByExternalID(rctx, job.ExternalID)
		if err != nil {
			log.Error(ctx, "repository work order by external id", logger.ErrorF(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		// A work order belongs to one technician for its entire lifetime.
		if wo.AssigneeID != job.AssigneeID {
			log.Error(ctx, "work order owned by another technician",
				logger.String("owner_id", wo.AssigneeID),
			)
			return nil, fmt.Errorf("%s: %w", op, model.ErrWorkOrderConflict)
		}

		return wo, nil
	}

	rctx, rcancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer rcancel()

	wo, err := svc.repo.WorkOrderByID(rctx, workOrderID)
	if err != nil {
		log.Error(ctx, "repository work order by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return wo, nil
}

func (svc *service) WorkOrderByID(ctx context.Context, workOrderID uuid.UUID) (*model.WorkOrderDetail, error) {
	const op string = "workorder.service.WorkOrderByID"
	log := logger.With(logger.String("work_order_id", workOrderID.String()))

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	wo, err := svc.repo.WorkOrderByID(ctx, workOrderID)
	if err != nil {
		log.Error(ctx, "repository work order by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	interventions, err := svc.interventions.ListByWorkOrder(ctx, workOrderID)
	if err != nil {
		log.Error(ctx, "repository list interventions", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	usages, err := svc.parts.ListByWorkOrder(ctx, workOrderID)
	if err != nil {
		log.Error(ctx, "repository list part usages", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &model.WorkOrderDetail{
		WorkOrder:     *wo,
		Interventions: interventions,
		PartUsages:    usages,
	}, nil
}

// AvailableTypes returns the intervention types legally addable next. A work
// order that has left OPEN accepts no further interventions, so the answer
// is empty.
func (svc *service) AvailableTypes(ctx context.Context, workOrderID uuid.UUID) ([]model.InterventionType, error) {
	const op string = "workorder.service.AvailableTypes"
	log := logger.With(logger.String("work_order_id", workOrderID.String()))

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	wo, err := svc.repo.WorkOrderByID(ctx, workOrderID)
	if err != nil {
		log.Error(ctx, "repository work order by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if wo.Status != model.StatusOpen {
		return nil, nil
	}

	existing, err := svc.interventions.ListByWorkOrder(ctx, workOrderID)
	if err != nil {
		log.Error(ctx, "repository list interventions", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return svc.registry.AvailableTypes(interventionTypes(existing)), nil
}

// AddIntervention appends one typed unit of completed work. The registry is
// re-consulted server-side; client-side filtering is never trusted as the
// only check.
func (svc *service) AddIntervention(
	ctx context.Context,
	params model.AddInterventionParams,
) (*model.AddInterventionResult, error) {
	const op string = "workorder.service.AddIntervention"
	log := logger.With(
		logger.String("work_order_id", params.WorkOrderID.String()),
		logger.String("type", string(params.Type)),
	)

	rctx, rcancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer rcancel()

	wo, err := svc.repo.WorkOrderByID(rctx, params.WorkOrderID)
	if err != nil {
		log.Error(ctx, "repository work order by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	switch wo.Status {
	case model.StatusOpen:
	case model.StatusLocallyComplete, model.StatusReconciled:
		log.Error(ctx, "work order no longer accepts interventions",
			logger.String("status", string(wo.Status)),
		)
		return nil, fmt.Errorf("%s: %w", op, model.ErrInvalidState)
	default:
		log.Error(ctx, "unknown work order status", logger.String("status", string(wo.Status)))
		return nil, fmt.Errorf("%s: %w", op, model.ErrUnknownStatus)
	}

	rule, ok := svc.registry.Rule(params.Type)
	if !ok {
		log.Error(ctx, "unknown intervention type")
		return nil, fmt.Errorf("%s: %w", op, model.ErrUnknownType)
	}

	if rule.RequiresCategory && !rule.AllowsCategory(params.Category) {
		log.Error(ctx, "invalid category", logger.String("category", params.Category))
		return nil, fmt.Errorf("%s: %w", op, model.ErrValidation)
	}

	existing, err := svc.interventions.ListByWorkOrder(rctx, params.WorkOrderID)
	if err != nil {
		log.Error(ctx, "repository list interventions", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !typeAvailable(svc.registry.AvailableTypes(interventionTypes(existing)), params.Type) {
		log.Error(ctx, "disallowed combination",
			logger.Int("existing_interventions", len(existing)),
		)
		return nil, fmt.Errorf("%s: %w", op, model.ErrDisallowedCombination)
	}

	payload := params.Payload
	if len(payload) == 0 {
		payload = json.RawMessage(`{}`)
	}

	wctx, wcancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer wcancel()

	interventionID, err := svc.interventions.Create(wctx, &model.Intervention{
		WorkOrderID: params.WorkOrderID,
		Type:        params.Type,
		Category:    params.Category,
		Payload:     payload,
	})
	if err != nil {
		log.Error(ctx, "repository create intervention", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &model.AddInterventionResult{ID: interventionID}, nil
}

// AttributeParts records consumables against an intervention. Entries with a
// blank name or non-positive quantity are dropped silently; a partially
// filled parts form should not block submission.
func (svc *service) AttributeParts(
	ctx context.Context,
	params model.AttributePartsParams,
) (*model.AttributePartsResult, error) {
	const op string = "workorder.service.AttributeParts"
	log := logger.With(
		logger.Int64("intervention_id", params.InterventionID),
		logger.Int("entries", len(params.Entries)),
	)

	rctx, rcancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer rcancel()

	iv, err := svc.interventions.InterventionByID(rctx, params.InterventionID)
	if err != nil {
		log.Error(ctx, "repository intervention by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rule, ok := svc.registry.Rule(iv.Type)
	if !ok || !rule.TracksParts {
		log.Error(ctx, "intervention type does not track parts",
			logger.String("type", string(iv.Type)),
		)
		return nil, fmt.Errorf("%s: %w", op, model.ErrUntrackedType)
	}

	usages := make([]model.PartUsage, 0, len(params.Entries))
	dropped := 0
	for _, e := range params.Entries {
		name := strings.TrimSpace(e.Name)
		if name == "" || e.Quantity <= 0 {
			dropped++
			continue
		}

		usages = append(usages, model.PartUsage{
			InterventionID: iv.ID,
			WorkOrderID:    iv.WorkOrderID,
			Name:           name,
			Quantity:       e.Quantity,
		})
	}

	if dropped > 0 {
		log.Warn(ctx, "dropped invalid part entries", logger.Int("dropped", dropped))
	}

	if len(usages) > 0 {
		wctx, wcancel := context.WithTimeout(ctx, svc.writeDBTimeout)
		defer wcancel()

		if err := svc.parts.CreateBatch(wctx, usages); err != nil {
			log.Error(ctx, "repository create part usages", logger.ErrorF(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	return &model.AttributePartsResult{
		Recorded: len(usages),
		Dropped:  dropped,
	}, nil
}

func interventionTypes(interventions []model.Intervention) []model.InterventionType {
	types := make([]model.InterventionType, 0, len(interventions))
	for _, iv := range interventions {
		types = append(types, iv.Type)
	}
	return types
}

func typeAvailable(available []model.InterventionType, t model.InterventionType) bool {
	for _, a := range available {
		if a == t {
			return true
		}
	}
	return false
}
