package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/you-humble/field-service/internal/converter"
	"github.com/you-humble/field-service/internal/model"
	"github.com/you-humble/field-service/pkg/logger"
)

// Complete drives the two-phase completion protocol: commit locally, then
// propagate to the system of record. Local durability is never hostage to
// the endpoint's availability; a failed delivery leaves the work order
// LOCALLY_COMPLETE and retryable by calling Complete again.
//
// Concurrent calls for the same work order are collapsed into a single
// execution, so at most one reconciliation call is in flight per work order
// and a double-tap observes the first call's outcome.
func (svc *service) Complete(ctx context.Context, workOrderID uuid.UUID) (*model.CompleteResult, error) {
	v, err, _ := svc.completions.Do(workOrderID.String(), func() (interface{}, error) {
		return svc.complete(ctx, workOrderID)
	})
	if err != nil {
		return nil, err
	}

	return v.(*model.CompleteResult), nil
}

func (svc *service) complete(ctx context.Context, workOrderID uuid.UUID) (*model.CompleteResult, error) {
	const op string = "workorder.service.Complete"
	log := logger.With(logger.String("work_order_id", workOrderID.String()))

	rctx, rcancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer rcancel()

	wo, err := svc.repo.WorkOrderByID(rctx, workOrderID)
	if err != nil {
		log.Error(ctx, "repository work order by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	switch wo.Status {
	case model.StatusReconciled:
		// Already acknowledged by the system of record: resubmission is
		// success, without another network call.
		return &model.CompleteResult{Outcome: model.CompleteOutcomeReconciled}, nil
	case model.StatusOpen:
		completedAt := time.Now().UTC()

		wctx, wcancel := context.WithTimeout(ctx, svc.writeDBTimeout)
		defer wcancel()

		if err := svc.repo.MarkLocallyComplete(wctx, wo.ID, completedAt); err != nil {
			log.Error(ctx, "repository mark locally complete", logger.ErrorF(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		wo.Status = model.StatusLocallyComplete
		wo.CompletedAt = &completedAt
	case model.StatusLocallyComplete:
		// Retry path: completed_at was stamped by an earlier attempt.
	default:
		log.Error(ctx, "unknown work order status", logger.String("status", string(wo.Status)))
		return nil, fmt.Errorf("%s: %w", op, model.ErrUnknownStatus)
	}

	payload, err := svc.assemblePayload(ctx, wo)
	if err != nil {
		log.Error(ctx, "assemble reconciliation payload", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := svc.reconciler.Deliver(ctx, payload); err != nil {
		log.Warn(ctx, "reconciliation delivery failed", logger.ErrorF(err))

		wctx, wcancel := context.WithTimeout(ctx, svc.writeDBTimeout)
		defer wcancel()

		if serr := svc.repo.SetDeliveryError(wctx, wo.ID, err.Error()); serr != nil {
			log.Error(ctx, "repository set delivery error", logger.ErrorF(serr))
		}

		// The technician's work is saved; only the sync is pending.
		return &model.CompleteResult{
			Outcome:       model.CompleteOutcomeUnsynced,
			DeliveryError: err.Error(),
		}, nil
	}

	reconciledAt := time.Now().UTC()

	wctx, wcancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer wcancel()

	if err := svc.repo.MarkReconciled(wctx, wo.ID, reconciledAt); err != nil {
		// Delivered but not recorded: the work order stays LOCALLY_COMPLETE
		// and the next retry re-delivers; the endpoint de-duplicates by
		// work-order id.
		log.Error(ctx, "repository mark reconciled", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// The event stream is optional: mock-feed deployments run without a
	// broker. Best effort either way, a publish failure never un-reconciles
	// a work order.
	if svc.events != nil {
		if err := svc.events.SendWorkOrderReconciled(ctx, model.ReconciledWorkOrder{
			EventID:      uuid.New(),
			WorkOrderID:  wo.ID,
			ExternalID:   wo.ExternalID,
			AssigneeID:   wo.AssigneeID,
			ReconciledAt: reconciledAt,
		}); err != nil {
			log.Error(ctx, "send work order reconciled event", logger.ErrorF(err))
		}
	}

	return &model.CompleteResult{Outcome: model.CompleteOutcomeReconciled}, nil
}

func (svc *service) assemblePayload(ctx context.Context, wo *model.WorkOrder) (*model.ReconciliationPayload, error) {
	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	interventions, err := svc.interventions.ListByWorkOrder(ctx, wo.ID)
	if err != nil {
		return nil, fmt.Errorf("list interventions: %w", err)
	}

	usages, err := svc.parts.ListByWorkOrder(ctx, wo.ID)
	if err != nil {
		return nil, fmt.Errorf("list part usages: %w", err)
	}

	return converter.ToReconciliationPayload(wo, interventions, usages), nil
}
