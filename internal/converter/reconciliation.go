package converter

import (
	"github.com/you-humble/field-service/internal/model"
)

// ToReconciliationPayload assembles the webhook payload from the work order
// and its ledgers. Deterministic: the same inputs produce the same payload.
// DeliveredAt is left zero; the client stamps it per delivery attempt.
func ToReconciliationPayload(
	wo *model.WorkOrder,
	interventions []model.Intervention,
	usages []model.PartUsage,
) *model.ReconciliationPayload {
	p := &model.ReconciliationPayload{
		WorkOrderID:        wo.ExternalID,
		AssigneeIdentifier: wo.AssigneeID,
		Interventions:      make([]model.ReconciliationIntervention, 0, len(interventions)),
		PartUsages:         make([]model.ReconciliationPartUsage, 0, len(usages)),
	}
	if wo.CompletedAt != nil {
		p.CompletedAt = *wo.CompletedAt
	}

	for _, iv := range interventions {
		p.Interventions = append(p.Interventions, model.ReconciliationIntervention{
			LocalID:     iv.ID,
			Type:        string(iv.Type),
			Payload:     iv.Payload,
			SubmittedAt: iv.SubmittedAt,
		})
	}

	for _, u := range usages {
		p.PartUsages = append(p.PartUsages, model.ReconciliationPartUsage{
			LocalID:             u.ID,
			InterventionLocalID: u.InterventionID,
			Name:                u.Name,
			Quantity:            u.Quantity,
		})
	}

	return p
}
