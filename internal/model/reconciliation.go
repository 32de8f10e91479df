package model

import (
	"encoding/json"
	"time"
)

// ReconciliationPayload is the outbound contract of the workflow-automation
// webhook. Assembly is deterministic: building it twice from the same ledgers
// yields identical content; only DeliveredAt is stamped per delivery attempt.
type ReconciliationPayload struct {
	WorkOrderID        string                       `json:"workOrderId"`
	CompletedAt        time.Time                    `json:"completedAt"`
	AssigneeIdentifier string                       `json:"assigneeIdentifier"`
	Interventions      []ReconciliationIntervention `json:"interventions"`
	PartUsages         []ReconciliationPartUsage    `json:"partUsages"`
	DeliveredAt        time.Time                    `json:"deliveredAt"`
}

type ReconciliationIntervention struct {
	LocalID     int64           `json:"localId"`
	Type        string          `json:"type"`
	Payload     json.RawMessage `json:"payload"`
	SubmittedAt time.Time       `json:"submittedAt"`
}

type ReconciliationPartUsage struct {
	LocalID             int64  `json:"localId"`
	InterventionLocalID int64  `json:"interventionLocalId"`
	Name                string `json:"name"`
	Quantity            int    `json:"quantity"`
}
