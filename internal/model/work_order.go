package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type (
	InterventionType string
	WorkOrderStatus  string
)

const (
	// StatusOpen accepts interventions and parts.
	StatusOpen WorkOrderStatus = "OPEN"
	// StatusLocallyComplete is durably committed locally but not yet
	// acknowledged by the system of record. Retryable.
	StatusLocallyComplete WorkOrderStatus = "LOCALLY_COMPLETE"
	// StatusReconciled is the terminal success state.
	StatusReconciled WorkOrderStatus = "RECONCILED"
)

type WorkOrder struct {
	// Unique identifier of the work order.
	ID uuid.UUID
	// Stable key shared with the scheduling feed.
	ExternalID string
	// Identifier of the technician who owns the work order for its
	// entire lifetime.
	AssigneeID string
	Status     WorkOrderStatus
	// Cause of the last failed reconciliation delivery (cleared on success).
	LastDeliveryError *string
	CreatedAt         time.Time
	CompletedAt       *time.Time
	ReconciledAt      *time.Time
}

// WorkOrderDetail is a work order with its ledgers attached.
type WorkOrderDetail struct {
	WorkOrder
	Interventions []Intervention
	PartUsages    []PartUsage
}

type Intervention struct {
	// Stable local identifier, assigned on insert and exposed to the
	// caller immediately so parts attribution never depends on external
	// identifiers.
	ID          int64
	WorkOrderID uuid.UUID
	Type        InterventionType
	// Set only for types that require a category.
	Category string
	// Form output, stored and forwarded verbatim.
	Payload     json.RawMessage
	SubmittedAt time.Time
}

type PartUsage struct {
	ID             int64
	InterventionID int64
	// Denormalized for payload assembly.
	WorkOrderID uuid.UUID
	Name        string
	Quantity    int
	RecordedAt  time.Time
}

type AddInterventionParams struct {
	WorkOrderID uuid.UUID
	Type        InterventionType
	Category    string
	Payload     json.RawMessage
}

type AddInterventionResult struct {
	ID int64
}

type PartEntry struct {
	Name     string
	Quantity int
}

type AttributePartsParams struct {
	InterventionID int64
	Entries        []PartEntry
}

type AttributePartsResult struct {
	Recorded int
	Dropped  int
}

type CompleteOutcome string

const (
	// CompleteOutcomeReconciled: committed locally and acknowledged by the
	// system of record.
	CompleteOutcomeReconciled CompleteOutcome = "RECONCILED"
	// CompleteOutcomeUnsynced: committed locally, delivery failed, safe to
	// retry by calling Complete again.
	CompleteOutcomeUnsynced CompleteOutcome = "LOCALLY_COMPLETE_UNSYNCED"
)

type CompleteResult struct {
	Outcome CompleteOutcome
	// Human-readable delivery failure cause, set for CompleteOutcomeUnsynced.
	DeliveryError string
}
