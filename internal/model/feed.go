package model

import (
	"time"

	"github.com/google/uuid"
)

// ScheduledJob is one record of the scheduling feed. The feed is read-only
// for this service; a record originates a work order and is never written
// back.
type ScheduledJob struct {
	ExternalID  string
	Type        string
	PlannedAt   time.Time
	AssigneeID  string
	Description string
}

// ReconciledWorkOrder is published after a work order has been acknowledged
// by the system of record.
type ReconciledWorkOrder struct {
	EventID      uuid.UUID
	WorkOrderID  uuid.UUID
	ExternalID   string
	AssigneeID   string
	ReconciledAt time.Time
}
