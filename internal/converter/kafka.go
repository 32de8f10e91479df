package converter

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/you-humble/field-service/internal/model"
)

type scheduledJobRecord struct {
	ExternalID         string    `json:"externalId"`
	Type               string    `json:"type"`
	PlannedAt          time.Time `json:"plannedAt"`
	AssigneeIdentifier string    `json:"assigneeIdentifier"`
	Description        string    `json:"description"`
}

type reconciledWorkOrderRecord struct {
	EventID            uuid.UUID `json:"eventId"`
	WorkOrderID        uuid.UUID `json:"workOrderId"`
	ExternalID         string    `json:"externalId"`
	AssigneeIdentifier string    `json:"assigneeIdentifier"`
	ReconciledAt       time.Time `json:"reconciledAt"`
}

type kafkaConverter struct{}

func NewKafkaConverter() *kafkaConverter { return &kafkaConverter{} }

func (c *kafkaConverter) ScheduledJobToModel(data []byte) (model.ScheduledJob, error) {
	var rec scheduledJobRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return model.ScheduledJob{}, fmt.Errorf("failed to unmarshal scheduled job record: %w", err)
	}

	return model.ScheduledJob{
		ExternalID:  rec.ExternalID,
		Type:        rec.Type,
		PlannedAt:   rec.PlannedAt,
		AssigneeID:  rec.AssigneeIdentifier,
		Description: rec.Description,
	}, nil
}

func (c *kafkaConverter) ReconciledWorkOrderToBytes(m model.ReconciledWorkOrder) ([]byte, error) {
	payload, err := json.Marshal(reconciledWorkOrderRecord{
		EventID:            m.EventID,
		WorkOrderID:        m.WorkOrderID,
		ExternalID:         m.ExternalID,
		AssigneeIdentifier: m.AssigneeID,
		ReconciledAt:       m.ReconciledAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal reconciled work order record: %w", err)
	}

	return payload, nil
}
