package woproducer

import (
	"context"
	"fmt"

	"github.com/you-humble/field-service/internal/model"
	"github.com/you-humble/field-service/pkg/kafka"
)

type Converter interface {
	ReconciledWorkOrderToBytes(m model.ReconciledWorkOrder) ([]byte, error)
}

type service struct {
	producer kafka.Producer
	conv     Converter
}

func NewWorkOrderProducer(producer kafka.Producer, conv Converter) *service {
	return &service{producer: producer, conv: conv}
}

func (s *service) SendWorkOrderReconciled(ctx context.Context, event model.ReconciledWorkOrder) error {
	payload, err := s.conv.ReconciledWorkOrderToBytes(event)
	if err != nil {
		return fmt.Errorf("converter reconciled_work_order_to_bytes error: %w", err)
	}

	if err := s.producer.Send(ctx, event.WorkOrderID[:], payload); err != nil {
		return fmt.Errorf("producer to workorder.reconciled topic error: %w", err)
	}

	return nil
}
