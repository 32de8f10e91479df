package schconsumer

import (
	"context"
	"fmt"

	"github.com/you-humble/field-service/internal/model"
	"github.com/you-humble/field-service/pkg/kafka"
	"github.com/you-humble/field-service/pkg/logger"
)

type Converter interface {
	ScheduledJobToModel(data []byte) (model.ScheduledJob, error)
}

type Service interface {
	Begin(ctx context.Context, job model.ScheduledJob) (*model.WorkOrder, error)
}

type service struct {
	consumer kafka.Consumer
	conv     Converter
	svc      Service
}

func NewScheduleConsumer(
	consumer kafka.Consumer,
	conv Converter,
	svc Service,
) *service {
	return &service{consumer: consumer, conv: conv, svc: svc}
}

func (s *service) RunScheduledJobConsume(ctx context.Context) error {
	logger.Info(ctx, "Starting scheduled job consumer")

	if err := s.consumer.Consume(ctx, s.scheduledJobHandler); err != nil {
		logger.Error(ctx, "Consume from workorder.scheduled topic error", logger.ErrorF(err))
		return err
	}

	return nil
}

func (s *service) scheduledJobHandler(ctx context.Context, msg kafka.Message) error {
	job, err := s.conv.ScheduledJobToModel(msg.Value)
	if err != nil {
		logger.Error(ctx, "Failed to decode scheduled job record", logger.ErrorF(err))
		return fmt.Errorf("converter scheduled_job_to_model error: %w", err)
	}

	wo, err := s.svc.Begin(ctx, job)
	if err != nil {
		logger.Error(ctx, "consumer.BeginWorkOrder", logger.ErrorF(err))
		return err
	}

	logger.Info(ctx, "work order originated from feed",
		logger.String("work_order_id", wo.ID.String()),
		logger.String("external_id", wo.ExternalID),
	)

	return nil
}
