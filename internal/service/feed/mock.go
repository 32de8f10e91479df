// Package feed provides the mock scheduling-feed generator used when the
// service runs without a real feed. The choice between the Kafka feed and
// this generator is an explicit configuration value injected at construction
// time, never ambient process state read inside core logic.
package feed

import (
	"context"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/you-humble/field-service/internal/model"
	"github.com/you-humble/field-service/pkg/logger"
)

type Service interface {
	Begin(ctx context.Context, job model.ScheduledJob) (*model.WorkOrder, error)
}

var jobTypes = []string{"maintenance", "inspection", "battery_swap", "wind_audit"}

type mockFeed struct {
	svc      Service
	interval time.Duration
}

func NewMockFeed(svc Service, interval time.Duration) *mockFeed {
	return &mockFeed{svc: svc, interval: interval}
}

// Run emits one fabricated scheduled job per interval until the context is
// cancelled.
func (f *mockFeed) Run(ctx context.Context) error {
	logger.Info(ctx, "Starting mock scheduling feed",
		logger.Duration("interval", f.interval),
	)

	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			job := fakeScheduledJob()

			wo, err := f.svc.Begin(ctx, job)
			if err != nil {
				logger.Error(ctx, "mock feed begin work order", logger.ErrorF(err))
				continue
			}

			logger.Info(ctx, "mock work order originated",
				logger.String("work_order_id", wo.ID.String()),
				logger.String("external_id", wo.ExternalID),
			)
		}
	}
}

func fakeScheduledJob() model.ScheduledJob {
	return model.ScheduledJob{
		ExternalID:  fmt.Sprintf("WO-%06d", gofakeit.Number(1, 999999)),
		Type:        jobTypes[gofakeit.Number(0, len(jobTypes)-1)],
		PlannedAt:   time.Now().Add(time.Duration(gofakeit.Number(1, 72)) * time.Hour),
		AssigneeID:  gofakeit.Username(),
		Description: gofakeit.Sentence(8),
	}
}
