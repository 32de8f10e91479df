package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/field-service/internal/model"
	"github.com/you-humble/field-service/internal/registry"
	"github.com/you-humble/field-service/internal/service/workorder/mocks"
)

const (
	testReadDBTimeout  = 3 * time.Second
	testWriteDBTimeout = 5 * time.Second
)

type deps struct {
	repo          *mocks.MockWorkOrderRepository
	interventions *mocks.MockInterventionRepository
	parts         *mocks.MockPartRepository
	reconciler    *mocks.MockReconcilerClient
	events        *mocks.MockReconciledSender
}

func newDeps(t *testing.T) deps {
	return deps{
		repo:          mocks.NewMockWorkOrderRepository(t),
		interventions: mocks.NewMockInterventionRepository(t),
		parts:         mocks.NewMockPartRepository(t),
		reconciler:    mocks.NewMockReconcilerClient(t),
		events:        mocks.NewMockReconciledSender(t),
	}
}

func newSvc(d deps) *service {
	return NewWorkOrderService(
		d.repo,
		d.interventions,
		d.parts,
		d.reconciler,
		d.events,
		registry.New(),
		testReadDBTimeout,
		testWriteDBTimeout,
	)
}

func TestServiceBegin(t *testing.T) {
	t.Parallel()

	externalID := "WO-" + gofakeit.DigitN(6)
	assigneeID := gofakeit.Username()
	workOrderID := uuid.New()

	type testCase struct {
		name   string
		job    model.ScheduledJob
		setup  func(d deps)
		assert func(t *testing.T, wo *model.WorkOrder, err error, d deps)
	}

	tests := []testCase{
		{
			name: "validation error: blank external id",
			job: model.ScheduledJob{
				ExternalID: "   ",
				AssigneeID: assigneeID,
			},
			setup: func(d deps) {
				// No calls expected.
			},
			assert: func(t *testing.T, wo *model.WorkOrder, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrValidation)
				assert.Nil(t, wo)

				d.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			},
		},
		{
			name: "validation error: blank assignee",
			job: model.ScheduledJob{
				ExternalID: externalID,
				AssigneeID: "",
			},
			setup: func(d deps) {},
			assert: func(t *testing.T, wo *model.WorkOrder, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrValidation)
				assert.Nil(t, wo)
			},
		},
		{
			name: "repository error: Create fails",
			job: model.ScheduledJob{
				ExternalID: externalID,
				AssigneeID: assigneeID,
			},
			setup: func(d deps) {
				d.repo.
					On("Create", mock.Anything, mock.MatchedBy(func(wo *model.WorkOrder) bool {
						return wo.ExternalID == externalID &&
							wo.AssigneeID == assigneeID &&
							wo.Status == model.StatusOpen
					})).
					Return(uuid.Nil, errors.New("db write failed")).
					Once()
			},
			assert: func(t *testing.T, wo *model.WorkOrder, err error, d deps) {
				require.Error(t, err)
				assert.Nil(t, wo)

				d.repo.AssertExpectations(t)
			},
		},
		{
			name: "redelivery: same external id and assignee returns existing work order",
			job: model.ScheduledJob{
				ExternalID: externalID,
				AssigneeID: assigneeID,
			},
			setup: func(d deps) {
				d.repo.
					On("Create", mock.Anything, mock.Anything).
					Return(uuid.Nil, model.ErrWorkOrderConflict).
					Once()

				d.repo.
					On("WorkOrderByExternalID", mock.Anything, externalID).
					Return(&model.WorkOrder{
						ID:         workOrderID,
						ExternalID: externalID,
						AssigneeID: assigneeID,
						Status:     model.StatusOpen,
					}, nil).
					Once()
			},
			assert: func(t *testing.T, wo *model.WorkOrder, err error, d deps) {
				require.NoError(t, err)
				require.NotNil(t, wo)
				assert.Equal(t, workOrderID, wo.ID)

				d.repo.AssertExpectations(t)
			},
		},
		{
			name: "conflict: external id owned by another technician",
			job: model.ScheduledJob{
				ExternalID: externalID,
				AssigneeID: assigneeID,
			},
			setup: func(d deps) {
				d.repo.
					On("Create", mock.Anything, mock.Anything).
					Return(uuid.Nil, model.ErrWorkOrderConflict).
					Once()

				d.repo.
					On("WorkOrderByExternalID", mock.Anything, externalID).
					Return(&model.WorkOrder{
						ID:         workOrderID,
						ExternalID: externalID,
						AssigneeID: "someone-else",
						Status:     model.StatusOpen,
					}, nil).
					Once()
			},
			assert: func(t *testing.T, wo *model.WorkOrder, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrWorkOrderConflict)
				assert.Nil(t, wo)

				d.repo.AssertExpectations(t)
			},
		},
		{
			name: "success: new work order starts open",
			job: model.ScheduledJob{
				ExternalID: externalID,
				AssigneeID: assigneeID,
			},
			setup: func(d deps) {
				d.repo.
					On("Create", mock.Anything, mock.Anything).
					Return(workOrderID, nil).
					Once()

				d.repo.
					On("WorkOrderByID", mock.Anything, workOrderID).
					Return(&model.WorkOrder{
						ID:         workOrderID,
						ExternalID: externalID,
						AssigneeID: assigneeID,
						Status:     model.StatusOpen,
						CreatedAt:  time.Now(),
					}, nil).
					Once()
			},
			assert: func(t *testing.T, wo *model.WorkOrder, err error, d deps) {
				require.NoError(t, err)
				require.NotNil(t, wo)
				assert.Equal(t, workOrderID, wo.ID)
				assert.Equal(t, model.StatusOpen, wo.Status)

				d.repo.AssertExpectations(t)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := newDeps(t)
			if tt.setup != nil {
				tt.setup(d)
			}

			svc := newSvc(d)

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			wo, err := svc.Begin(ctx, tt.job)
			tt.assert(t, wo, err, d)
		})
	}
}

func TestServiceAddIntervention(t *testing.T) {
	t.Parallel()

	workOrderID := uuid.New()
	interventionID := int64(gofakeit.Number(1, 9999))

	openWorkOrder := &model.WorkOrder{
		ID:     workOrderID,
		Status: model.StatusOpen,
	}

	type testCase struct {
		name   string
		params model.AddInterventionParams
		setup  func(d deps)
		assert func(t *testing.T, res *model.AddInterventionResult, err error, d deps)
	}

	tests := []testCase{
		{
			name: "invalid state: locally complete work order rejects interventions",
			params: model.AddInterventionParams{
				WorkOrderID: workOrderID,
				Type:        registry.TypeInspection,
			},
			setup: func(d deps) {
				d.repo.
					On("WorkOrderByID", mock.Anything, workOrderID).
					Return(&model.WorkOrder{
						ID:     workOrderID,
						Status: model.StatusLocallyComplete,
					}, nil).
					Once()
			},
			assert: func(t *testing.T, res *model.AddInterventionResult, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrInvalidState)
				assert.Nil(t, res)

				d.interventions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			},
		},
		{
			name: "invalid state: reconciled work order rejects interventions",
			params: model.AddInterventionParams{
				WorkOrderID: workOrderID,
				Type:        registry.TypeInspection,
			},
			setup: func(d deps) {
				d.repo.
					On("WorkOrderByID", mock.Anything, workOrderID).
					Return(&model.WorkOrder{
						ID:     workOrderID,
						Status: model.StatusReconciled,
					}, nil).
					Once()
			},
			assert: func(t *testing.T, res *model.AddInterventionResult, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrInvalidState)
				assert.Nil(t, res)
			},
		},
		{
			name: "unknown type",
			params: model.AddInterventionParams{
				WorkOrderID: workOrderID,
				Type:        model.InterventionType("teleportation"),
			},
			setup: func(d deps) {
				d.repo.
					On("WorkOrderByID", mock.Anything, workOrderID).
					Return(openWorkOrder, nil).
					Once()
			},
			assert: func(t *testing.T, res *model.AddInterventionResult, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrUnknownType)
				assert.Nil(t, res)
			},
		},
		{
			name: "validation error: maintenance without category",
			params: model.AddInterventionParams{
				WorkOrderID: workOrderID,
				Type:        registry.TypeMaintenance,
			},
			setup: func(d deps) {
				d.repo.
					On("WorkOrderByID", mock.Anything, workOrderID).
					Return(openWorkOrder, nil).
					Once()
			},
			assert: func(t *testing.T, res *model.AddInterventionResult, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrValidation)
				assert.Nil(t, res)

				d.interventions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			},
		},
		{
			name: "disallowed combination: battery swap already present blocks everything",
			params: model.AddInterventionParams{
				WorkOrderID: workOrderID,
				Type:        registry.TypeInspection,
			},
			setup: func(d deps) {
				d.repo.
					On("WorkOrderByID", mock.Anything, workOrderID).
					Return(openWorkOrder, nil).
					Once()

				d.interventions.
					On("ListByWorkOrder", mock.Anything, workOrderID).
					Return([]model.Intervention{
						{ID: 1, WorkOrderID: workOrderID, Type: registry.TypeBatterySwap},
					}, nil).
					Once()
			},
			assert: func(t *testing.T, res *model.AddInterventionResult, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrDisallowedCombination)
				assert.Nil(t, res)

				d.interventions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			},
		},
		{
			name: "disallowed combination: second wind audit",
			params: model.AddInterventionParams{
				WorkOrderID: workOrderID,
				Type:        registry.TypeWindAudit,
			},
			setup: func(d deps) {
				d.repo.
					On("WorkOrderByID", mock.Anything, workOrderID).
					Return(openWorkOrder, nil).
					Once()

				d.interventions.
					On("ListByWorkOrder", mock.Anything, workOrderID).
					Return([]model.Intervention{
						{ID: 1, WorkOrderID: workOrderID, Type: registry.TypeWindAudit},
					}, nil).
					Once()
			},
			assert: func(t *testing.T, res *model.AddInterventionResult, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrDisallowedCombination)
				assert.Nil(t, res)
			},
		},
		{
			name: "success: repeatable maintenance after wind audit",
			params: model.AddInterventionParams{
				WorkOrderID: workOrderID,
				Type:        registry.TypeMaintenance,
				Category:    registry.CategoryCorrective,
			},
			setup: func(d deps) {
				d.repo.
					On("WorkOrderByID", mock.Anything, workOrderID).
					Return(openWorkOrder, nil).
					Once()

				d.interventions.
					On("ListByWorkOrder", mock.Anything, workOrderID).
					Return([]model.Intervention{
						{ID: 1, WorkOrderID: workOrderID, Type: registry.TypeMaintenance, Category: registry.CategoryPreventive},
						{ID: 2, WorkOrderID: workOrderID, Type: registry.TypeWindAudit},
					}, nil).
					Once()

				d.interventions.
					On("Create", mock.Anything, mock.MatchedBy(func(iv *model.Intervention) bool {
						return iv.WorkOrderID == workOrderID &&
							iv.Type == registry.TypeMaintenance &&
							iv.Category == registry.CategoryCorrective &&
							string(iv.Payload) == `{}`
					})).
					Return(interventionID, nil).
					Once()
			},
			assert: func(t *testing.T, res *model.AddInterventionResult, err error, d deps) {
				require.NoError(t, err)
				require.NotNil(t, res)
				assert.Equal(t, interventionID, res.ID)

				d.interventions.AssertExpectations(t)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := newDeps(t)
			if tt.setup != nil {
				tt.setup(d)
			}

			svc := newSvc(d)

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			res, err := svc.AddIntervention(ctx, tt.params)
			tt.assert(t, res, err, d)
		})
	}
}

func TestServiceAttributeParts(t *testing.T) {
	t.Parallel()

	workOrderID := uuid.New()
	interventionID := int64(gofakeit.Number(1, 9999))

	batterySwap := &model.Intervention{
		ID:          interventionID,
		WorkOrderID: workOrderID,
		Type:        registry.TypeBatterySwap,
	}

	type testCase struct {
		name   string
		params model.AttributePartsParams
		setup  func(d deps)
		assert func(t *testing.T, res *model.AttributePartsResult, err error, d deps)
	}

	tests := []testCase{
		{
			name: "intervention not found",
			params: model.AttributePartsParams{
				InterventionID: interventionID,
				Entries:        []model.PartEntry{{Name: "cell pack", Quantity: 1}},
			},
			setup: func(d deps) {
				d.interventions.
					On("InterventionByID", mock.Anything, interventionID).
					Return((*model.Intervention)(nil), model.ErrInterventionNotFound).
					Once()
			},
			assert: func(t *testing.T, res *model.AttributePartsResult, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrInterventionNotFound)
				assert.Nil(t, res)
			},
		},
		{
			name: "untracked type: inspection does not take parts",
			params: model.AttributePartsParams{
				InterventionID: interventionID,
				Entries:        []model.PartEntry{{Name: "cell pack", Quantity: 1}},
			},
			setup: func(d deps) {
				d.interventions.
					On("InterventionByID", mock.Anything, interventionID).
					Return(&model.Intervention{
						ID:          interventionID,
						WorkOrderID: workOrderID,
						Type:        registry.TypeInspection,
					}, nil).
					Once()
			},
			assert: func(t *testing.T, res *model.AttributePartsResult, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrUntrackedType)
				assert.Nil(t, res)

				d.parts.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
			},
		},
		{
			name: "silent drop: blank names and non-positive quantities are filtered",
			params: model.AttributePartsParams{
				InterventionID: interventionID,
				Entries: []model.PartEntry{
					{Name: "cell pack", Quantity: 2},
					{Name: "   ", Quantity: 5},
					{Name: "fuse", Quantity: 0},
					{Name: "bolt", Quantity: -3},
					{Name: "  connector ", Quantity: 1},
				},
			},
			setup: func(d deps) {
				d.interventions.
					On("InterventionByID", mock.Anything, interventionID).
					Return(batterySwap, nil).
					Once()

				d.parts.
					On("CreateBatch", mock.Anything, mock.MatchedBy(func(usages []model.PartUsage) bool {
						if len(usages) != 2 {
							return false
						}
						// Names are trimmed before persisting.
						return usages[0].Name == "cell pack" && usages[0].Quantity == 2 &&
							usages[1].Name == "connector" && usages[1].Quantity == 1 &&
							usages[0].WorkOrderID == workOrderID
					})).
					Return(nil).
					Once()
			},
			assert: func(t *testing.T, res *model.AttributePartsResult, err error, d deps) {
				require.NoError(t, err)
				require.NotNil(t, res)
				assert.Equal(t, 2, res.Recorded)
				assert.Equal(t, 3, res.Dropped)

				d.parts.AssertExpectations(t)
			},
		},
		{
			name: "all entries invalid: nothing persisted, no error",
			params: model.AttributePartsParams{
				InterventionID: interventionID,
				Entries: []model.PartEntry{
					{Name: "", Quantity: 2},
					{Name: "fuse", Quantity: 0},
				},
			},
			setup: func(d deps) {
				d.interventions.
					On("InterventionByID", mock.Anything, interventionID).
					Return(batterySwap, nil).
					Once()
			},
			assert: func(t *testing.T, res *model.AttributePartsResult, err error, d deps) {
				require.NoError(t, err)
				require.NotNil(t, res)
				assert.Equal(t, 0, res.Recorded)
				assert.Equal(t, 2, res.Dropped)

				d.parts.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
			},
		},
		{
			name: "repository error: CreateBatch fails",
			params: model.AttributePartsParams{
				InterventionID: interventionID,
				Entries:        []model.PartEntry{{Name: "cell pack", Quantity: 1}},
			},
			setup: func(d deps) {
				d.interventions.
					On("InterventionByID", mock.Anything, interventionID).
					Return(batterySwap, nil).
					Once()

				d.parts.
					On("CreateBatch", mock.Anything, mock.Anything).
					Return(errors.New("db write failed")).
					Once()
			},
			assert: func(t *testing.T, res *model.AttributePartsResult, err error, d deps) {
				require.Error(t, err)
				assert.Nil(t, res)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := newDeps(t)
			if tt.setup != nil {
				tt.setup(d)
			}

			svc := newSvc(d)

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			res, err := svc.AttributeParts(ctx, tt.params)
			tt.assert(t, res, err, d)
		})
	}
}

func TestServiceAvailableTypes(t *testing.T) {
	t.Parallel()

	workOrderID := uuid.New()

	type testCase struct {
		name   string
		setup  func(d deps)
		assert func(t *testing.T, types []model.InterventionType, err error, d deps)
	}

	tests := []testCase{
		{
			name: "open work order with no interventions offers everything",
			setup: func(d deps) {
				d.repo.
					On("WorkOrderByID", mock.Anything, workOrderID).
					Return(&model.WorkOrder{ID: workOrderID, Status: model.StatusOpen}, nil).
					Once()

				d.interventions.
					On("ListByWorkOrder", mock.Anything, workOrderID).
					Return([]model.Intervention{}, nil).
					Once()
			},
			assert: func(t *testing.T, types []model.InterventionType, err error, d deps) {
				require.NoError(t, err)
				assert.Equal(t, []model.InterventionType{
					registry.TypeMaintenance,
					registry.TypeInspection,
					registry.TypeBatterySwap,
					registry.TypeWindAudit,
				}, types)
			},
		},
		{
			name: "completed work order offers nothing",
			setup: func(d deps) {
				d.repo.
					On("WorkOrderByID", mock.Anything, workOrderID).
					Return(&model.WorkOrder{ID: workOrderID, Status: model.StatusLocallyComplete}, nil).
					Once()
			},
			assert: func(t *testing.T, types []model.InterventionType, err error, d deps) {
				require.NoError(t, err)
				assert.Empty(t, types)

				d.interventions.AssertNotCalled(t, "ListByWorkOrder", mock.Anything, mock.Anything)
			},
		},
		{
			name: "battery swap present locks the work order",
			setup: func(d deps) {
				d.repo.
					On("WorkOrderByID", mock.Anything, workOrderID).
					Return(&model.WorkOrder{ID: workOrderID, Status: model.StatusOpen}, nil).
					Once()

				d.interventions.
					On("ListByWorkOrder", mock.Anything, workOrderID).
					Return([]model.Intervention{
						{ID: 1, WorkOrderID: workOrderID, Type: registry.TypeBatterySwap},
					}, nil).
					Once()
			},
			assert: func(t *testing.T, types []model.InterventionType, err error, d deps) {
				require.NoError(t, err)
				assert.Empty(t, types)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := newDeps(t)
			if tt.setup != nil {
				tt.setup(d)
			}

			svc := newSvc(d)

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			types, err := svc.AvailableTypes(ctx, workOrderID)
			tt.assert(t, types, err, d)
		})
	}
}

func TestInterventionTypesHelper(t *testing.T) {
	t.Parallel()

	got := interventionTypes([]model.Intervention{
		{Type: registry.TypeMaintenance},
		{Type: registry.TypeWindAudit},
	})

	require.Len(t, got, 2)
	assert.Equal(t, registry.TypeMaintenance, got[0])
	assert.Equal(t, registry.TypeWindAudit, got[1])

	assert.True(t, typeAvailable(got, registry.TypeWindAudit))
	assert.False(t, typeAvailable(got, registry.TypeBatterySwap))
	assert.False(t, typeAvailable(nil, registry.TypeMaintenance))
}
