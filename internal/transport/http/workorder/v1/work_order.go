package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/you-humble/field-service/internal/model"
	"github.com/you-humble/field-service/internal/registry"
	"github.com/you-humble/field-service/pkg/logger"
)

type WorkOrderService interface {
	Begin(ctx context.Context, job model.ScheduledJob) (*model.WorkOrder, error)
	WorkOrderByID(ctx context.Context, workOrderID uuid.UUID) (*model.WorkOrderDetail, error)
	AvailableTypes(ctx context.Context, workOrderID uuid.UUID) ([]model.InterventionType, error)
	AddIntervention(ctx context.Context, params model.AddInterventionParams) (*model.AddInterventionResult, error)
	AttributeParts(ctx context.Context, params model.AttributePartsParams) (*model.AttributePartsResult, error)
	Complete(ctx context.Context, workOrderID uuid.UUID) (*model.CompleteResult, error)
}

type WorkOrderHandler struct {
	svc WorkOrderService
	reg *registry.Registry
}

func NewWorkOrderHandler(service WorkOrderService, reg *registry.Registry) *WorkOrderHandler {
	return &WorkOrderHandler{svc: service, reg: reg}
}

func (h *WorkOrderHandler) Register(r chi.Router) {
	r.Get("/intervention-types", h.ListInterventionTypes)

	r.Post("/work-orders", h.BeginWorkOrder)
	r.Get("/work-orders/{workOrderID}", h.GetWorkOrder)
	r.Get("/work-orders/{workOrderID}/available-types", h.AvailableTypes)
	r.Post("/work-orders/{workOrderID}/interventions", h.AddIntervention)
	r.Post("/work-orders/{workOrderID}/interventions/{interventionID}/parts", h.AttributeParts)
	r.Post("/work-orders/{workOrderID}/complete", h.CompleteWorkOrder)
}

func (h *WorkOrderHandler) BeginWorkOrder(w http.ResponseWriter, r *http.Request) {
	var req beginWorkOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	wo, err := h.svc.Begin(r.Context(), model.ScheduledJob{
		ExternalID:  req.ExternalID,
		Type:        req.Type,
		PlannedAt:   req.PlannedAt,
		AssigneeID:  req.AssigneeIdentifier,
		Description: req.Description,
	})
	if err != nil {
		writeError(w, r, mapBeginError(err), err.Error())
		return
	}

	writeJSON(w, r, http.StatusCreated, workOrderToResponse(wo))
}

func (h *WorkOrderHandler) GetWorkOrder(w http.ResponseWriter, r *http.Request) {
	workOrderID, ok := parseWorkOrderID(w, r)
	if !ok {
		return
	}

	detail, err := h.svc.WorkOrderByID(r.Context(), workOrderID)
	if err != nil {
		writeError(w, r, mapLookupError(err), err.Error())
		return
	}

	writeJSON(w, r, http.StatusOK, workOrderDetailToResponse(detail))
}

func (h *WorkOrderHandler) AvailableTypes(w http.ResponseWriter, r *http.Request) {
	workOrderID, ok := parseWorkOrderID(w, r)
	if !ok {
		return
	}

	types, err := h.svc.AvailableTypes(r.Context(), workOrderID)
	if err != nil {
		writeError(w, r, mapLookupError(err), err.Error())
		return
	}

	resp := availableTypesResponse{Types: make([]string, 0, len(types))}
	for _, t := range types {
		resp.Types = append(resp.Types, string(t))
	}

	writeJSON(w, r, http.StatusOK, resp)
}

func (h *WorkOrderHandler) AddIntervention(w http.ResponseWriter, r *http.Request) {
	workOrderID, ok := parseWorkOrderID(w, r)
	if !ok {
		return
	}

	var req addInterventionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.svc.AddIntervention(r.Context(), model.AddInterventionParams{
		WorkOrderID: workOrderID,
		Type:        model.InterventionType(req.Type),
		Category:    req.Category,
		Payload:     req.Payload,
	})
	if err != nil {
		writeError(w, r, mapAddInterventionError(err), err.Error())
		return
	}

	writeJSON(w, r, http.StatusCreated, addInterventionResponse{ID: res.ID})
}

func (h *WorkOrderHandler) AttributeParts(w http.ResponseWriter, r *http.Request) {
	if _, ok := parseWorkOrderID(w, r); !ok {
		return
	}

	interventionID, err := strconv.ParseInt(chi.URLParam(r, "interventionID"), 10, 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid intervention id")
		return
	}

	var req attributePartsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	entries := make([]model.PartEntry, 0, len(req.Parts))
	for _, p := range req.Parts {
		entries = append(entries, model.PartEntry{Name: p.Name, Quantity: p.Quantity})
	}

	res, err := h.svc.AttributeParts(r.Context(), model.AttributePartsParams{
		InterventionID: interventionID,
		Entries:        entries,
	})
	if err != nil {
		writeError(w, r, mapAttributePartsError(err), err.Error())
		return
	}

	writeJSON(w, r, http.StatusCreated, attributePartsResponse{
		Recorded: res.Recorded,
		Dropped:  res.Dropped,
	})
}

func (h *WorkOrderHandler) CompleteWorkOrder(w http.ResponseWriter, r *http.Request) {
	workOrderID, ok := parseWorkOrderID(w, r)
	if !ok {
		return
	}

	res, err := h.svc.Complete(r.Context(), workOrderID)
	if err != nil {
		writeError(w, r, mapCompleteError(err), err.Error())
		return
	}

	switch res.Outcome {
	case model.CompleteOutcomeUnsynced:
		// Saved locally, not yet synced: distinguishable from both full
		// success and rejection.
		writeJSON(w, r, http.StatusMultiStatus, completeWorkOrderResponse{
			Status:        string(model.StatusLocallyComplete),
			DeliveryError: res.DeliveryError,
		})
	default:
		writeJSON(w, r, http.StatusOK, completeWorkOrderResponse{
			Status: string(model.StatusReconciled),
		})
	}
}

func (h *WorkOrderHandler) ListInterventionTypes(w http.ResponseWriter, r *http.Request) {
	rules := h.reg.Rules()

	resp := make([]interventionTypeResponse, 0, len(rules))
	for _, rule := range rules {
		resp = append(resp, ruleToResponse(rule))
	}

	writeJSON(w, r, http.StatusOK, resp)
}

func parseWorkOrderID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	workOrderID, err := uuid.Parse(chi.URLParam(r, "workOrderID"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid work order id")
		return uuid.Nil, false
	}
	return workOrderID, true
}

func mapBeginError(err error) int {
	switch {
	case errors.Is(err, model.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrWorkOrderConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func mapLookupError(err error) int {
	switch {
	case errors.Is(err, model.ErrWorkOrderNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

//nolint:dupl
func mapAddInterventionError(err error) int {
	switch {
	case errors.Is(err, model.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrWorkOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, model.ErrUnknownType),
		errors.Is(err, model.ErrDisallowedCombination):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func mapAttributePartsError(err error) int {
	switch {
	case errors.Is(err, model.ErrInterventionNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrUntrackedType):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func mapCompleteError(err error) int {
	switch {
	case errors.Is(err, model.ErrWorkOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrUnknownStatus):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error(r.Context(), "write response", logger.ErrorF(err))
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeJSON(w, r, status, errorResponse{
		Code:    int32(status),
		Message: message,
	})
}
