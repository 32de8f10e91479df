package http

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/you-humble/field-service/internal/model"
	"github.com/you-humble/field-service/internal/registry"
)

type beginWorkOrderRequest struct {
	ExternalID         string    `json:"externalId"`
	Type               string    `json:"type"`
	PlannedAt          time.Time `json:"plannedAt"`
	AssigneeIdentifier string    `json:"assigneeIdentifier"`
	Description        string    `json:"description"`
}

type workOrderResponse struct {
	ID                 uuid.UUID  `json:"id"`
	ExternalID         string     `json:"externalId"`
	AssigneeIdentifier string     `json:"assigneeIdentifier"`
	Status             string     `json:"status"`
	LastDeliveryError  *string    `json:"lastDeliveryError,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	CompletedAt        *time.Time `json:"completedAt,omitempty"`
	ReconciledAt       *time.Time `json:"reconciledAt,omitempty"`
}

type interventionResponse struct {
	ID          int64           `json:"id"`
	Type        string          `json:"type"`
	Category    string          `json:"category,omitempty"`
	Payload     json.RawMessage `json:"payload"`
	SubmittedAt time.Time       `json:"submittedAt"`
}

type partUsageResponse struct {
	ID             int64     `json:"id"`
	InterventionID int64     `json:"interventionId"`
	Name           string    `json:"name"`
	Quantity       int       `json:"quantity"`
	RecordedAt     time.Time `json:"recordedAt"`
}

type workOrderDetailResponse struct {
	workOrderResponse
	Interventions []interventionResponse `json:"interventions"`
	PartUsages    []partUsageResponse    `json:"partUsages"`
}

type addInterventionRequest struct {
	Type     string          `json:"type"`
	Category string          `json:"category"`
	Payload  json.RawMessage `json:"payload"`
}

type addInterventionResponse struct {
	ID int64 `json:"id"`
}

type partEntryRequest struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type attributePartsRequest struct {
	Parts []partEntryRequest `json:"parts"`
}

type attributePartsResponse struct {
	Recorded int `json:"recorded"`
	Dropped  int `json:"dropped"`
}

type availableTypesResponse struct {
	Types []string `json:"types"`
}

type interventionTypeResponse struct {
	Type             string   `json:"type"`
	DisplayName      string   `json:"displayName"`
	Repeatable       bool     `json:"repeatable"`
	Combinable       bool     `json:"combinable"`
	RequiresCategory bool     `json:"requiresCategory"`
	Categories       []string `json:"categories,omitempty"`
	TracksParts      bool     `json:"tracksParts"`
}

type completeWorkOrderResponse struct {
	Status        string `json:"status"`
	DeliveryError string `json:"deliveryError,omitempty"`
}

type errorResponse struct {
	Code    int32  `json:"code"`
	Message string `json:"message"`
}

func workOrderToResponse(wo *model.WorkOrder) workOrderResponse {
	return workOrderResponse{
		ID:                 wo.ID,
		ExternalID:         wo.ExternalID,
		AssigneeIdentifier: wo.AssigneeID,
		Status:             string(wo.Status),
		LastDeliveryError:  wo.LastDeliveryError,
		CreatedAt:          wo.CreatedAt,
		CompletedAt:        wo.CompletedAt,
		ReconciledAt:       wo.ReconciledAt,
	}
}

func workOrderDetailToResponse(detail *model.WorkOrderDetail) workOrderDetailResponse {
	resp := workOrderDetailResponse{
		workOrderResponse: workOrderToResponse(&detail.WorkOrder),
		Interventions:     make([]interventionResponse, 0, len(detail.Interventions)),
		PartUsages:        make([]partUsageResponse, 0, len(detail.PartUsages)),
	}

	for _, iv := range detail.Interventions {
		resp.Interventions = append(resp.Interventions, interventionResponse{
			ID:          iv.ID,
			Type:        string(iv.Type),
			Category:    iv.Category,
			Payload:     iv.Payload,
			SubmittedAt: iv.SubmittedAt,
		})
	}

	for _, u := range detail.PartUsages {
		resp.PartUsages = append(resp.PartUsages, partUsageResponse{
			ID:             u.ID,
			InterventionID: u.InterventionID,
			Name:           u.Name,
			Quantity:       u.Quantity,
			RecordedAt:     u.RecordedAt,
		})
	}

	return resp
}

func ruleToResponse(rule registry.Rule) interventionTypeResponse {
	return interventionTypeResponse{
		Type:             string(rule.Type),
		DisplayName:      rule.DisplayName,
		Repeatable:       rule.Repeatable,
		Combinable:       rule.Combinable,
		RequiresCategory: rule.RequiresCategory,
		Categories:       rule.Categories,
		TracksParts:      rule.TracksParts,
	}
}
