package server

import (
	"context"
	"encoding/json"
	"net/http"

	"go.opentelemetry.io/otel/trace"
)

type Meta struct {
	TraceID   string `json:"trace_id,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Meta    *Meta  `json:"meta,omitempty"`
}

type AddLevelRequest struct {
	LevelNumber     int `json:"level_number"`
	RegularCapacity int `json:"regular_capacity"`
	EVCapacity      int `json:"ev_capacity"`
}

type ParkVehicleRequest struct {
	LevelNumber  int    `json:"level_number"` // 0 selects the first level with room
	Registration string `json:"registration"`
	Make         string `json:"make"`
	Model        string `json:"model"`
	Color        string `json:"color"`
	Electric     bool   `json:"electric"`
	Motorcycle   bool   `json:"motorcycle"`
	Charge       *int   `json:"charge,omitempty"`
}

type LeaveSlotRequest struct {
	LevelNumber int  `json:"level_number"`
	SlotNumber  int  `json:"slot_number"`
	Electric    bool `json:"electric"`
}

type PlacementResponse struct {
	LevelNumber int `json:"level_number"`
	SlotNumber  int `json:"slot_number"`
}

type VehicleResponse struct {
	Registration string `json:"registration"`
	Make         string `json:"make,omitempty"`
	Model        string `json:"model,omitempty"`
	Color        string `json:"color,omitempty"`
	Kind         string `json:"kind"`
	Charge       *int   `json:"charge,omitempty"`
}

type LevelStatusResponse struct {
	LevelNumber  int `json:"level_number"`
	RegularFree  int `json:"regular_free"`
	RegularTotal int `json:"regular_total"`
	EVFree       int `json:"ev_free"`
	EVTotal      int `json:"ev_total"`
}

type StatusResponse struct {
	Levels          []LevelStatusResponse `json:"levels"`
	RegularOccupied int                   `json:"total_regular_occupied"`
	RegularCapacity int                   `json:"total_regular_capacity"`
	EVOccupied      int                   `json:"total_ev_occupied"`
	EVCapacity      int                   `json:"total_ev_capacity"`
}

type FindResponse struct {
	Criterion  string              `json:"criterion"`
	Value      string              `json:"value"`
	Electric   bool                `json:"electric"`
	Placements []PlacementResponse `json:"placements"`
}

func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func extractMeta(ctx context.Context) *Meta {
	meta := &Meta{}

	span := trace.SpanFromContext(ctx)
	if span.SpanContext().HasTraceID() {
		meta.TraceID = span.SpanContext().TraceID().String()
	}

	if reqID, ok := ctx.Value(RequestIDKey).(string); ok {
		meta.RequestID = reqID
	}

	return meta
}

func WriteSuccess(ctx context.Context, w http.ResponseWriter, message string, data any) {
	WriteJSON(w, http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    extractMeta(ctx),
	})
}

func WriteError(ctx context.Context, w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, Response{
		Success: false,
		Error:   message,
		Meta:    extractMeta(ctx),
	})
}
