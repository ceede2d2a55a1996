package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"

	"parking-garage/internal/parking"
)

func getServiceName() string {
	if name := os.Getenv("OTEL_SERVICE_NAME"); name != "" {
		return name
	}
	return "parking-garage-service"
}

type Handler struct {
	garage *parking.InstrumentedParkingLot
}

func NewHandler(garage *parking.InstrumentedParkingLot) *Handler {
	return &Handler{garage: garage}
}

// statusForError maps the domain error taxonomy onto HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, parking.ErrInvalidInput), errors.Is(err, parking.ErrUnknownCriterion):
		return http.StatusBadRequest
	case errors.Is(err, parking.ErrLevelNotFound), errors.Is(err, parking.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, parking.ErrFull):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]any{
		"status":  "healthy",
		"service": getServiceName(),
		"meta":    extractMeta(r.Context()),
	})
}

func (h *Handler) AddLevel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req AddLevelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(ctx, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	assigned, err := h.garage.AddLevel(ctx, req.LevelNumber, req.RegularCapacity, req.EVCapacity)
	if err != nil {
		WriteError(ctx, w, statusForError(err), err.Error())
		return
	}

	WriteSuccess(ctx, w, "Level added successfully", map[string]any{
		"level_number":     assigned,
		"regular_capacity": req.RegularCapacity,
		"ev_capacity":      req.EVCapacity,
	})
}

func (h *Handler) ParkVehicle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ParkVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(ctx, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Registration == "" {
		WriteError(ctx, w, http.StatusBadRequest, "Registration is required")
		return
	}

	placement, err := h.garage.ParkWithCharge(ctx, req.LevelNumber, req.Registration, req.Make, req.Model, req.Color, req.Electric, req.Motorcycle, req.Charge)
	if err != nil {
		WriteError(ctx, w, statusForError(err), err.Error())
		return
	}

	WriteSuccess(ctx, w, "Vehicle parked successfully", PlacementResponse{
		LevelNumber: placement.Level,
		SlotNumber:  placement.Slot,
	})
}

func (h *Handler) LeaveSlot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LeaveSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(ctx, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	vehicle, err := h.garage.Remove(ctx, req.LevelNumber, req.SlotNumber, req.Electric)
	if err != nil {
		WriteError(ctx, w, statusForError(err), err.Error())
		return
	}

	WriteSuccess(ctx, w, "Slot vacated successfully", vehicleResponse(vehicle))
}

func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	status := h.garage.Status(ctx)

	resp := StatusResponse{
		Levels:          make([]LevelStatusResponse, 0, len(status.Levels)),
		RegularOccupied: status.RegularOccupied,
		RegularCapacity: status.RegularCapacity,
		EVOccupied:      status.EVOccupied,
		EVCapacity:      status.EVCapacity,
	}
	for _, level := range status.Levels {
		resp.Levels = append(resp.Levels, LevelStatusResponse{
			LevelNumber:  level.LevelNumber,
			RegularFree:  level.RegularFree,
			RegularTotal: level.RegularTotal,
			EVFree:       level.EVFree,
			EVTotal:      level.EVTotal,
		})
	}

	WriteSuccess(ctx, w, "Status retrieved successfully", resp)
}

func (h *Handler) FindVehicles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	criterion := chi.URLParam(r, "criterion")
	value := chi.URLParam(r, "value")
	electric, _ := strconv.ParseBool(r.URL.Query().Get("electric"))

	placements, err := h.garage.Find(ctx, parking.Criterion(criterion), value, electric)
	if err != nil {
		WriteError(ctx, w, statusForError(err), err.Error())
		return
	}

	resp := FindResponse{
		Criterion:  criterion,
		Value:      value,
		Electric:   electric,
		Placements: make([]PlacementResponse, 0, len(placements)),
	}
	for _, p := range placements {
		resp.Placements = append(resp.Placements, PlacementResponse{
			LevelNumber: p.Level,
			SlotNumber:  p.Slot,
		})
	}

	WriteSuccess(ctx, w, "Search completed", resp)
}

func vehicleResponse(v *parking.Vehicle) VehicleResponse {
	resp := VehicleResponse{
		Registration: v.RegistrationNumber,
		Make:         v.Make,
		Model:        v.Model,
		Color:        v.Color,
		Kind:         v.Kind.String(),
	}
	if v.Electric() {
		charge := v.Charge
		resp.Charge = &charge
	}
	return resp
}
