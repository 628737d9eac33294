package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"shiptrack/models"
	"shiptrack/repository"
)

type ShipmentHandler struct {
	Repo      repository.ShipmentRepository
	Derived   repository.DerivedRepository
	Events    repository.EventRepository
	Exception repository.ExceptionRepository
}

// CreateShipment handler
func (h *ShipmentHandler) CreateShipment(w http.ResponseWriter, r *http.Request) {
	var s models.Shipment
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	if err := h.Repo.CreateShipmentWithLegs(&s); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, ApiResponse{Success: true, Data: s})
}

// GetShipments handler; supports customer_id/status/reference_no filters.
func (h *ShipmentHandler) GetShipments(w http.ResponseWriter, r *http.Request) {
	filters := make(map[string]interface{})
	q := r.URL.Query()
	for _, key := range []string{"reference_no", "customer_id", "status"} {
		if v := q.Get(key); v != "" {
			if intVal, err := strconv.ParseInt(v, 10, 64); err == nil && key == "customer_id" {
				filters[key] = intVal
			} else {
				filters[key] = v
			}
		}
	}
	if status, ok := filters["status"].(string); ok {
		if !models.ShipmentStatus(status).Valid() {
			writeJSON(w, http.StatusBadRequest, ApiResponse{
				Success: false,
				Message: "invalid status filter: " + status,
			})
			return
		}
	}

	list, err := h.Repo.GetShipments(filters, false)
	if err != nil {
		writeError(w, err)
		return
	}
	if list == nil {
		list = []*models.Shipment{}
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: list})
}

// GetShipmentByReference handles GET /shipments/{ref}.
func (h *ShipmentHandler) GetShipmentByReference(w http.ResponseWriter, r *http.Request, ref string) {
	s, err := h.Repo.GetShipmentByReference(ref)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: s})
}

// AddLeg handles POST /shipments/{ref}/legs.
func (h *ShipmentHandler) AddLeg(w http.ResponseWriter, r *http.Request, ref string) {
	var leg models.ShipmentLeg
	if err := json.NewDecoder(r.Body).Decode(&leg); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	s, err := h.Repo.GetShipmentByReference(ref)
	if err != nil {
		writeError(w, err)
		return
	}
	leg.ShipmentID = s.ID

	if err := h.Repo.AddLeg(&leg); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ApiResponse{Success: true, Data: leg})
}

// AttachContainer handles POST /shipments/{ref}/containers.
func (h *ShipmentHandler) AttachContainer(w http.ResponseWriter, r *http.Request, ref string) {
	var body struct {
		ContainerID int64 `json:"container_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ContainerID == 0 {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "container_id is required",
		})
		return
	}

	s, err := h.Repo.GetShipmentByReference(ref)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.Repo.AttachContainer(s.ID, body.ContainerID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "container attached"})
}

// GetStatus handles GET /shipments/{ref}/status: the latest event joined
// with the shipment, the primary "what's happening now" read.
func (h *ShipmentHandler) GetStatus(w http.ResponseWriter, r *http.Request, ref string) {
	le, err := h.Derived.GetLatestEvent(ref)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: le})
}

// GetProgress handles GET /shipments/{ref}/progress: the shipment joined
// to its highest-numbered leg.
func (h *ShipmentHandler) GetProgress(w http.ResponseWriter, r *http.Request, ref string) {
	p, err := h.Derived.GetProgress(ref)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: p})
}

// GetEvents handles GET /shipments/{ref}/events: the full event history.
func (h *ShipmentHandler) GetEvents(w http.ResponseWriter, r *http.Request, ref string) {
	s, err := h.Repo.GetShipmentByReference(ref)
	if err != nil {
		writeError(w, err)
		return
	}
	events, err := h.Events.GetEvents(s.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	if events == nil {
		events = []*models.TrackingEvent{}
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: events})
}

// GetExceptions handles GET /shipments/{ref}/exceptions (open only).
func (h *ShipmentHandler) GetExceptions(w http.ResponseWriter, r *http.Request, ref string) {
	s, err := h.Repo.GetShipmentByReference(ref)
	if err != nil {
		writeError(w, err)
		return
	}
	list, err := h.Exception.GetOpenExceptions(s.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	if list == nil {
		list = []*models.Exception{}
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: list})
}

// GetCustoms handles GET /shipments/{ref}/customs.
func (h *ShipmentHandler) GetCustoms(w http.ResponseWriter, r *http.Request, ref string) {
	s, err := h.Repo.GetShipmentByReference(ref)
	if err != nil {
		writeError(w, err)
		return
	}
	list, err := h.Exception.GetCustoms(s.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	if list == nil {
		list = []*models.CustomsClearance{}
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: list})
}
