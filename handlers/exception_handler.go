package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"shiptrack/models"
	"shiptrack/repository"
)

type ExceptionHandler struct {
	Repo repository.ExceptionRepository
}

// OpenException handler
func (h *ExceptionHandler) OpenException(w http.ResponseWriter, r *http.Request) {
	var e models.Exception
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	if err := h.Repo.OpenException(&e); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ApiResponse{Success: true, Data: e})
}

// CloseException handles POST /exceptions/close?id=N.
func (h *ExceptionHandler) CloseException(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id == 0 {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "missing or invalid exception id",
		})
		return
	}

	if err := h.Repo.CloseException(id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "exception closed"})
}

// GetOpenExceptions handles GET /exceptions, optionally filtered by
// shipment_id.
func (h *ExceptionHandler) GetOpenExceptions(w http.ResponseWriter, r *http.Request) {
	var shipmentID int64
	if v := r.URL.Query().Get("shipment_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ApiResponse{
				Success: false,
				Message: "invalid shipment_id",
			})
			return
		}
		shipmentID = id
	}

	list, err := h.Repo.GetOpenExceptions(shipmentID)
	if err != nil {
		writeError(w, err)
		return
	}
	if list == nil {
		list = []*models.Exception{}
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: list})
}

// UpsertCustoms handler
func (h *ExceptionHandler) UpsertCustoms(w http.ResponseWriter, r *http.Request) {
	var c models.CustomsClearance
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	if err := h.Repo.UpsertCustoms(&c); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: c})
}
