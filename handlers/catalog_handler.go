package handlers

import (
	"encoding/json"
	"net/http"

	"shiptrack/models"
	"shiptrack/repository"
)

type CatalogHandler struct {
	Repo repository.CatalogRepository
}

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return false
	}
	return true
}

func (h *CatalogHandler) Locations(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		var loc models.Location
		if !decodeBody(w, r, &loc) {
			return
		}
		if err := h.Repo.CreateLocation(&loc); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, ApiResponse{Success: true, Data: loc})
	case http.MethodGet:
		if unlocode := r.URL.Query().Get("unlocode"); unlocode != "" {
			loc, err := h.Repo.GetLocationByUnlocode(unlocode)
			if err != nil {
				writeError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: loc})
			return
		}
		list, err := h.Repo.GetLocations()
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: list})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *CatalogHandler) Carriers(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		var c models.Carrier
		if !decodeBody(w, r, &c) {
			return
		}
		if err := h.Repo.CreateCarrier(&c); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, ApiResponse{Success: true, Data: c})
	case http.MethodGet:
		list, err := h.Repo.GetCarriers()
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: list})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *CatalogHandler) Vessels(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		var v models.Vessel
		if !decodeBody(w, r, &v) {
			return
		}
		if err := h.Repo.CreateVessel(&v); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, ApiResponse{Success: true, Data: v})
	case http.MethodGet:
		list, err := h.Repo.GetVessels()
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: list})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *CatalogHandler) Containers(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		var c models.Container
		if !decodeBody(w, r, &c) {
			return
		}
		if err := h.Repo.CreateContainer(&c); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, ApiResponse{Success: true, Data: c})
	case http.MethodGet:
		list, err := h.Repo.GetContainers()
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: list})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *CatalogHandler) Customers(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		var c models.Customer
		if !decodeBody(w, r, &c) {
			return
		}
		if err := h.Repo.CreateCustomer(&c); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, ApiResponse{Success: true, Data: c})
	case http.MethodGet:
		list, err := h.Repo.GetCustomers()
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: list})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
